package spec

// BuildBinNames assigns the fully-qualified invocation path of root and every descendant.
// root receives binName; each child receives its parent's bin name, a space and its own name.
// This is the finalize step which must run before generation; it is the only function in
// this module that mutates a Command tree.
func BuildBinNames(root *Command, binName string) {
	if root == nil {
		return
	}
	root.BinName = binName
	buildChildBinNames(root)
}

func buildChildBinNames(parent *Command) {
	for _, sc := range parent.Subcommands {
		sc.BinName = parent.BinName + " " + sc.Name
		buildChildBinNames(sc)
	}
}
