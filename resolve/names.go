package resolve

import (
	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/spec"
	"github.com/napalu/complgen/types/queue"
	"golang.org/x/exp/slices"
)

// Child is a direct subcommand as seen by its parent: either the subcommand itself or
// one of its aliases standing in for it
type Child struct {
	Name    string
	BinName string
	Command *spec.Command
	IsAlias bool
	Hidden  bool
}

// Path returns the completion path of the child
func (c Child) Path() string {
	return PathOf(c.BinName)
}

// FullyQualifiedNames returns the bin name of every command reachable from root together with
// one name per alias, formed by swapping the final segment of the owning command's bin name.
// The result is sorted and contains no duplicates.
func (r *Resolver) FullyQualifiedNames(root *spec.Command) ([]string, error) {
	if err := requireBinName(root); err != nil {
		return nil, err
	}

	var names []string
	pending := queue.New[*spec.Command]()
	pending.Enqueue(root)
	for pending.Len() > 0 {
		cmd, _ := pending.Dequeue()
		if err := requireBinName(cmd); err != nil {
			return nil, err
		}
		names = append(names, cmd.BinName)
		for _, alias := range cmd.Aliases {
			names = append(names, AliasBinName(cmd.BinName, alias.Name))
		}
		for _, sc := range cmd.Subcommands {
			pending.Enqueue(sc)
		}
	}

	slices.Sort(names)
	names = slices.Compact(names)
	r.trace("resolved qualified names", log.BinNameKey, root.BinName, "count", len(names))

	return names, nil
}

// DirectChildren lists the subcommands of cmd in declaration order, each followed by its aliases
func (r *Resolver) DirectChildren(cmd *spec.Command) ([]Child, error) {
	if err := requireBinName(cmd); err != nil {
		return nil, err
	}

	children := make([]Child, 0, len(cmd.Subcommands))
	for _, sc := range cmd.Subcommands {
		if err := requireBinName(sc); err != nil {
			return nil, err
		}
		children = append(children, Child{
			Name:    sc.Name,
			BinName: sc.BinName,
			Command: sc,
			Hidden:  sc.Hidden,
		})
		for _, alias := range sc.Aliases {
			children = append(children, Child{
				Name:    alias.Name,
				BinName: AliasBinName(sc.BinName, alias.Name),
				Command: sc,
				IsAlias: true,
				Hidden:  alias.Hidden,
			})
		}
	}

	return children, nil
}
