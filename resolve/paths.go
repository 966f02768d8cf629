package resolve

import (
	"github.com/napalu/complgen/internal/log"
	"github.com/napalu/complgen/spec"
	"github.com/napalu/complgen/types/orderedmap"
)

// CompletionPaths returns one completion path per command unit of the tree. The root comes
// first; below it every command lists its direct children (each followed by its alias paths)
// before descending into them. Alias paths stand for the aliased command only and are not
// expanded into its descendants. Duplicates keep their first position.
func (r *Resolver) CompletionPaths(root *spec.Command) ([]string, error) {
	paths, err := r.pathMap(root)
	if err != nil {
		return nil, err
	}

	return paths.Keys(), nil
}

func (r *Resolver) pathMap(root *spec.Command) (*orderedmap.OrderedMap[string, *spec.Command], error) {
	if err := requireBinName(root); err != nil {
		return nil, err
	}

	paths := orderedmap.NewOrderedMap[string, *spec.Command]()
	paths.Set(PathOf(root.BinName), root)
	if err := r.collectPaths(root, paths); err != nil {
		return nil, err
	}

	return paths, nil
}

func (r *Resolver) collectPaths(cmd *spec.Command, paths *orderedmap.OrderedMap[string, *spec.Command]) error {
	children, err := r.DirectChildren(cmd)
	if err != nil {
		return err
	}
	for _, child := range children {
		if !paths.SetIfAbsent(child.Path(), child.Command) {
			r.logger.Debug("duplicate completion path skipped", log.PathKey, child.Path())
			continue
		}
		r.trace("completion path", log.PathKey, child.Path(), "alias", child.IsAlias)
	}
	for _, sc := range cmd.Subcommands {
		if err := r.collectPaths(sc, paths); err != nil {
			return err
		}
	}

	return nil
}

// Unit is a completion path paired with the command it completes
type Unit struct {
	Path    string
	Command *spec.Command
}

// Units returns CompletionPaths together with the command behind each path. Commands are
// taken from the traversal itself, so names containing the path separator are kept intact.
func (r *Resolver) Units(root *spec.Command) ([]Unit, error) {
	paths, err := r.pathMap(root)
	if err != nil {
		return nil, err
	}

	return toUnits(paths), nil
}

// ExpandedUnits returns a unit for every subcommand path a user can type. It starts like
// Units, but alias paths are expanded into the aliased command's descendants as well, so
// "tool f deep" has a unit when f aliases foo.
func (r *Resolver) ExpandedUnits(root *spec.Command) ([]Unit, error) {
	if err := requireBinName(root); err != nil {
		return nil, err
	}

	rootPath := PathOf(root.BinName)
	paths := orderedmap.NewOrderedMap[string, *spec.Command]()
	paths.Set(rootPath, root)
	if err := r.expandPaths(rootPath, root, paths); err != nil {
		return nil, err
	}

	return toUnits(paths), nil
}

func (r *Resolver) expandPaths(path string, cmd *spec.Command, paths *orderedmap.OrderedMap[string, *spec.Command]) error {
	children, err := r.DirectChildren(cmd)
	if err != nil {
		return err
	}
	for _, child := range children {
		paths.SetIfAbsent(path+PathSeparator+child.Name, child.Command)
	}
	for _, child := range children {
		if err := r.expandPaths(path+PathSeparator+child.Name, child.Command, paths); err != nil {
			return err
		}
	}

	return nil
}

func toUnits(paths *orderedmap.OrderedMap[string, *spec.Command]) []Unit {
	units := make([]Unit, 0, paths.Count())
	for it := paths.Front(); it != nil; it = it.Next() {
		units = append(units, Unit{Path: *it.Key, Command: it.Value})
	}

	return units
}
