package spec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a plain string (a visible alias) or a mapping with name and hidden keys
func (a *Alias) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		a.Name = value.Value
		a.Hidden = false
		return nil
	}

	type plain Alias
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*a = Alias(p)

	return nil
}

// LoadYAML decodes a command tree from r, assigns bin names and validates the result.
// The root bin name is taken from the document's bin_name, falling back to its name.
func LoadYAML(r io.Reader) (*Command, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root Command
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode command spec: %w", err)
	}

	binName := root.BinName
	if binName == "" {
		binName = root.Name
	}
	BuildBinNames(&root, binName)

	if err := Validate(&root); err != nil {
		return nil, err
	}

	return &root, nil
}
