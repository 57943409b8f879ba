package stylus

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeOverrides reads metadata overrides from a YAML mapping of keys to scalar values,
// keeping the order of the document:
//
//	MPI_Rebalance: Quarterly
//	MPI_PORTFOLIONAME: Balanced fund
//
// An empty document returns an empty Metadata.
func DecodeOverrides(r io.Reader) (*Metadata, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewMetadata(), nil
		}
		return nil, fmt.Errorf("cannot parse metadata overrides: %w", err)
	}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("metadata overrides line %d: want a mapping of keys to values", root.Line)
	}

	m := NewMetadata()
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("metadata overrides line %d: value of %q must be a scalar", value.Line, key.Value)
		}
		m.Set(key.Value, value.Value)
	}
	return m, nil
}
