package convert

import (
	"bytes"
	"fmt"

	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/goccy/go-yaml"
)

// ToYAML renders root as a YAML document in tree order.
func ToYAML(root *tree.Tree) ([]byte, error) {
	return MarshalYAML(root)
}

// MarshalYAML renders a single tree value, either a nested tree or a scalar, as YAML.
func MarshalYAML(value any) ([]byte, error) {
	if sub, ok := value.(*tree.Tree); ok {
		value = plain(sub)
	}

	data, err := yaml.Marshal(yamlValue(value))
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	return data, nil
}

// FromYAML parses a YAML document whose top level is a mapping.
func FromYAML(data []byte) (*tree.Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.New(), nil
	}

	var document any

	err := yaml.UnmarshalWithOptions(data, &document, yaml.UseOrderedMap())
	if err != nil {
		return nil, fmt.Errorf("decoding YAML: %w", err)
	}

	if document == nil {
		return tree.New(), nil
	}

	if _, ok := document.(yaml.MapSlice); !ok {
		return nil, fmt.Errorf("%w: YAML top level is %T", ErrNotAMapping, document)
	}

	normalized, err := normalize(document)
	if err != nil {
		return nil, err
	}

	mapping, _ := normalized.(tree.Mapping)

	return build(mapping), nil
}

func yamlValue(value any) any {
	switch v := value.(type) {
	case tree.Mapping:
		slice := make(yaml.MapSlice, 0, len(v))
		for _, pair := range v {
			slice = append(slice, yaml.MapItem{Key: pair.Key, Value: yamlValue(pair.Value)})
		}

		return slice
	case []any:
		list := make([]any, 0, len(v))
		for _, item := range v {
			list = append(list, yamlValue(item))
		}

		return list
	}

	return value
}
