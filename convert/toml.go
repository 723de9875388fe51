package convert

import (
	"fmt"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/pelletier/go-toml/v2"
)

// ToTOML renders root as a TOML document. TOML has no null, so nil values are rejected.
func ToTOML(root *tree.Tree) ([]byte, error) {
	table, err := tomlValue(plain(root))
	if err != nil {
		return nil, err
	}

	data, err := toml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("encoding TOML: %w", err)
	}

	return data, nil
}

// FromTOML parses a TOML document. Keys come out sorted.
func FromTOML(data []byte) (*tree.Tree, error) {
	document := make(map[string]any)

	err := toml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("decoding TOML: %w", err)
	}

	mapping, err := normalizeMap(document)
	if err != nil {
		return nil, err
	}

	return build(mapping), nil
}

func tomlValue(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, fmt.Errorf("%w: TOML cannot represent null", literal.ErrUnsupportedValue)
	case tree.Mapping:
		table := make(map[string]any, len(v))

		for _, pair := range v {
			item, err := tomlValue(pair.Value)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", pair.Key, err)
			}

			table[pair.Key] = item
		}

		return table, nil
	case []any:
		list := make([]any, 0, len(v))

		for _, element := range v {
			item, err := tomlValue(element)
			if err != nil {
				return nil, err
			}

			list = append(list, item)
		}

		return list, nil
	}

	return value, nil
}
