package convert

import (
	"fmt"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/tidwall/pretty"
)

// ToJSON renders root as a JSON object in tree order. With indent the output is
// pretty-printed; otherwise it is compacted onto one line.
func ToJSON(root *tree.Tree, indent bool) ([]byte, error) {
	data, err := literal.MarshalJSON(plain(root))
	if err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}

	if indent {
		return pretty.PrettyOptions(data, &pretty.Options{
			Width:    80, //nolint:mnd // pretty's default line width
			Prefix:   "",
			Indent:   "  ",
			SortKeys: false,
		}), nil
	}

	return append(pretty.Ugly(data), '\n'), nil
}

// FromJSON parses a JSON document whose top level is an object.
func FromJSON(data []byte) (*tree.Tree, error) {
	document, ok := literal.DecodeJSON(string(data))
	if !ok {
		return nil, fmt.Errorf("decoding JSON: %w", ErrInvalidJSON)
	}

	mapping, ok := document.(tree.Mapping)
	if !ok {
		return nil, fmt.Errorf("%w: JSON top level is %T", ErrNotAMapping, document)
	}

	return build(mapping), nil
}
