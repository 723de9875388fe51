package convert

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/goccy/go-yaml"
)

// ErrNotAMapping is returned when a document's top level is not a mapping.
var ErrNotAMapping = errors.New("document is not a mapping")

// ErrInvalidJSON is returned by FromJSON for text that is not JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// ErrUnknownFormat is returned by ParseFormat for names it does not recognize.
var ErrUnknownFormat = errors.New("unknown format")

// Format names a serialization understood by this package.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// Formats lists the supported formats in the order they are documented.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	format := Format(name)
	if !slices.Contains(Formats(), format) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return format, nil
}

// Marshal serializes root in the given format. JSON output is indented.
func Marshal(format Format, root *tree.Tree) ([]byte, error) {
	switch format {
	case FormatYAML:
		return ToYAML(root)
	case FormatJSON:
		return ToJSON(root, true)
	case FormatTOML:
		return ToTOML(root)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Unmarshal parses data in the given format into a tree.
func Unmarshal(format Format, data []byte) (*tree.Tree, error) {
	switch format {
	case FormatYAML:
		return FromYAML(data)
	case FormatJSON:
		return FromJSON(data)
	case FormatTOML:
		return FromTOML(data)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// build turns a decoded top-level mapping into a tree. Mapping values become subtrees;
// everything else, including mappings nested in lists, stays a scalar.
func build(mapping tree.Mapping) *tree.Tree {
	root := tree.New()

	for _, pair := range mapping {
		if nested, ok := pair.Value.(tree.Mapping); ok {
			root.Set(pair.Key, build(nested))

			continue
		}

		root.Set(pair.Key, pair.Value)
	}

	return root
}

// plain is the inverse of build: nested trees become mappings.
func plain(root *tree.Tree) tree.Mapping {
	mapping := make(tree.Mapping, 0, root.Len())

	for key, value := range root.All() {
		if sub, ok := value.(*tree.Tree); ok {
			value = plain(sub)
		}

		mapping = append(mapping, tree.Pair{Key: key, Value: value})
	}

	return mapping
}

// normalize converts whatever a format library decoded into the scalar universe.
func normalize(value any) (any, error) {
	switch v := value.(type) {
	case nil, bool, string, int64, float64:
		return v, nil
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case uint:
		return normalizeUnsigned(uint64(v))
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return normalizeUnsigned(v)
	case float32:
		return float64(v), nil
	case time.Time:
		return v.Format(time.RFC3339Nano), nil
	case []any:
		return normalizeList(v)
	case yaml.MapSlice:
		return normalizeMapSlice(v)
	case map[string]any:
		return normalizeMap(v)
	case fmt.Stringer:
		return v.String(), nil
	}

	return nil, fmt.Errorf("%w: %T", literal.ErrUnsupportedValue, value)
}

func normalizeUnsigned(value uint64) (any, error) {
	if value > math.MaxInt64 {
		return nil, fmt.Errorf("%w: integer %d overflows int64", literal.ErrUnsupportedValue, value)
	}

	return int64(value), nil
}

func normalizeList(list []any) ([]any, error) {
	result := make([]any, 0, len(list))

	for _, item := range list {
		value, err := normalize(item)
		if err != nil {
			return nil, err
		}

		result = append(result, value)
	}

	return result, nil
}

func normalizeMapSlice(slice yaml.MapSlice) (tree.Mapping, error) {
	mapping := make(tree.Mapping, 0, len(slice))

	for _, item := range slice {
		value, err := normalize(item.Value)
		if err != nil {
			return nil, err
		}

		key, ok := item.Key.(string)
		if !ok {
			key = fmt.Sprint(item.Key)
		}

		mapping = append(mapping, tree.Pair{Key: key, Value: value})
	}

	return mapping, nil
}

func normalizeMap(table map[string]any) (tree.Mapping, error) {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	mapping := make(tree.Mapping, 0, len(keys))

	for _, key := range keys {
		value, err := normalize(table[key])
		if err != nil {
			return nil, err
		}

		mapping = append(mapping, tree.Pair{Key: key, Value: value})
	}

	return mapping, nil
}
