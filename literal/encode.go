package literal

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/segmentio/encoding/json"
)

// ErrUnsupportedValue is returned when a value falls outside the scalar universe.
var ErrUnsupportedValue = errors.New("unsupported value")

// Encode renders value as the text of an INI value.
//
// A string is written as-is when decoding that text gives the same string back, and as a
// JSON string literal otherwise (so "42" stays a string). Every other value is written as
// JSON.
func Encode(value any) (string, error) {
	if text, ok := value.(string); ok {
		if decoded, isString := Decode(text).(string); isString && decoded == text {
			return text, nil
		}
	}

	data, err := MarshalJSON(value)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// MarshalJSON renders a scalar as JSON. Floats always carry a fraction or an exponent so
// they decode back as floats, and mappings keep their order. Infinities and NaN use the
// non-standard Infinity, -Infinity and NaN tokens.
func MarshalJSON(value any) ([]byte, error) {
	return appendJSON(nil, value)
}

func appendJSON(buf []byte, value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return append(buf, "null"...), nil
	case bool:
		return strconv.AppendBool(buf, v), nil
	case string:
		return appendString(buf, v)
	case *tree.Tree:
		return nil, fmt.Errorf("%w: nested tree used as a scalar", ErrUnsupportedValue)
	case tree.Mapping:
		return appendMapping(buf, v)
	case []any:
		return appendList(buf, len(v), func(i int) any { return v[i] })
	}

	return appendReflected(buf, value)
}

func appendReflected(buf []byte, value any) ([]byte, error) {
	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive // everything else is unsupported
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(buf, rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(buf, rv.Uint(), 10), nil
	case reflect.Float32:
		return appendFloat(buf, rv.Float(), 32), nil
	case reflect.Float64:
		return appendFloat(buf, rv.Float(), 64), nil
	case reflect.Bool:
		return strconv.AppendBool(buf, rv.Bool()), nil
	case reflect.String:
		return appendString(buf, rv.String())
	case reflect.Slice, reflect.Array:
		return appendList(buf, rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}

		keys := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			keys = append(keys, key.String())
		}

		slices.Sort(keys)

		mapping := make(tree.Mapping, 0, len(keys))
		for _, key := range keys {
			mapping = append(mapping, tree.Pair{
				Key:   key,
				Value: rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())).Interface(),
			})
		}

		return appendMapping(buf, mapping)
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
}

func appendFloat(buf []byte, value float64, bitSize int) []byte {
	switch {
	case math.IsNaN(value):
		return append(buf, "NaN"...)
	case math.IsInf(value, 1):
		return append(buf, "Infinity"...)
	case math.IsInf(value, -1):
		return append(buf, "-Infinity"...)
	}

	text := strconv.FormatFloat(value, 'g', -1, bitSize)
	if !strings.ContainsAny(text, ".e") {
		text += ".0"
	}

	return append(buf, text...)
}

func appendString(buf []byte, value string) ([]byte, error) {
	var out bytes.Buffer

	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)

	err := encoder.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("encoding string: %w", err)
	}

	return append(buf, bytes.TrimSuffix(out.Bytes(), []byte("\n"))...), nil
}

func appendList(buf []byte, length int, item func(int) any) ([]byte, error) {
	var err error

	buf = append(buf, '[')

	for i := range length {
		if i > 0 {
			buf = append(buf, ", "...)
		}

		buf, err = appendJSON(buf, item(i))
		if err != nil {
			return nil, err
		}
	}

	return append(buf, ']'), nil
}

func appendMapping(buf []byte, mapping tree.Mapping) ([]byte, error) {
	var err error

	buf = append(buf, '{')

	for i, pair := range mapping {
		if i > 0 {
			buf = append(buf, ", "...)
		}

		buf, err = appendString(buf, pair.Key)
		if err != nil {
			return nil, err
		}

		buf = append(buf, ": "...)

		buf, err = appendJSON(buf, pair.Value)
		if err != nil {
			return nil, err
		}
	}

	return append(buf, '}'), nil
}
