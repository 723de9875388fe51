package literal_test

import (
	"math"
	"testing"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected any
	}{
		{"integer", "1", int64(1)},
		{"negative integer", "-3", int64(-3)},
		{"float", "1.5", 1.5},
		{"negative float", "-0.25", -0.25},
		{"exponent", "1e3", 1000.0},
		{"true", "true", true},
		{"false", "false", false},
		{"nil literal", "nil", nil},
		{"json null", "null", nil},
		{"single quoted string", "'single'", "single"},
		{"double quoted string", `"double"`, "double"},
		{"quoted number stays string", `"1"`, "1"},
		{"escaped newline", `"a\nb"`, "a\nb"},
		{"list", "[1, 'a', true]", []any{int64(1), "a", true}},
		{"empty list", "[]", []any{}},
		{"nested list", "[[1], [-2.5]]", []any{[]any{int64(1)}, []any{-2.5}}},
		{
			"literal mapping with single quotes",
			"{'a': 1, 'b': [2]}",
			tree.Mapping{{Key: "a", Value: int64(1)}, {Key: "b", Value: []any{int64(2)}}},
		},
		{
			"json mapping with null",
			`{"a": null, "b": {"c": false}}`,
			tree.Mapping{
				{Key: "a", Value: nil},
				{Key: "b", Value: tree.Mapping{{Key: "c", Value: false}}},
			},
		},
		{"bare word", "hello", "hello"},
		{"words with space", "hello world", "hello world"},
		{"filesystem path", "/usr/local/bin", "/usr/local/bin"},
		{"expression is not a literal", "1 + 2", "1 + 2"},
		{"function call is not a literal", "len('a')", "len('a')"},
		{"capitalized boolean", "True", "True"},
		{"capitalized none is text", "None", "None"},
		{"tuple is text", "(1, 2)", "(1, 2)"},
		{"infinity", "Infinity", math.Inf(1)},
		{"negative infinity", "-Infinity", math.Inf(-1)},
		{"overflowing exponent", "1e400", math.Inf(1)},
		{"infinity in list", "[Infinity, 1]", []any{math.Inf(1), int64(1)}},
		{"other identifier is text", "Inf", "Inf"},
		{"empty", "", ""},
		{"prefix match is not enough", "1 apple", "1 apple"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			decoded := literal.Decode(testCase.input)

			assert.True(t, tree.Equal(testCase.expected, decoded),
				"expected %#v, got %#v", testCase.expected, decoded)
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected string
	}{
		{"integer", int64(1), "1"},
		{"plain int", 42, "42"},
		{"unsigned", uint8(7), "7"},
		{"negative", int64(-5), "-5"},
		{"float", 1.5, "1.5"},
		{"whole float keeps fraction", 1.0, "1.0"},
		{"large float", 1e21, "1e+21"},
		{"infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
		{"nan", math.NaN(), "NaN"},
		{"float32 infinity", float32(math.Inf(1)), "Infinity"},
		{"infinity string", "Infinity", `"Infinity"`},
		{"nan string", "NaN", `"NaN"`},
		{"true", true, "true"},
		{"false", false, "false"},
		{"null", nil, "null"},
		{"plain string", "hello", "hello"},
		{"path string", "/usr/local/bin", "/usr/local/bin"},
		{"string with spaces", "hello world", "hello world"},
		{"numeric string", "42", `"42"`},
		{"float string", "1.5", `"1.5"`},
		{"boolean string", "true", `"true"`},
		{"null string", "null", `"null"`},
		{"nil string", "nil", `"nil"`},
		{"quoted string", `"a"`, `"\"a\""`},
		{"list string", "[1]", `"[1]"`},
		{"html stays readable", "<a&b>", "<a&b>"},
		{"empty string", "", ""},
		{"list", []any{int64(1), "a", nil}, `[1, "a", null]`},
		{"typed slice", []string{"x", "y"}, `["x", "y"]`},
		{"mapping", tree.Mapping{{Key: "b", Value: 1}, {Key: "a", Value: 2.0}}, `{"b": 1, "a": 2.0}`},
		{"go map sorted", map[string]any{"b": 1, "a": "x"}, `{"a": "x", "b": 1}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			encoded, err := literal.Encode(testCase.input)

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, encoded)
		})
	}
}

func TestEncode_Unsupported(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input any
	}{
		{"struct", struct{ A int }{A: 1}},
		{"nested tree", tree.New()},
		{"tree inside list", []any{tree.New()}},
		{"channel", make(chan int)},
		{"int keyed map", map[int]string{1: "a"}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := literal.Encode(testCase.input)

			require.ErrorIs(t, err, literal.ErrUnsupportedValue)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	values := []any{
		int64(0),
		int64(-17),
		int64(math.MaxInt64),
		0.1,
		-2.5,
		100.0,
		1e-7,
		math.Inf(1),
		math.Inf(-1),
		true,
		false,
		nil,
		"",
		"plain",
		"42",
		"-1",
		"3.14",
		"true",
		"false",
		"null",
		"nil",
		"Infinity",
		"-Infinity",
		"NaN",
		"[1, 2]",
		"{'a': 1}",
		"'quoted'",
		`"double"`,
		"tab\there",
		"line\nbreak",
		"C:\\path\\",
		"ünïcödé",
		[]any{int64(1), "two", 3.0, []any{}},
		tree.Mapping{{Key: "k", Value: "v"}, {Key: "n", Value: nil}},
	}

	for _, value := range values {
		encoded, err := literal.Encode(value)
		require.NoError(t, err, "value %#v", value)

		decoded := literal.Decode(encoded)
		assert.True(t, tree.Equal(value, decoded),
			"value %#v encoded as %q decoded to %#v", value, encoded, decoded)
	}
}

func TestDecode_NaN(t *testing.T) {
	t.Parallel()

	decoded, ok := literal.Decode("NaN").(float64)

	require.True(t, ok)
	assert.True(t, math.IsNaN(decoded))
}
