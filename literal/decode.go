package literal

import (
	"math"
	"strconv"
	"strings"

	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/tidwall/gjson"
)

// Decode turns the raw text of a value into a scalar. The literal grammar is tried first,
// then JSON; if neither accepts the whole text, the text itself is returned as a string.
// Decode never fails.
func Decode(text string) any {
	if value, ok := decodeLiteral(text); ok {
		return value
	}

	if value, ok := DecodeJSON(text); ok {
		return value
	}

	return text
}

func decodeLiteral(text string) (any, bool) {
	parsed, err := parser.Parse(text)
	if err != nil {
		return nil, false
	}

	return literalValue(parsed.Node)
}

// literalValue accepts only constant nodes; anything that would need evaluation
// (identifiers, calls, operators) rejects the whole text.
func literalValue(node ast.Node) (any, bool) {
	switch n := node.(type) {
	case *ast.NilNode:
		return nil, true
	case *ast.BoolNode:
		return n.Value, true
	case *ast.IntegerNode:
		return int64(n.Value), true
	case *ast.FloatNode:
		return n.Value, true
	case *ast.StringNode:
		return n.Value, true
	case *ast.IdentifierNode:
		value, ok := nonFinite(n.Value)

		return value, ok
	case *ast.UnaryNode:
		return signedNumber(n)
	case *ast.ArrayNode:
		list := make([]any, 0, len(n.Nodes))

		for _, item := range n.Nodes {
			value, ok := literalValue(item)
			if !ok {
				return nil, false
			}

			list = append(list, value)
		}

		return list, true
	case *ast.MapNode:
		mapping := make(tree.Mapping, 0, len(n.Pairs))

		for _, item := range n.Pairs {
			pair, ok := literalPair(item)
			if !ok {
				return nil, false
			}

			mapping = append(mapping, pair)
		}

		return mapping, true
	default:
		return nil, false
	}
}

func signedNumber(node *ast.UnaryNode) (any, bool) {
	if node.Operator != "-" && node.Operator != "+" {
		return nil, false
	}

	negate := node.Operator == "-"

	switch n := node.Node.(type) {
	case *ast.IntegerNode:
		if negate {
			return -int64(n.Value), true
		}

		return int64(n.Value), true
	case *ast.FloatNode:
		if negate {
			return -n.Value, true
		}

		return n.Value, true
	case *ast.IdentifierNode:
		value, ok := nonFinite(n.Value)
		if negate {
			value = -value
		}

		return value, ok
	default:
		return nil, false
	}
}

// nonFinite reads the spellings Encode uses for infinities and NaN.
func nonFinite(name string) (float64, bool) {
	switch name {
	case "Infinity":
		return math.Inf(1), true
	case "NaN":
		return math.NaN(), true
	default:
		return 0, false
	}
}

func literalPair(node ast.Node) (tree.Pair, bool) {
	pair, ok := node.(*ast.PairNode)
	if !ok {
		return tree.Pair{}, false
	}

	var key string

	switch k := pair.Key.(type) {
	case *ast.StringNode:
		key = k.Value
	case *ast.IdentifierNode:
		key = k.Value
	default:
		return tree.Pair{}, false
	}

	value, ok := literalValue(pair.Value)
	if !ok {
		return tree.Pair{}, false
	}

	return tree.Pair{Key: key, Value: value}, true
}

// DecodeJSON decodes a complete JSON text. Objects keep their key order as tree.Mapping
// and integers stay int64. It reports false when text is not valid JSON.
func DecodeJSON(text string) (any, bool) {
	if !gjson.Valid(text) {
		return nil, false
	}

	return jsonValue(gjson.Parse(text)), true
}

func jsonValue(result gjson.Result) any {
	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		return jsonNumber(result)
	case gjson.String:
		return result.Str
	case gjson.JSON:
		if result.IsArray() {
			list := make([]any, 0)

			result.ForEach(func(_, value gjson.Result) bool {
				list = append(list, jsonValue(value))

				return true
			})

			return list
		}

		mapping := make(tree.Mapping, 0)

		result.ForEach(func(key, value gjson.Result) bool {
			mapping = append(mapping, tree.Pair{Key: key.Str, Value: jsonValue(value)})

			return true
		})

		return mapping
	}

	return nil
}

// jsonNumber keeps integers integral; gjson reports every number as float64.
func jsonNumber(result gjson.Result) any {
	raw := strings.TrimSpace(result.Raw)

	if !strings.ContainsAny(raw, ".eE") {
		integer, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return integer
		}
	}

	return result.Num
}
