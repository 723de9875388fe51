// Package convert moves configuration trees in and out of YAML, JSON and TOML.
//
// Every format maps onto the same shape. A mapping directly under the document root or
// under another nested tree becomes a nested *tree.Tree (a section once written as INI);
// a mapping anywhere inside a list or inside another literal mapping stays a
// tree.Mapping scalar. Numbers come out as int64 or float64 whatever width the format
// library decoded them with.
//
// YAML and JSON keep key order in both directions. TOML tables are decoded through
// plain Go maps, so their keys are sorted.
package convert
