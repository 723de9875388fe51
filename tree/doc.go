// Package tree holds the in-memory configuration tree: an ordered mapping of string keys
// to nested trees or scalar values.
//
// Scalars are nil, bool, int64, float64, string, []any and Mapping. Only *Tree values
// introduce nesting; a Mapping is a literal value stored on a single key.
//
// Insertion order is significant. It decides the order sections are written in and, when
// a document is decoded, which of two identical keys wins (the later one).
package tree
