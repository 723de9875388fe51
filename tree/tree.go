package tree

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrNotATree is returned by Walk when a path segment names a scalar entry.
var ErrNotATree = errors.New("path segment is not a nested tree")

// Path identifies a node by the sequence of keys leading to it from the root.
// The root is the empty path.
type Path []string

// Append returns a new path with key added at the end. The receiver is never modified.
func (p Path) Append(key string) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)

	return append(next, key)
}

// Tree is an ordered mapping from string keys to either a nested *Tree or a scalar value.
// Iteration order is insertion order; overwriting a key keeps its original position.
// A Tree is not safe for concurrent mutation.
type Tree struct {
	keys   []string
	values map[string]any
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{
		keys:   nil,
		values: make(map[string]any),
	}
}

// Len returns the number of direct entries.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}

	return len(t.keys)
}

// Keys returns the direct keys in iteration order.
func (t *Tree) Keys() []string {
	if t == nil {
		return nil
	}

	return slices.Clone(t.keys)
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}

	value, ok := t.values[key]

	return value, ok
}

// Subtree returns the nested tree stored under key, if the entry exists and is a tree.
func (t *Tree) Subtree(key string) (*Tree, bool) {
	value, ok := t.Get(key)
	if !ok {
		return nil, false
	}

	sub, isTree := value.(*Tree)

	return sub, isTree
}

// Set stores value under key and returns the receiver so calls can be chained.
func (t *Tree) Set(key string, value any) *Tree {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}

	t.values[key] = value

	return t
}

// Delete removes key. Deleting a missing key is a no-op.
func (t *Tree) Delete(key string) {
	if _, exists := t.values[key]; !exists {
		return
	}

	delete(t.values, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
}

// All iterates over the direct entries in order.
func (t *Tree) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if t == nil {
			return
		}

		for _, key := range t.keys {
			if !yield(key, t.values[key]) {
				return
			}
		}
	}
}

// Walk descends along path, creating empty trees for missing segments, and returns the node
// at its end. A segment that exists but holds a scalar yields ErrNotATree; the returned
// error names the offending prefix.
func (t *Tree) Walk(path Path) (*Tree, error) {
	current := t

	for i, key := range path {
		value, exists := current.values[key]
		if !exists {
			child := New()
			current.Set(key, child)
			current = child

			continue
		}

		child, isTree := value.(*Tree)
		if !isTree {
			return nil, fmt.Errorf("%w: %q", ErrNotATree, path[:i+1])
		}

		current = child
	}

	return current, nil
}

// Lookup descends along path without creating anything.
func (t *Tree) Lookup(path Path) (*Tree, bool) {
	current := t

	for _, key := range path {
		child, ok := current.Subtree(key)
		if !ok {
			return nil, false
		}

		current = child
	}

	return current, true
}
