package sections

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/sectionpath"
	"github.com/0xalexb/hjarta-ini/tree"
)

// ErrStructuralConflict is matched by every StructuralConflictError.
var ErrStructuralConflict = errors.New("structural conflict")

// Entry is one key = value line of a section, with the value in its textual form.
type Entry struct {
	Key   string
	Value string
}

// Section is one flattened tree node: its encoded name and its direct scalar entries.
type Section struct {
	Name    string
	Entries []Entry
}

// StructuralConflictError reports a key that is used both as a nesting point and as a
// scalar entry.
type StructuralConflictError struct {
	Section string
	Path    tree.Path
}

func (e *StructuralConflictError) Error() string {
	return fmt.Sprintf("%s: section %q: %q is both a scalar and a nested section",
		ErrStructuralConflict, e.Section, sectionpath.Encode(e.Path))
}

// Is makes errors.Is(err, ErrStructuralConflict) hold.
func (e *StructuralConflictError) Is(target error) bool {
	return target == ErrStructuralConflict
}

// Flatten walks root depth-first and returns one section per nested node, parents before
// their children and siblings in tree order. Each section carries only the node's direct
// scalar entries, encoded with literal.Encode; a node without scalars still gets an empty
// section. The root itself never produces a section, so scalars stored directly on the
// root are dropped and logged.
func Flatten(root *tree.Tree) ([]Section, error) {
	flattener := &flattener{
		index:  make(map[string]int),
		result: nil,
	}

	for key, value := range root.All() {
		child, isTree := value.(*tree.Tree)
		if !isTree {
			slog.Warn("dropping top-level scalar", slog.String("key", key))

			continue
		}

		err := flattener.visit(child, tree.Path{key})
		if err != nil {
			return nil, err
		}
	}

	return flattener.result, nil
}

type flattener struct {
	index  map[string]int
	result []Section
}

func (f *flattener) visit(node *tree.Tree, path tree.Path) error {
	name := sectionpath.Encode(path)

	position, seen := f.index[name]
	if !seen {
		position = len(f.result)
		f.index[name] = position
		f.result = append(f.result, Section{Name: name, Entries: nil})
	}

	for key, value := range node.All() {
		child, isTree := value.(*tree.Tree)
		if isTree {
			err := f.visit(child, path.Append(key))
			if err != nil {
				return err
			}

			continue
		}

		text, err := literal.Encode(value)
		if err != nil {
			return fmt.Errorf("section %q key %q: %w", name, key, err)
		}

		f.result[position].Entries = setEntry(f.result[position].Entries, key, text)
	}

	return nil
}

// setEntry overwrites an existing key in place, so merged sections keep first-seen order.
func setEntry(entries []Entry, key, value string) []Entry {
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = value

			return entries
		}
	}

	return append(entries, Entry{Key: key, Value: value})
}

// Build reconstructs a tree from sections in document order. Section names are decoded
// with sectionpath.Decode and missing intermediate nodes are created; values are decoded
// with literal.Decode. Later sections and later keys win over earlier ones.
func Build(sections []Section) (*tree.Tree, error) {
	root := tree.New()

	for _, section := range sections {
		path, err := sectionpath.Decode(section.Name)
		if err != nil {
			return nil, err
		}

		node, err := root.Walk(path)
		if err != nil {
			return nil, &StructuralConflictError{Section: section.Name, Path: conflictPrefix(root, path)}
		}

		for _, entry := range section.Entries {
			if _, isTree := node.Subtree(entry.Key); isTree {
				return nil, &StructuralConflictError{Section: section.Name, Path: path.Append(entry.Key)}
			}

			node.Set(entry.Key, literal.Decode(entry.Value))
		}
	}

	return root, nil
}

// conflictPrefix returns the shortest prefix of path that ends on a scalar.
func conflictPrefix(root *tree.Tree, path tree.Path) tree.Path {
	current := root

	for i, key := range path {
		child, ok := current.Subtree(key)
		if !ok {
			return path[:i+1]
		}

		current = child
	}

	return path
}
