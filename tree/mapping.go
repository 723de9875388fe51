package tree

// Pair is one entry of a literal mapping.
type Pair struct {
	Key   string
	Value any
}

// Mapping is an ordered literal mapping scalar such as {"a": 1}. Unlike *Tree it never
// becomes a section of its own; it is written inline as a single value.
type Mapping []Pair

// Get returns the value of the last pair with the given key.
func (m Mapping) Get(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}

	return nil, false
}

// Equal reports whether two tree values are deeply equal. Trees and mappings compare
// order-sensitively; lists compare element-wise; everything else uses ==.
func Equal(left, right any) bool {
	switch l := left.(type) {
	case *Tree:
		r, ok := right.(*Tree)

		return ok && equalTrees(l, r)
	case Mapping:
		r, ok := right.(Mapping)
		if !ok || len(l) != len(r) {
			return false
		}

		for i := range l {
			if l[i].Key != r[i].Key || !Equal(l[i].Value, r[i].Value) {
				return false
			}
		}

		return true
	case []any:
		r, ok := right.([]any)
		if !ok || len(l) != len(r) {
			return false
		}

		for i := range l {
			if !Equal(l[i], r[i]) {
				return false
			}
		}

		return true
	default:
		switch right.(type) {
		case *Tree, Mapping, []any:
			return false
		}

		return left == right
	}
}

func equalTrees(left, right *Tree) bool {
	if left.Len() != right.Len() {
		return false
	}

	leftKeys := left.Keys()
	rightKeys := right.Keys()

	for i, key := range leftKeys {
		if rightKeys[i] != key {
			return false
		}

		if !Equal(left.values[key], right.values[key]) {
			return false
		}
	}

	return true
}
