package sections

import (
	"errors"
	"testing"

	"github.com/0xalexb/hjarta-ini/literal"
	"github.com/0xalexb/hjarta-ini/tree"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() *tree.Tree {
	return tree.New().
		Set("core", tree.New().
			Set("remote", "origin").
			Set("autostage", true)).
		Set("remote", tree.New().
			Set("origin", tree.New().
				Set("url", "s3://bucket/path").
				Set("retries", int64(3))).
			Set("backup.eu", tree.New().
				Set("url", "gs://other")))
}

func TestFlatten_OrderAndEncoding(t *testing.T) {
	t.Parallel()

	flat, err := Flatten(sampleTree())
	require.NoError(t, err)

	expected := []Section{
		{Name: "core", Entries: []Entry{{Key: "remote", Value: "origin"}, {Key: "autostage", Value: "true"}}},
		{Name: "remote", Entries: nil},
		{Name: "remote.origin", Entries: []Entry{{Key: "url", Value: "s3://bucket/path"}, {Key: "retries", Value: "3"}}},
		{Name: "remote.'backup.eu'", Entries: []Entry{{Key: "url", Value: "gs://other"}}},
	}

	assert.Equal(t, expected, flat)
}

func TestFlatten_ParentLeavesAfterChildren(t *testing.T) {
	t.Parallel()

	root := tree.New().Set("a", tree.New().
		Set("b", tree.New().Set("x", int64(1))).
		Set("y", "1"))

	flat, err := Flatten(root)
	require.NoError(t, err)

	require.Len(t, flat, 2)
	assert.Equal(t, Section{Name: "a", Entries: []Entry{{Key: "y", Value: `"1"`}}}, flat[0])
	assert.Equal(t, Section{Name: "a.b", Entries: []Entry{{Key: "x", Value: "1"}}}, flat[1])
}

func TestFlatten_EmptyTree(t *testing.T) {
	t.Parallel()

	flat, err := Flatten(tree.New())

	require.NoError(t, err)
	assert.Empty(t, flat)
}

func TestFlatten_RootScalarIsDropped(t *testing.T) {
	t.Parallel()

	root := tree.New().
		Set("loose", "value").
		Set("a", tree.New().Set("x", int64(1))).
		Set("other", int64(2))

	flat, err := Flatten(root)

	require.NoError(t, err)
	assert.Equal(t, []Section{{Name: "a", Entries: []Entry{{Key: "x", Value: "1"}}}}, flat)
}

func TestFlatten_UnsupportedValue(t *testing.T) {
	t.Parallel()

	root := tree.New().Set("a", tree.New().Set("bad", struct{}{}))

	_, err := Flatten(root)

	require.ErrorIs(t, err, literal.ErrUnsupportedValue)
	assert.Contains(t, err.Error(), `"bad"`)
}

func TestFlatten_CollidingNamesMerge(t *testing.T) {
	t.Parallel()

	f := &flattener{index: map[string]int{}, result: nil}
	require.NoError(t, f.visit(tree.New().Set("k", int64(1)).Set("j", int64(2)), tree.Path{"x"}))
	require.NoError(t, f.visit(tree.New().Set("k", int64(3)), tree.Path{"x"}))

	require.Len(t, f.result, 1)
	assert.Equal(t, []Entry{{Key: "k", Value: "3"}, {Key: "j", Value: "2"}}, f.result[0].Entries)
}

func TestBuild_ConcreteDocument(t *testing.T) {
	t.Parallel()

	built, err := Build([]Section{
		{Name: "x.y", Entries: []Entry{{Key: "z", Value: "1"}, {Key: "w", Value: `"1"`}}},
	})
	require.NoError(t, err)

	expected := tree.New().Set("x", tree.New().Set("y", tree.New().
		Set("z", int64(1)).
		Set("w", "1")))

	assert.True(t, tree.Equal(expected, built))
}

func TestBuild_LaterSectionsWin(t *testing.T) {
	t.Parallel()

	built, err := Build([]Section{
		{Name: "a", Entries: []Entry{{Key: "b", Value: "1"}, {Key: "c", Value: "keep"}}},
		{Name: "'a'", Entries: []Entry{{Key: "b", Value: "2"}}},
	})
	require.NoError(t, err)

	node, ok := built.Lookup(tree.Path{"a"})
	require.True(t, ok)

	value, _ := node.Get("b")
	assert.Equal(t, int64(2), value)

	value, _ = node.Get("c")
	assert.Equal(t, "keep", value)
	assert.Equal(t, []string{"b", "c"}, node.Keys())
}

func TestBuild_EmptyInput(t *testing.T) {
	t.Parallel()

	built, err := Build(nil)

	require.NoError(t, err)
	assert.Equal(t, 0, built.Len())
}

func TestBuild_EmptySectionCreatesNode(t *testing.T) {
	t.Parallel()

	built, err := Build([]Section{{Name: "a.b", Entries: nil}})
	require.NoError(t, err)

	node, ok := built.Lookup(tree.Path{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, 0, node.Len())
}

func TestBuild_UnterminatedQuoteIsPlainKey(t *testing.T) {
	t.Parallel()

	built, err := Build([]Section{{Name: "a.'b", Entries: []Entry{{Key: "k", Value: "1"}}}})
	require.NoError(t, err)

	node, ok := built.Lookup(tree.Path{"a", "'b"})
	require.True(t, ok)

	value, _ := node.Get("k")
	assert.Equal(t, int64(1), value)
}

func TestBuild_StructuralConflict(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		sections []Section
		path     tree.Path
	}{
		{
			name: "segment is a scalar",
			sections: []Section{
				{Name: "a", Entries: []Entry{{Key: "b", Value: "1"}}},
				{Name: "a.b.c", Entries: nil},
			},
			path: tree.Path{"a", "b"},
		},
		{
			name: "scalar overwrites a section",
			sections: []Section{
				{Name: "a.b", Entries: []Entry{{Key: "x", Value: "1"}}},
				{Name: "a", Entries: []Entry{{Key: "b", Value: "2"}}},
			},
			path: tree.Path{"a", "b"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			built, err := Build(testCase.sections)

			require.Error(t, err)
			assert.Nil(t, built)
			require.ErrorIs(t, err, ErrStructuralConflict)

			var conflict *StructuralConflictError

			require.True(t, errors.As(err, &conflict))
			assert.Equal(t, testCase.path, conflict.Path)
		})
	}
}

func TestFlattenBuild_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := Flatten(sampleTree())
	require.NoError(t, err)

	built, err := Build(first)
	require.NoError(t, err)
	assert.True(t, tree.Equal(sampleTree(), built))

	second, err := Flatten(built)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
