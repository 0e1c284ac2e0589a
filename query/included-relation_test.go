package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// treeStrings maps the inclusion tree into its bracketed textual forms.
func treeStrings(relations []*IncludedRelation) []string {
	var values []string
	for _, relation := range relations {
		values = append(values, relation.String())
	}
	return values
}

// TestModelIncludes tests the Included.ModelIncludes method.
func TestModelIncludes(t *testing.T) {
	t.Run("Absent", func(t *testing.T) {
		assert.Empty(t, NewIncluded(nil).ModelIncludes())
	})

	t.Run("Single", func(t *testing.T) {
		relations := newIncluded("foo").ModelIncludes()
		require.Len(t, relations, 1)
		assert.Equal(t, "foo", relations[0].Name)
		assert.True(t, relations[0].IsLeaf())
	})

	t.Run("SingleNested", func(t *testing.T) {
		assert.Equal(t, []string{"foo[bar]"}, treeStrings(newIncluded("foo.bar").ModelIncludes()))
	})

	t.Run("SharedRoot", func(t *testing.T) {
		assert.Equal(t, []string{"foo[bar,bat]"}, treeStrings(newIncluded("foo.bar,foo.bat").ModelIncludes()))
	})

	t.Run("SeparateRoots", func(t *testing.T) {
		assert.Equal(t, []string{"foo[bar]", "baz[bat]"}, treeStrings(newIncluded("foo.bar,baz.bat").ModelIncludes()))
	})

	t.Run("MergedTails", func(t *testing.T) {
		// the later bare 'foo' merges into the existing relation as a no-op,
		// both 'foo.bar' tails merge under a single 'bar' in first seen order.
		relations := newIncluded("foo.bar.baz,foo,foo.bar.bat,bar").ModelIncludes()
		assert.Equal(t, []string{"foo[bar[baz,bat]]", "bar"}, treeStrings(relations))
	})

	t.Run("LeafUpgrade", func(t *testing.T) {
		// the leaf 'foo' gets upgraded in place when the later path supplies
		// the nested relations, keeping its first occurrence position.
		relations := newIncluded("foo,bar,foo.baz").ModelIncludes()
		assert.Equal(t, []string{"foo[baz]", "bar"}, treeStrings(relations))
	})

	t.Run("NoDemote", func(t *testing.T) {
		// a bare name matching an already nested relation leaves it untouched.
		relations := newIncluded("foo.bar,foo").ModelIncludes()
		assert.Equal(t, []string{"foo[bar]"}, treeStrings(relations))
	})

	t.Run("Duplicates", func(t *testing.T) {
		relations := newIncluded("foo,foo,foo.bar,foo.bar").ModelIncludes()
		assert.Equal(t, []string{"foo[bar]"}, treeStrings(relations))
	})

	t.Run("WildcardSkipped", func(t *testing.T) {
		relations := newIncluded("a.x,b.*,c").ModelIncludes()
		assert.Equal(t, []string{"a[x]", "c"}, treeStrings(relations))
	})
}

// TestModelIncludesNestedDepth tests that the relation paths materialize
// with no depth limit. Segments past the third level are kept unless the
// nested include limit is configured.
func TestModelIncludesNestedDepth(t *testing.T) {
	relations := newIncluded("a.b.c.d.e").ModelIncludes()
	require.Len(t, relations, 1)
	assert.Equal(t, []string{"a[b[c[d[e]]]]"}, treeStrings(relations))

	depth := 0
	for relation := relations[0]; relation != nil; {
		depth++
		if relation.IsLeaf() {
			break
		}
		require.Len(t, relation.IncludedRelations, 1)
		relation = relation.IncludedRelations[0]
	}
	assert.Equal(t, 5, depth)
}

// TestIncludedRelationCopy tests the IncludedRelation.Copy method.
func TestIncludedRelationCopy(t *testing.T) {
	relations := newIncluded("foo.bar,foo.baz").ModelIncludes()
	require.Len(t, relations, 1)

	copied := relations[0].Copy()
	assert.Equal(t, relations[0].String(), copied.String())

	copied.IncludedRelations[0].Name = "changed"
	assert.Equal(t, "bar", relations[0].IncludedRelations[0].Name)
}
