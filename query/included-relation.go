package query

import (
	"strings"

	"github.com/neuronlabs/inclusion/annotation"
)

// IncludedRelation is a single node of the inclusion tree. It contains the
// name of the relation to include and the ordered nested relations included
// under it. A relation with no nested relations is a leaf - it marks the
// relation to include with no deeper nesting specified.
type IncludedRelation struct {
	// Name is the relation path segment name.
	Name string
	// IncludedRelations are the ordered nested relations included within
	// this relation. The relation names are unique within the slice.
	IncludedRelations []*IncludedRelation
}

// IsLeaf checks if the relation contains no nested relations.
func (i *IncludedRelation) IsLeaf() bool {
	return len(i.IncludedRelations) == 0
}

// Copy creates a deep copy of the included relation.
func (i *IncludedRelation) Copy() *IncludedRelation {
	copiedIncludedField := &IncludedRelation{Name: i.Name}
	if i.IncludedRelations != nil {
		copiedIncludedField.IncludedRelations = make([]*IncludedRelation, len(i.IncludedRelations))
		for index, v := range i.IncludedRelations {
			copiedIncludedField.IncludedRelations[index] = v.Copy()
		}
	}
	return copiedIncludedField
}

// String implements fmt.Stringer interface. It returns the bracketed textual
// form of the relation, i.e.: 'posts[comments,author]'.
func (i *IncludedRelation) String() string {
	sb := &strings.Builder{}
	i.buildString(sb)
	return sb.String()
}

func (i *IncludedRelation) buildString(sb *strings.Builder) {
	sb.WriteString(i.Name)
	if i.IsLeaf() {
		return
	}

	sb.WriteByte(annotation.OpenedBracket)
	for index, nested := range i.IncludedRelations {
		if index != 0 {
			sb.WriteString(annotation.Separator)
		}
		nested.buildString(sb)
	}
	sb.WriteByte(annotation.ClosedBracket)
}

// buildIncludedRelations merges the relation path composed of ordered 'nested'
// segment names into the ordered 'relations' sequence and returns the result.
// The relation matching the leading segment absorbs the remaining segments -
// a leaf relation gets upgraded to a nested one when deeper segments are
// supplied, while a path that ends on an already nested relation leaves its
// nested relations untouched. When no relation matches, a new one is appended,
// so the sequence keeps the first occurrence order of the relation names.
func buildIncludedRelations(relations []*IncludedRelation, nested ...string) []*IncludedRelation {
	if len(nested) == 0 {
		return relations
	}

	name := nested[0]
	for _, relation := range relations {
		if relation.Name != name {
			continue
		}
		if len(nested) > 1 {
			relation.IncludedRelations = buildIncludedRelations(relation.IncludedRelations, nested[1:]...)
		}
		return relations
	}

	relation := &IncludedRelation{Name: name}
	relation.IncludedRelations = buildIncludedRelations(nil, nested[1:]...)
	return append(relations, relation)
}
