package material

import (
	"sort"
	"strings"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
)

// Set is an identity-keyed set of leaf materials.
type Set map[*ifc.Material]struct{}

// Has reports whether m is in the set.
func (s Set) Has(m *ifc.Material) bool {
	_, ok := s[m]
	return ok
}

// Len returns the number of distinct leaves.
func (s Set) Len() int {
	return len(s)
}

// HasCategory reports whether any leaf has the given category, compared
// case-insensitively. It answers questions like "does this wall contain
// concrete?".
func (s Set) HasCategory(category string) bool {
	for m := range s {
		if strings.EqualFold(m.Category, category) {
			return true
		}
	}
	return false
}

// Sorted returns the leaves ordered by entity ID, for stable output.
func (s Set) Sorted() []*ifc.Material {
	out := make([]*ifc.Material, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ID != out[j].ID {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}
