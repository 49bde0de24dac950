package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ref is a parsed `<kind>.<label>` traversal.
type ref struct {
	Kind  string
	Label string
	Range hcl.Range
}

func (r *ref) key() string {
	return r.Kind + "." + r.Label
}

// isAbsent reports whether an optional expression was omitted or set to null.
func isAbsent(expr hcl.Expression) bool {
	if expr == nil {
		return true
	}
	if len(expr.Variables()) > 0 {
		return false
	}
	v, diags := expr.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

// parseRef analyzes an expression that must be a single entity reference,
// e.g. `material.concrete`. An absent expression yields (nil, nil).
func parseRef(expr hcl.Expression) (*ref, error) {
	if isAbsent(expr) {
		return nil, nil
	}
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: expected a reference like material.name: %w", expr.Range(), diags)
	}
	if len(traversal) != 2 {
		return nil, fmt.Errorf("%s: reference must have exactly two parts, got %d", expr.Range(), len(traversal))
	}
	attr, ok := traversal[1].(hcl.TraverseAttr)
	if !ok {
		return nil, fmt.Errorf("%s: reference must be of the form <kind>.<name>", expr.Range())
	}
	return &ref{Kind: traversal.RootName(), Label: attr.Name, Range: expr.Range()}, nil
}

// parseRefList analyzes a static list of references, e.g. `[material.a, material.b]`.
func parseRefList(expr hcl.Expression) ([]*ref, error) {
	if isAbsent(expr) {
		return nil, nil
	}
	items, diags := hcl.ExprList(expr)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%s: expected a list of references: %w", expr.Range(), diags)
	}
	refs := make([]*ref, 0, len(items))
	for _, item := range items {
		r, err := parseRef(item)
		if err != nil {
			return nil, err
		}
		if r != nil {
			refs = append(refs, r)
		}
	}
	return refs, nil
}
