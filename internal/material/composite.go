package material

import (
	"context"
	"errors"

	"github.com/specialistvlad/ifcbridge/internal/ifc"
)

// Composite is the capability shared by every material definition variant.
type Composite interface {
	ifc.Entity
	// Flatten returns every leaf reachable from the composite, once each.
	Flatten() Set
	// Create makes sure every reachable leaf has a host object.
	Create(ctx context.Context, creator Creator, cache *Cache) error
}

// child is one direct child of a composite: a leaf, a nested definition, or
// neither (a layer without material).
type child struct {
	leaf   *ifc.Material
	nested ifc.MaterialDefinition
}

// node is what a variant must provide for the shared walker.
type node interface {
	ifc.Entity
	children() []child
}

// childOf classifies a definition reference held by a constituent or profile.
// Nil references, typed or not, yield an empty child.
func childOf(def ifc.MaterialDefinition) child {
	n, ok := nodeFor(def)
	if !ok {
		return child{}
	}
	if leaf, isLeaf := n.(leafNode); isLeaf {
		return child{leaf: leaf.Material}
	}
	return child{nested: def}
}

// ForDefinition returns the Composite for def. It reports false for nil
// definitions, including typed nil pointers.
func ForDefinition(def ifc.MaterialDefinition) (Composite, bool) {
	n, ok := nodeFor(def)
	if !ok {
		return nil, false
	}
	return composite{n}, true
}

// Flatten returns the leaves reachable from def. A nil definition flattens
// to an empty set.
func Flatten(def ifc.MaterialDefinition) Set {
	c, ok := ForDefinition(def)
	if !ok {
		return Set{}
	}
	return c.Flatten()
}

// Create ensures every leaf reachable from def has a host object, sharing
// cache with every other call of the same import run. Host failures are
// returned as *CreationError values joined together; leaves created before a
// failure stay created.
func Create(ctx context.Context, def ifc.MaterialDefinition, creator Creator, cache *Cache) error {
	c, ok := ForDefinition(def)
	if !ok {
		return nil
	}
	return c.Create(ctx, creator, cache)
}

// composite adapts any node to the Composite capability.
type composite struct {
	node
}

func (c composite) Flatten() Set {
	out := Set{}
	w := newWalker()
	w.flatten(c.node, out)
	return out
}

func (c composite) Create(ctx context.Context, creator Creator, cache *Cache) error {
	if cache == nil {
		return errors.New("material: nil creation cache")
	}
	w := newWalker()
	return w.create(ctx, c.node, creator, cache)
}

// walker visits each composite at most once per traversal, so malformed
// graphs with reference cycles terminate.
type walker struct {
	seen map[node]struct{}
}

func newWalker() *walker {
	return &walker{seen: make(map[node]struct{})}
}

func (w *walker) enter(n node) bool {
	if _, ok := w.seen[n]; ok {
		return false
	}
	w.seen[n] = struct{}{}
	return true
}

func (w *walker) flatten(n node, out Set) {
	if !w.enter(n) {
		return
	}
	for _, c := range n.children() {
		switch {
		case c.leaf != nil:
			out[c.leaf] = struct{}{}
		case c.nested != nil:
			if nested, ok := nodeFor(c.nested); ok {
				w.flatten(nested, out)
			}
		}
	}
}

func (w *walker) create(ctx context.Context, n node, creator Creator, cache *Cache) error {
	if !w.enter(n) {
		return nil
	}
	var errs []error
	for _, c := range n.children() {
		switch {
		case c.leaf != nil:
			if err := cache.ensure(ctx, c.leaf, creator); err != nil {
				errs = append(errs, err)
			}
		case c.nested != nil:
			if nested, ok := nodeFor(c.nested); ok {
				if err := w.create(ctx, nested, creator, cache); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}
