package host

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/specialistvlad/ifcbridge/internal/geometry"
	"github.com/specialistvlad/ifcbridge/internal/ifc"
	"github.com/specialistvlad/ifcbridge/internal/material"
	"github.com/ungerik/go3d/float64/vec3"
)

// Material is a material object inside the document.
type Material struct {
	Handle   material.Handle
	Source   ifc.ID
	Name     string
	Category string
}

// Curve is a line stored in the document, tagged with its source entity.
type Curve struct {
	Source ifc.ID
	Line   geometry.Line
}

// PointSet is a resolved coordinate list, tagged with its source entity.
type PointSet struct {
	Source ifc.ID
	Points []vec3.T
}

// Memory is the in-memory document.
type Memory struct {
	materials sync.Map // Key: material.Handle, Value: *Material
	creations atomic.Int64

	namesMu sync.Mutex
	names   map[string]int

	geomMu    sync.Mutex
	curves    []Curve
	pointSets []PointSet

	failOn func(*ifc.Material) error
}

// Option configures a Memory document.
type Option func(*Memory)

// WithFailure makes CreateMaterial fail whenever fn returns an error. Used to
// simulate a host that rejects some materials.
func WithFailure(fn func(*ifc.Material) error) Option {
	return func(d *Memory) {
		d.failOn = fn
	}
}

// New creates an empty document.
func New(opts ...Option) *Memory {
	d := &Memory{names: make(map[string]int)}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateMaterial implements material.Creator.
func (d *Memory) CreateMaterial(ctx context.Context, m *ifc.Material) (material.Handle, error) {
	if m == nil {
		return "", fmt.Errorf("host: nil material")
	}
	d.creations.Add(1)
	if d.failOn != nil {
		if err := d.failOn(m); err != nil {
			return "", err
		}
	}

	h := material.Handle(uuid.NewString())
	d.materials.Store(h, &Material{
		Handle:   h,
		Source:   m.ID,
		Name:     d.uniqueName(m),
		Category: m.Category,
	})
	return h, nil
}

func (d *Memory) uniqueName(m *ifc.Material) string {
	base := m.Name
	if base == "" {
		base = "Material " + m.ID.String()
	}
	d.namesMu.Lock()
	defer d.namesMu.Unlock()
	d.names[base]++
	if n := d.names[base]; n > 1 {
		return fmt.Sprintf("%s (%d)", base, n)
	}
	return base
}

// Material looks up a material by handle.
func (d *Memory) Material(h material.Handle) (*Material, bool) {
	v, ok := d.materials.Load(h)
	if !ok {
		return nil, false
	}
	return v.(*Material), true
}

// Materials returns every material ordered by source entity.
func (d *Memory) Materials() []*Material {
	var out []*Material
	d.materials.Range(func(_, v any) bool {
		out = append(out, v.(*Material))
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// CreationAttempts counts CreateMaterial calls, failed ones included.
func (d *Memory) CreationAttempts() int {
	return int(d.creations.Load())
}

// AddCurve stores a resolved line.
func (d *Memory) AddCurve(source ifc.ID, l geometry.Line) {
	d.geomMu.Lock()
	defer d.geomMu.Unlock()
	d.curves = append(d.curves, Curve{Source: source, Line: l})
}

// AddPoints stores a resolved point sequence.
func (d *Memory) AddPoints(source ifc.ID, points []vec3.T) {
	d.geomMu.Lock()
	defer d.geomMu.Unlock()
	d.pointSets = append(d.pointSets, PointSet{Source: source, Points: points})
}

// Curves returns a copy of the stored curves in insertion order.
func (d *Memory) Curves() []Curve {
	d.geomMu.Lock()
	defer d.geomMu.Unlock()
	return append([]Curve(nil), d.curves...)
}

// PointSets returns a copy of the stored point sequences in insertion order.
func (d *Memory) PointSets() []PointSet {
	d.geomMu.Lock()
	defer d.geomMu.Unlock()
	return append([]PointSet(nil), d.pointSets...)
}
