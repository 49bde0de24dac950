package ifc

import "fmt"

// Element is a building element carrying a material association, e.g. an
// IfcWall related to a layer set usage through IfcRelAssociatesMaterial.
type Element struct {
	ID       ID
	GlobalID string
	Name     string
	Material MaterialDefinition
}

func (e *Element) EntityID() ID { return e.ID }

// Graph is an ID-indexed registry of entities that keeps insertion order.
// It is built once by a loader and read-only afterwards.
type Graph struct {
	entities map[ID]Entity
	order    []ID
	maxID    ID
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{entities: make(map[ID]Entity)}
}

// Add registers an entity. IDs must be positive and unique.
func (g *Graph) Add(e Entity) error {
	id := e.EntityID()
	if id <= 0 {
		return fmt.Errorf("ifc: entity %T has no id", e)
	}
	if prev, exists := g.entities[id]; exists {
		return fmt.Errorf("ifc: duplicate id %s (%T and %T)", id, prev, e)
	}
	g.entities[id] = e
	g.order = append(g.order, id)
	if id > g.maxID {
		g.maxID = id
	}
	return nil
}

// Entity looks up an entity by ID.
func (g *Graph) Entity(id ID) (Entity, bool) {
	e, ok := g.entities[id]
	return e, ok
}

// NextID returns an ID greater than every ID added so far.
func (g *Graph) NextID() ID {
	return g.maxID + 1
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	return len(g.order)
}

// Of returns every entity of type T in insertion order.
func Of[T Entity](g *Graph) []T {
	var out []T
	for _, id := range g.order {
		if e, ok := g.entities[id].(T); ok {
			out = append(out, e)
		}
	}
	return out
}
