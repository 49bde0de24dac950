package ifc

// CoordinateList is an IfcCartesianPointList. The dimensionality belongs to
// the list, so it is expressed by the concrete type rather than per tuple.
type CoordinateList interface {
	Entity
	Len() int
}

// PointList2D is an IfcCartesianPointList2D.
type PointList2D struct {
	ID        ID
	CoordList [][2]float64
	TagList   []string
}

func (p *PointList2D) EntityID() ID { return p.ID }
func (p *PointList2D) Len() int     { return len(p.CoordList) }

// PointList3D is an IfcCartesianPointList3D.
type PointList3D struct {
	ID        ID
	CoordList [][3]float64
	TagList   []string
}

func (p *PointList3D) EntityID() ID { return p.ID }
func (p *PointList3D) Len() int     { return len(p.CoordList) }

// PointListND holds tuples whose arity is neither uniformly 2 nor 3. Loaders
// produce it instead of guessing a shape; resolvers reject it.
type PointListND struct {
	ID        ID
	CoordList [][]float64
}

func (p *PointListND) EntityID() ID { return p.ID }
func (p *PointListND) Len() int     { return len(p.CoordList) }

// CartesianPoint is an IfcCartesianPoint with one to three coordinates.
type CartesianPoint struct {
	ID          ID
	Coordinates []float64
}

func (p *CartesianPoint) EntityID() ID { return p.ID }

// Direction is an IfcDirection. Its ratios are not required to be normalized.
type Direction struct {
	ID              ID
	DirectionRatios []float64
}

func (d *Direction) EntityID() ID { return d.ID }

// Vector is an IfcVector: a direction plus a magnitude in project length units.
type Vector struct {
	ID          ID
	Orientation *Direction
	Magnitude   float64
}

func (v *Vector) EntityID() ID { return v.ID }

// Line is an IfcLine.
type Line struct {
	ID  ID
	Pnt *CartesianPoint
	Dir *Vector
}

func (l *Line) EntityID() ID { return l.ID }
