package easel

import "math"

// Shape is a drawable geometric primitive. Shapes compiled into one path
// group are independent: each shape repositions the path cursor so that
// consecutive shapes do not visually connect.
type Shape interface {
	// emit appends the shape's primitive commands to the stream.
	emit(cs Commands) Commands
}

// Rect is an axis-aligned rectangle given by its center and dimensions.
type Rect struct {
	Center Point
	W, H   float64
}

func (r Rect) emit(cs Commands) Commands {
	x := r.Center.X - r.W/2.0
	y := r.Center.Y - r.H/2.0
	cs = append(cs, RectCommand{x, y, r.W, r.H})
	// reposition so a following shape in the same path starts cleanly
	return append(cs, MoveToCommand{Point{x, y}})
}

// Circle is a full circle around Center with radius R.
type Circle struct {
	Center Point
	R      float64
}

func (c Circle) emit(cs Commands) Commands {
	cs = append(cs, ArcCommand{Center: c.Center, R: c.R, Start: 0.0, End: 2.0 * math.Pi})
	// mirror native arc closing: leave the cursor at the right-most point
	return append(cs, MoveToCommand{Point{c.Center.X + c.R, c.Center.Y}})
}

// Arc is a circular arc around Center with radius R, from the Start to the
// End angle in radians.
type Arc struct {
	Center        Point
	R             float64
	Start, End    float64
	Anticlockwise bool
}

func (a Arc) emit(cs Commands) Commands {
	// Place the cursor on the end point before and on the start point after
	// emitting the arc, so that neighbouring shapes in the same path group do
	// not connect to the arc.
	cs = append(cs, MoveToCommand{circlePoint(a.Center, a.R, a.End)})
	cs = append(cs, ArcCommand{a.Center, a.R, a.Start, a.End, a.Anticlockwise})
	return append(cs, MoveToCommand{circlePoint(a.Center, a.R, a.Start)})
}

// Path is a free-form path starting at Start, followed by segments that each
// consume the implicit path cursor carried by the backend.
type Path struct {
	Start    Point
	Segments []PathSegment
}

func (p Path) emit(cs Commands) Commands {
	cs = append(cs, MoveToCommand{p.Start})
	for _, seg := range p.Segments {
		cs = seg.emitSegment(cs)
	}
	return cs
}

// PathSegment is a single step of a Path. Each segment translates to exactly
// one primitive command.
type PathSegment interface {
	emitSegment(cs Commands) Commands
}

// ArcTo adds an arc with radius R using control points P1 and P2, connected
// to the current point by a straight line.
type ArcTo struct {
	P1, P2 Point
	R      float64
}

func (s ArcTo) emitSegment(cs Commands) Commands {
	return append(cs, ArcToCommand{s.P1, s.P2, s.R})
}

// BezierCurveTo adds a cubic Bézier curve to End with control points CP1 and
// CP2.
type BezierCurveTo struct {
	CP1, CP2, End Point
}

func (s BezierCurveTo) emitSegment(cs Commands) Commands {
	return append(cs, BezierCurveToCommand{s.CP1, s.CP2, s.End})
}

// LineTo adds a straight line to P.
type LineTo struct {
	P Point
}

func (s LineTo) emitSegment(cs Commands) Commands {
	return append(cs, LineToCommand{s.P})
}

// MoveTo moves the cursor to P without drawing.
type MoveTo struct {
	P Point
}

func (s MoveTo) emitSegment(cs Commands) Commands {
	return append(cs, MoveToCommand{s.P})
}

// QuadraticCurveTo adds a quadratic Bézier curve to End with control point
// CP.
type QuadraticCurveTo struct {
	CP, End Point
}

func (s QuadraticCurveTo) emitSegment(cs Commands) Commands {
	return append(cs, QuadraticCurveToCommand{s.CP, s.End})
}
