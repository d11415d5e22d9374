package easel

import "image/color"

// DrawOp is the paint intent of a renderable: which of the fill and stroke
// channels it specifies and with which colors. Ops cascade from parent
// groups into children via MergeDrawOp.
type DrawOp interface {
	drawOp()
}

// NotSpecified is the absent paint intent. Shapes and text compiled with it
// are painted with whatever styles the backend currently holds.
type NotSpecified struct{}

func (NotSpecified) drawOp() {}

// Fill paints the fill channel with Color.
type Fill struct {
	Color color.RGBA
}

func (Fill) drawOp() {}

// Stroke paints the stroke channel with Color.
type Stroke struct {
	Color color.RGBA
}

func (Stroke) drawOp() {}

// FillAndStroke paints both channels.
type FillAndStroke struct {
	Fill   color.RGBA
	Stroke color.RGBA
}

func (FillAndStroke) drawOp() {}

// MergeDrawOp combines an existing paint intent a with an incoming intent b.
// On a matching channel the incoming color wins; distinct channels combine
// into FillAndStroke; an incoming FillAndStroke wins completely; an incoming
// single channel overwrites only its channel of an existing FillAndStroke.
// NotSpecified is the identity on either side. Colors pass through unchanged.
//
// The same merge is used when folding settings onto one renderable and when
// a group's effective op is inherited by its children.
func MergeDrawOp(a, b DrawOp) DrawOp {
	switch b := b.(type) {
	case Fill:
		switch a := a.(type) {
		case Stroke:
			return FillAndStroke{Fill: b.Color, Stroke: a.Color}
		case FillAndStroke:
			return FillAndStroke{Fill: b.Color, Stroke: a.Stroke}
		}
		return b
	case Stroke:
		switch a := a.(type) {
		case Fill:
			return FillAndStroke{Fill: a.Color, Stroke: b.Color}
		case FillAndStroke:
			return FillAndStroke{Fill: a.Fill, Stroke: b.Color}
		}
		return b
	case FillAndStroke:
		return b
	}
	if a == nil {
		return NotSpecified{}
	}
	return a
}
