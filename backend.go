package easel

import (
	"image"
	"image/color"
)

// Backend is the sequential command executor that a compiled command stream
// is replayed onto. A backend is a stateful stack machine: Save and Restore
// bracket changes to its style registers, and path commands operate on an
// implicit path cursor carried by the backend itself.
//
// The core never executes commands; it only produces them. Coordinates are
// in world units and the backend applies any unit-to-pixel conversion.
type Backend interface {
	// State
	Save()
	Restore()

	// Path construction
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)
	Arc(cx, cy, r, start, end float64, anticlockwise bool)
	ArcTo(x1, y1, x2, y2, r float64)
	BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64)
	QuadraticCurveTo(cpx, cpy, x, y float64)

	// Painting
	Fill(rule FillRule)
	Stroke()
	FillStyle(c color.RGBA)
	StrokeStyle(c color.RGBA)

	// Text, images and clearing
	FillText(text string, x, y, maxWidth float64)
	StrokeText(text string, x, y, maxWidth float64)
	DrawImage(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64)
	ClearRect(x, y, w, h float64)
	ClearScreen()
}
