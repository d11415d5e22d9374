package easel

import (
	"image"
	"image/color"
)

// CommandType identifies the type of a primitive drawing command.
type CommandType uint8

const (
	// State commands
	CmdSave CommandType = iota
	CmdRestore

	// Path commands
	CmdBeginPath
	CmdMoveTo
	CmdLineTo
	CmdRect
	CmdArc
	CmdArcTo
	CmdBezierCurveTo
	CmdQuadraticCurveTo

	// Paint commands
	CmdFill
	CmdStroke
	CmdFillStyle
	CmdStrokeStyle

	// Text, image and clear commands
	CmdFillText
	CmdStrokeText
	CmdDrawImage
	CmdClearRect
	CmdClearScreen
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdSave:             "Save",
	CmdRestore:          "Restore",
	CmdBeginPath:        "BeginPath",
	CmdMoveTo:           "MoveTo",
	CmdLineTo:           "LineTo",
	CmdRect:             "Rect",
	CmdArc:              "Arc",
	CmdArcTo:            "ArcTo",
	CmdBezierCurveTo:    "BezierCurveTo",
	CmdQuadraticCurveTo: "QuadraticCurveTo",
	CmdFill:             "Fill",
	CmdStroke:           "Stroke",
	CmdFillStyle:        "FillStyle",
	CmdStrokeStyle:      "StrokeStyle",
	CmdFillText:         "FillText",
	CmdStrokeText:       "StrokeText",
	CmdDrawImage:        "DrawImage",
	CmdClearRect:        "ClearRect",
	CmdClearScreen:      "ClearScreen",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a single primitive drawing operation. The set of commands is
// closed: it enumerates exactly the operations of the Backend contract, so a
// compiled stream is statically checkable.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// NonZero uses the non-zero winding rule.
	NonZero FillRule = iota
	// EvenOdd uses the even-odd rule.
	EvenOdd
)

// String returns the canvas-2D name of the fill rule.
func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// SaveCommand saves the current backend state (styles, transform, clip).
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved backend state.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// BeginPathCommand starts a new path, discarding any current subpaths.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand moves the path cursor to P without drawing.
type MoveToCommand struct {
	P Point
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand draws a straight line from the current point to P.
type LineToCommand struct {
	P Point
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// RectCommand adds an axis-aligned rectangle subpath with top-left corner
// (X,Y).
type RectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (RectCommand) Type() CommandType { return CmdRect }

// ArcCommand adds a circular arc around Center with radius R, running from
// the Start to the End angle in radians.
type ArcCommand struct {
	Center        Point
	R             float64
	Start, End    float64
	Anticlockwise bool
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// ArcToCommand adds an arc with radius R using the two control points P1 and
// P2, connected to the current point by a straight line.
type ArcToCommand struct {
	P1, P2 Point
	R      float64
}

// Type implements Command.
func (ArcToCommand) Type() CommandType { return CmdArcTo }

// BezierCurveToCommand adds a cubic Bézier curve to End using control points
// CP1 and CP2.
type BezierCurveToCommand struct {
	CP1, CP2, End Point
}

// Type implements Command.
func (BezierCurveToCommand) Type() CommandType { return CmdBezierCurveTo }

// QuadraticCurveToCommand adds a quadratic Bézier curve to End using control
// point CP.
type QuadraticCurveToCommand struct {
	CP, End Point
}

// Type implements Command.
func (QuadraticCurveToCommand) Type() CommandType { return CmdQuadraticCurveTo }

// FillCommand fills the current path using the backend's current fill style.
type FillCommand struct {
	Rule FillRule
}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

// StrokeCommand strokes the current path using the backend's current stroke
// style.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

// FillStyleCommand sets the backend's fill color.
type FillStyleCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (FillStyleCommand) Type() CommandType { return CmdFillStyle }

// StrokeStyleCommand sets the backend's stroke color.
type StrokeStyleCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (StrokeStyleCommand) Type() CommandType { return CmdStrokeStyle }

// FillTextCommand fills Text at anchor point P. A MaxWidth of zero or less
// means no clamping.
type FillTextCommand struct {
	Text     string
	P        Point
	MaxWidth float64
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

// StrokeTextCommand strokes Text at anchor point P. A MaxWidth of zero or
// less means no clamping.
type StrokeTextCommand struct {
	Text     string
	P        Point
	MaxWidth float64
}

// Type implements Command.
func (StrokeTextCommand) Type() CommandType { return CmdStrokeText }

// DrawImageCommand draws the source rectangle (SX,SY,SW,SH) of Image into
// the destination rectangle (DX,DY,DW,DH).
type DrawImageCommand struct {
	SX, SY, SW, SH float64
	DX, DY, DW, DH float64
	Image          image.Image
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

// ClearRectCommand clears the rectangle with top-left corner (X,Y) to
// transparent.
type ClearRectCommand struct {
	X, Y, W, H float64
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// ClearScreenCommand clears the entire surface. The surface size is owned by
// the backend, not by the command.
type ClearScreenCommand struct{}

// Type implements Command.
func (ClearScreenCommand) Type() CommandType { return CmdClearScreen }

// Commands is an ordered, append-only stream of primitive drawing commands,
// the compilation target of Render. Order is load-bearing: backends are
// stateful stack machines and replay commands strictly in sequence.
type Commands []Command

// Replay executes the command stream in order against a backend.
func (cs Commands) Replay(b Backend) {
	for _, c := range cs {
		switch c := c.(type) {
		case SaveCommand:
			b.Save()
		case RestoreCommand:
			b.Restore()
		case BeginPathCommand:
			b.BeginPath()
		case MoveToCommand:
			b.MoveTo(c.P.X, c.P.Y)
		case LineToCommand:
			b.LineTo(c.P.X, c.P.Y)
		case RectCommand:
			b.Rect(c.X, c.Y, c.W, c.H)
		case ArcCommand:
			b.Arc(c.Center.X, c.Center.Y, c.R, c.Start, c.End, c.Anticlockwise)
		case ArcToCommand:
			b.ArcTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.R)
		case BezierCurveToCommand:
			b.BezierCurveTo(c.CP1.X, c.CP1.Y, c.CP2.X, c.CP2.Y, c.End.X, c.End.Y)
		case QuadraticCurveToCommand:
			b.QuadraticCurveTo(c.CP.X, c.CP.Y, c.End.X, c.End.Y)
		case FillCommand:
			b.Fill(c.Rule)
		case StrokeCommand:
			b.Stroke()
		case FillStyleCommand:
			b.FillStyle(c.Color)
		case StrokeStyleCommand:
			b.StrokeStyle(c.Color)
		case FillTextCommand:
			b.FillText(c.Text, c.P.X, c.P.Y, c.MaxWidth)
		case StrokeTextCommand:
			b.StrokeText(c.Text, c.P.X, c.P.Y, c.MaxWidth)
		case DrawImageCommand:
			b.DrawImage(c.Image, c.SX, c.SY, c.SW, c.SH, c.DX, c.DY, c.DW, c.DH)
		case ClearRectCommand:
			b.ClearRect(c.X, c.Y, c.W, c.H)
		case ClearScreenCommand:
			b.ClearScreen()
		}
	}
}
