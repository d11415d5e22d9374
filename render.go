// Package easel is a declarative drawing API: callers describe what to draw
// as a tree of renderable values, and Render compiles the tree into a flat,
// ordered stream of primitive 2D drawing commands for a canvas-like backend
// to execute.
//
// Compilation is a pure, synchronous fold: it never fails, never blocks, and
// emits commands in exactly the traversal order of the input (list order,
// depth-first for groups).
package easel

// Render compiles a list of renderables into a command stream. Each
// renderable is bracketed by exactly one save and one restore, even when its
// payload emits nothing, so that its raw commands and styles never leak into
// siblings. Later renderables paint over earlier ones.
func Render(renderables ...Renderable) Commands {
	return renderInto(nil, renderables, NotSpecified{})
}

// renderInto folds the renderables into cs with ambient as the inherited
// paint op, recursing into groups with their effective op as the new
// ambient.
func renderInto(cs Commands, renderables []Renderable, ambient DrawOp) Commands {
	for _, r := range renderables {
		cs = append(cs, SaveCommand{})
		cs = append(cs, r.commands...)
		op := MergeDrawOp(ambient, r.op)

		switch d := r.Drawable().(type) {
		case ShapeList:
			cs = append(cs, BeginPathCommand{})
			for _, shape := range d {
				cs = shape.emit(cs)
			}
			cs = paintShapes(cs, op)
		case TextDrawable:
			cs = paintText(cs, op, d)
		case TextureDrawable:
			if d.Texture != nil {
				t := d.Texture
				cs = append(cs, DrawImageCommand{
					SX: t.sx, SY: t.sy, SW: t.w, SH: t.h,
					DX: d.At.X, DY: d.At.Y, DW: t.w, DH: t.h,
					Image: t.img,
				})
			}
		case ClearRegion:
			cs = append(cs, ClearRectCommand{d.At.X, d.At.Y, d.W, d.H})
		case ClearScreenDrawable:
			cs = append(cs, ClearScreenCommand{})
		case GroupDrawable:
			// Set each specified channel once ahead of the children, so they
			// inherit the ambient style without re-specifying it.
			switch op := op.(type) {
			case Fill:
				cs = append(cs, FillStyleCommand{op.Color})
			case Stroke:
				cs = append(cs, StrokeStyleCommand{op.Color})
			case FillAndStroke:
				cs = append(cs, FillStyleCommand{op.Fill}, StrokeStyleCommand{op.Stroke})
			}
			cs = renderInto(cs, d, op)
		}

		cs = append(cs, RestoreCommand{})
	}
	return cs
}

// paintShapes applies the effective paint op to the current path. An
// unspecified op paints both channels without setting a color, using
// whatever styles the backend currently holds.
func paintShapes(cs Commands, op DrawOp) Commands {
	switch op := op.(type) {
	case Fill:
		return append(cs, FillStyleCommand{op.Color}, FillCommand{NonZero})
	case Stroke:
		return append(cs, StrokeStyleCommand{op.Color}, StrokeCommand{})
	case FillAndStroke:
		return append(cs,
			FillStyleCommand{op.Fill}, FillCommand{NonZero},
			StrokeStyleCommand{op.Stroke}, StrokeCommand{})
	}
	return append(cs, FillCommand{NonZero}, StrokeCommand{})
}

// paintText mirrors paintShapes using the text painting primitives at the
// text's anchor point.
func paintText(cs Commands, op DrawOp, d TextDrawable) Commands {
	fill := FillTextCommand{d.Text, d.At, d.MaxWidth}
	stroke := StrokeTextCommand{d.Text, d.At, d.MaxWidth}
	switch op := op.(type) {
	case Fill:
		return append(cs, FillStyleCommand{op.Color}, fill)
	case Stroke:
		return append(cs, StrokeStyleCommand{op.Color}, stroke)
	case FillAndStroke:
		return append(cs,
			FillStyleCommand{op.Fill}, fill,
			StrokeStyleCommand{op.Stroke}, stroke)
	}
	return append(cs, fill, stroke)
}
