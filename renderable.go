package easel

import "image/color"

// Drawable is the kind-specific payload of a renderable: text, a list of
// shapes, a texture, a clearing operation, a nested group, or nothing.
type Drawable interface {
	drawable()
}

// TextDrawable renders Text at anchor point At. A MaxWidth greater than zero
// clamps the rendered width.
type TextDrawable struct {
	MaxWidth float64
	At       Point
	Text     string
}

func (TextDrawable) drawable() {}

// ShapeList renders its shapes as one path group: a single beginPath
// followed by one fill and/or stroke over all shapes.
type ShapeList []Shape

func (ShapeList) drawable() {}

// TextureDrawable renders Texture with its top-left corner at At. A nil
// texture renders nothing.
type TextureDrawable struct {
	At      Point
	Texture *Texture
}

func (TextureDrawable) drawable() {}

// ClearRegion clears the rectangle of size W by H with top-left corner At.
type ClearRegion struct {
	At   Point
	W, H float64
}

func (ClearRegion) drawable() {}

// ClearScreenDrawable clears the entire surface.
type ClearScreenDrawable struct{}

func (ClearScreenDrawable) drawable() {}

// GroupDrawable renders its children in order, passing the group's effective
// paint op down as their ambient op.
type GroupDrawable []Renderable

func (GroupDrawable) drawable() {}

// emptyDrawable renders nothing.
type emptyDrawable struct{}

func (emptyDrawable) drawable() {}

// Renderable is the atomic unit of the drawing tree: raw commands applied
// before the payload, a paint intent, and the payload itself. Renderables
// are immutable values; settings produce new values at construction time.
type Renderable struct {
	commands Commands
	op       DrawOp
	drawable Drawable
}

// DrawOp returns the renderable's own paint intent.
func (r Renderable) DrawOp() DrawOp {
	if r.op == nil {
		return NotSpecified{}
	}
	return r.op
}

// Drawable returns the renderable's payload.
func (r Renderable) Drawable() Drawable {
	if r.drawable == nil {
		return emptyDrawable{}
	}
	return r.drawable
}

// Setting is a styling directive applied once, at renderable construction
// time. Settings are applied left-to-right and are pure: each produces a new
// renderable value.
type Setting func(Renderable) Renderable

// newRenderable folds the settings over a bare renderable with payload d.
func newRenderable(d Drawable, settings []Setting) Renderable {
	r := Renderable{op: NotSpecified{}, drawable: d}
	for _, s := range settings {
		r = s(r)
	}
	return r
}

// Shapes returns a renderable drawing the given shapes as one path group.
func Shapes(settings []Setting, shapes ...Shape) Renderable {
	return newRenderable(ShapeList(shapes), settings)
}

// Text returns a renderable drawing text at anchor point at.
func Text(settings []Setting, at Point, text string) Renderable {
	return newRenderable(TextDrawable{At: at, Text: text}, settings)
}

// TextureAt returns a renderable drawing t with its top-left corner at the
// given point. A nil texture draws nothing.
func TextureAt(settings []Setting, at Point, t *Texture) Renderable {
	return newRenderable(TextureDrawable{At: at, Texture: t}, settings)
}

// Clear returns a renderable clearing a rectangle of size w by h with
// top-left corner at.
func Clear(at Point, w, h float64) Renderable {
	return newRenderable(ClearRegion{at, w, h}, nil)
}

// ClearScreen returns a renderable clearing the entire surface.
func ClearScreen() Renderable {
	return newRenderable(ClearScreenDrawable{}, nil)
}

// Group returns a renderable drawing its children in order. The group's
// effective paint op becomes the ambient op of its children; children can
// still override channels locally.
func Group(settings []Setting, children ...Renderable) Renderable {
	return newRenderable(GroupDrawable(children), settings)
}

// Empty returns a renderable that draws nothing.
func Empty() Renderable {
	return newRenderable(emptyDrawable{}, nil)
}

// WithCommand appends a raw command to the renderable. Raw commands are
// emitted after the scope opens and before the payload, so they can set up
// backend state the payload relies on.
func WithCommand(c Command) Setting {
	return func(r Renderable) Renderable {
		// full slice expression so appends never alias another renderable
		r.commands = append(r.commands[:len(r.commands):len(r.commands)], c)
		return r
	}
}

// WithCommands appends raw commands, preserving their relative order.
func WithCommands(cs ...Command) Setting {
	return func(r Renderable) Renderable {
		r.commands = append(r.commands[:len(r.commands):len(r.commands)], cs...)
		return r
	}
}

// WithDrawOp merges op into the renderable's paint intent; the incoming op
// overrides matching channels of earlier settings.
func WithDrawOp(op DrawOp) Setting {
	return func(r Renderable) Renderable {
		r.op = MergeDrawOp(r.op, op)
		return r
	}
}

// WithFill sets the fill channel to c.
func WithFill(c color.RGBA) Setting {
	return WithDrawOp(Fill{c})
}

// WithStroke sets the stroke channel to c.
func WithStroke(c color.RGBA) Setting {
	return WithDrawOp(Stroke{c})
}

// WithDrawable replaces the payload with f applied to the current payload.
func WithDrawable(f func(Drawable) Drawable) Setting {
	return func(r Renderable) Renderable {
		r.drawable = f(r.Drawable())
		return r
	}
}

// WithMaxWidth clamps the rendered width of a text payload. It has no effect
// on other payload kinds.
func WithMaxWidth(w float64) Setting {
	return WithDrawable(func(d Drawable) Drawable {
		if t, ok := d.(TextDrawable); ok {
			t.MaxWidth = w
			return t
		}
		return d
	})
}
