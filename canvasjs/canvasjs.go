// Package canvasjs serializes a compiled command stream to canvas-2D
// JavaScript statements, for execution against a CanvasRenderingContext2D in
// a browser. It implements easel.Backend: replaying a command stream onto a
// Writer produces one statement per command.
package canvasjs

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/easelkit/easel"
	"github.com/tdewolff/minify/v2"
)

// Options configures script output.
type Options struct {
	// PixelRatio converts world units to device pixels; applied to all
	// coordinates and sizes, but not to angles or image source rectangles.
	PixelRatio float64
	// Precision is the number of significant digits for numbers.
	Precision int
	// Context is the JavaScript variable holding the 2D context.
	Context string
}

// DefaultOptions are used where an option is left zero.
var DefaultOptions = Options{
	PixelRatio: 1.0,
	Precision:  6,
	Context:    "ctx",
}

// Writer emits canvas-2D JavaScript statements. It implements easel.Backend.
type Writer struct {
	w      *bufio.Writer
	opts   Options
	images []image.Image
}

// New returns a Writer emitting statements to w. A nil opts uses
// DefaultOptions; zero fields fall back to their defaults.
func New(w io.Writer, opts *Options) *Writer {
	o := DefaultOptions
	if opts != nil {
		if opts.PixelRatio > 0.0 {
			o.PixelRatio = opts.PixelRatio
		}
		if opts.Precision > 0 {
			o.Precision = opts.Precision
		}
		if opts.Context != "" {
			o.Context = opts.Context
		}
	}
	return &Writer{w: bufio.NewWriter(w), opts: o}
}

// Write compiles the renderables and writes the resulting script to dst.
func Write(dst io.Writer, opts *Options, renderables ...easel.Renderable) error {
	w := New(dst, opts)
	easel.Render(renderables...).Replay(w)
	return w.Flush()
}

// Flush writes any buffered statements and returns the first write error.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Images returns the backing images referenced by emitted drawImage
// statements, in order of first use. The script refers to them as
// images[0], images[1], and so on; the caller provides that array.
func (w *Writer) Images() []image.Image {
	return w.images
}

// num formats a number with the configured precision.
func (w *Writer) num(f float64) string {
	s := fmt.Sprintf("%.*g", w.opts.Precision, f)
	return string(minify.Number([]byte(s), w.opts.Precision))
}

// px formats a world-unit coordinate in device pixels.
func (w *Writer) px(f float64) string {
	return w.num(f * w.opts.PixelRatio)
}

func (w *Writer) stmt(format string, args ...interface{}) {
	w.w.WriteString(w.opts.Context)
	w.w.WriteByte('.')
	fmt.Fprintf(w.w, format, args...)
	w.w.WriteString(";\n")
}

func (w *Writer) imageIndex(img image.Image) int {
	for i, known := range w.images {
		if known == img {
			return i
		}
	}
	w.images = append(w.images, img)
	return len(w.images) - 1
}

// Save implements easel.Backend.
func (w *Writer) Save() { w.stmt("save()") }

// Restore implements easel.Backend.
func (w *Writer) Restore() { w.stmt("restore()") }

// BeginPath implements easel.Backend.
func (w *Writer) BeginPath() { w.stmt("beginPath()") }

// MoveTo implements easel.Backend.
func (w *Writer) MoveTo(x, y float64) {
	w.stmt("moveTo(%s,%s)", w.px(x), w.px(y))
}

// LineTo implements easel.Backend.
func (w *Writer) LineTo(x, y float64) {
	w.stmt("lineTo(%s,%s)", w.px(x), w.px(y))
}

// Rect implements easel.Backend.
func (w *Writer) Rect(x, y, width, height float64) {
	w.stmt("rect(%s,%s,%s,%s)", w.px(x), w.px(y), w.px(width), w.px(height))
}

// Arc implements easel.Backend. Angles are radians and are not scaled.
func (w *Writer) Arc(cx, cy, r, start, end float64, anticlockwise bool) {
	w.stmt("arc(%s,%s,%s,%s,%s,%t)", w.px(cx), w.px(cy), w.px(r), w.num(start), w.num(end), anticlockwise)
}

// ArcTo implements easel.Backend.
func (w *Writer) ArcTo(x1, y1, x2, y2, r float64) {
	w.stmt("arcTo(%s,%s,%s,%s,%s)", w.px(x1), w.px(y1), w.px(x2), w.px(y2), w.px(r))
}

// BezierCurveTo implements easel.Backend.
func (w *Writer) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	w.stmt("bezierCurveTo(%s,%s,%s,%s,%s,%s)", w.px(cp1x), w.px(cp1y), w.px(cp2x), w.px(cp2y), w.px(x), w.px(y))
}

// QuadraticCurveTo implements easel.Backend.
func (w *Writer) QuadraticCurveTo(cpx, cpy, x, y float64) {
	w.stmt("quadraticCurveTo(%s,%s,%s,%s)", w.px(cpx), w.px(cpy), w.px(x), w.px(y))
}

// Fill implements easel.Backend.
func (w *Writer) Fill(rule easel.FillRule) {
	if rule == easel.EvenOdd {
		w.stmt("fill('evenodd')")
		return
	}
	w.stmt("fill()")
}

// Stroke implements easel.Backend.
func (w *Writer) Stroke() { w.stmt("stroke()") }

// FillStyle implements easel.Backend.
func (w *Writer) FillStyle(c color.RGBA) {
	w.stmt("fillStyle = '%s'", easel.CSSColor(c))
}

// StrokeStyle implements easel.Backend.
func (w *Writer) StrokeStyle(c color.RGBA) {
	w.stmt("strokeStyle = '%s'", easel.CSSColor(c))
}

// FillText implements easel.Backend.
func (w *Writer) FillText(text string, x, y, maxWidth float64) {
	if maxWidth > 0.0 {
		w.stmt("fillText(%s,%s,%s,%s)", strconv.Quote(text), w.px(x), w.px(y), w.px(maxWidth))
		return
	}
	w.stmt("fillText(%s,%s,%s)", strconv.Quote(text), w.px(x), w.px(y))
}

// StrokeText implements easel.Backend.
func (w *Writer) StrokeText(text string, x, y, maxWidth float64) {
	if maxWidth > 0.0 {
		w.stmt("strokeText(%s,%s,%s,%s)", strconv.Quote(text), w.px(x), w.px(y), w.px(maxWidth))
		return
	}
	w.stmt("strokeText(%s,%s,%s)", strconv.Quote(text), w.px(x), w.px(y))
}

// DrawImage implements easel.Backend. The source rectangle stays in image
// pixel coordinates; only the destination is scaled.
func (w *Writer) DrawImage(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	i := w.imageIndex(img)
	w.stmt("drawImage(images[%d],%s,%s,%s,%s,%s,%s,%s,%s)", i,
		w.num(sx), w.num(sy), w.num(sw), w.num(sh),
		w.px(dx), w.px(dy), w.px(dw), w.px(dh))
}

// ClearRect implements easel.Backend.
func (w *Writer) ClearRect(x, y, width, height float64) {
	w.stmt("clearRect(%s,%s,%s,%s)", w.px(x), w.px(y), w.px(width), w.px(height))
}

// ClearScreen implements easel.Backend. The surface size is read from the
// context's own canvas.
func (w *Writer) ClearScreen() {
	ctx := w.opts.Context
	w.stmt("clearRect(0,0,%s.canvas.width,%s.canvas.height)", ctx, ctx)
}
