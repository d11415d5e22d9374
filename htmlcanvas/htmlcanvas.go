//go:build js

// Package htmlcanvas executes a compiled command stream directly against a
// browser CanvasRenderingContext2D through syscall/js.
package htmlcanvas

import (
	"image"
	"image/color"
	"syscall/js"

	"github.com/easelkit/easel"
)

// Canvas wraps an HTML canvas element's 2D context. It implements
// easel.Backend, converting world units to device pixels at execution time.
type Canvas struct {
	ctx           js.Value
	width, height float64
	pixelRatio    float64
	bitmaps       map[image.Image]js.Value
}

// New sizes the given canvas element to width by height world units at the
// given pixel ratio and returns a backend drawing to it.
func New(canvas js.Value, width, height, pixelRatio float64) *Canvas {
	canvas.Set("width", width*pixelRatio)
	canvas.Set("height", height*pixelRatio)
	ctx := canvas.Call("getContext", "2d")
	return &Canvas{
		ctx:        ctx,
		width:      width * pixelRatio,
		height:     height * pixelRatio,
		pixelRatio: pixelRatio,
		bitmaps:    map[image.Image]js.Value{},
	}
}

// Render compiles the renderables and executes the command stream.
func (c *Canvas) Render(renderables ...easel.Renderable) {
	easel.Render(renderables...).Replay(c)
}

// Size returns the surface size in world units.
func (c *Canvas) Size() (float64, float64) {
	return c.width / c.pixelRatio, c.height / c.pixelRatio
}

// Save implements easel.Backend.
func (c *Canvas) Save() { c.ctx.Call("save") }

// Restore implements easel.Backend.
func (c *Canvas) Restore() { c.ctx.Call("restore") }

// BeginPath implements easel.Backend.
func (c *Canvas) BeginPath() { c.ctx.Call("beginPath") }

// MoveTo implements easel.Backend.
func (c *Canvas) MoveTo(x, y float64) {
	c.ctx.Call("moveTo", x*c.pixelRatio, y*c.pixelRatio)
}

// LineTo implements easel.Backend.
func (c *Canvas) LineTo(x, y float64) {
	c.ctx.Call("lineTo", x*c.pixelRatio, y*c.pixelRatio)
}

// Rect implements easel.Backend.
func (c *Canvas) Rect(x, y, w, h float64) {
	c.ctx.Call("rect", x*c.pixelRatio, y*c.pixelRatio, w*c.pixelRatio, h*c.pixelRatio)
}

// Arc implements easel.Backend.
func (c *Canvas) Arc(cx, cy, r, start, end float64, anticlockwise bool) {
	c.ctx.Call("arc", cx*c.pixelRatio, cy*c.pixelRatio, r*c.pixelRatio, start, end, anticlockwise)
}

// ArcTo implements easel.Backend.
func (c *Canvas) ArcTo(x1, y1, x2, y2, r float64) {
	c.ctx.Call("arcTo", x1*c.pixelRatio, y1*c.pixelRatio, x2*c.pixelRatio, y2*c.pixelRatio, r*c.pixelRatio)
}

// BezierCurveTo implements easel.Backend.
func (c *Canvas) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.ctx.Call("bezierCurveTo",
		cp1x*c.pixelRatio, cp1y*c.pixelRatio,
		cp2x*c.pixelRatio, cp2y*c.pixelRatio,
		x*c.pixelRatio, y*c.pixelRatio)
}

// QuadraticCurveTo implements easel.Backend.
func (c *Canvas) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.ctx.Call("quadraticCurveTo", cpx*c.pixelRatio, cpy*c.pixelRatio, x*c.pixelRatio, y*c.pixelRatio)
}

// Fill implements easel.Backend.
func (c *Canvas) Fill(rule easel.FillRule) {
	if rule == easel.EvenOdd {
		c.ctx.Call("fill", "evenodd")
		return
	}
	c.ctx.Call("fill")
}

// Stroke implements easel.Backend.
func (c *Canvas) Stroke() { c.ctx.Call("stroke") }

// FillStyle implements easel.Backend.
func (c *Canvas) FillStyle(col color.RGBA) {
	c.ctx.Set("fillStyle", easel.CSSColor(col))
}

// StrokeStyle implements easel.Backend.
func (c *Canvas) StrokeStyle(col color.RGBA) {
	c.ctx.Set("strokeStyle", easel.CSSColor(col))
}

// FillText implements easel.Backend.
func (c *Canvas) FillText(text string, x, y, maxWidth float64) {
	if maxWidth > 0.0 {
		c.ctx.Call("fillText", text, x*c.pixelRatio, y*c.pixelRatio, maxWidth*c.pixelRatio)
		return
	}
	c.ctx.Call("fillText", text, x*c.pixelRatio, y*c.pixelRatio)
}

// StrokeText implements easel.Backend.
func (c *Canvas) StrokeText(text string, x, y, maxWidth float64) {
	if maxWidth > 0.0 {
		c.ctx.Call("strokeText", text, x*c.pixelRatio, y*c.pixelRatio, maxWidth*c.pixelRatio)
		return
	}
	c.ctx.Call("strokeText", text, x*c.pixelRatio, y*c.pixelRatio)
}

// DrawImage implements easel.Backend. The image is copied into an
// ImageBitmap once and cached for subsequent draws.
func (c *Canvas) DrawImage(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	bitmap, ok := c.bitmaps[img]
	if !ok {
		bitmap, ok = makeImageBitmap(img)
		if !ok {
			return
		}
		c.bitmaps[img] = bitmap
	}
	c.ctx.Call("drawImage", bitmap, sx, sy, sw, sh,
		dx*c.pixelRatio, dy*c.pixelRatio, dw*c.pixelRatio, dh*c.pixelRatio)
}

// ClearRect implements easel.Backend.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.ctx.Call("clearRect", x*c.pixelRatio, y*c.pixelRatio, w*c.pixelRatio, h*c.pixelRatio)
}

// ClearScreen implements easel.Backend.
func (c *Canvas) ClearScreen() {
	c.ctx.Call("clearRect", 0, 0, c.width, c.height)
}

// makeImageBitmap copies img into a browser ImageBitmap.
func makeImageBitmap(img image.Image) (js.Value, bool) {
	size := img.Bounds().Size()
	buf := make([]byte, 4*size.X*size.Y)
	i := 0
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			r, g, b, a := img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).RGBA()
			if a != 0 {
				// un-premultiply for ImageData
				buf[i+0] = byte((r * 0xff) / a)
				buf[i+1] = byte((g * 0xff) / a)
				buf[i+2] = byte((b * 0xff) / a)
				buf[i+3] = byte(a >> 8)
			}
			i += 4
		}
	}
	jsBuf := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(jsBuf, buf)
	jsBufClamped := js.Global().Get("Uint8ClampedArray").New(jsBuf)
	imageData := js.Global().Get("ImageData").New(jsBufClamped, size.X, size.Y)
	return jsAwait(js.Global().Call("createImageBitmap", imageData))
}

// jsAwait blocks until the promise v resolves or rejects.
func jsAwait(v js.Value) (result js.Value, ok bool) {
	if v.Type() != js.TypeObject || v.Get("then").Type() != js.TypeFunction {
		return v, true
	}

	done := make(chan struct{})

	onResolve := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		result = args[0]
		ok = true
		close(done)
		return nil
	})
	defer onResolve.Release()

	onReject := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		result = args[0]
		ok = false
		close(done)
		return nil
	})
	defer onReject.Release()

	v.Call("then", onResolve, onReject)
	<-done
	return
}
