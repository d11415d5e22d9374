package canvasjs

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/easelkit/easel"
	"github.com/pkg/browser"
)

// WriteHTML compiles the renderables and writes a standalone HTML page with
// a canvas element of the given size in world units and the drawing script.
// Referenced textures are embedded as PNG data URIs and decoded before the
// script runs.
func WriteHTML(dst io.Writer, width, height float64, opts *Options, renderables ...easel.Renderable) error {
	script := &bytes.Buffer{}
	w := New(script, opts)
	easel.Render(renderables...).Replay(w)
	if err := w.Flush(); err != nil {
		return err
	}

	pw := int(math.Round(width * w.opts.PixelRatio))
	ph := int(math.Round(height * w.opts.PixelRatio))
	if _, err := fmt.Fprintf(dst, "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head><body>\n"+
		"<canvas id=\"easel\" width=\"%d\" height=\"%d\"></canvas>\n<script>\n"+
		"const %s = document.getElementById('easel').getContext('2d');\n"+
		"const images = [\n", pw, ph, w.opts.Context); err != nil {
		return err
	}
	for _, img := range w.Images() {
		buf := &bytes.Buffer{}
		if err := png.Encode(buf, img); err != nil {
			return err
		}
		if _, err := io.WriteString(dst, "'data:image/png;base64,"); err != nil {
			return err
		}
		b64 := base64.NewEncoder(base64.StdEncoding, dst)
		if _, err := b64.Write(buf.Bytes()); err != nil {
			return err
		}
		if err := b64.Close(); err != nil {
			return err
		}
		if _, err := io.WriteString(dst, "',\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(dst, "].map(src => { const img = new Image(); img.src = src; return img; });\n"+
		"Promise.all(images.map(img => img.decode())).then(draw);\n"+
		"function draw() {\n"); err != nil {
		return err
	}
	if _, err := dst.Write(script.Bytes()); err != nil {
		return err
	}
	_, err := io.WriteString(dst, "}\n</script>\n</body></html>\n")
	return err
}

// Preview compiles the renderables into a temporary HTML page and opens it
// in the default browser.
func Preview(width, height float64, renderables ...easel.Renderable) error {
	f, err := os.CreateTemp("", "easel-*.html")
	if err != nil {
		return err
	}
	if err := WriteHTML(f, width, height, nil, renderables...); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return browser.OpenFile(f.Name())
}
