package easel

import "image"

// Texture is a draw source: a whole decoded image, or a sprite viewing a
// sub-rectangle of one. The backing image is opaque to the core; only the
// dimensions and the sub-rectangle origin are consumed when compiling a
// drawImage command. A nil *Texture means "no texture available" and draws
// nothing.
type Texture struct {
	img    image.Image
	w, h   float64
	sx, sy float64
}

// FromImage returns a texture covering the whole image. It returns nil for a
// nil image.
func FromImage(img image.Image) *Texture {
	if img == nil {
		return nil
	}
	size := img.Bounds().Size()
	return &Texture{
		img: img,
		w:   float64(size.X),
		h:   float64(size.Y),
	}
}

// Sprite derives a sub-texture of width w and height h whose top-left corner
// is at (x,y) within t. Derivation is pure: no pixels are copied. Sprites of
// sprites compose; a nil texture yields nil.
func (t *Texture) Sprite(x, y, w, h float64) *Texture {
	if t == nil {
		return nil
	}
	return &Texture{
		img: t.img,
		w:   w,
		h:   h,
		sx:  t.sx + x,
		sy:  t.sy + y,
	}
}

// Size returns the texture's width and height in world units.
func (t *Texture) Size() (float64, float64) {
	if t == nil {
		return 0.0, 0.0
	}
	return t.w, t.h
}

// Image returns the backing image handle.
func (t *Texture) Image() image.Image {
	if t == nil {
		return nil
	}
	return t.img
}
