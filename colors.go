package easel

import (
	"encoding/hex"
	"fmt"
	"image/color"
)

// RGB returns an opaque color given by red, green, and blue in [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA returns a color given by red, green, and blue in [0,255] (not alpha
// premultiplied) and alpha in [0,1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		uint8(a * float64(r)),
		uint8(a * float64(g)),
		uint8(a * float64(b)),
		uint8(a * 255.0),
	}
}

// Hex parses a CSS hexadecimal color such as #ff0000, #f00a or ff0000. It
// returns Transparent when s is not a valid hexadecimal color.
func Hex(s string) color.RGBA {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range s {
		if '0' <= c && c <= '9' {
			h[i] = uint8(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + uint8(c-'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + uint8(c-'A')
		} else {
			return Transparent
		}
	}
	switch len(s) {
	case 3:
		return color.RGBA{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}
	case 4:
		a := float64(h[3]*16+h[3]) / 255.0
		return color.RGBA{
			uint8(a * float64(h[0]*16+h[0])),
			uint8(a * float64(h[1]*16+h[1])),
			uint8(a * float64(h[2]*16+h[2])),
			h[3]*16 + h[3],
		}
	case 6:
		return color.RGBA{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}
	case 8:
		a := float64(h[6]*16+h[7]) / 255.0
		return color.RGBA{
			uint8(a * float64(h[0]*16+h[1])),
			uint8(a * float64(h[2]*16+h[3])),
			uint8(a * float64(h[4]*16+h[5])),
			h[6]*16 + h[7],
		}
	}
	return Transparent
}

// CSSColor returns the CSS serialization of a color: #rrggbb for opaque
// colors and rgba(r,g,b,a) otherwise.
func CSSColor(c color.RGBA) string {
	if c.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{c.R, c.G, c.B})
		return string(buf)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", c.R, c.G, c.B, float64(c.A)/255.0)
}

var (
	Transparent = color.RGBA{0, 0, 0, 0}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Gray        = color.RGBA{128, 128, 128, 255}
	Red         = color.RGBA{255, 0, 0, 255}
	Green       = color.RGBA{0, 128, 0, 255}
	Lime        = color.RGBA{0, 255, 0, 255}
	Blue        = color.RGBA{0, 0, 255, 255}
	Yellow      = color.RGBA{255, 255, 0, 255}
	Magenta     = color.RGBA{255, 0, 255, 255}
	Cyan        = color.RGBA{0, 255, 255, 255}
	Orange      = color.RGBA{255, 165, 0, 255}
	Purple      = color.RGBA{128, 0, 128, 255}
)
