package easel

import (
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestRGB(t *testing.T) {
	test.T(t, RGB(255, 0, 0), Red)
	test.T(t, RGBA(255, 0, 0, 1.0), Red)
	test.T(t, RGBA(255, 255, 255, 0.5), color.RGBA{127, 127, 127, 127})
}

func TestHex(t *testing.T) {
	test.T(t, Hex("#ff0000"), Red)
	test.T(t, Hex("ff0000"), Red)
	test.T(t, Hex("#f00"), Red)
	test.T(t, Hex("#ff000080"), color.RGBA{128, 0, 0, 128})
	test.T(t, Hex("not-a-color"), Transparent)
	test.T(t, Hex("#f00f"), Red) // #rgba form
	test.T(t, Hex("#ff00"), Transparent)
	test.T(t, Hex(""), Transparent)
}

func TestCSSColor(t *testing.T) {
	test.T(t, CSSColor(Red), "#ff0000")
	test.T(t, CSSColor(color.RGBA{0, 128, 0, 255}), "#008000")
	test.T(t, CSSColor(color.RGBA{255, 0, 0, 128}), "rgba(255,0,0,0.5019607843137255)")
	test.T(t, CSSColor(Transparent), "rgba(0,0,0,0)")
}
