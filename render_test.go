package easel

import (
	"fmt"
	"image"
	"testing"

	"github.com/tdewolff/test"
)

func TestRenderEmptyScopes(t *testing.T) {
	test.T(t, Render(Empty()), Commands{SaveCommand{}, RestoreCommand{}})
	test.T(t, Render(ClearScreen()), Commands{SaveCommand{}, ClearScreenCommand{}, RestoreCommand{}})
	test.T(t, Render(Clear(Pt(1.0, 2.0), 3.0, 4.0)), Commands{
		SaveCommand{},
		ClearRectCommand{1.0, 2.0, 3.0, 4.0},
		RestoreCommand{},
	})
}

func TestRenderSaveRestoreBalance(t *testing.T) {
	rs := []Renderable{
		Shapes(nil, Circle{Pt(0.0, 0.0), 1.0}),
		Group(nil,
			Group([]Setting{WithFill(Red)},
				Empty(),
				ClearScreen(),
				Group(nil, Text(nil, Pt(1.0, 1.0), "a")),
			),
			Shapes([]Setting{WithStroke(Blue)}, Rect{Pt(0.0, 0.0), 2.0, 2.0}),
		),
		Empty(),
	}
	depth, saves, restores := 0, 0, 0
	for _, c := range Render(rs...) {
		switch c.(type) {
		case SaveCommand:
			depth++
			saves++
		case RestoreCommand:
			depth--
			restores++
		}
		test.That(t, 0 <= depth, "restore before save")
	}
	test.T(t, depth, 0)
	test.T(t, saves, restores)
	test.T(t, saves, 9) // one bracket per renderable, nested included
}

func TestRenderSiblingOrder(t *testing.T) {
	a := Shapes([]Setting{WithFill(Red)}, Circle{Pt(0.0, 0.0), 1.0})
	b := Text([]Setting{WithStroke(Blue)}, Pt(5.0, 5.0), "b")
	want := append(Render(a), Render(b)...)
	test.T(t, Render(a, b), want)
}

func TestRenderRawCommandsBeforePayload(t *testing.T) {
	r := Shapes([]Setting{
		WithCommand(FillStyleCommand{Yellow}),
		WithCommands(MoveToCommand{Pt(1.0, 1.0)}, LineToCommand{Pt(2.0, 2.0)}),
	}, Circle{Pt(0.0, 0.0), 1.0})
	cs := Render(r)
	test.T(t, cs[0], Command(SaveCommand{}))
	test.T(t, cs[1], Command(FillStyleCommand{Yellow}))
	test.T(t, cs[2], Command(MoveToCommand{Pt(1.0, 1.0)}))
	test.T(t, cs[3], Command(LineToCommand{Pt(2.0, 2.0)}))
	test.T(t, cs[4], Command(BeginPathCommand{}))
}

func TestRenderShapePaint(t *testing.T) {
	shape := Circle{Pt(0.0, 0.0), 1.0}
	tail := func(cs Commands) Commands {
		// strip bracket, beginPath and the circle's two commands
		return cs[4 : len(cs)-1]
	}

	var tests = []struct {
		settings []Setting
		want     Commands
	}{
		{nil, Commands{FillCommand{NonZero}, StrokeCommand{}}},
		{[]Setting{WithFill(Red)}, Commands{FillStyleCommand{Red}, FillCommand{NonZero}}},
		{[]Setting{WithStroke(Blue)}, Commands{StrokeStyleCommand{Blue}, StrokeCommand{}}},
		{[]Setting{WithFill(Red), WithStroke(Blue)}, Commands{
			FillStyleCommand{Red}, FillCommand{NonZero},
			StrokeStyleCommand{Blue}, StrokeCommand{},
		}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, tail(Render(Shapes(tt.settings, shape))), tt.want)
		})
	}
}

func TestRenderTextPaint(t *testing.T) {
	at := Pt(10.0, 20.0)
	fill := FillTextCommand{"hi", at, 0.0}
	stroke := StrokeTextCommand{"hi", at, 0.0}

	var tests = []struct {
		settings []Setting
		want     Commands
	}{
		// no draw op paints both channels with the backend's ambient styles
		{nil, Commands{SaveCommand{}, fill, stroke, RestoreCommand{}}},
		{[]Setting{WithFill(Red)}, Commands{SaveCommand{}, FillStyleCommand{Red}, fill, RestoreCommand{}}},
		{[]Setting{WithStroke(Blue)}, Commands{SaveCommand{}, StrokeStyleCommand{Blue}, stroke, RestoreCommand{}}},
		{[]Setting{WithFill(Red), WithStroke(Blue)}, Commands{
			SaveCommand{},
			FillStyleCommand{Red}, fill,
			StrokeStyleCommand{Blue}, stroke,
			RestoreCommand{},
		}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Render(Text(tt.settings, at, "hi")), tt.want)
		})
	}
}

func TestRenderTextMaxWidth(t *testing.T) {
	r := Text([]Setting{WithMaxWidth(25.0), WithFill(Red)}, Pt(1.0, 2.0), "clamped")
	test.T(t, Render(r), Commands{
		SaveCommand{},
		FillStyleCommand{Red},
		FillTextCommand{"clamped", Pt(1.0, 2.0), 25.0},
		RestoreCommand{},
	})
}

func TestRenderGroupInheritance(t *testing.T) {
	group := Group([]Setting{WithFill(Red)},
		Shapes(nil, Circle{Pt(0.0, 0.0), 1.0}),
	)
	test.T(t, Render(group), Commands{
		SaveCommand{},
		FillStyleCommand{Red}, // group sets the channel once, ahead of children
		SaveCommand{},
		BeginPathCommand{},
		ArcCommand{Pt(0.0, 0.0), 1.0, 0.0, 6.283185307179586, false},
		MoveToCommand{Pt(1.0, 0.0)},
		FillStyleCommand{Red},
		FillCommand{NonZero},
		RestoreCommand{},
		RestoreCommand{},
	})
}

func TestRenderGroupChildOverride(t *testing.T) {
	// child stroke merges with the group fill into fill-and-stroke
	group := Group([]Setting{WithFill(Red)},
		Shapes([]Setting{WithStroke(Blue)}, Circle{Pt(0.0, 0.0), 1.0}),
	)
	cs := Render(group)
	test.T(t, cs[len(cs)-6:len(cs)-2], Commands{
		FillStyleCommand{Red}, FillCommand{NonZero},
		StrokeStyleCommand{Blue}, StrokeCommand{},
	})
}

func TestRenderGroupBothChannels(t *testing.T) {
	group := Group([]Setting{WithFill(Red), WithStroke(Blue)}, Empty())
	test.T(t, Render(group), Commands{
		SaveCommand{},
		FillStyleCommand{Red},
		StrokeStyleCommand{Blue},
		SaveCommand{},
		RestoreCommand{},
		RestoreCommand{},
	})
}

func TestRenderNestedGroupAmbient(t *testing.T) {
	// the inner group's ambient is the outer group's effective op
	group := Group([]Setting{WithFill(Red)},
		Group([]Setting{WithStroke(Blue)},
			Shapes(nil, Circle{Pt(0.0, 0.0), 1.0}),
		),
	)
	cs := Render(group)
	test.T(t, cs[1], Command(FillStyleCommand{Red}))
	test.T(t, cs[3], Command(FillStyleCommand{Red}))
	test.T(t, cs[4], Command(StrokeStyleCommand{Blue}))
	test.T(t, cs[len(cs)-7:len(cs)-3], Commands{
		FillStyleCommand{Red}, FillCommand{NonZero},
		StrokeStyleCommand{Blue}, StrokeCommand{},
	})
}

func TestRenderTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	whole := FromImage(img)

	test.T(t, Render(TextureAt(nil, Pt(2.0, 3.0), whole)), Commands{
		SaveCommand{},
		DrawImageCommand{0.0, 0.0, 8.0, 4.0, 2.0, 3.0, 8.0, 4.0, img},
		RestoreCommand{},
	})

	sprite := whole.Sprite(1.0, 2.0, 3.0, 2.0)
	test.T(t, Render(TextureAt(nil, Pt(5.0, 5.0), sprite)), Commands{
		SaveCommand{},
		DrawImageCommand{1.0, 2.0, 3.0, 2.0, 5.0, 5.0, 3.0, 2.0, img},
		RestoreCommand{},
	})

	// absent texture draws nothing but keeps the bracket
	test.T(t, Render(TextureAt(nil, Pt(0.0, 0.0), nil)), Commands{SaveCommand{}, RestoreCommand{}})
}

func TestRenderSpriteOfSprite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	inner := FromImage(img).Sprite(4.0, 4.0, 8.0, 8.0).Sprite(2.0, 1.0, 4.0, 4.0)
	cs := Render(TextureAt(nil, Pt(0.0, 0.0), inner))
	test.T(t, cs[1], Command(DrawImageCommand{6.0, 5.0, 4.0, 4.0, 0.0, 0.0, 4.0, 4.0, img}))
}
