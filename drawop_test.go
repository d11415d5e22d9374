package easel

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestMergeDrawOpTable(t *testing.T) {
	var tests = []struct {
		a, b, want DrawOp
	}{
		{NotSpecified{}, NotSpecified{}, NotSpecified{}},
		{NotSpecified{}, Fill{Red}, Fill{Red}},
		{NotSpecified{}, Stroke{Blue}, Stroke{Blue}},
		{NotSpecified{}, FillAndStroke{Red, Blue}, FillAndStroke{Red, Blue}},

		{Fill{Red}, NotSpecified{}, Fill{Red}},
		{Fill{Red}, Fill{Green}, Fill{Green}},
		{Fill{Red}, Stroke{Blue}, FillAndStroke{Red, Blue}},
		{Fill{Red}, FillAndStroke{Green, Yellow}, FillAndStroke{Green, Yellow}},

		{Stroke{Blue}, NotSpecified{}, Stroke{Blue}},
		{Stroke{Blue}, Fill{Red}, FillAndStroke{Red, Blue}},
		{Stroke{Blue}, Stroke{Green}, Stroke{Green}},
		{Stroke{Blue}, FillAndStroke{Green, Yellow}, FillAndStroke{Green, Yellow}},

		{FillAndStroke{Red, Blue}, NotSpecified{}, FillAndStroke{Red, Blue}},
		{FillAndStroke{Red, Blue}, Fill{Green}, FillAndStroke{Green, Blue}},
		{FillAndStroke{Red, Blue}, Stroke{Green}, FillAndStroke{Red, Green}},
		{FillAndStroke{Red, Blue}, FillAndStroke{Green, Yellow}, FillAndStroke{Green, Yellow}},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, MergeDrawOp(tt.a, tt.b), tt.want)
		})
	}
}

func TestMergeDrawOpCrossChannel(t *testing.T) {
	// rules 3 and 4 take different paths but agree on the result
	test.T(t, MergeDrawOp(Fill{Red}, Stroke{Blue}), DrawOp(FillAndStroke{Red, Blue}))
	test.T(t, MergeDrawOp(Stroke{Blue}, Fill{Red}), DrawOp(FillAndStroke{Red, Blue}))
}

func TestMergeDrawOpIdempotent(t *testing.T) {
	ops := []DrawOp{
		NotSpecified{},
		Fill{Red},
		Stroke{Blue},
		FillAndStroke{Red, Blue},
	}
	for i, op := range ops {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, MergeDrawOp(op, op), op)
		})
	}
}

func TestMergeDrawOpNil(t *testing.T) {
	// a nil op behaves as NotSpecified on either side
	test.T(t, MergeDrawOp(nil, Fill{Red}), DrawOp(Fill{Red}))
	test.T(t, MergeDrawOp(Fill{Red}, nil), DrawOp(Fill{Red}))
	test.T(t, MergeDrawOp(nil, nil), DrawOp(NotSpecified{}))
}
