package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack(t *testing.T) {
	heights := []float64{10, 20, 5, 0, 12.5}
	const start, gap = 700.0, 4.0
	got := Stack(start, gap, heights)

	want := make([]float64, len(heights))
	sum := 0.0
	for i, h := range heights {
		want[i] = start - sum - float64(i)*gap
		sum += h
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Stack mismatch (-want +got):\n%s", diff)
	}
	if got := Stack(start, gap, nil); len(got) != 0 {
		t.Fatalf("expected no positions, got %v", got)
	}
}

func TestColumnCursor(t *testing.T) {
	col := NewColumn(36, 500, 200, 4)
	if top := col.Place(30); top != 500 {
		t.Fatalf("first block top = %g, want 500", top)
	}
	if got := col.Cursor(); got != 466 {
		t.Fatalf("cursor after Place = %g, want 466", got)
	}
	col.Advance(6)
	if got := col.Cursor(); got != 460 {
		t.Fatalf("cursor after Advance = %g, want 460", got)
	}
	col.MoveTo(480)
	if got := col.Cursor(); got != 460 {
		t.Fatalf("MoveTo must not move up, cursor = %g", got)
	}
	col.MoveTo(400)
	if got := col.Cursor(); got != 400 {
		t.Fatalf("cursor after MoveTo = %g, want 400", got)
	}
}

func TestParagraphHeight(t *testing.T) {
	tb := TextBlock{Text: "aa bb cc dd", MaxWidth: 5, Font: FontRegular, Size: 10}
	p, err := tb.Layout(charMeasurer{})
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	// 字符宽 = 字号 × 0.5，每行最多容纳一个单词
	if len(p.Lines) != 4 {
		t.Fatalf("expected 4 lines, got %v", p.Lines)
	}
	if math.Abs(p.Leading-13.5) > 1e-9 {
		t.Fatalf("default leading = %g, want 13.5", p.Leading)
	}
	if got := p.Height(6); math.Abs(got-(4*13.5+6)) > 1e-9 {
		t.Fatalf("Height = %g", got)
	}

	tb.Leading = 8
	p, _ = tb.Layout(charMeasurer{})
	if p.Leading != 8 {
		t.Fatalf("explicit leading ignored: %g", p.Leading)
	}
}
