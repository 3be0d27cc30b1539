package layout

import "math"

// featherItems 返回羽毛图标的绘制元素，(x, y) 为羽根位置，size 为整体高度基准。
func featherItems(x, y, size float64, green Color) []Item {
	s := size / 18.0
	tip := []float64{3 * s, 16 * s}
	left := Segment{Op: OpCubeTo, Pts: []float64{-5 * s, 13 * s, -4 * s, 6 * s, 0, 0}}
	right := Segment{Op: OpCubeTo, Pts: []float64{10 * s, 12 * s, 8 * s, 5 * s, 0, 0}}
	vane := func(curve Segment, paint Paint) Item {
		segs := []Segment{{Op: OpMoveTo, Pts: tip}, curve}
		if paint.Fill != nil {
			segs = append(segs, Segment{Op: OpClose})
		}
		return Item{Path: &Path{X: x, Y: y, Segments: segs, Paint: paint}}
	}

	return []Item{
		// 羽轴
		{Line: &Line{X1: x, Y1: y, X2: x + tip[0], Y2: y + tip[1], Paint: Stroke(green, 1.0*s)}},
		vane(left, Fill(green.WithAlpha(0.25))),
		vane(right, Fill(green.WithAlpha(0.35))),
		vane(left, Stroke(green, 0.6*s)),
		vane(right, Stroke(green, 0.6*s)),
	}
}

// starSegments 返回以原点为中心、n 个尖角的星形路径，outer/inner 为外/内半径。
func starSegments(n int, outer, inner float64) []Segment {
	segs := make([]Segment, 0, 2*n+1)
	for i := 0; i < 2*n; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := math.Pi/2 + float64(i)*math.Pi/float64(n)
		op := OpLineTo
		if i == 0 {
			op = OpMoveTo
		}
		segs = append(segs, Segment{Op: op, Pts: []float64{r * math.Cos(theta), r * math.Sin(theta)}})
	}
	return append(segs, Segment{Op: OpClose})
}
