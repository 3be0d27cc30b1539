package layout

// Column 是一列内容的竖向游标。坐标系 y 轴向上，游标只会向下（减小）移动。
//
// Column 不做碰撞检测，也不分页：内容超出页面底部时直接溢出。
type Column struct {
	X     float64
	Width float64
	Gap   float64 // Place 时追加的块间距

	y float64
}

// NewColumn 创建从 top 开始向下排版的一列。
func NewColumn(x, top, width, gap float64) *Column {
	return &Column{X: x, Width: width, Gap: gap, y: top}
}

// Cursor 返回当前游标位置。
func (c *Column) Cursor() float64 { return c.y }

// Place 返回块的顶部位置（即当前游标），并把游标下移 height + Gap。
func (c *Column) Place(height float64) float64 {
	top := c.y
	c.y -= height + c.Gap
	return top
}

// Advance 把游标下移 dy，用于标题、分隔线等不计入块间距的位移。
func (c *Column) Advance(dy float64) {
	c.y -= dy
}

// MoveTo 把游标放到 y 与当前位置中较低的一个，游标永远不会向上回退。
func (c *Column) MoveTo(y float64) {
	if y < c.y {
		c.y = y
	}
}

// Stack 计算一组高度已知的块自 start 起依次排列时各自的顶部位置。
// 第 i 个块位于 start - sum(heights[:i]) - i*gap。
func Stack(start, gap float64, heights []float64) []float64 {
	col := NewColumn(0, start, 0, gap)
	tops := make([]float64, len(heights))
	for i, h := range heights {
		tops[i] = col.Place(h)
	}
	return tops
}
