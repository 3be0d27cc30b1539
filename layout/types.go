package layout

// 该文件定义布局结果（显示列表）与绘制样式，供布局计算、渲染与调试 JSON 共用。
// 所有坐标与长度单位为 pt，原点位于页面左下角，y 轴向上。

// Result 保存布局后的页面几何、文档元信息与按绘制顺序排列的元素。
type Result struct {
	Page     PageGeometry `json:"page"`
	Meta     DocumentMeta `json:"meta"`
	Items    []Item       `json:"items"`
	Warnings []string     `json:"warnings,omitempty"`
}

// PageGeometry 记录页面尺寸与边距（pt）。
type PageGeometry struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin Margin  `json:"margin"`
}

// ContentWidth 返回左右边距之间的宽度。
func (p PageGeometry) ContentWidth() float64 {
	return p.Width - p.Margin.Left - p.Margin.Right
}

// Margin 以 pt 为单位。
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Subject  string   `json:"subject"`
	Creator  string   `json:"creator"`
	Keywords []string `json:"keywords"`
}

// Color 采用 0-255 的 RGB 数值，A 为 0-1 的不透明度。
type Color struct {
	R int     `json:"r"`
	G int     `json:"g"`
	B int     `json:"b"`
	A float64 `json:"a"`
}

// RGB 返回不透明颜色。
func RGB(r, g, b int) Color { return Color{R: r, G: g, B: b, A: 1} }

// WithAlpha 返回相同 RGB、指定不透明度的颜色。
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Paint 是随每个图形一起传递的不可变绘制样式。
// Fill/Stroke 为空表示不填充/不描边。
type Paint struct {
	Fill        *Color    `json:"fill,omitempty"`
	Stroke      *Color    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Dash        []float64 `json:"dash,omitempty"`
}

// Fill 返回只填充的样式。
func Fill(c Color) Paint { return Paint{Fill: &c} }

// Stroke 返回只描边的样式。
func Stroke(c Color, width float64) Paint { return Paint{Stroke: &c, StrokeWidth: width} }

// FillStroke 返回同时填充与描边的样式。
func FillStroke(fill, stroke Color, width float64) Paint {
	return Paint{Fill: &fill, Stroke: &stroke, StrokeWidth: width}
}

// WithDash 返回带虚线模式的副本，不修改原样式。
func (p Paint) WithDash(dash ...float64) Paint {
	p.Dash = append([]float64(nil), dash...)
	return p
}

// Font 是字体名称，沿用 PDF 标准字体的命名。
type Font string

const (
	FontRegular Font = "Helvetica"
	FontBold    Font = "Helvetica-Bold"
	FontOblique Font = "Helvetica-Oblique"
)

// Align 是文本相对锚点的水平对齐方式。
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Item 是显示列表中的一个元素，恰好有一个字段非空。
type Item struct {
	Rect   *Rect   `json:"rect,omitempty"`
	Text   *Text   `json:"text,omitempty"`
	Circle *Circle `json:"circle,omitempty"`
	Line   *Line   `json:"line,omitempty"`
	Path   *Path   `json:"path,omitempty"`
}

// Kind returns the human-readable item type.
func (it Item) Kind() string {
	switch {
	case it.Rect != nil:
		return "rect"
	case it.Text != nil:
		return "text"
	case it.Circle != nil:
		return "circle"
	case it.Line != nil:
		return "line"
	case it.Path != nil:
		return "path"
	default:
		return "unknown"
	}
}

// Rect 表示以左下角 (X, Y) 定位的矩形，Radius > 0 时为圆角矩形。
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Radius float64 `json:"radius,omitempty"`
	Paint  Paint   `json:"paint"`
}

// Text 表示一段单行文本，(X, Y) 为基线上的锚点。
type Text struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Font    Font    `json:"font"`
	Size    float64 `json:"size"`
	Color   Color   `json:"color"`
	Align   Align   `json:"align,omitempty"`
}

// Circle 表示一个圆。
type Circle struct {
	CX    float64 `json:"cx"`
	CY    float64 `json:"cy"`
	R     float64 `json:"r"`
	Paint Paint   `json:"paint"`
}

// Line 表示一条线段。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Paint Paint   `json:"paint"`
}

// Path 表示以 (X, Y) 为原点的矢量路径（图标等）。
type Path struct {
	X        float64   `json:"x"`
	Y        float64   `json:"y"`
	Segments []Segment `json:"segments"`
	Paint    Paint     `json:"paint"`
}

// SegmentOp 是路径指令。
type SegmentOp string

const (
	OpMoveTo SegmentOp = "M"
	OpLineTo SegmentOp = "L"
	OpCubeTo SegmentOp = "C"
	OpClose  SegmentOp = "Z"
)

// Segment 是一条路径指令及其坐标（相对 Path 原点）。
// M/L 需要 2 个坐标，C 需要 6 个，Z 不需要。
type Segment struct {
	Op  SegmentOp `json:"op"`
	Pts []float64 `json:"pts,omitempty"`
}
