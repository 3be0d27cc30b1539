package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/onepager/fonts"
	"github.com/ByLCY/onepager/layout"
	"github.com/ByLCY/onepager/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas and doubles as
// the font metrics backend for layout.
type Renderer struct {
	// injected fonts by layout font name
	fontBlobs map[string][]byte
	fontErrs  map[string]error

	fontMu       sync.Mutex
	fontFamilies map[layout.Font]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options configures the canvas renderer.
type Options struct {
	// Fonts overrides built-in fonts, keyed by layout font name (eg "Helvetica-Bold").
	Fonts map[string]Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer backed by the built-in fonts.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected font resources.
// Unreadable font paths are reported the first time the font is used.
func NewRendererWithOptions(opts Options) *Renderer {
	r := &Renderer{
		fontBlobs:    map[string][]byte{},
		fontErrs:     map[string]error{},
		fontFamilies: map[layout.Font]*canvas.FontFamily{},
	}
	for name, res := range opts.Fonts {
		if name == "" {
			continue
		}
		if len(res.Bytes) > 0 {
			r.fontBlobs[name] = res.Bytes
			continue
		}
		if res.Path != "" {
			data, err := os.ReadFile(res.Path)
			if err != nil {
				r.fontErrs[name] = fmt.Errorf("读取字体 %s 失败: %w", res.Path, err)
				continue
			}
			r.fontBlobs[name] = data
		}
	}
	return r
}

// TextWidth 实现 layout.Measurer：返回 text 在 font/size(pt) 下的宽度（pt）。
func (r *Renderer) TextWidth(text string, font layout.Font, size float64) (float64, error) {
	if text == "" {
		return 0, nil
	}
	face, err := r.fontFace(font, size, layout.RGB(0, 0, 0))
	if err != nil {
		return 0, err
	}
	// canvas 的长度单位为 mm
	return toPt(face.TextWidth(text)), nil
}

// Render renders the result into a single-page PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	w, h := toMm(result.Page.Width), toMm(result.Page.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("页面尺寸无效: %gx%gpt", result.Page.Width, result.Page.Height)
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	applyMeta(writer, result.Meta)

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianI) // 与布局一致：原点在左下角，y 轴向上
	for i, item := range result.Items {
		if err := r.drawItem(ctx, item); err != nil {
			return nil, fmt.Errorf("绘制第 %d 个元素（%s）失败: %w", i, item.Kind(), err)
		}
	}
	c.RenderTo(writer)

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	keywords := strings.Join(meta.Keywords, ", ")
	writer.SetInfo(meta.Title, meta.Subject, keywords, meta.Author, meta.Creator)
}

// drawItem 绘制单个元素；每个元素独立设置样式，互不影响。
func (r *Renderer) drawItem(ctx *canvas.Context, item layout.Item) error {
	ctx.Push()
	defer ctx.Pop()

	switch {
	case item.Rect != nil:
		rc := item.Rect
		applyPaint(ctx, rc.Paint)
		var p *canvas.Path
		if rc.Radius > 0 {
			p = canvas.RoundedRectangle(toMm(rc.Width), toMm(rc.Height), toMm(rc.Radius))
		} else {
			p = canvas.Rectangle(toMm(rc.Width), toMm(rc.Height))
		}
		ctx.DrawPath(toMm(rc.X), toMm(rc.Y), p)
	case item.Circle != nil:
		c := item.Circle
		applyPaint(ctx, c.Paint)
		ctx.DrawPath(toMm(c.CX), toMm(c.CY), canvas.Circle(toMm(c.R)))
	case item.Line != nil:
		ln := item.Line
		paint := ln.Paint
		paint.Fill = nil
		applyPaint(ctx, paint)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(toMm(ln.X2-ln.X1), toMm(ln.Y2-ln.Y1))
		ctx.DrawPath(toMm(ln.X1), toMm(ln.Y1), p)
	case item.Path != nil:
		p, err := buildPath(item.Path.Segments)
		if err != nil {
			return err
		}
		applyPaint(ctx, item.Path.Paint)
		ctx.DrawPath(toMm(item.Path.X), toMm(item.Path.Y), p)
	case item.Text != nil:
		return r.drawText(ctx, item.Text)
	default:
		return fmt.Errorf("空元素")
	}
	return nil
}

func (r *Renderer) drawText(ctx *canvas.Context, t *layout.Text) error {
	if t.Content == "" {
		return nil
	}
	face, err := r.fontFace(t.Font, t.Size, t.Color)
	if err != nil {
		return err
	}
	var align canvas.TextAlign
	switch t.Align {
	case layout.AlignCenter:
		align = canvas.Center
	case layout.AlignRight:
		align = canvas.Right
	default:
		align = canvas.Left
	}
	// 基线落在 (X, Y)
	ctx.DrawText(toMm(t.X), toMm(t.Y), canvas.NewTextLine(face, t.Content, align))
	return nil
}

func applyPaint(ctx *canvas.Context, p layout.Paint) {
	if p.Fill != nil {
		ctx.SetFillColor(colorFromLayout(*p.Fill))
	} else {
		ctx.SetFillColor(canvas.Transparent)
	}
	if p.Stroke != nil && p.StrokeWidth > 0 {
		ctx.SetStrokeColor(colorFromLayout(*p.Stroke))
		ctx.SetStrokeWidth(toMm(p.StrokeWidth))
	} else {
		ctx.SetStrokeColor(canvas.Transparent)
	}
	if len(p.Dash) > 0 {
		dashes := make([]float64, len(p.Dash))
		for i, d := range p.Dash {
			dashes[i] = toMm(d)
		}
		ctx.SetDashes(0, dashes...)
	} else {
		ctx.SetDashes(0)
	}
}

var segmentArity = map[layout.SegmentOp]int{
	layout.OpMoveTo: 2,
	layout.OpLineTo: 2,
	layout.OpCubeTo: 6,
	layout.OpClose:  0,
}

// buildPath 把 pt 坐标的路径指令转换为 canvas.Path（mm）。
func buildPath(segs []layout.Segment) (*canvas.Path, error) {
	p := &canvas.Path{}
	for i, s := range segs {
		n, ok := segmentArity[s.Op]
		if !ok {
			return nil, fmt.Errorf("路径第 %d 段: 未知指令 %q", i, s.Op)
		}
		if len(s.Pts) != n {
			return nil, fmt.Errorf("路径第 %d 段: 指令 %s 需要 %d 个坐标，实际 %d 个", i, s.Op, n, len(s.Pts))
		}
		pts := make([]float64, n)
		for j, v := range s.Pts {
			pts[j] = toMm(v)
		}
		switch s.Op {
		case layout.OpMoveTo:
			p.MoveTo(pts[0], pts[1])
		case layout.OpLineTo:
			p.LineTo(pts[0], pts[1])
		case layout.OpCubeTo:
			p.CubeTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
		case layout.OpClose:
			p.Close()
		}
	}
	return p, nil
}

func (r *Renderer) fontFace(font layout.Font, size float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(font)
	if err != nil {
		return nil, err
	}
	return family.Face(size, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

// ensureFontFamily 每个字体名对应一个只含常规字重的字体族，按名称缓存。
func (r *Renderer) ensureFontFamily(font layout.Font) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[font]; ok {
		return family, nil
	}
	data, err := r.loadFontBytes(string(font))
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(string(font))
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体 %s 失败: %w", font, err)
	}
	r.fontFamilies[font] = family
	return family, nil
}

func (r *Renderer) loadFontBytes(name string) ([]byte, error) {
	if err, ok := r.fontErrs[name]; ok {
		return nil, err
	}
	if blob, ok := r.fontBlobs[name]; ok {
		return blob, nil
	}
	return fonts.Load(name)
}

func colorFromLayout(c layout.Color) color.Color {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{
		R: clampByte(c.R),
		G: clampByte(c.G),
		B: clampByte(c.B),
		A: uint8(math.Round(a * 255)),
	}
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// toPt 将毫米(mm)转换为点(pt)。
func toPt(mm float64) float64 { return mm * layout.MmToPt }

// toMm 将点(pt)转换为毫米(mm)。
func toMm(pt float64) float64 { return pt * layout.PtToMm }
