package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/ByLCY/onepager/binding"
	"github.com/ByLCY/onepager/content"
)

const (
	columnGap       = 14.0
	leftColumnRatio = 0.52
	cardGap         = 4.0
	captionLimit    = 60 // 流程说明超宽时保留的字符（字素簇）数
)

// Build 按固定的自上而下脚本排版整页 one-pager，返回按绘制顺序排列的显示列表。
// 任一测量错误都会中止整个排版。
func Build(c *content.Content, opts BuildOptions) (*Result, error) {
	if c == nil {
		return nil, fmt.Errorf("内容为空")
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: 缺少字体度量后端 Measurer")
	}

	page, err := resolvePage(c.Page)
	if err != nil {
		return nil, err
	}
	pal, err := resolvePalette(c.Palette)
	if err != nil {
		return nil, err
	}

	b := &builder{
		m:      opts.Measurer,
		data:   opts.Data,
		strict: opts.Strict,
		page:   page,
		pal:    pal,
		seen:   map[string]bool{},
	}
	b.col = NewColumn(page.Margin.Left, page.Height-page.Margin.Top, page.ContentWidth(), 0)

	steps := []struct {
		name string
		draw func()
	}{
		{"background", b.background},
		{"header", func() { b.header(c.Header) }},
		{"hero", func() { b.hero(c.Hero) }},
		{"stats", func() { b.stats(c.Stats) }},
		{"problem", func() { b.problem(c.Problem) }},
		{"columns", func() { b.columns(c) }},
		{"audience", func() { b.audience(c.Audience) }},
		{"retainer", func() { b.retainer(c.Retainer) }},
		{"credentials", func() { b.credentials(c.Credentials) }},
		{"cta", func() { b.cta(c.CTA) }},
	}
	for _, step := range steps {
		step.draw()
		if b.err != nil {
			return nil, fmt.Errorf("排版 %s 失败: %w", step.name, b.err)
		}
	}

	meta := DocumentMeta{
		Title:    b.str(c.Meta.Title),
		Author:   b.str(c.Meta.Author),
		Subject:  b.str(c.Meta.Subject),
		Creator:  b.str(c.Meta.Creator),
		Keywords: c.Meta.Keywords,
	}
	if b.err != nil {
		return nil, b.err
	}

	return &Result{
		Page:     page,
		Meta:     meta,
		Items:    b.items,
		Warnings: b.warnings,
	}, nil
}

// builder 保存一次排版过程中的全部状态；err 为第一个出现的错误，之后的调用均为空操作。
type builder struct {
	m      Measurer
	data   any
	strict bool
	page   PageGeometry
	pal    palette
	col    *Column

	items    []Item
	warnings []string
	seen     map[string]bool
	err      error
}

func (b *builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// str 绑定占位符；无法解析的占位符在 strict 模式下报错，否则记为警告。
func (b *builder) str(s string) string {
	for _, path := range binding.Unresolved(s, b.data) {
		if b.strict {
			b.fail(fmt.Errorf("无法解析占位符 ${%s}", path))
			continue
		}
		if !b.seen[path] {
			b.seen[path] = true
			b.warnings = append(b.warnings, fmt.Sprintf("未解析的占位符 ${%s}", path))
		}
	}
	return binding.Interpolate(s, b.data)
}

func (b *builder) measure(font Font, size float64) MeasureFunc {
	return func(s string) float64 {
		if b.err != nil {
			return 0
		}
		w, err := b.m.TextWidth(s, font, size)
		if err != nil {
			b.fail(fmt.Errorf("测量文本宽度失败（%s %gpt）: %w", font, size, err))
			return 0
		}
		return w
	}
}

func (b *builder) width(s string, font Font, size float64) float64 {
	return b.measure(font, size)(s)
}

func (b *builder) paragraph(tb TextBlock) Paragraph {
	if b.err != nil {
		return Paragraph{Leading: tb.leading()}
	}
	p, err := tb.Layout(b.m)
	if err != nil {
		b.fail(fmt.Errorf("文本折行失败: %w", err))
	}
	return p
}

func (b *builder) add(items ...Item) { b.items = append(b.items, items...) }

func (b *builder) text(x, y float64, s string, font Font, size float64, col Color, align Align) {
	if s == "" {
		return
	}
	b.add(Item{Text: &Text{Content: s, X: x, Y: y, Font: font, Size: size, Color: col, Align: align}})
}

func (b *builder) rect(x, y, w, h, r float64, paint Paint) {
	b.add(Item{Rect: &Rect{X: x, Y: y, Width: w, Height: h, Radius: r, Paint: paint}})
}

func (b *builder) line(x1, y1, x2, y2 float64, paint Paint) {
	b.add(Item{Line: &Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Paint: paint}})
}

func (b *builder) circle(cx, cy, r float64, paint Paint) {
	b.add(Item{Circle: &Circle{CX: cx, CY: cy, R: r, Paint: paint}})
}

func (b *builder) background() {
	p := b.page
	b.rect(0, 0, p.Width, p.Height, 0, Fill(b.pal.pageBG))
	b.circle(p.Width-80, p.Height-100, 180, Fill(b.pal.green.WithAlpha(0.03)))
	b.circle(60, 200, 140, Fill(b.pal.mist.WithAlpha(0.08)))
}

func (b *builder) header(h content.Header) {
	ml := b.page.Margin.Left
	rx := b.page.Width - b.page.Margin.Right
	y := b.col.Cursor()

	b.add(featherItems(ml+2, y-22, 16, b.pal.green)...)
	b.text(ml+24, y-11, b.str(h.Brand), FontBold, 13, b.pal.textDark, AlignLeft)
	b.text(ml+24, y-22, b.str(h.Tagline), FontRegular, 7, b.pal.textMuted, AlignLeft)

	b.text(rx, y-8, b.str(h.Contact), FontBold, 7.5, b.pal.textDark, AlignRight)
	for i, line := range h.ContactLines {
		b.text(rx, y-18-9*float64(i), b.str(line), FontRegular, 6.5, b.pal.textMuted, AlignRight)
	}

	b.col.Advance(32)
	y = b.col.Cursor()
	b.line(ml, y, rx, y, Stroke(b.pal.border, 0.5))
	b.col.Advance(10)
}

func (b *builder) hero(h content.Hero) {
	ml := b.page.Margin.Left

	if badge := b.str(h.Badge); badge != "" {
		y := b.col.Cursor()
		w := b.width(badge, FontBold, 6) + 16
		b.rect(ml, y-12, w, 14, 3, FillStroke(b.pal.greenBG, b.pal.green, 0.4))
		b.text(ml+8, y-9, badge, FontBold, 6, b.pal.greenDark, AlignLeft)
		b.col.Advance(20)
	}

	b.text(ml, b.col.Cursor(), b.str(h.Headline), FontBold, 17, b.pal.textDark, AlignLeft)
	b.col.Advance(20)
	b.text(ml, b.col.Cursor(), b.str(h.Accent), FontBold, 17, b.pal.green, AlignLeft)
	b.col.Advance(14)

	body := b.paragraph(TextBlock{Text: b.str(h.Body), MaxWidth: b.col.Width, Font: FontRegular, Size: 7.5, Leading: 10})
	b.drawLines(ml, b.col.Cursor(), body, FontRegular, 7.5, b.pal.textMuted)
	b.col.Advance(body.Height(6))
}

// drawLines 自 y 起逐行绘制段落，行距取 p.Leading。
func (b *builder) drawLines(x, y float64, p Paragraph, font Font, size float64, col Color) {
	for _, line := range p.Lines {
		b.text(x, y, line, font, size, col, AlignLeft)
		y -= p.Leading
	}
}

func (b *builder) stats(figs []content.Figure) {
	if len(figs) == 0 {
		return
	}
	ml, cw := b.page.Margin.Left, b.col.Width
	cellW := cw / float64(len(figs))
	top := b.col.Cursor()

	b.rect(ml, top-30, cw, 32, 5, FillStroke(b.pal.white, b.pal.border, 0.4))
	for i, f := range figs {
		sx := ml + float64(i)*cellW + cellW/2
		b.text(sx, top-12, b.str(f.Value), FontBold, 13, b.pal.green, AlignCenter)
		b.text(sx, top-22, b.str(f.Label), FontRegular, 5.5, b.pal.textLight, AlignCenter)
		if i < len(figs)-1 {
			dx := ml + float64(i+1)*cellW
			b.line(dx, top-5, dx, top-27, Stroke(b.pal.border, 0.3))
		}
	}
	b.col.Advance(38)
}

// problem 只折行一次：首行若以 Lead 开头，则把 Lead 部分换成粗体拼接绘制。
func (b *builder) problem(p content.Problem) {
	body := b.str(p.Body)
	if body == "" {
		return
	}
	lead := b.str(p.Lead)
	ml, cw := b.page.Margin.Left, b.col.Width

	para := b.paragraph(TextBlock{Text: body, MaxWidth: cw - 20, Font: FontRegular, Size: 6.5, Leading: 9})
	h := para.Height(10)
	top := b.col.Cursor()
	b.rect(ml, top-h, cw, h, 4, FillStroke(b.pal.problemBG, b.pal.problemBorder, 0.4))

	py := top - 10
	for i, line := range para.Lines {
		if i == 0 && lead != "" && strings.HasPrefix(line, lead) {
			b.text(ml+10, py, lead, FontBold, 6.5, b.pal.problemLead, AlignLeft)
			b.text(ml+10+b.width(lead, FontBold, 6.5), py, line[len(lead):], FontRegular, 6.5, b.pal.problemText, AlignLeft)
		} else {
			b.text(ml+10, py, line, FontRegular, 6.5, b.pal.problemText, AlignLeft)
		}
		py -= para.Leading
	}
	b.col.Advance(h + 8)
}

// columns 排版左右两栏，之后主游标移到两栏中较低的底部。
func (b *builder) columns(c *content.Content) {
	top := b.col.Cursor()
	leftW := b.col.Width * leftColumnRatio
	rightW := b.col.Width - leftW - columnGap

	left := NewColumn(b.col.X, top, leftW, cardGap)
	b.systems(left, c.Systems)

	right := NewColumn(b.col.X+leftW+columnGap, top, rightW, 0)
	b.steps(right, c.Steps)
	right.Advance(2)
	b.impacts(right, c.Impacts)
	b.quote(right, c.Quote)

	b.col.MoveTo(math.Min(left.Cursor(), right.Cursor()))
}

// sectionTitle 绘制带下划线的栏目标题，之后游标再下移 after。
func (b *builder) sectionTitle(col *Column, title string, after float64) {
	title = b.str(title)
	if title == "" {
		return
	}
	b.text(col.X, col.Cursor(), title, FontBold, 8, b.pal.green, AlignLeft)
	col.Advance(4)
	y := col.Cursor()
	b.line(col.X, y, col.X+b.width(title, FontBold, 8), y, Stroke(b.pal.green, 0.5))
	col.Advance(after)
}

func (b *builder) systems(col *Column, s content.Systems) {
	b.sectionTitle(col, s.Title, 10)
	x, w := col.X, col.Width
	for i, item := range s.Items {
		desc := b.paragraph(TextBlock{Text: b.str(item.Description), MaxWidth: w - 36, Font: FontRegular, Size: 6, Leading: 8.5})
		cardH := desc.Height(12 + 16)
		y := col.Place(cardH)

		b.rect(x, y-cardH, w, cardH, 4, FillStroke(b.pal.white, b.pal.border, 0.3))
		b.rect(x+6, y-15, 16, 12, 3, Fill(b.pal.green))
		b.text(x+14, y-12, fmt.Sprintf("%02d", i+1), FontBold, 6.5, b.pal.white, AlignCenter)
		b.text(x+28, y-13, b.str(item.Title), FontBold, 7.5, b.pal.textDark, AlignLeft)
		b.drawLines(x+28, y-24, desc, FontRegular, 6, b.pal.textMuted)

		dy := y - 24 - float64(len(desc.Lines))*desc.Leading - 1
		caption := b.str(item.Flow)
		if caption != "" && b.width(caption, FontRegular, 4.5) > w-40 {
			caption = truncateGraphemes(caption, captionLimit) + "..."
		}
		b.text(x+28, dy, caption, FontRegular, 4.5, b.pal.green, AlignLeft)
	}
}

func (b *builder) steps(col *Column, s content.Steps) {
	b.sectionTitle(col, s.Title, 10)
	x := col.X
	for i, step := range s.Items {
		y := col.Cursor()
		b.circle(x+8, y-5, 7, Fill(b.pal.green))
		b.text(x+8, y-7.5, strconv.Itoa(i+1), FontBold, 6, b.pal.white, AlignCenter)
		if i < len(s.Items)-1 {
			b.line(x+8, y-12, x+8, y-28, Stroke(b.pal.stepLine, 0.5).WithDash(1, 2))
		}
		b.text(x+20, y-4, b.str(step.Title), FontBold, 7, b.pal.textDark, AlignLeft)

		desc := b.paragraph(TextBlock{Text: b.str(step.Description), MaxWidth: col.Width - 24, Font: FontRegular, Size: 5.5, Leading: 7.5})
		b.drawLines(x+20, y-14, desc, FontRegular, 5.5, b.pal.textMuted)
		col.Advance(14 + desc.Height(6))
	}
}

func (b *builder) impacts(col *Column, im content.Impacts) {
	if len(im.Items) == 0 {
		return
	}
	b.sectionTitle(col, im.Title, 8)

	const cellH = 32.0
	cellW := col.Width / 2
	y := col.Cursor()
	for i, f := range im.Items {
		row, c := float64(i/2), float64(i%2)
		ix := col.X + c*(cellW+4)
		iy := y - row*(cellH+4)
		b.rect(ix, iy-cellH, cellW-4, cellH, 4, FillStroke(b.pal.greenBG, b.pal.stepLine, 0.3))
		b.text(ix+(cellW-4)/2, iy-14, b.str(f.Value), FontBold, 14, b.pal.green, AlignCenter)
		b.text(ix+(cellW-4)/2, iy-24, b.str(f.Label), FontRegular, 5.5, b.pal.textMuted, AlignCenter)
	}
	rows := float64((len(im.Items) + 1) / 2)
	col.Advance(rows*(cellH+4) + 4)
}

func (b *builder) quote(col *Column, q content.Quote) {
	text := b.str(q.Text)
	if text == "" {
		return
	}
	x, w, y := col.X, col.Width, col.Cursor()
	b.line(x, y, x, y-24, Stroke(b.pal.green, 2))
	b.rect(x+6, y-28, w-8, 28, 3, Fill(b.pal.warmBG))

	para := b.paragraph(TextBlock{Text: text, MaxWidth: w - 18, Font: FontOblique, Size: 6, Leading: 8})
	b.drawLines(x+10, y-8, para, FontOblique, 6, b.pal.quoteText)
	qy := y - 8 - float64(len(para.Lines))*para.Leading
	b.text(x+10, qy-2, b.str(q.Attribution), FontBold, 5, b.pal.textLight, AlignLeft)
	col.Advance(36)
}

func (b *builder) audience(items []content.Audience) {
	if len(items) == 0 {
		return
	}
	const stripH = 28.0
	ml, cw := b.page.Margin.Left, b.col.Width
	b.col.Advance(2)
	y := b.col.Cursor()

	b.rect(ml, y-stripH, cw, stripH, 5, Fill(b.pal.green))
	itemW := cw / float64(len(items))
	for i, it := range items {
		ix := ml + float64(i)*itemW + itemW/2
		b.text(ix, y-10, b.str(it.Title), FontBold, 6, b.pal.white, AlignCenter)
		b.text(ix, y-19, b.str(it.Subtitle), FontRegular, 5.5, b.pal.white.WithAlpha(0.8), AlignCenter)
		if i < len(items)-1 {
			dx := ml + float64(i+1)*itemW
			b.line(dx, y-5, dx, y-stripH+5, Stroke(b.pal.white.WithAlpha(0.25), 0.3))
		}
	}
	b.col.Advance(stripH + 6)
}

func (b *builder) retainer(r content.Retainer) {
	if len(r.Items) == 0 {
		return
	}
	ml, cw := b.page.Margin.Left, b.col.Width
	rows := (len(r.Items) + 1) / 2
	h := 22 + float64(rows)*9 + 3
	y := b.col.Cursor()

	b.rect(ml, y-h, cw, h, 5, FillStroke(b.pal.white, b.pal.border, 0.4))
	b.text(ml+10, y-10, b.str(r.Title), FontBold, 7.5, b.pal.textDark, AlignLeft)

	b.highlights(r.Items[:rows], ml+14, ml+24, y-22)
	midX := ml + cw/2 + 10
	b.highlights(r.Items[rows:], midX, midX+10, y-22)
	b.col.Advance(h + 5)
}

// highlights 绘制星形项目符号 + 粗体开头 + 普通正文的列表。
func (b *builder) highlights(items []content.Highlight, bulletX, textX, y float64) {
	star := starSegments(4, 2.4, 0.8)
	for _, it := range items {
		b.add(Item{Path: &Path{X: bulletX + 2.2, Y: y + 1.9, Segments: star, Paint: Fill(b.pal.green)}})
		lead := b.str(it.Lead)
		b.text(textX, y, lead, FontBold, 5.5, b.pal.textDark, AlignLeft)
		restX := textX + b.width(lead, FontBold, 5.5) + 2
		b.text(restX, y, b.str(it.Rest), FontRegular, 5.5, b.pal.textMuted, AlignLeft)
		y -= 9
	}
}

// credentials 把各项居中排成一行，项之间以圆点分隔。
func (b *builder) credentials(creds []string) {
	if len(creds) == 0 {
		return
	}
	const credH = 14.0
	ml, cw := b.page.Margin.Left, b.col.Width
	y := b.col.Cursor()
	b.rect(ml, y-credH, cw, credH, 3, Fill(b.pal.credentialsBG))

	bound := make([]string, len(creds))
	widths := make([]float64, len(creds))
	const sep = 26.0 // 圆点分隔符占用的宽度
	total := sep * float64(len(creds)-1)
	for i, cr := range creds {
		bound[i] = b.str(cr)
		widths[i] = b.width(bound[i], FontBold, 5.5)
		total += widths[i]
	}

	cx := ml + (cw-total)/2
	for i, cr := range bound {
		b.text(cx, y-credH+4, cr, FontBold, 5.5, b.pal.textDark, AlignLeft)
		cx += widths[i]
		if i < len(bound)-1 {
			b.circle(cx+12, y-credH+6.5, 1.5, Fill(b.pal.green))
			cx += sep
		}
	}
	b.col.Advance(credH + 5)
}

// cta 绘制行动号召条，联系方式自右向左排列。
func (b *builder) cta(c content.CTA) {
	const ctaH = 34.0
	ml, cw := b.page.Margin.Left, b.col.Width
	y := b.col.Cursor()

	b.rect(ml, y-ctaH, cw, ctaH, 5, Fill(b.pal.green))
	b.text(ml+12, y-13, b.str(c.Headline), FontBold, 9, b.pal.white, AlignLeft)
	b.text(ml+12, y-24, b.str(c.Subline), FontRegular, 6.5, b.pal.white.WithAlpha(0.85), AlignLeft)

	crx := b.page.Width - b.page.Margin.Right - 12
	for i := len(c.Contacts) - 1; i >= 0; i-- {
		value, label := b.str(c.Contacts[i].Value), b.str(c.Contacts[i].Label)
		b.text(crx, y-11, value, FontBold, 6, b.pal.white, AlignRight)
		b.text(crx, y-20, label, FontRegular, 5, b.pal.white.WithAlpha(0.65), AlignRight)
		crx -= math.Max(b.width(value, FontBold, 6), b.width(label, FontRegular, 5)) + 20
		if i > 0 {
			b.line(crx+10, y-6, crx+10, y-28, Stroke(b.pal.white.WithAlpha(0.25), 0.3))
		}
	}
	b.col.Advance(ctaH)
}

// truncateGraphemes 保留前 n 个字素簇，避免在组合字符或 emoji 中间截断。
func truncateGraphemes(s string, n int) string {
	rest := s
	state := -1
	for i := 0; i < n && len(rest) > 0; i++ {
		_, rest, _, state = uniseg.StepString(rest, state)
	}
	return s[:len(s)-len(rest)]
}
