package layout

// defaultLeadingFactor 是未指定行距时相对字号的倍数。
const defaultLeadingFactor = 1.35

// TextBlock 描述一段待折行的文本：内容、最大宽度、字体、字号与可选的固定行距。
type TextBlock struct {
	Text     string
	MaxWidth float64
	Font     Font
	Size     float64
	Leading  float64 // <=0 时取 Size*1.35
}

// Paragraph 是 TextBlock 折行后的结果。
type Paragraph struct {
	Lines   []string
	Leading float64
}

// Layout 用 measurer 测量并折行，返回段落。测量失败时返回第一个错误。
func (tb TextBlock) Layout(m Measurer) (Paragraph, error) {
	var measureErr error
	measure := func(s string) float64 {
		if measureErr != nil {
			return 0
		}
		w, err := m.TextWidth(s, tb.Font, tb.Size)
		if err != nil {
			measureErr = err
		}
		return w
	}
	lines := Wrap(tb.Text, tb.MaxWidth, measure)
	if measureErr != nil {
		return Paragraph{}, measureErr
	}
	return Paragraph{Lines: lines, Leading: tb.leading()}, nil
}

func (tb TextBlock) leading() float64 {
	if tb.Leading > 0 {
		return tb.Leading
	}
	return tb.Size * defaultLeadingFactor
}

// Height 返回段落占用的高度：行数 × 行距 + padding。
func (p Paragraph) Height(padding float64) float64 {
	return float64(len(p.Lines))*p.Leading + padding
}
