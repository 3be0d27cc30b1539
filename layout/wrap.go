package layout

import "strings"

// MeasureFunc 返回字符串在固定字体与字号下的渲染宽度（pt）。
type MeasureFunc func(s string) float64

// Wrap 使用贪心策略把 text 拆成若干行，每行宽度不超过 maxWidth。
//
// 按空白切分单词，逐词尝试追加到当前行；放不下时先输出当前行再另起一行。
// 单个单词本身超宽时不做拆分，独占一行并允许溢出。
// 空文本或只有空白的文本返回空切片。
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	lines := make([]string, 0, 4)
	current := ""
	for _, word := range words {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate) <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
