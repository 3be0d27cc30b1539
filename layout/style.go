package layout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/onepager/content"
)

// palette 是排版脚本使用的已解析颜色。
type palette struct {
	green, greenDark, greenLight, greenBG Color
	textDark, textMuted, textLight        Color
	pageBG, border, white, warmBG, mist   Color
	problemBG, problemBorder              Color
	problemLead, problemText              Color
	stepLine, quoteText, credentialsBG    Color
}

// resolvePalette 把颜色名映射为 Color；缺失的颜色取默认配色，未知的颜色名忽略。
func resolvePalette(p content.Palette) (palette, error) {
	defaults := content.DefaultPalette()
	var (
		out palette
		err error
	)
	get := func(name string) Color {
		if err != nil {
			return Color{}
		}
		value, ok := p[name]
		if !ok || strings.TrimSpace(value) == "" {
			value = defaults[name]
		}
		c, perr := parseColor(value)
		if perr != nil {
			err = fmt.Errorf("调色板颜色 %s: %w", name, perr)
		}
		return c
	}

	out.green = get(content.ColorGreen)
	out.greenDark = get(content.ColorGreenDark)
	out.greenLight = get(content.ColorGreenLight)
	out.greenBG = get(content.ColorGreenBG)
	out.textDark = get(content.ColorTextDark)
	out.textMuted = get(content.ColorTextMuted)
	out.textLight = get(content.ColorTextLight)
	out.pageBG = get(content.ColorPageBG)
	out.border = get(content.ColorBorder)
	out.white = get(content.ColorWhite)
	out.warmBG = get(content.ColorWarmBG)
	out.mist = get(content.ColorMist)
	out.problemBG = get(content.ColorProblemBG)
	out.problemBorder = get(content.ColorProblemBorder)
	out.problemLead = get(content.ColorProblemLead)
	out.problemText = get(content.ColorProblemText)
	out.stepLine = get(content.ColorStepLine)
	out.quoteText = get(content.ColorQuoteText)
	out.credentialsBG = get(content.ColorCredentialsBG)
	return out, err
}

// parseColor 解析 #RGB、#RRGGBB 与 #RRGGBBAA。
func parseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
		}
	}
	switch len(hex) {
	case 3:
		return RGB(
			mustHex(strings.Repeat(hex[0:1], 2)),
			mustHex(strings.Repeat(hex[1:2], 2)),
			mustHex(strings.Repeat(hex[2:3], 2)),
		), nil
	case 6:
		return RGB(mustHex(hex[0:2]), mustHex(hex[2:4]), mustHex(hex[4:6])), nil
	case 8:
		c := RGB(mustHex(hex[0:2]), mustHex(hex[2:4]), mustHex(hex[4:6]))
		return c.WithAlpha(float64(mustHex(hex[6:8])) / 255), nil
	default:
		return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
	}
}

func mustHex(s string) int {
	v, _ := strconv.ParseInt(s, 16, 64)
	return int(v)
}

// resolvePage 计算页面尺寸与边距（pt）；空边距视为 0。
func resolvePage(p content.Page) (PageGeometry, error) {
	w, h, err := PageSize(p.Size)
	if err != nil {
		return PageGeometry{}, err
	}
	geo := PageGeometry{Width: w, Height: h}
	for _, m := range []struct {
		name  string
		value string
		dst   *float64
	}{
		{"top", p.MarginTop, &geo.Margin.Top},
		{"right", p.MarginRight, &geo.Margin.Right},
		{"bottom", p.MarginBottom, &geo.Margin.Bottom},
		{"left", p.MarginLeft, &geo.Margin.Left},
	} {
		if strings.TrimSpace(m.value) == "" {
			continue
		}
		l, err := ParseLength(m.value)
		if err != nil {
			return PageGeometry{}, fmt.Errorf("页边距 %s: %w", m.name, err)
		}
		*m.dst = l.ToPT()
	}
	if geo.ContentWidth() <= 0 {
		return PageGeometry{}, fmt.Errorf("页边距过大，内容宽度为 %.1fpt", geo.ContentWidth())
	}
	return geo, nil
}
