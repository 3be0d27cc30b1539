package layout

import (
	"errors"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/onepager/content"
)

// charMeasurer 是测试用的度量后端：每个字符宽 size*0.5，避免依赖 renderer 与真实字体。
type charMeasurer struct{}

func (charMeasurer) TextWidth(text string, _ Font, size float64) (float64, error) {
	return float64(utf8.RuneCountInString(text)) * size * 0.5, nil
}

var errMeasure = errors.New("boom")

// failingMeasurer 在第 n 次调用时返回错误。
type failingMeasurer struct {
	n     int
	calls int
}

func (f *failingMeasurer) TextWidth(text string, font Font, size float64) (float64, error) {
	f.calls++
	if f.calls >= f.n {
		return 0, errMeasure
	}
	return charMeasurer{}.TextWidth(text, font, size)
}

func build(t *testing.T, c *content.Content, opts BuildOptions) *Result {
	t.Helper()
	if opts.Measurer == nil {
		opts.Measurer = charMeasurer{}
	}
	res, err := Build(c, opts)
	if err != nil {
		t.Fatalf("布局计算失败: %v", err)
	}
	return res
}

func findText(t *testing.T, res *Result, s string) *Text {
	t.Helper()
	for _, it := range res.Items {
		if it.Text != nil && it.Text.Content == s {
			return it.Text
		}
	}
	t.Fatalf("未找到文本 %q", s)
	return nil
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestBuildDefaultPage(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})

	want := PageGeometry{Width: 612, Height: 792, Margin: Margin{Top: 36, Right: 36, Bottom: 28, Left: 36}}
	if diff := cmp.Diff(want, res.Page); diff != "" {
		t.Fatalf("page geometry mismatch (-want +got):\n%s", diff)
	}
	if res.Page.ContentWidth() != 540 {
		t.Fatalf("content width = %g", res.Page.ContentWidth())
	}
	if res.Meta.Title != "Lighten AI — Fractional AI Officer for Shopify Brands" || res.Meta.Creator != "onepager" {
		t.Fatalf("unexpected meta: %+v", res.Meta)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", res.Warnings)
	}

	bg := res.Items[0].Rect
	if bg == nil || bg.X != 0 || bg.Y != 0 || bg.Width != 612 || bg.Height != 792 {
		t.Fatalf("first item should be the page background, got %+v", res.Items[0])
	}
	for i, it := range res.Items {
		set := 0
		for _, p := range []bool{it.Rect != nil, it.Text != nil, it.Circle != nil, it.Line != nil, it.Path != nil} {
			if p {
				set++
			}
		}
		if set != 1 {
			t.Fatalf("item %d has %d shapes set", i, set)
		}
		if it.Text != nil && it.Text.Content == "" {
			t.Fatalf("item %d is an empty text", i)
		}
	}
}

func TestBuildItemsInsidePage(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})
	for i, it := range res.Items {
		if r := it.Rect; r != nil && (r.X < 0 || r.X+r.Width > 612+1e-9 || r.Width < 0 || r.Height < 0) {
			t.Fatalf("rect %d outside the page: %+v", i, r)
		}
		if tx := it.Text; tx != nil && (tx.X < 36-1e-9 || tx.X > 576+1e-9) {
			t.Fatalf("text %d anchored outside the content area: %+v", i, tx)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a := build(t, content.Default(), BuildOptions{})
	b := build(t, content.Default(), BuildOptions{})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("two builds differ (-first +second):\n%s", diff)
	}
}

func TestBuildHeader(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})

	brand := findText(t, res, "Lighten AI")
	if !near(brand.X, 60) || !near(brand.Y, 745) || brand.Font != FontBold || brand.Size != 13 {
		t.Fatalf("brand misplaced: %+v", brand)
	}
	contact := findText(t, res, `Robert "Berto" — Founder`)
	if contact.Align != AlignRight || !near(contact.X, 576) || !near(contact.Y, 748) {
		t.Fatalf("contact misplaced: %+v", contact)
	}
	second := findText(t, res, "lightenai.co  |  linkedin.com/in/bertomill")
	if !near(second.Y, 729) {
		t.Fatalf("second contact line y = %g, want 729", second.Y)
	}
	badge := findText(t, res, "Built for Shopify Brand Founders")
	if !near(badge.Y, 714-9) {
		t.Fatalf("badge y = %g", badge.Y)
	}
}

func TestBuildStatsEvenlySpaced(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})
	values := []string{"200+", "3x", "70%", "$0"}
	cell := 540.0 / 4
	first := findText(t, res, values[0])
	for i, v := range values {
		txt := findText(t, res, v)
		if txt.Align != AlignCenter || !near(txt.X, 36+float64(i)*cell+cell/2) || !near(txt.Y, first.Y) {
			t.Fatalf("stat %q misplaced: %+v", v, txt)
		}
	}
	label := findText(t, res, "AI Systems Built")
	if !near(first.Y-label.Y, 10) {
		t.Fatalf("label should sit 10pt below value, got %g", first.Y-label.Y)
	}
}

func TestBuildProblemLeadIsBold(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})
	lead := findText(t, res, "Sound familiar?")
	if lead.Font != FontBold || lead.Color != RGB(0x8B, 0x69, 0x14) || !near(lead.X, 46) {
		t.Fatalf("lead not drawn in bold problem-lead color: %+v", lead)
	}
	leadW := 15 * 6.5 * 0.5
	var rest *Text
	for _, it := range res.Items {
		if it.Text != nil && near(it.Text.Y, lead.Y) && near(it.Text.X, 46+leadW) {
			rest = it.Text
		}
	}
	if rest == nil || rest.Font != FontRegular || !strings.HasPrefix(rest.Content, " You’re writing") {
		t.Fatalf("rest of the first line missing or wrong: %+v", rest)
	}
}

func TestBuildColumnsDoNotOverlapAudience(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})
	leftW := 540 * leftColumnRatio

	var lastCard, strip *Rect
	for _, it := range res.Items {
		r := it.Rect
		if r == nil || r.Paint.Fill == nil {
			continue
		}
		if near(r.Width, leftW) && near(r.X, 36) {
			lastCard = r
		}
		if near(r.Width, 540) && near(r.Height, 28) && *r.Paint.Fill == RGB(0x6B, 0x8F, 0x71) {
			strip = r
		}
	}
	if lastCard == nil || strip == nil {
		t.Fatalf("system card or audience strip missing")
	}
	if top := strip.Y + strip.Height; top > lastCard.Y-cardGap-2+1e-9 {
		t.Fatalf("audience strip top %g overlaps system card bottom %g", top, lastCard.Y)
	}

	// 右栏第 2 个步骤紧接第 1 个步骤的描述之后
	s1 := findText(t, res, "Store Audit")
	s2 := findText(t, res, "Custom AI Build")
	rightX := 36 + leftW + columnGap + 20
	if !near(s1.X, rightX) || !near(s2.X, rightX) || s2.Y >= s1.Y {
		t.Fatalf("steps misplaced: %+v %+v", s1, s2)
	}
}

func TestBuildCredentialsCentered(t *testing.T) {
	c := content.Default()
	res := build(t, c, BuildOptions{})
	first := findText(t, res, c.Credentials[0])
	lastStr := c.Credentials[len(c.Credentials)-1]
	last := findText(t, res, lastStr)
	lastEnd := last.X + float64(utf8.RuneCountInString(lastStr))*5.5*0.5
	if !near(first.X-36, 576-lastEnd) {
		t.Fatalf("credentials not centered: left gap %g, right gap %g", first.X-36, 576-lastEnd)
	}
}

func TestBuildCTAContactsRightAligned(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})
	last := findText(t, res, "linkedin.com/in/bertomill")
	if last.Align != AlignRight || !near(last.X, 564) {
		t.Fatalf("last contact misplaced: %+v", last)
	}
	email := findText(t, res, "berto@lightenai.co")
	if email.X >= last.X {
		t.Fatalf("contacts should be laid out right to left: %+v", email)
	}
}

func TestBuildIcons(t *testing.T) {
	res := build(t, content.Default(), BuildOptions{})
	paths := 0
	for _, it := range res.Items {
		if it.Path != nil {
			paths++
		}
	}
	// 羽毛图标 4 条路径 + 6 个星形项目符号
	if paths != 10 {
		t.Fatalf("expected 10 paths, got %d", paths)
	}
	for _, seg := range starSegments(4, 2.4, 0.8) {
		if seg.Op == OpClose {
			continue
		}
		if r := math.Hypot(seg.Pts[0], seg.Pts[1]); !near(r, 2.4) && !near(r, 0.8) {
			t.Fatalf("star vertex at radius %g", r)
		}
	}
}

func TestBuildFlowCaptionTruncated(t *testing.T) {
	c := content.Default()
	long := strings.Repeat("STEP → ", 30)
	c.Systems.Items = c.Systems.Items[:1]
	c.Systems.Items[0].Flow = long
	res := build(t, c, BuildOptions{})
	want := truncateGraphemes(long, captionLimit) + "..."
	if got := findText(t, res, want); got.Size != 4.5 {
		t.Fatalf("caption size = %g", got.Size)
	}
}

func TestTruncateGraphemes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"hello", 3, "hel"},
		{"hi", 5, "hi"},
		{"e\u0301e\u0301e\u0301", 2, "e\u0301e\u0301"},
		{"\U0001F1E8\U0001F1E6\U0001F1FA\U0001F1F8", 1, "\U0001F1E8\U0001F1E6"}, // 国旗
		{"", 3, ""},
	}
	for _, tt := range tests {
		if got := truncateGraphemes(tt.in, tt.n); got != tt.want {
			t.Fatalf("truncateGraphemes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestBuildPlaceholders(t *testing.T) {
	c := content.Default()
	c.Hero.Headline = "Hi ${user.name}"
	c.Hero.Accent = "${missing.value} and ${missing.value}"

	data := map[string]any{"user": map[string]any{"name": "Ada"}}
	res := build(t, c, BuildOptions{Data: data})
	findText(t, res, "Hi Ada")
	findText(t, res, "${missing.value} and ${missing.value}")
	if diff := cmp.Diff([]string{"未解析的占位符 ${missing.value}"}, res.Warnings); diff != "" {
		t.Fatalf("warnings mismatch (-want +got):\n%s", diff)
	}

	_, err := Build(c, BuildOptions{Measurer: charMeasurer{}, Data: data, Strict: true})
	if err == nil || !strings.Contains(err.Error(), "missing.value") {
		t.Fatalf("strict build should fail on unresolved placeholder, got %v", err)
	}
}

func TestBuildMeasureErrorAborts(t *testing.T) {
	for _, n := range []int{1, 5, 40} {
		_, err := Build(content.Default(), BuildOptions{Measurer: &failingMeasurer{n: n}})
		if !errors.Is(err, errMeasure) {
			t.Fatalf("n=%d: expected measurement error, got %v", n, err)
		}
	}
}

func TestBuildRejectsBadInput(t *testing.T) {
	if _, err := Build(nil, BuildOptions{Measurer: charMeasurer{}}); err == nil {
		t.Fatalf("nil content should fail")
	}
	if _, err := Build(content.Default(), BuildOptions{}); err == nil {
		t.Fatalf("missing measurer should fail")
	}

	c := content.Default()
	c.Palette[content.ColorGreen] = "not-a-color"
	if _, err := Build(c, BuildOptions{Measurer: charMeasurer{}}); err == nil || !strings.Contains(err.Error(), "green") {
		t.Fatalf("bad palette color should fail, got %v", err)
	}

	c = content.Default()
	c.Page.MarginLeft = "400pt"
	c.Page.MarginRight = "400pt"
	if _, err := Build(c, BuildOptions{Measurer: charMeasurer{}}); err == nil {
		t.Fatalf("oversized margins should fail")
	}

	c = content.Default()
	c.Page.Size = "tabloid"
	if _, err := Build(c, BuildOptions{Measurer: charMeasurer{}}); err == nil {
		t.Fatalf("unknown page size should fail")
	}
}

func TestBuildCustomPage(t *testing.T) {
	c := content.Default()
	c.Page = content.Page{Size: "a4", MarginTop: "10mm", MarginRight: "10mm", MarginBottom: "10mm", MarginLeft: "10mm"}
	res := build(t, c, BuildOptions{})
	m := 10 * MmToPt
	if !near(res.Page.Margin.Left, m) || !near(res.Page.Width, 210*MmToPt) {
		t.Fatalf("unexpected geometry: %+v", res.Page)
	}
	brand := findText(t, res, "Lighten AI")
	if !near(brand.X, m+24) || !near(brand.Y, res.Page.Height-m-11) {
		t.Fatalf("brand should follow the margins: %+v", brand)
	}
}

func TestBuildPaletteOverride(t *testing.T) {
	c := content.Default()
	c.Palette[content.ColorGreen] = "#000"
	delete(c.Palette, content.ColorWhite)
	res := build(t, c, BuildOptions{})

	last := res.Items[len(res.Items)-1]
	if last.Text == nil || last.Text.Color != RGB(255, 255, 255).WithAlpha(0.65) {
		t.Fatalf("missing palette entries should fall back to defaults, got %+v", last)
	}
	accent := findText(t, res, "Without Scaling Your Team.")
	if accent.Color != RGB(0, 0, 0) {
		t.Fatalf("accent should use overridden green, got %+v", accent.Color)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#ABC", RGB(0xAA, 0xBB, 0xCC)},
		{"#6B8F71", RGB(0x6B, 0x8F, 0x71)},
		{"6b8f71", RGB(0x6B, 0x8F, 0x71)},
		{"#FFFFFF00", RGB(255, 255, 255).WithAlpha(0)},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if err != nil {
			t.Fatalf("parseColor(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("parseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GGGGGG", "red"} {
		if _, err := parseColor(bad); err == nil {
			t.Fatalf("parseColor(%q) should fail", bad)
		}
	}
}
