// Package content holds the copy, colors and page settings of the one-pager.
//
// The layout script in package layout decides where things go; this package only
// decides what is said. Strings may contain ${path} placeholders that are bound to
// JSON data at layout time.
package content

// Content 是一份 one-pager 的全部文案、配色与页面设置。
type Content struct {
	Meta        Meta
	Page        Page
	Palette     Palette
	Header      Header
	Hero        Hero
	Stats       []Figure
	Problem     Problem
	Systems     Systems
	Steps       Steps
	Impacts     Impacts
	Quote       Quote
	Audience    []Audience
	Retainer    Retainer
	Credentials []string
	CTA         CTA
}

// Meta 对应 PDF 文档信息。
type Meta struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Keywords []string
}

// Page 描述页面尺寸与边距，长度字符串支持 pt/mm/cm/in 后缀。
type Page struct {
	Size         string
	MarginTop    string
	MarginRight  string
	MarginBottom string
	MarginLeft   string
}

// Palette 把颜色名映射为 #RRGGBB 形式的十六进制值。
type Palette map[string]string

// Header 是页眉：品牌名、标语与右侧联系方式。
type Header struct {
	Brand        string
	Tagline      string
	Contact      string
	ContactLines []string
}

// Hero 是首屏：徽章、两段式标题与说明文字。
type Hero struct {
	Badge    string
	Headline string
	Accent   string
	Body     string
}

// Figure 是一个数字 + 说明的统计项。
type Figure struct {
	Value string
	Label string
}

// Problem 是痛点段落，Body 的开头若等于 Lead 则以粗体显示。
type Problem struct {
	Lead string
	Body string
}

// Systems 是左栏的服务卡片列表。
type Systems struct {
	Title string
	Items []System
}

// System 是一张服务卡片。
type System struct {
	Title       string
	Description string
	Flow        string
}

// Steps 是右栏的流程步骤。
type Steps struct {
	Title string
	Items []Step
}

// Step 是一个流程步骤。
type Step struct {
	Title       string
	Description string
}

// Impacts 是右栏的效果数字网格。
type Impacts struct {
	Title string
	Items []Figure
}

// Quote 是引言及署名。
type Quote struct {
	Text        string
	Attribution string
}

// Audience 是目标客户横条中的一格。
type Audience struct {
	Title    string
	Subtitle string
}

// Retainer 是月度服务包含项。
type Retainer struct {
	Title string
	Items []Highlight
}

// Highlight 是粗体开头加普通正文的一行。
type Highlight struct {
	Lead string
	Rest string
}

// CTA 是页面底部的行动号召条。
type CTA struct {
	Headline string
	Subline  string
	Contacts []Contact
}

// Contact 是一项联系方式及其标签。
type Contact struct {
	Value string
	Label string
}
