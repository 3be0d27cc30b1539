package content

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ByLCY/onepager/dsl"
)

// Load 解析 .onepager 文件并叠加到默认文案之上。
func Load(path string) (*Content, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开内容文件 %s: %w", path, err)
	}
	defer file.Close()
	return Parse(path, file)
}

// Parse 从 reader 解析内容文件，name 用于错误定位。
func Parse(name string, r io.Reader) (*Content, error) {
	doc, err := dsl.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("解析内容文件失败: %w", err)
	}
	return FromDocument(doc)
}

// FromDocument 以 Default() 为底，用文档中出现的段落整体替换对应部分。
// 未出现的段落保留默认文案；段落内未知的键会被忽略。
func FromDocument(doc *dsl.Document) (*Content, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	c := Default()
	for _, section := range doc.Sections {
		var err error
		switch {
		case section.Meta != nil:
			c.Meta = parseMeta(section.Meta.Block, c.Meta.Creator)
		case section.Page != nil:
			c.Page = parsePage(section.Page.Block)
		case section.Palette != nil:
			err = parsePalette(section.Palette.Block, c.Palette)
		case section.Content != nil:
			err = applySection(c, section.Content)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

func applySection(c *Content, s *dsl.ContentSection) error {
	b := s.Block
	switch strings.ToLower(s.Name) {
	case "header":
		a := assignments(b)
		h := Header{Brand: a["brand"], Tagline: a["tagline"], Contact: a["contact"]}
		for _, cmd := range commands(b, "line") {
			h.ContactLines = append(h.ContactLines, arg(cmd, 0))
		}
		c.Header = h
	case "hero":
		a := assignments(b)
		c.Hero = Hero{Badge: a["badge"], Headline: a["headline"], Accent: a["accent"], Body: a["body"]}
	case "stats":
		c.Stats = figures(b)
	case "problem":
		a := assignments(b)
		c.Problem = Problem{Lead: a["lead"], Body: a["body"]}
	case "systems":
		sys := Systems{Title: assignments(b)["title"]}
		for _, cmd := range commands(b, "system") {
			a := assignments(cmd.Block)
			sys.Items = append(sys.Items, System{
				Title:       arg(cmd, 0),
				Description: a["description"],
				Flow:        a["flow"],
			})
		}
		c.Systems = sys
	case "steps":
		st := Steps{Title: assignments(b)["title"]}
		for _, cmd := range commands(b, "step") {
			st.Items = append(st.Items, Step{Title: arg(cmd, 0), Description: arg(cmd, 1)})
		}
		c.Steps = st
	case "impacts":
		c.Impacts = Impacts{Title: assignments(b)["title"], Items: figures(b)}
	case "quote":
		c.Quote = Quote{
			Text:        strings.Join(b.Texts(), " "),
			Attribution: assignments(b)["attribution"],
		}
	case "audience":
		var items []Audience
		for _, cmd := range commands(b, "group") {
			items = append(items, Audience{Title: arg(cmd, 0), Subtitle: arg(cmd, 1)})
		}
		c.Audience = items
	case "retainer":
		r := Retainer{Title: assignments(b)["title"]}
		for _, cmd := range commands(b, "item") {
			r.Items = append(r.Items, Highlight{Lead: arg(cmd, 0), Rest: arg(cmd, 1)})
		}
		c.Retainer = r
	case "credentials":
		c.Credentials = b.Texts()
	case "cta":
		a := assignments(b)
		cta := CTA{Headline: a["headline"], Subline: a["subline"]}
		for _, cmd := range commands(b, "contact") {
			cta.Contacts = append(cta.Contacts, Contact{Value: arg(cmd, 0), Label: arg(cmd, 1)})
		}
		c.CTA = cta
	default:
		return fmt.Errorf("%s: 未知的 section %q", s.Pos, s.Name)
	}
	return nil
}

func parseMeta(b *dsl.Block, creator string) Meta {
	meta := Meta{Creator: creator}
	for _, st := range statements(b) {
		if st.Assignment == nil {
			continue
		}
		v := st.Assignment.Value
		switch strings.ToLower(st.Assignment.Key) {
		case "title":
			meta.Title = v.Text()
		case "author":
			meta.Author = v.Text()
		case "subject":
			meta.Subject = v.Text()
		case "creator":
			meta.Creator = v.Text()
		case "keywords":
			meta.Keywords = v.Strings()
		}
	}
	return meta
}

func parsePage(b *dsl.Block) Page {
	page := DefaultPage()
	for _, st := range statements(b) {
		if st.Assignment == nil {
			continue
		}
		v := st.Assignment.Value
		switch strings.ToLower(st.Assignment.Key) {
		case "size":
			page.Size = v.Text()
		case "margin":
			applyMarginShorthand(&page, v.Strings())
		case "margin-top":
			page.MarginTop = v.Text()
		case "margin-right":
			page.MarginRight = v.Text()
		case "margin-bottom":
			page.MarginBottom = v.Text()
		case "margin-left":
			page.MarginLeft = v.Text()
		}
	}
	return page
}

// applyMarginShorthand 按 CSS 的 1~4 值规则展开 margin。
func applyMarginShorthand(page *Page, values []string) {
	switch len(values) {
	case 1:
		page.MarginTop, page.MarginRight, page.MarginBottom, page.MarginLeft = values[0], values[0], values[0], values[0]
	case 2:
		page.MarginTop, page.MarginBottom = values[0], values[0]
		page.MarginRight, page.MarginLeft = values[1], values[1]
	case 3:
		page.MarginTop, page.MarginBottom = values[0], values[2]
		page.MarginRight, page.MarginLeft = values[1], values[1]
	case 4:
		page.MarginTop, page.MarginRight, page.MarginBottom, page.MarginLeft = values[0], values[1], values[2], values[3]
	}
}

// parsePalette 支持 `color name = #hex` 与 `name: #hex` 两种写法。
func parsePalette(b *dsl.Block, palette Palette) error {
	for _, st := range statements(b) {
		switch {
		case st.Assignment != nil:
			palette[st.Assignment.Key] = st.Assignment.Value.Text()
		case st.Command != nil && st.Command.Name == "color":
			args := st.Command.Args
			if len(args) < 2 {
				return fmt.Errorf("%s: color 声明缺少名称或取值", st.Command.Pos)
			}
			palette[args[0].Value] = args[len(args)-1].Value
		}
	}
	return nil
}

func statements(b *dsl.Block) []*dsl.Statement {
	if b == nil {
		return nil
	}
	return b.Statements
}

func assignments(b *dsl.Block) map[string]string {
	out := map[string]string{}
	for _, st := range statements(b) {
		if st.Assignment != nil {
			out[strings.ToLower(st.Assignment.Key)] = st.Assignment.Value.Text()
		}
	}
	return out
}

func commands(b *dsl.Block, name string) []*dsl.Command {
	var out []*dsl.Command
	for _, st := range statements(b) {
		if st.Command != nil && st.Command.Name == name {
			out = append(out, st.Command)
		}
	}
	return out
}

func figures(b *dsl.Block) []Figure {
	var out []Figure
	for _, cmd := range commands(b, "stat") {
		out = append(out, Figure{Value: arg(cmd, 0), Label: arg(cmd, 1)})
	}
	return out
}

func arg(cmd *dsl.Command, i int) string {
	if i < len(cmd.Args) {
		return cmd.Args[i].Value
	}
	return ""
}
