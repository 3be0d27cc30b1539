// Package fonts provides the built-in font files used when no external fonts
// are configured. The Go font family stands in for the PDF base-14 Helvetica
// names used by the layout.
package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

var builtin = map[string][]byte{
	"helvetica":             goregular.TTF,
	"helvetica-bold":        gobold.TTF,
	"helvetica-oblique":     goitalic.TTF,
	"helvetica-boldoblique": gobolditalic.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "Helvetica-Bold" 或 "embed:Helvetica-Bold"（不区分大小写）。
func Load(name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "embed:")))
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("没有名为 %s 的内置字体", name)
	}
	return data, nil
}

// Names 返回全部内置字体名。
func Names() []string {
	return []string{"Helvetica", "Helvetica-Bold", "Helvetica-Oblique", "Helvetica-BoldOblique"}
}
