package canvasrenderer

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"

	"github.com/ByLCY/onepager/content"
	"github.com/ByLCY/onepager/fonts"
	"github.com/ByLCY/onepager/layout"
)

func TestTextWidth(t *testing.T) {
	r := NewRenderer()

	w, err := r.TextWidth("Hello world", layout.FontRegular, 12)
	test.Error(t, err)
	test.That(t, w > 0, "width must be positive")

	double, err := r.TextWidth("Hello world", layout.FontRegular, 24)
	test.Error(t, err)
	test.That(t, math.Abs(double-2*w) < 1e-6, "width should scale with font size")

	bold, err := r.TextWidth("Hello world", layout.FontBold, 12)
	test.Error(t, err)
	test.That(t, bold != w, "bold and regular faces should measure differently")

	empty, err := r.TextWidth("", layout.FontRegular, 12)
	test.Error(t, err)
	test.Float(t, empty, 0)
}

func TestTextWidthUnknownFont(t *testing.T) {
	r := NewRenderer()
	_, err := r.TextWidth("x", layout.Font("Comic-Sans"), 12)
	test.That(t, err != nil, "unknown font should fail")
}

func TestInjectedFonts(t *testing.T) {
	data, err := fonts.Load("Helvetica-Bold")
	test.Error(t, err)
	path := filepath.Join(t.TempDir(), "bold.ttf")
	test.Error(t, os.WriteFile(path, data, 0o644))

	r := NewRendererWithOptions(Options{Fonts: map[string]Resource{
		"Helvetica": {Path: path},
		"Custom":    {Bytes: data},
		"Missing":   {Path: filepath.Join(t.TempDir(), "nope.ttf")},
	}})
	regular, err := r.TextWidth("Hello", layout.FontRegular, 10)
	test.Error(t, err)
	bold, err := NewRenderer().TextWidth("Hello", layout.FontBold, 10)
	test.Error(t, err)
	test.Float(t, regular, bold)

	_, err = r.TextWidth("Hello", layout.Font("Custom"), 10)
	test.Error(t, err)
	_, err = r.TextWidth("Hello", layout.Font("Missing"), 10)
	test.That(t, err != nil, "unreadable font path should fail on use")
}

func TestRenderDefaultOnePager(t *testing.T) {
	r := NewRenderer()
	res, err := layout.Build(content.Default(), layout.BuildOptions{Measurer: r})
	test.Error(t, err)

	pdfBytes, err := r.Render(res)
	test.Error(t, err)
	test.That(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")), "output should be a PDF")
	test.That(t, len(pdfBytes) > 1024, "PDF unexpectedly small")
}

func TestRenderRejectsBadInput(t *testing.T) {
	r := NewRenderer()
	_, err := r.Render(nil)
	test.That(t, err != nil, "nil result should fail")

	_, err = r.Render(&layout.Result{})
	test.That(t, err != nil, "zero page size should fail")

	bad := &layout.Result{
		Page: layout.PageGeometry{Width: 100, Height: 100},
		Items: []layout.Item{{Path: &layout.Path{Segments: []layout.Segment{
			{Op: layout.OpCubeTo, Pts: []float64{1, 2}},
		}}}},
	}
	_, err = r.Render(bad)
	test.That(t, err != nil, "malformed path should fail")
}

func TestColorFromLayout(t *testing.T) {
	c := colorFromLayout(layout.RGB(300, -5, 128).WithAlpha(0.5))
	r, g, b, a := c.RGBA()
	test.T(t, a>>8, uint32(128))
	test.That(t, r>>8 == 128 && g == 0 && b>>8 == 64, "NRGBA should be premultiplied by RGBA()")
}
