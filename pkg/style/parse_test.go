package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/inkline/pkg/color"
	"github.com/arthur-debert/inkline/pkg/style"
)

func TestParse(t *testing.T) {
	t.Run("attributes and foreground", func(t *testing.T) {
		s := style.Parse("bold italic red")
		assert.True(t, s.Attributes().Has(style.AttrBold))
		assert.True(t, s.Attributes().Has(style.AttrItalic))
		fg, ok := s.Foreground()
		assert.True(t, ok)
		assert.Equal(t, color.Red, fg)
	})

	t.Run("on introduces background", func(t *testing.T) {
		s := style.Parse("red on blue")
		fg, _ := s.Foreground()
		bg, ok := s.Background()
		assert.Equal(t, color.Red, fg)
		assert.True(t, ok)
		assert.Equal(t, color.Blue, bg)
	})

	t.Run("hex and rgb colors", func(t *testing.T) {
		s := style.Parse("#ff8700 on rgb(10,20,30)")
		fg, _ := s.Foreground()
		bg, _ := s.Background()
		assert.Equal(t, color.RGB(255, 135, 0), fg)
		assert.Equal(t, color.RGB(10, 20, 30), bg)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, style.Parse("bold red"), style.Parse("BOLD Red"))
	})

	t.Run("no- prefix negates attributes", func(t *testing.T) {
		s := style.Parse("no-bold no-underline")
		assert.True(t, s.Negations().Has(style.AttrBold))
		assert.True(t, s.Negations().Has(style.AttrUnderline))
	})

	t.Run("no- prefix negates colors", func(t *testing.T) {
		s := style.Empty.WithForeground(color.Red).Compose(style.Parse("no-fg"))
		_, ok := s.Foreground()
		assert.False(t, ok)

		s = style.Empty.WithBackground(color.Red).Compose(style.Parse("no-bg"))
		_, ok = s.Background()
		assert.False(t, ok)
	})

	t.Run("unknown tokens are ignored", func(t *testing.T) {
		s := style.Parse("bold wibble red")
		assert.True(t, s.Attributes().Has(style.AttrBold))
		fg, ok := s.Foreground()
		assert.True(t, ok)
		assert.Equal(t, color.Red, fg)
	})

	t.Run("empty spec is the empty style", func(t *testing.T) {
		assert.True(t, style.Parse("").IsEmpty())
		assert.True(t, style.Parse("   ").IsEmpty())
	})
}

func TestParseWith(t *testing.T) {
	themed := map[string]style.Style{
		"danger": style.Empty.Bold().WithForeground(color.BrightRed),
	}
	resolve := func(name string) (style.Style, bool) {
		s, ok := themed[name]
		return s, ok
	}

	t.Run("resolver supplies named styles", func(t *testing.T) {
		s, ok := style.ParseWith("danger underline", resolve)
		assert.True(t, ok)
		assert.True(t, s.Attributes().Has(style.AttrBold))
		assert.True(t, s.Attributes().Has(style.AttrUnderline))
		fg, _ := s.Foreground()
		assert.Equal(t, color.BrightRed, fg)
	})

	t.Run("recognition flag", func(t *testing.T) {
		_, ok := style.ParseWith("bold bogus", nil)
		assert.True(t, ok)

		_, ok = style.ParseWith("bogus wibble", nil)
		assert.False(t, ok)

		_, ok = style.ParseWith("danger", resolve)
		assert.True(t, ok)

		_, ok = style.ParseWith("danger", nil)
		assert.False(t, ok)
	})

	t.Run("data tokens defeat recognition", func(t *testing.T) {
		// A token that could never be part of a style marks the whole
		// spec as bracketed data, even next to a valid alias.
		for _, spec := range []string{"a, b", "b, i", "1, 2, 3", "bold {x}"} {
			_, ok := style.ParseWith(spec, nil)
			assert.False(t, ok, spec)
		}

		// Identifier-shaped unknowns stay lenient.
		_, ok := style.ParseWith("bold some_name", nil)
		assert.True(t, ok)
	})
}
