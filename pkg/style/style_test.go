package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/inkline/pkg/color"
	"github.com/arthur-debert/inkline/pkg/style"
)

func TestStyleBuilders(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		assert.True(t, style.Empty.IsEmpty())
		assert.True(t, style.Style{}.IsEmpty())
	})

	t.Run("foreground and background", func(t *testing.T) {
		s := style.Empty.WithForeground(color.Red).WithBackground(color.Blue)
		fg, ok := s.Foreground()
		assert.True(t, ok)
		assert.Equal(t, color.Red, fg)
		bg, ok := s.Background()
		assert.True(t, ok)
		assert.Equal(t, color.Blue, bg)
	})

	t.Run("attributes accumulate", func(t *testing.T) {
		s := style.Empty.Bold().Italic().Underline()
		attrs := s.Attributes()
		assert.True(t, attrs.Has(style.AttrBold))
		assert.True(t, attrs.Has(style.AttrItalic))
		assert.True(t, attrs.Has(style.AttrUnderline))
		assert.False(t, attrs.Has(style.AttrDim))
	})

	t.Run("negation displaces assertion", func(t *testing.T) {
		s := style.Empty.Bold().Without(style.AttrBold)
		assert.False(t, s.Attributes().Has(style.AttrBold))
		assert.True(t, s.Negations().Has(style.AttrBold))

		s = s.Bold()
		assert.True(t, s.Attributes().Has(style.AttrBold))
		assert.False(t, s.Negations().Has(style.AttrBold))
	})
}

func TestCompose(t *testing.T) {
	red := style.Empty.WithForeground(color.Red)
	blue := style.Empty.WithForeground(color.Blue)
	bold := style.Empty.Bold()

	t.Run("empty is the identity", func(t *testing.T) {
		s := red.Bold().WithBackground(color.Indexed(200))
		assert.Equal(t, s, s.Compose(style.Empty))
		assert.Equal(t, s, style.Empty.Compose(s))
	})

	t.Run("later color wins", func(t *testing.T) {
		out := red.Compose(blue)
		fg, ok := out.Foreground()
		assert.True(t, ok)
		assert.Equal(t, color.Blue, fg)
	})

	t.Run("untouched fields inherit", func(t *testing.T) {
		out := red.Compose(bold)
		fg, ok := out.Foreground()
		assert.True(t, ok)
		assert.Equal(t, color.Red, fg)
		assert.True(t, out.Attributes().Has(style.AttrBold))
	})

	t.Run("negation clears inherited attribute", func(t *testing.T) {
		out := bold.Compose(style.Empty.Without(style.AttrBold))
		assert.False(t, out.Attributes().Has(style.AttrBold))
		assert.True(t, out.Negations().Has(style.AttrBold))
	})

	t.Run("assertion clears inherited negation", func(t *testing.T) {
		out := style.Empty.Without(style.AttrBold).Compose(bold)
		assert.True(t, out.Attributes().Has(style.AttrBold))
		assert.False(t, out.Negations().Has(style.AttrBold))
	})

	t.Run("negated color clears inherited color", func(t *testing.T) {
		out := red.Compose(style.Empty.WithoutForeground())
		_, ok := out.Foreground()
		assert.False(t, ok)
	})

	t.Run("associative", func(t *testing.T) {
		a := red.Bold()
		b := style.Empty.Without(style.AttrBold).WithBackground(color.Green)
		c := blue.Dim()
		assert.Equal(t, a.Compose(b).Compose(c), a.Compose(b.Compose(c)))
	})
}

func TestResolved(t *testing.T) {
	s := style.Empty.Bold().Without(style.AttrDim).WithoutForeground().WithBackground(color.Red)
	out := s.Resolved()

	assert.True(t, out.Attributes().Has(style.AttrBold))
	assert.Equal(t, style.Attribute(0), out.Negations())
	_, ok := out.Foreground()
	assert.False(t, ok)
	bg, ok := out.Background()
	assert.True(t, ok)
	assert.Equal(t, color.Red, bg)

	t.Run("resolved styles compare equal regardless of negation history", func(t *testing.T) {
		plain := style.Empty.Bold().WithBackground(color.Red)
		assert.Equal(t, plain, out)
	})
}

func TestStyleDownsample(t *testing.T) {
	t.Run("no color strips colors and keeps attributes", func(t *testing.T) {
		s := style.Empty.Bold().WithForeground(color.RGB(1, 2, 3)).WithBackground(color.Indexed(99))
		out := s.Downsample(color.NoColor)
		_, ok := out.Foreground()
		assert.False(t, ok)
		_, ok = out.Background()
		assert.False(t, ok)
		assert.True(t, out.Attributes().Has(style.AttrBold))
	})

	t.Run("both colors are mapped", func(t *testing.T) {
		s := style.Empty.
			WithForeground(color.RGB(255, 0, 0)).
			WithBackground(color.RGB(0, 0, 0))
		out := s.Downsample(color.Standard)
		fg, _ := out.Foreground()
		bg, _ := out.Background()
		assert.Equal(t, color.BrightRed, fg)
		assert.Equal(t, color.Black, bg)
	})
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "none", style.Empty.String())
	assert.Equal(t, "bold red", style.Empty.Bold().WithForeground(color.Red).String())
	assert.Equal(t, "no-dim", style.Empty.Without(style.AttrDim).String())
	assert.Equal(t, "underline green on blue",
		style.Empty.Underline().WithForeground(color.Green).WithBackground(color.Blue).String())

	t.Run("round-trips through Parse", func(t *testing.T) {
		s := style.Empty.Bold().Without(style.AttrBlink).
			WithForeground(color.Indexed(120)).WithBackground(color.RGB(16, 32, 48))
		assert.Equal(t, s, style.Parse(s.String()))
	})
}

func TestAttrByName(t *testing.T) {
	for name, want := range map[string]style.Attribute{
		"bold":          style.AttrBold,
		"b":             style.AttrBold,
		"italic":        style.AttrItalic,
		"i":             style.AttrItalic,
		"u":             style.AttrUnderline,
		"strike":        style.AttrStrike,
		"strikethrough": style.AttrStrike,
		"s":             style.AttrStrike,
		"reverse":       style.AttrReverse,
	} {
		got, ok := style.AttrByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := style.AttrByName("sparkle")
	assert.False(t, ok)
}
