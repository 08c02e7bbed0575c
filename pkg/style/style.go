// Package style provides the immutable text style value combined by the
// markup parser and resolved by the wrapping engine.
//
// Each attribute is tri-state: unset, asserted, or negated. Negation
// exists so an inner markup frame can switch an inherited attribute off
// ("no-bold") regardless of what the outer frames assert. Composition
// reduces two styles with a single override rule: the later style wins on
// every field it touches.
package style

import (
	"strings"

	"github.com/arthur-debert/inkline/pkg/color"
)

// Attribute is a bit set of text attributes.
type Attribute uint16

// Text attribute flags.
const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrike
)

// Has reports whether the set contains attr.
func (a Attribute) Has(attr Attribute) bool { return a&attr != 0 }

// With returns the set with attr added.
func (a Attribute) With(attr Attribute) Attribute { return a | attr }

// Without returns the set with attr removed.
func (a Attribute) Without(attr Attribute) Attribute { return a &^ attr }

var attrNames = []struct {
	attr Attribute
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrHidden, "hidden"},
	{AttrStrike, "strike"},
}

// String lists the attribute names in the set.
func (a Attribute) String() string {
	var names []string
	for _, e := range attrNames {
		if a.Has(e.attr) {
			names = append(names, e.name)
		}
	}
	return strings.Join(names, " ")
}

// AttrByName maps a markup keyword to its attribute. Short aliases follow
// the reference markup grammar.
func AttrByName(name string) (Attribute, bool) {
	switch name {
	case "bold", "b":
		return AttrBold, true
	case "dim":
		return AttrDim, true
	case "italic", "i":
		return AttrItalic, true
	case "underline", "u":
		return AttrUnderline, true
	case "blink":
		return AttrBlink, true
	case "reverse":
		return AttrReverse, true
	case "hidden":
		return AttrHidden, true
	case "strike", "strikethrough", "s":
		return AttrStrike, true
	}
	return 0, false
}

// Style is an immutable style value. The zero value is the empty style,
// which is the identity under Compose. Style values are comparable
// with ==.
type Style struct {
	fg, bg       color.Color
	hasFg, hasBg bool
	noFg, noBg   bool
	set, unset   Attribute
}

// Empty is the identity style.
var Empty = Style{}

// New returns a style with the given foreground color.
func New(fg color.Color) Style {
	return Style{fg: fg, hasFg: true}
}

// WithForeground returns the style with the foreground set.
func (s Style) WithForeground(c color.Color) Style {
	s.fg, s.hasFg, s.noFg = c, true, false
	return s
}

// WithBackground returns the style with the background set.
func (s Style) WithBackground(c color.Color) Style {
	s.bg, s.hasBg, s.noBg = c, true, false
	return s
}

// WithoutForeground returns the style with the foreground negated: any
// inherited foreground is cleared during composition.
func (s Style) WithoutForeground() Style {
	s.fg, s.hasFg, s.noFg = color.Color{}, false, true
	return s
}

// WithoutBackground returns the style with the background negated.
func (s Style) WithoutBackground() Style {
	s.bg, s.hasBg, s.noBg = color.Color{}, false, true
	return s
}

// With returns the style with attr asserted.
func (s Style) With(attr Attribute) Style {
	s.set = s.set.With(attr)
	s.unset = s.unset.Without(attr)
	return s
}

// Without returns the style with attr negated.
func (s Style) Without(attr Attribute) Style {
	s.unset = s.unset.With(attr)
	s.set = s.set.Without(attr)
	return s
}

// Bold returns the style with bold asserted.
func (s Style) Bold() Style { return s.With(AttrBold) }

// Dim returns the style with dim asserted.
func (s Style) Dim() Style { return s.With(AttrDim) }

// Italic returns the style with italic asserted.
func (s Style) Italic() Style { return s.With(AttrItalic) }

// Underline returns the style with underline asserted.
func (s Style) Underline() Style { return s.With(AttrUnderline) }

// Blink returns the style with blink asserted.
func (s Style) Blink() Style { return s.With(AttrBlink) }

// Reverse returns the style with reverse video asserted.
func (s Style) Reverse() Style { return s.With(AttrReverse) }

// Hidden returns the style with hidden asserted.
func (s Style) Hidden() Style { return s.With(AttrHidden) }

// Strike returns the style with strikethrough asserted.
func (s Style) Strike() Style { return s.With(AttrStrike) }

// Foreground returns the foreground color; ok is false when unset.
func (s Style) Foreground() (c color.Color, ok bool) { return s.fg, s.hasFg }

// Background returns the background color; ok is false when unset.
func (s Style) Background() (c color.Color, ok bool) { return s.bg, s.hasBg }

// Attributes returns the asserted attribute set.
func (s Style) Attributes() Attribute { return s.set }

// Negations returns the negated attribute set.
func (s Style) Negations() Attribute { return s.unset }

// IsEmpty reports whether the style asserts or negates nothing.
func (s Style) IsEmpty() bool { return s == Style{} }

// Compose layers over on top of s and returns the result. Fields the
// later style touches win: its colors replace inherited colors, its
// negations clear inherited assertions, and its assertions clear
// inherited negations. Compose is associative, and composing with the
// empty style in either position is the identity.
func (s Style) Compose(over Style) Style {
	out := s
	if over.hasFg {
		out.fg, out.hasFg, out.noFg = over.fg, true, false
	} else if over.noFg {
		out.fg, out.hasFg, out.noFg = color.Color{}, false, true
	}
	if over.hasBg {
		out.bg, out.hasBg, out.noBg = over.bg, true, false
	} else if over.noBg {
		out.bg, out.hasBg, out.noBg = color.Color{}, false, true
	}
	out.set = (s.set &^ over.unset) | over.set
	out.unset = (s.unset &^ over.set) | over.unset
	return out
}

// Resolved strips negation state, leaving only the visible result of
// composition. The wrapping engine calls this so no tri-state data
// survives into segments.
func (s Style) Resolved() Style {
	s.unset = 0
	s.noFg, s.noBg = false, false
	return s
}

// Downsample returns the style with both colors mapped to the target
// capability tier. Under NoColor the colors are removed entirely and
// attributes are preserved.
func (s Style) Downsample(target color.System) Style {
	if target == color.NoColor {
		s.fg, s.bg = color.Color{}, color.Color{}
		s.hasFg, s.hasBg = false, false
		s.noFg, s.noBg = false, false
		return s
	}
	if s.hasFg {
		s.fg = color.Downsample(s.fg, target)
	}
	if s.hasBg {
		s.bg = color.Downsample(s.bg, target)
	}
	return s
}

// String renders the style in the parseable token grammar.
func (s Style) String() string {
	var parts []string
	for _, e := range attrNames {
		if s.set.Has(e.attr) {
			parts = append(parts, e.name)
		}
		if s.unset.Has(e.attr) {
			parts = append(parts, "no-"+e.name)
		}
	}
	if s.hasFg {
		parts = append(parts, s.fg.String())
	}
	if s.hasBg {
		parts = append(parts, "on", s.bg.String())
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
