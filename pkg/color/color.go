// Package color defines the terminal color model used throughout inkline.
//
// A Color is an immutable value in one of four encodings: the terminal's
// default color, one of the 16 standard palette entries, a 256-color
// palette index, or a 24-bit RGB triple. Colors compare structurally and
// carry no terminal state; converting a color down to a lower capability
// tier is handled by Downsample.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// System is a terminal's color capability tier. Higher tiers can represent
// every color of the tiers below them.
type System int

// Capability tiers, in increasing order.
const (
	NoColor System = iota
	Standard
	EightBit
	TrueColor
)

// String returns the tier name as used in configuration and CLI flags.
func (s System) String() string {
	switch s {
	case NoColor:
		return "none"
	case Standard:
		return "standard"
	case EightBit:
		return "256"
	case TrueColor:
		return "truecolor"
	default:
		return "unknown"
	}
}

// ParseSystem converts a configuration string to a System.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "nocolor", "no-color":
		return NoColor, nil
	case "standard", "16", "ansi":
		return Standard, nil
	case "256", "eightbit", "8bit":
		return EightBit, nil
	case "truecolor", "24bit", "rgb":
		return TrueColor, nil
	}
	return NoColor, fmt.Errorf("unknown color system %q", s)
}

// Kind identifies a color's encoding.
type Kind uint8

// Color encodings.
const (
	KindDefault Kind = iota
	KindNamed
	KindIndexed
	KindRGB
)

// Color is an immutable terminal color value. The zero value is the
// terminal's default color. Equality is structural; Color values are
// comparable with ==.
type Color struct {
	kind    Kind
	index   uint8
	r, g, b uint8
}

// Default is the terminal's default foreground/background color.
var Default = Color{kind: KindDefault}

// The 16 standard palette entries.
var (
	Black         = Named(0)
	Red           = Named(1)
	Green         = Named(2)
	Yellow        = Named(3)
	Blue          = Named(4)
	Magenta       = Named(5)
	Cyan          = Named(6)
	White         = Named(7)
	BrightBlack   = Named(8)
	BrightRed     = Named(9)
	BrightGreen   = Named(10)
	BrightYellow  = Named(11)
	BrightBlue    = Named(12)
	BrightMagenta = Named(13)
	BrightCyan    = Named(14)
	BrightWhite   = Named(15)
)

// Named returns one of the 16 standard colors. Indices above 15 wrap into
// the standard range.
func Named(index uint8) Color {
	return Color{kind: KindNamed, index: index & 0x0f}
}

// Indexed returns a 256-color palette entry.
func Indexed(index uint8) Color {
	return Color{kind: KindIndexed, index: index}
}

// RGB returns a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Kind reports the color's encoding.
func (c Color) Kind() Kind { return c.kind }

// Index returns the palette index for named and indexed colors, and 0
// otherwise.
func (c Color) Index() uint8 {
	if c.kind == KindNamed || c.kind == KindIndexed {
		return c.index
	}
	return 0
}

// IsDefault reports whether this is the terminal default color.
func (c Color) IsDefault() bool { return c.kind == KindDefault }

// RGBValues returns the 24-bit components of the color. Named and indexed
// colors resolve through the fixed palette; the default color resolves to
// black.
func (c Color) RGBValues() (r, g, b uint8) {
	switch c.kind {
	case KindRGB:
		return c.r, c.g, c.b
	case KindNamed:
		return paletteRGB(c.index)
	case KindIndexed:
		return paletteRGB(c.index)
	}
	return 0, 0, 0
}

// String returns a readable representation for logs and test failures.
func (c Color) String() string {
	switch c.kind {
	case KindDefault:
		return "default"
	case KindNamed:
		return namedNames[c.index]
	case KindIndexed:
		return fmt.Sprintf("color(%d)", c.index)
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "invalid"
}

// Hex returns the CSS hex form of the color's RGB resolution.
func (c Color) Hex() string {
	r, g, b := c.RGBValues()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Lighten moves the color toward white by amount (0..1). Named and indexed
// colors are converted to RGB first.
func (c Color) Lighten(amount float64) Color {
	return c.blendWith(colorful.Color{R: 1, G: 1, B: 1}, amount)
}

// Darken moves the color toward black by amount (0..1).
func (c Color) Darken(amount float64) Color {
	return c.blendWith(colorful.Color{}, amount)
}

// Blend mixes the color with other by amount (0 keeps the receiver, 1
// yields other).
func (c Color) Blend(other Color, amount float64) Color {
	r, g, b := other.RGBValues()
	return c.blendWith(toColorful(r, g, b), amount)
}

func (c Color) blendWith(target colorful.Color, amount float64) Color {
	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}
	r, g, b := c.RGBValues()
	mixed := toColorful(r, g, b).BlendRgb(target, amount).Clamped()
	return RGB(uint8(mixed.R*255+0.5), uint8(mixed.G*255+0.5), uint8(mixed.B*255+0.5))
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

var namedNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright_black", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// Parse converts a color description to a Color. Supported forms:
//
//   - named colors: "red", "bright_blue", "grey"
//   - hex: "#ff0000", "#f00"
//   - 24-bit: "rgb(255,0,0)"
//   - palette: "color(196)"
//   - "default" for the terminal default
//
// The second return value is false when the string is not a color.
func Parse(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))

	if s == "default" {
		return Default, true
	}
	if idx, ok := namedIndex(s); ok {
		return Named(idx), true
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if inner, ok := cutWrapped(s, "rgb(", ")"); ok {
		parts := strings.Split(inner, ",")
		if len(parts) != 3 {
			return Color{}, false
		}
		var vals [3]uint8
		for i, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return Color{}, false
			}
			vals[i] = uint8(n)
		}
		return RGB(vals[0], vals[1], vals[2]), true
	}
	if inner, ok := cutWrapped(s, "color(", ")"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(inner), 10, 8)
		if err != nil {
			return Color{}, false
		}
		return Indexed(uint8(n)), true
	}
	return Color{}, false
}

func namedIndex(s string) (uint8, bool) {
	switch s {
	case "grey", "gray":
		return 8, true
	}
	normalized := strings.ReplaceAll(s, "bright", "bright_")
	normalized = strings.ReplaceAll(normalized, "bright__", "bright_")
	for i, name := range namedNames {
		if s == name || normalized == name {
			return uint8(i), true
		}
	}
	return 0, false
}

func parseHex(hex string) (Color, bool) {
	switch len(hex) {
	case 3:
		var vals [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(string(hex[i])+string(hex[i]), 16, 8)
			if err != nil {
				return Color{}, false
			}
			vals[i] = uint8(n)
		}
		return RGB(vals[0], vals[1], vals[2]), true
	case 6:
		var vals [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, false
			}
			vals[i] = uint8(n)
		}
		return RGB(vals[0], vals[1], vals[2]), true
	}
	return Color{}, false
}

func cutWrapped(s, prefix, suffix string) (string, bool) {
	inner, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(inner, suffix)
}
