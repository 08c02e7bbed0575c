package text

import "github.com/arthur-debert/inkline/pkg/color"

// Alignment selects how wrapped lines are padded to the context width.
type Alignment int

// Horizontal alignments.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name as used in configuration.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseAlignment converts a configuration string to an Alignment.
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "left":
		return AlignLeft, true
	case "center", "centre":
		return AlignCenter, true
	case "right":
		return AlignRight, true
	}
	return AlignLeft, false
}

// RenderContext carries the options for one measurement or render call.
// It is passed by value and never mutated; containers narrow a copy
// before handing it to children. A Width of 0 or less means unbounded.
type RenderContext struct {
	Width       int
	Height      int // 0 means unconstrained
	ColorSystem color.System
	Justify     Alignment
	NoWrap      bool
}

// DefaultContext returns the context used when a caller has no terminal
// information: 80 columns, true color, left justification.
func DefaultContext() RenderContext {
	return RenderContext{Width: 80, ColorSystem: color.TrueColor}
}

// WithWidth returns a copy of the context narrowed to the given width.
func (c RenderContext) WithWidth(width int) RenderContext {
	c.Width = width
	return c
}
