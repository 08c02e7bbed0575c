package segment

import (
	"bytes"
	"strconv"

	"github.com/arthur-debert/inkline/pkg/color"
	"github.com/arthur-debert/inkline/pkg/style"
	"github.com/arthur-debert/inkline/pkg/text"
)

const (
	csi   = "\x1b["
	reset = "\x1b[0m"
)

// sgrAttrs maps attributes to their SGR parameters in ascending code
// order, which fixes the emission order inside a combined sequence.
var sgrAttrs = []struct {
	attr style.Attribute
	code string
}{
	{style.AttrBold, "1"},
	{style.AttrDim, "2"},
	{style.AttrItalic, "3"},
	{style.AttrUnderline, "4"},
	{style.AttrBlink, "5"},
	{style.AttrReverse, "7"},
	{style.AttrHidden, "8"},
	{style.AttrStrike, "9"},
}

// Render serializes wrapped lines into the final output bytes for the
// context's color system. Styles are assumed to be resolved by the
// wrapping engine; this routine downsamples them and emits minimal,
// non-redundant SGR sequences. It never fails.
//
// Under color.NoColor no control bytes are emitted at all, only literal
// text and line terminators.
func Render(lines []text.Line, ctx text.RenderContext) []byte {
	var buf bytes.Buffer
	w := newWriter(&buf, ctx.ColorSystem)
	for _, line := range lines {
		for _, seg := range FromLine(line, ctx.ColorSystem) {
			w.writeSegment(seg)
		}
		w.endLine()
	}
	return buf.Bytes()
}

// RenderSegments serializes a prebuilt segment sequence, honoring
// control segments. Collaborators that build their own segment streams
// use this entry point; Render is the line-based convenience on top of
// the same writer.
func RenderSegments(segs []Segment, ctx text.RenderContext) []byte {
	var buf bytes.Buffer
	w := newWriter(&buf, ctx.ColorSystem)
	for _, seg := range segs {
		if seg.Control == ControlNewline {
			w.endLine()
			continue
		}
		if seg.Control == ControlCarriageReturn {
			w.resetStyle()
			buf.WriteByte('\r')
			continue
		}
		w.writeSegment(seg)
	}
	w.resetStyle()
	return buf.Bytes()
}

// writer tracks the style the terminal is currently in so transitions
// emit exactly what changed.
type writer struct {
	buf       *bytes.Buffer
	sys       color.System
	current   style.Style
	lastReset bool
}

func newWriter(buf *bytes.Buffer, sys color.System) *writer {
	return &writer{buf: buf, sys: sys}
}

func (w *writer) writeSegment(seg Segment) {
	if seg.Text == "" {
		return
	}
	if w.sys != color.NoColor {
		w.transition(seg.Style)
	}
	w.buf.WriteString(seg.Text)
	w.lastReset = false
}

// endLine closes the current line: one reset if the line ends styled,
// then the terminator. Consecutive resets coalesce into one.
func (w *writer) endLine() {
	w.resetStyle()
	w.buf.WriteByte('\n')
}

// resetStyle returns the terminal to the default style if it isn't there
// already.
func (w *writer) resetStyle() {
	if w.sys == color.NoColor {
		return
	}
	if w.current == (style.Style{}) {
		return
	}
	w.writeReset()
}

func (w *writer) writeReset() {
	if !w.lastReset {
		w.buf.WriteString(reset)
		w.lastReset = true
	}
	w.current = style.Style{}
}

// transition emits the control bytes taking the terminal from the
// current style to next. Changed fields are combined into a single
// sequence; when a previously asserted attribute has to turn off, a full
// reset is emitted first and the surviving style is reapplied, since
// most SGR attribute codes are not independently invertible.
func (w *writer) transition(next style.Style) {
	if next == w.current {
		return
	}
	if w.current.Attributes()&^next.Attributes() != 0 {
		w.writeReset()
	}
	params := w.diffParams(next)
	if len(params) > 0 {
		w.buf.WriteString(csi)
		for i, p := range params {
			if i > 0 {
				w.buf.WriteByte(';')
			}
			w.buf.WriteString(p)
		}
		w.buf.WriteByte('m')
		w.lastReset = false
	}
	w.current = next
}

// diffParams returns the SGR parameters that take w.current to next.
func (w *writer) diffParams(next style.Style) []string {
	var params []string

	newAttrs := next.Attributes() &^ w.current.Attributes()
	for _, e := range sgrAttrs {
		if newAttrs.Has(e.attr) {
			params = append(params, e.code)
		}
	}

	curFg, curHasFg := w.current.Foreground()
	nextFg, nextHasFg := next.Foreground()
	switch {
	case nextHasFg && (!curHasFg || curFg != nextFg):
		params = append(params, colorParams(nextFg, false)...)
	case !nextHasFg && curHasFg:
		params = append(params, "39")
	}

	curBg, curHasBg := w.current.Background()
	nextBg, nextHasBg := next.Background()
	switch {
	case nextHasBg && (!curHasBg || curBg != nextBg):
		params = append(params, colorParams(nextBg, true)...)
	case !nextHasBg && curHasBg:
		params = append(params, "49")
	}

	return params
}

// colorParams returns the SGR parameters selecting c as foreground or
// background.
func colorParams(c color.Color, background bool) []string {
	switch c.Kind() {
	case color.KindDefault:
		if background {
			return []string{"49"}
		}
		return []string{"39"}
	case color.KindNamed:
		idx := int(c.Index())
		base := 30
		if idx >= 8 {
			base = 90 - 8
		}
		if background {
			base += 10
		}
		return []string{strconv.Itoa(base + idx)}
	case color.KindIndexed:
		lead := "38"
		if background {
			lead = "48"
		}
		return []string{lead, "5", strconv.Itoa(int(c.Index()))}
	default:
		r, g, b := c.RGBValues()
		lead := "38"
		if background {
			lead = "48"
		}
		return []string{lead, "2",
			strconv.Itoa(int(r)), strconv.Itoa(int(g)), strconv.Itoa(int(b))}
	}
}
