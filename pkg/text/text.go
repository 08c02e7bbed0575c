// Package text provides the styled-text container at the center of the
// rendering pipeline, together with measurement and the Unicode-aware
// wrapping engine.
//
// A Text value pairs a UTF-8 string with an ordered list of style spans
// over byte ranges. Spans may overlap; later spans layer their style on
// top of earlier ones. Text values are immutable: every operation returns
// a new value, so they are safe to share across goroutines.
package text

import (
	"sort"
	"unicode/utf8"

	"github.com/arthur-debert/inkline/pkg/style"
)

// Span annotates a byte range of a Text with a style. Offsets are valid
// UTF-8 boundaries into the owning Text's content, with Start <= End.
type Span struct {
	Start int
	End   int
	Style style.Style
}

// Text is the styled-text container. The zero value is an empty text.
type Text struct {
	content string
	spans   []Span
	base    style.Style
}

// Plain returns a Text with no styling. The string is taken literally and
// is never re-interpreted as markup.
func Plain(s string) Text {
	return Text{content: s}
}

// Styled returns a Text whose whole content carries the given base style.
func Styled(s string, st style.Style) Text {
	return Text{content: s, base: st}
}

// New builds a Text from parts. Span offsets are clamped to the content
// and snapped back to UTF-8 boundaries so the span invariant holds by
// construction.
func New(content string, spans []Span, base style.Style) Text {
	clean := make([]Span, 0, len(spans))
	for _, sp := range spans {
		sp.Start = snapBoundary(content, sp.Start)
		sp.End = snapBoundary(content, sp.End)
		if sp.End < sp.Start {
			sp.End = sp.Start
		}
		clean = append(clean, sp)
	}
	return Text{content: content, spans: clean, base: base}
}

// snapBoundary clamps off into [0, len(s)] and walks back to the nearest
// rune boundary. len(s) is always a valid boundary.
func snapBoundary(s string, off int) int {
	if off < 0 {
		return 0
	}
	if off >= len(s) {
		return len(s)
	}
	for off > 0 && !utf8.RuneStart(s[off]) {
		off--
	}
	return off
}

// Content returns the plain string.
func (t Text) Content() string { return t.content }

// Len returns the content length in bytes.
func (t Text) Len() int { return len(t.content) }

// Spans returns a copy of the span list in application order.
func (t Text) Spans() []Span {
	out := make([]Span, len(t.spans))
	copy(out, t.spans)
	return out
}

// BaseStyle returns the style under all spans.
func (t Text) BaseStyle() style.Style { return t.base }

// WithBase returns the text with a different base style.
func (t Text) WithBase(st style.Style) Text {
	t.base = st
	return t
}

// Append concatenates other onto t and returns the result. The receiver's
// base style is kept; other's base style, if any, becomes a span over the
// appended range so no styling is lost.
func (t Text) Append(other Text) Text {
	off := len(t.content)
	spans := make([]Span, 0, len(t.spans)+len(other.spans)+1)
	spans = append(spans, t.spans...)
	if !other.base.IsEmpty() && other.content != "" {
		spans = append(spans, Span{Start: off, End: off + len(other.content), Style: other.base})
	}
	for _, sp := range other.spans {
		spans = append(spans, Span{Start: sp.Start + off, End: sp.End + off, Style: sp.Style})
	}
	return Text{content: t.content + other.content, spans: spans, base: t.base}
}

// AppendString concatenates an unstyled literal string.
func (t Text) AppendString(s string) Text {
	return t.Append(Plain(s))
}

// Slice returns the byte range [start, end) as a new Text. Bounds are
// clamped and snapped to UTF-8 boundaries; spans are intersected with the
// range and rebased to the new content.
func (t Text) Slice(start, end int) Text {
	start = snapBoundary(t.content, start)
	end = snapBoundary(t.content, end)
	if end < start {
		end = start
	}
	var spans []Span
	for _, sp := range t.spans {
		lo, hi := sp.Start, sp.End
		if lo < start {
			lo = start
		}
		if hi > end {
			hi = end
		}
		if lo >= hi {
			continue
		}
		spans = append(spans, Span{Start: lo - start, End: hi - start, Style: sp.Style})
	}
	return Text{content: t.content[start:end], spans: spans, base: t.base}
}

// Stylize layers a style over the byte range [start, end) and returns the
// result. The new span applies on top of existing spans.
func (t Text) Stylize(start, end int, st style.Style) Text {
	start = snapBoundary(t.content, start)
	end = snapBoundary(t.content, end)
	if end < start {
		end = start
	}
	spans := make([]Span, 0, len(t.spans)+1)
	spans = append(spans, t.spans...)
	spans = append(spans, Span{Start: start, End: end, Style: st})
	return Text{content: t.content, spans: spans, base: t.base}
}

// styleRun is a maximal piece of content under a single resolved style.
type styleRun struct {
	text  string
	style style.Style
}

// styleRuns flattens base style and spans into contiguous resolved runs
// covering the whole content. Adjacent runs with equal styles are merged.
func (t Text) styleRuns() []styleRun {
	if t.content == "" {
		return nil
	}
	if len(t.spans) == 0 {
		return []styleRun{{text: t.content, style: t.base.Resolved()}}
	}

	cuts := make([]int, 0, 2+2*len(t.spans))
	cuts = append(cuts, 0, len(t.content))
	for _, sp := range t.spans {
		cuts = append(cuts, sp.Start, sp.End)
	}
	sort.Ints(cuts)

	var runs []styleRun
	for i := 0; i+1 < len(cuts); i++ {
		lo, hi := cuts[i], cuts[i+1]
		if lo >= hi {
			continue
		}
		st := t.base
		for _, sp := range t.spans {
			if sp.Start <= lo && sp.End >= hi {
				st = st.Compose(sp.Style)
			}
		}
		resolved := st.Resolved()
		if n := len(runs); n > 0 && runs[n-1].style == resolved {
			runs[n-1].text += t.content[lo:hi]
			continue
		}
		runs = append(runs, styleRun{text: t.content[lo:hi], style: resolved})
	}
	return runs
}
