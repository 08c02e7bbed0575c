// Package segment defines the terminal output unit and the ANSI
// serializer that turns wrapped lines into output bytes.
//
// A Segment is either a run of text under one fully resolved style or a
// control-only instruction. Segments are what the core hands to widget
// collaborators; the serializer in this package is the only place where
// escape bytes are produced.
package segment

import (
	"github.com/arthur-debert/inkline/pkg/color"
	"github.com/arthur-debert/inkline/pkg/style"
	"github.com/arthur-debert/inkline/pkg/text"
)

// Control identifies a non-printable instruction carried by a segment.
type Control uint8

// Control codes.
const (
	ControlNone Control = iota
	ControlNewline
	ControlCarriageReturn
)

// Segment is the smallest unit handed to the serializer: a text chunk
// with one resolved style, or a control marker with no text.
type Segment struct {
	Text    string
	Style   style.Style
	Control Control
}

// NewText returns a styled text segment.
func NewText(s string, st style.Style) Segment {
	return Segment{Text: s, Style: st}
}

// NewControl returns a control-only segment.
func NewControl(c Control) Segment {
	return Segment{Control: c}
}

// IsControl reports whether the segment is a control instruction rather
// than visible characters.
func (s Segment) IsControl() bool { return s.Control != ControlNone }

// FromLine converts a wrapped line into segments for the given color
// capability, downsampling each style and coalescing adjacent chunks
// whose downsampled styles are identical.
func FromLine(line text.Line, sys color.System) []Segment {
	var segs []Segment
	for _, chunk := range line.Chunks {
		st := chunk.Style.Downsample(sys)
		if n := len(segs); n > 0 && !segs[n-1].IsControl() && segs[n-1].Style == st {
			segs[n-1].Text += chunk.Text
			continue
		}
		segs = append(segs, Segment{Text: chunk.Text, Style: st})
	}
	return segs
}

// FromLines converts wrapped lines into a flat segment sequence with a
// newline control segment terminating each line.
func FromLines(lines []text.Line, sys color.System) []Segment {
	var segs []Segment
	for _, line := range lines {
		segs = append(segs, FromLine(line, sys)...)
		segs = append(segs, NewControl(ControlNewline))
	}
	return segs
}
