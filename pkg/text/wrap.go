package text

import (
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/arthur-debert/inkline/pkg/style"
)

// ellipsis is the single-cell truncation marker used in no-wrap mode.
const ellipsis = "…"

// Chunk is a piece of one terminal row under a single fully resolved
// style. No span data survives into chunks.
type Chunk struct {
	Text  string
	Style style.Style
}

// Line is one wrapped terminal row. Width is the total display width of
// its chunks, which never exceeds the wrap width used to produce it.
type Line struct {
	Chunks []Chunk
	Width  int
}

// Plain returns the line's text without styling.
func (l Line) Plain() string {
	var out string
	for _, c := range l.Chunks {
		out += c.Text
	}
	return out
}

// Wrap breaks t into lines that fit ctx.Width, resolving every span so
// each chunk carries its final style. Hard line breaks in the content
// are honored and never merged. With ctx.NoWrap set, each paragraph
// becomes a single line truncated to the width with an ellipsis. After
// splitting, lines are padded to the width per ctx.Justify.
//
// A width of zero with unbreakable content still makes forward progress:
// at least one grapheme cluster is placed per line.
func Wrap(t Text, ctx RenderContext) []Line {
	paragraphs := splitParagraphs(t.styleRuns())

	var lines []Line
	for _, para := range paragraphs {
		if ctx.NoWrap || ctx.Width <= 0 {
			line := buildLine(para)
			if ctx.NoWrap && ctx.Width > 0 {
				line = truncateLine(line, ctx.Width)
			}
			lines = append(lines, line)
			continue
		}
		lines = append(lines, wrapParagraph(para, ctx.Width)...)
	}
	if len(lines) == 0 {
		lines = []Line{{}}
	}
	if ctx.Width > 0 {
		for i := range lines {
			lines[i] = justifyLine(lines[i], ctx.Width, ctx.Justify)
		}
	}
	return lines
}

// splitParagraphs cuts resolved runs at hard line breaks. The newline
// characters themselves are consumed.
func splitParagraphs(runs []styleRun) [][]Chunk {
	paragraphs := [][]Chunk{nil}
	for _, run := range runs {
		start := 0
		for i := 0; i < len(run.text); i++ {
			if run.text[i] != '\n' {
				continue
			}
			if i > start {
				paragraphs[len(paragraphs)-1] = append(paragraphs[len(paragraphs)-1],
					Chunk{Text: run.text[start:i], Style: run.style})
			}
			paragraphs = append(paragraphs, nil)
			start = i + 1
		}
		if start < len(run.text) {
			paragraphs[len(paragraphs)-1] = append(paragraphs[len(paragraphs)-1],
				Chunk{Text: run.text[start:], Style: run.style})
		}
	}
	return paragraphs
}

// styledToken is a maximal whitespace or non-whitespace run, keeping the
// style boundaries inside it. Whitespace runs are first-class tokens so
// spacing at span boundaries is never dropped.
type styledToken struct {
	chunks []Chunk
	width  int
	space  bool
}

func tokenize(para []Chunk) []styledToken {
	var toks []styledToken

	flushInto := func(c Chunk, isSpace bool) {
		if c.Text == "" {
			return
		}
		if len(toks) == 0 || toks[len(toks)-1].space != isSpace {
			toks = append(toks, styledToken{space: isSpace})
		}
		toks[len(toks)-1].appendChunk(c)
	}

	for _, chunk := range para {
		start := 0
		inSpace := false
		started := false
		for i, r := range chunk.Text {
			isSpace := unicode.IsSpace(r)
			if !started {
				inSpace = isSpace
				started = true
				continue
			}
			if isSpace != inSpace {
				flushInto(Chunk{Text: chunk.Text[start:i], Style: chunk.Style}, inSpace)
				start = i
				inSpace = isSpace
			}
		}
		if start < len(chunk.Text) {
			flushInto(Chunk{Text: chunk.Text[start:], Style: chunk.Style}, inSpace)
		}
	}
	return toks
}

// wrapParagraph greedily packs tokens onto lines of at most width cells.
func wrapParagraph(para []Chunk, width int) []Line {
	toks := tokenize(para)

	var lines []Line
	var cur lineBuilder

	flush := func() {
		lines = append(lines, cur.build())
		cur = lineBuilder{}
	}

	for _, tok := range toks {
		if tok.space {
			if cur.width+tok.width <= width {
				cur.appendToken(tok)
			} else if cur.width > 0 {
				// The break consumes the space: lines never begin with a
				// wrap-induced space.
				flush()
			}
			continue
		}

		for tok.width > 0 {
			if cur.width+tok.width <= width {
				cur.appendToken(tok)
				break
			}
			if tok.width <= width {
				flush()
				cur.appendToken(tok)
				break
			}
			// Token wider than the line by itself: hard split at the
			// boundary that fits.
			head, rest := splitToken(tok, width-cur.width, cur.width == 0)
			if head.width == 0 {
				flush()
				continue
			}
			cur.appendToken(head)
			flush()
			tok = rest
		}
	}
	if cur.width > 0 || len(lines) == 0 {
		lines = append(lines, cur.build())
	}
	return lines
}

// splitToken cuts tok at the grapheme boundary that fits avail cells.
// When force is set at least one cluster is taken, guaranteeing forward
// progress even at width zero.
func splitToken(tok styledToken, avail int, force bool) (head, rest styledToken) {
	head.space, rest.space = tok.space, tok.space
	taken := 0
	splitting := true

	for _, chunk := range tok.chunks {
		if !splitting {
			rest.appendChunk(chunk)
			continue
		}
		g := uniseg.NewGraphemes(chunk.Text)
		consumed := 0
		for g.Next() {
			cw := displayWidth(g.Str())
			if taken+cw > avail && !(force && taken == 0) {
				splitting = false
				break
			}
			consumed += len(g.Str())
			taken += cw
			force = false
		}
		if consumed > 0 {
			head.appendChunk(Chunk{Text: chunk.Text[:consumed], Style: chunk.Style})
		}
		if consumed < len(chunk.Text) {
			rest.appendChunk(Chunk{Text: chunk.Text[consumed:], Style: chunk.Style})
		}
	}
	return head, rest
}

func (t *styledToken) appendChunk(c Chunk) {
	if c.Text == "" {
		return
	}
	if n := len(t.chunks); n > 0 && t.chunks[n-1].Style == c.Style {
		t.chunks[n-1].Text += c.Text
	} else {
		t.chunks = append(t.chunks, c)
	}
	t.width += displayWidth(c.Text)
}

type lineBuilder struct {
	chunks []Chunk
	width  int
}

func (b *lineBuilder) appendToken(tok styledToken) {
	for _, c := range tok.chunks {
		b.appendChunk(c)
	}
}

func (b *lineBuilder) appendChunk(c Chunk) {
	if c.Text == "" {
		return
	}
	if n := len(b.chunks); n > 0 && b.chunks[n-1].Style == c.Style {
		b.chunks[n-1].Text += c.Text
	} else {
		b.chunks = append(b.chunks, c)
	}
	b.width += displayWidth(c.Text)
}

func (b *lineBuilder) build() Line {
	return Line{Chunks: b.chunks, Width: b.width}
}

// truncateLine cuts a line to width cells, replacing the overflow with a
// single-cell ellipsis carrying the style at the cut point.
func truncateLine(l Line, width int) Line {
	if l.Width <= width {
		return l
	}
	target := width - 1
	var out lineBuilder
	taken := 0
	tail := style.Style{}
	for _, chunk := range l.Chunks {
		g := uniseg.NewGraphemes(chunk.Text)
		consumed := 0
		for g.Next() {
			cw := displayWidth(g.Str())
			if taken+cw > target {
				break
			}
			consumed += len(g.Str())
			taken += cw
		}
		if consumed > 0 {
			out.appendChunk(Chunk{Text: chunk.Text[:consumed], Style: chunk.Style})
			tail = chunk.Style
		}
		if consumed < len(chunk.Text) {
			if consumed == 0 && len(out.chunks) == 0 {
				tail = chunk.Style
			}
			break
		}
	}
	out.appendChunk(Chunk{Text: ellipsis, Style: tail})
	return out.build()
}

// justifyLine pads a short line out to width. Left alignment pads on the
// right, right on the left, and center splits the remainder with the
// extra cell going to the right pad. A pad adjacent to a chunk whose
// style defines a background inherits that background; otherwise the pad
// is unstyled.
func justifyLine(l Line, width int, align Alignment) Line {
	pad := width - l.Width
	if pad <= 0 {
		return l
	}
	switch align {
	case AlignRight:
		return padLeft(l, pad)
	case AlignCenter:
		left := pad / 2
		return padRight(padLeft(l, left), pad-left)
	default:
		return padRight(l, pad)
	}
}

func padRight(l Line, n int) Line {
	if n <= 0 {
		return l
	}
	st := style.Style{}
	if len(l.Chunks) > 0 {
		if bg, ok := l.Chunks[len(l.Chunks)-1].Style.Background(); ok {
			st = style.Style{}.WithBackground(bg)
		}
	}
	var b lineBuilder
	b.chunks, b.width = l.Chunks, l.Width
	b.appendChunk(Chunk{Text: spaces(n), Style: st})
	return b.build()
}

func padLeft(l Line, n int) Line {
	if n <= 0 {
		return l
	}
	st := style.Style{}
	if len(l.Chunks) > 0 {
		if bg, ok := l.Chunks[0].Style.Background(); ok {
			st = style.Style{}.WithBackground(bg)
		}
	}
	var b lineBuilder
	b.appendChunk(Chunk{Text: spaces(n), Style: st})
	for _, c := range l.Chunks {
		b.appendChunk(c)
	}
	return b.build()
}

func spaces(n int) string {
	const block = "                                                                "
	if n <= len(block) {
		return block[:n]
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}

// buildLine resolves a paragraph into a single unwrapped line.
func buildLine(para []Chunk) Line {
	var b lineBuilder
	for _, c := range para {
		b.appendChunk(c)
	}
	return b.build()
}
