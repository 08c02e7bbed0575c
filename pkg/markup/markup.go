// Package markup parses the inline tag syntax into styled text.
//
// Tags are square-bracketed token lists: "[bold red]error[/]". A tag
// opens a style frame; "[/]" closes the innermost frame and "[/name]"
// closes the innermost frame mentioning that token. "\[" escapes a
// literal bracket. Background colors use "on <color>" and "no-<name>"
// switches an inherited attribute or color off for the frame's lifetime.
//
// The parser never fails: unknown tokens are ignored, a bracket run with
// no recognized tokens or with tokens that cannot be style tokens is
// kept as literal text (so debug output like "[1, 2, 3]" or "[a, b]"
// prints as-is), unmatched closers are no-ops, and frames
// still open at end of input close there. Malformed markup degrades to
// plain rendering instead of surfacing an error.
package markup

import (
	"sort"
	"strings"

	"github.com/arthur-debert/inkline/pkg/style"
	"github.com/arthur-debert/inkline/pkg/text"
)

// Parse converts markup into styled text using only the builtin style
// keywords.
func Parse(source string) text.Text {
	return ParseWith(source, nil)
}

// ParseWith is Parse with a resolver for theme-defined style names.
func ParseWith(source string, resolve style.Resolver) text.Text {
	p := parser{resolve: resolve}
	return p.parse(source)
}

// frame is one open tag on the stack. Its style is the cumulative
// composition of every enclosing frame at open time plus its own tokens,
// so the span it eventually emits is self-contained.
type frame struct {
	seq    int
	start  int // byte offset into the stripped output
	tokens string
	style  style.Style
}

type spanRec struct {
	seq  int
	span text.Span
}

type parser struct {
	resolve style.Resolver
	out     []byte
	stack   []frame
	recs    []spanRec
	seq     int
}

func (p *parser) parse(source string) text.Text {
	i := 0
	for i < len(source) {
		c := source[i]
		if c == '\\' && i+1 < len(source) && source[i+1] == '[' {
			p.out = append(p.out, '[')
			i += 2
			continue
		}
		if c != '[' {
			p.out = append(p.out, c)
			i++
			continue
		}
		rel := strings.IndexByte(source[i+1:], ']')
		if rel < 0 {
			// Unterminated tag: everything left is literal.
			p.out = append(p.out, source[i:]...)
			break
		}
		content := source[i+1 : i+1+rel]
		end := i + rel + 2
		p.tag(content, source[i:end])
		i = end
	}
	for len(p.stack) > 0 {
		p.closeFrame(len(p.stack) - 1)
	}

	sort.Slice(p.recs, func(a, b int) bool { return p.recs[a].seq < p.recs[b].seq })
	spans := make([]text.Span, len(p.recs))
	for i, r := range p.recs {
		spans[i] = r.span
	}
	return text.New(string(p.out), spans, style.Style{})
}

func (p *parser) tag(content, raw string) {
	if content == "/" {
		if len(p.stack) > 0 {
			p.closeFrame(len(p.stack) - 1)
		}
		return
	}
	if name, ok := strings.CutPrefix(content, "/"); ok {
		name = strings.TrimSpace(name)
		for i := len(p.stack) - 1; i >= 0; i-- {
			if hasToken(p.stack[i].tokens, name) {
				p.closeFrame(i)
				return
			}
		}
		// No frame mentions the name: lenient no-op.
		return
	}

	st, recognized := style.ParseWith(content, p.resolve)
	if !recognized {
		// Bracketed data, not a tag: keep it literally.
		p.out = append(p.out, raw...)
		return
	}
	p.stack = append(p.stack, frame{
		seq:    p.seq,
		start:  len(p.out),
		tokens: content,
		style:  p.cumulative().Compose(st),
	})
	p.seq++
}

// closeFrame pops the frame at idx and emits its span. Frames opened
// inside it stay open with the style they captured at open time.
func (p *parser) closeFrame(idx int) {
	f := p.stack[idx]
	p.stack = append(p.stack[:idx], p.stack[idx+1:]...)
	if f.start < len(p.out) {
		p.recs = append(p.recs, spanRec{
			seq:  f.seq,
			span: text.Span{Start: f.start, End: len(p.out), Style: f.style},
		})
	}
}

func (p *parser) cumulative() style.Style {
	if len(p.stack) == 0 {
		return style.Style{}
	}
	return p.stack[len(p.stack)-1].style
}

func hasToken(tokens, name string) bool {
	for _, tok := range strings.Fields(tokens) {
		if strings.EqualFold(tok, name) {
			return true
		}
	}
	return false
}
