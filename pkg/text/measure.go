package text

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Measurement is the width range a text can occupy: Minimum is the width
// of its longest unbreakable token, Maximum the width of the text laid
// out on one unbounded line. Both are display-cell counts, not byte or
// rune counts.
type Measurement struct {
	Minimum int
	Maximum int
}

// Measure computes the measurement of t. Hard line breaks in the content
// bound Maximum per line; the widest line wins.
func Measure(t Text, ctx RenderContext) Measurement {
	var m Measurement
	for _, line := range strings.Split(t.content, "\n") {
		if w := displayWidth(line); w > m.Maximum {
			m.Maximum = w
		}
		for _, tok := range splitTokens(line) {
			if tok.space {
				continue
			}
			if tok.width > m.Minimum {
				m.Minimum = tok.width
			}
		}
	}
	return m
}

// displayWidth returns the number of terminal cells s occupies: wide
// East-Asian runes and emoji count 2, combining marks and control
// codepoints count 0.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// plainToken is a maximal run of whitespace or of non-whitespace used
// only for measurement; the wrapping engine has its own styled tokens.
type plainToken struct {
	text  string
	width int
	space bool
}

func splitTokens(s string) []plainToken {
	var toks []plainToken
	start := 0
	inSpace := false
	for i, r := range s {
		isSpace := unicode.IsSpace(r)
		if i == 0 {
			inSpace = isSpace
			continue
		}
		if isSpace != inSpace {
			toks = append(toks, plainToken{text: s[start:i], width: displayWidth(s[start:i]), space: inSpace})
			start = i
			inSpace = isSpace
		}
	}
	if start < len(s) {
		toks = append(toks, plainToken{text: s[start:], width: displayWidth(s[start:]), space: inSpace})
	}
	return toks
}
