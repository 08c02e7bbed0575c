package style

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/inkline/pkg/color"
)

// Resolver looks up a named style that is not a builtin keyword, letting
// callers plug a theme into the token grammar.
type Resolver func(name string) (Style, bool)

// Parse builds a style from a whitespace separated token string, e.g.
// "bold red on blue" or "no-dim #ff8700". Unknown tokens are ignored;
// malformed input degrades to a smaller style, never an error.
func Parse(spec string) Style {
	s, _ := ParseWith(spec, nil)
	return s
}

// ParseWith is Parse with a Resolver for theme-defined names. The second
// return value reports whether the spec reads as a style at all: at
// least one token recognized and no token that could never be a style
// token, like the comma-bearing entries of "1, 2, 3". The markup parser
// uses it to tell style tags from literal bracketed data.
func ParseWith(spec string, resolve Resolver) (Style, bool) {
	var s Style
	recognized := false
	data := false
	background := false

	for _, tok := range strings.Fields(spec) {
		tok = strings.ToLower(tok)

		switch tok {
		case "on":
			background = true
			recognized = true
			continue
		case "not":
			// The reference grammar consumes a bare "not"; negation is
			// spelled with the no- prefix.
			continue
		}

		if rest, ok := strings.CutPrefix(tok, "no-"); ok {
			if attr, ok := AttrByName(rest); ok {
				s = s.Without(attr)
				recognized = true
				continue
			}
			if _, ok := color.Parse(rest); ok || rest == "fg" || rest == "bg" {
				if background || rest == "bg" {
					s = s.WithoutBackground()
				} else {
					s = s.WithoutForeground()
				}
				background = false
				recognized = true
				continue
			}
			continue
		}

		if attr, ok := AttrByName(tok); ok {
			s = s.With(attr)
			recognized = true
			continue
		}
		if c, ok := color.Parse(tok); ok {
			if background {
				s = s.WithBackground(c)
				background = false
			} else {
				s = s.WithForeground(c)
			}
			recognized = true
			continue
		}
		if resolve != nil {
			if named, ok := resolve(tok); ok {
				s = s.Compose(named)
				recognized = true
				continue
			}
		}
		// Unknown identifiers are ignored leniently; anything else, like
		// "1," or "b]", cannot appear in a style and marks the spec as
		// bracketed data.
		if !identLike(tok) {
			data = true
		}
	}
	return s, recognized && !data
}

func identLike(tok string) bool {
	for _, r := range tok {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return false
		}
	}
	return true
}
