// Package theme maps semantic style names to styles so markup tags like
// "[error]" stay decoupled from concrete colors.
//
// The default theme is embedded; additional themes load from TOML files
// with a [styles] table of name = "style tokens" entries. Unknown or
// malformed style strings degrade to smaller styles rather than failing
// the whole theme, matching the lenient policy of the markup layer.
package theme

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/inkline/pkg/style"
)

//go:embed themes/default.toml
var embeddedDefault []byte

// Theme is an immutable name-to-style registry.
type Theme struct {
	styles map[string]style.Style
}

// New builds a theme from name to style-token-string pairs.
func New(defs map[string]string) *Theme {
	styles := make(map[string]style.Style, len(defs))
	for name, spec := range defs {
		styles[strings.ToLower(name)] = style.Parse(spec)
	}
	return &Theme{styles: styles}
}

// Default returns the embedded default theme.
func Default() *Theme {
	t, err := parseTOML(embeddedDefault)
	if err != nil {
		// The embedded file is validated by tests; an empty theme keeps
		// rendering working if it is ever broken.
		return &Theme{styles: map[string]style.Style{}}
	}
	return t
}

// Load reads a theme from a TOML file.
func Load(path string) (*Theme, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("loading theme %s: %w", path, err)
	}
	defs := map[string]string{}
	if err := k.Unmarshal("styles", &defs); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}
	return New(defs), nil
}

// parseTOML decodes raw TOML theme data.
func parseTOML(data []byte) (*Theme, error) {
	var doc struct {
		Styles map[string]string `toml:"styles"`
	}
	if err := gotoml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing theme data: %w", err)
	}
	return New(doc.Styles), nil
}

// Get looks up a named style.
func (t *Theme) Get(name string) (style.Style, bool) {
	st, ok := t.styles[strings.ToLower(name)]
	return st, ok
}

// Names returns the defined style names in no particular order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	return names
}

// With returns a copy of the theme with additional definitions layered
// on top; existing names are overridden.
func (t *Theme) With(defs map[string]string) *Theme {
	styles := make(map[string]style.Style, len(t.styles)+len(defs))
	for name, st := range t.styles {
		styles[name] = st
	}
	for name, spec := range defs {
		styles[strings.ToLower(name)] = style.Parse(spec)
	}
	return &Theme{styles: styles}
}

// Resolver adapts the theme to the style token grammar, letting the
// markup parser resolve theme names found in tags.
func (t *Theme) Resolver() style.Resolver {
	return t.Get
}
