// Package console is the output-side collaborator of the rendering
// core: it owns an output stream, detects its capabilities, and drives
// the parse/wrap/serialize pipeline for each print call.
//
// The core packages are pure and stateless; the console adds the two
// things a process needs around them: environment/TTY detection (which
// the core deliberately refuses to do) and a mutex around the writer so
// concurrent prints never interleave their escape sequences.
package console

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/inkline/pkg/color"
	"github.com/arthur-debert/inkline/pkg/logging"
	"github.com/arthur-debert/inkline/pkg/markup"
	"github.com/arthur-debert/inkline/pkg/segment"
	"github.com/arthur-debert/inkline/pkg/text"
	"github.com/arthur-debert/inkline/pkg/theme"
)

// Console renders markup and styled text to one output stream. A
// Console is safe for concurrent use; each print writes one complete,
// self-contained byte sequence under the writer lock.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	width   int
	system  color.System
	justify text.Alignment
	noWrap  bool
	markup  bool
	theme   *theme.Theme
	log     zerolog.Logger
}

// Option configures a Console.
type Option func(*Console)

// WithOutput directs output to w instead of stdout.
func WithOutput(w io.Writer) Option { return func(c *Console) { c.out = w } }

// WithWidth pins the render width instead of detecting it.
func WithWidth(width int) Option { return func(c *Console) { c.width = width } }

// WithColorSystem pins the capability tier instead of detecting it.
func WithColorSystem(sys color.System) Option {
	return func(c *Console) { c.system = sys }
}

// WithJustify sets the default line justification.
func WithJustify(a text.Alignment) Option { return func(c *Console) { c.justify = a } }

// WithNoWrap disables wrapping; long lines are truncated with an
// ellipsis instead.
func WithNoWrap() Option { return func(c *Console) { c.noWrap = true } }

// WithoutMarkup disables markup parsing; print input is taken literally.
func WithoutMarkup() Option { return func(c *Console) { c.markup = false } }

// WithTheme installs a theme for resolving semantic tag names.
func WithTheme(t *theme.Theme) Option { return func(c *Console) { c.theme = t } }

// New returns a console writing to stdout, with width and color
// capability detected from the stream and environment unless options
// pin them.
func New(opts ...Option) *Console {
	c := &Console{
		out:    os.Stdout,
		width:  0,
		system: color.System(-1),
		markup: true,
		theme:  theme.Default(),
		log:    logging.GetLogger("console"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.system == color.System(-1) {
		c.system = DetectColorSystem(c.out)
	}
	if c.width <= 0 {
		c.width = DetectWidth(c.out)
	}
	c.log.Debug().
		Int("width", c.width).
		Stringer("colorSystem", c.system).
		Msg("console initialized")
	return c
}

// Context returns the render context print calls use.
func (c *Console) Context() text.RenderContext {
	return text.RenderContext{
		Width:       c.width,
		ColorSystem: c.system,
		Justify:     c.justify,
		NoWrap:      c.noWrap,
	}
}

// Width returns the effective render width.
func (c *Console) Width() int { return c.width }

// ColorSystem returns the effective capability tier.
func (c *Console) ColorSystem() color.System { return c.system }

// Parse converts a print argument to styled text, honoring the markup
// setting and the console theme.
func (c *Console) Parse(source string) text.Text {
	if !c.markup {
		return text.Plain(source)
	}
	return markup.ParseWith(source, c.theme.Resolver())
}

// Render produces the complete output bytes for a markup string without
// writing them.
func (c *Console) Render(source string) []byte {
	return c.RenderText(c.Parse(source))
}

// RenderText produces the complete output bytes for styled text.
func (c *Console) RenderText(t text.Text) []byte {
	ctx := c.Context()
	return segment.Render(text.Wrap(t, ctx), ctx)
}

// Print renders a markup string and writes it, one line terminator per
// wrapped line.
func (c *Console) Print(source string) error {
	return c.write(c.Render(source))
}

// PrintText renders styled text directly, bypassing markup parsing.
// Untrusted content belongs here so it is never re-interpreted as tags.
func (c *Console) PrintText(t text.Text) error {
	return c.write(c.RenderText(t))
}

// Newline writes an empty line.
func (c *Console) Newline() error {
	return c.write([]byte("\n"))
}

// Measure reports the width range styled text would occupy under this
// console's context.
func (c *Console) Measure(t text.Text) text.Measurement {
	return text.Measure(t, c.Context())
}

func (c *Console) write(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.out.Write(b)
	return err
}
