package console

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/arthur-debert/inkline/pkg/color"
)

// envConfig is the environment-derived console configuration. Detection
// lives here, outside the core packages, which only ever receive an
// explicit ColorSystem.
type envConfig struct {
	noColor     bool
	forceColor  bool
	columns     int
	colorSystem color.System
	hasSystem   bool
}

// loadEnv reads the recognized environment variables through koanf.
func loadEnv() envConfig {
	k := koanf.New(".")
	_ = k.Load(env.Provider("", ".", strings.ToLower), nil)

	cfg := envConfig{
		noColor:    k.Exists("no_color") && k.String("no_color") != "",
		forceColor: k.Exists("force_color") && k.String("force_color") != "",
	}
	if cols, err := strconv.Atoi(k.String("columns")); err == nil && cols > 0 {
		cfg.columns = cols
	}
	if sys, err := color.ParseSystem(k.String("inkline_color")); err == nil && k.Exists("inkline_color") {
		cfg.colorSystem = sys
		cfg.hasSystem = true
	}
	return cfg
}

// DetectColorSystem determines the capability tier for an output stream
// from the environment and TTY status. NO_COLOR wins over everything,
// FORCE_COLOR keeps color on non-TTY streams, INKLINE_COLOR pins an
// explicit tier.
func DetectColorSystem(out io.Writer) color.System {
	cfg := loadEnv()
	if cfg.noColor {
		return color.NoColor
	}
	if cfg.hasSystem {
		return cfg.colorSystem
	}
	if !isTerminalWriter(out) && !cfg.forceColor {
		return color.NoColor
	}
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return color.TrueColor
	case termenv.ANSI256:
		return color.EightBit
	case termenv.ANSI:
		return color.Standard
	default:
		return color.NoColor
	}
}

// DetectWidth determines the terminal width for an output stream:
// COLUMNS, then the TTY size, then 80.
func DetectWidth(out io.Writer) int {
	cfg := loadEnv()
	if cfg.columns > 0 {
		return cfg.columns
	}
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

func isTerminalWriter(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
