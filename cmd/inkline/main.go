// Command inkline renders markup from the command line, exposing the
// rendering pipeline for shell scripts and for eyeballing output.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/inkline/pkg/color"
	"github.com/arthur-debert/inkline/pkg/console"
	"github.com/arthur-debert/inkline/pkg/logging"
	"github.com/arthur-debert/inkline/pkg/text"
	"github.com/arthur-debert/inkline/pkg/theme"
)

var (
	verbosity int
	width     int
	colorMode string
	justify   string
	noWrap    bool
	noMarkup  bool
	themePath string

	rootCmd = &cobra.Command{
		Use:   "inkline [markup...]",
		Short: "Render rich markup to the terminal",
		Long: `inkline renders inline markup like "[bold red]error[/]" to styled
terminal output, adapting colors to the terminal's capabilities.

With no arguments, markup is read from stdin, one line per render.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().IntVarP(&width, "width", "w", 0, "Render width (default: detected)")
	rootCmd.Flags().StringVar(&colorMode, "color", "", "Color system: none, standard, 256, truecolor (default: detected)")
	rootCmd.Flags().StringVar(&justify, "justify", "left", "Justification: left, center, right")
	rootCmd.Flags().BoolVar(&noWrap, "no-wrap", false, "Truncate long lines instead of wrapping")
	rootCmd.Flags().BoolVar(&noMarkup, "no-markup", false, "Treat input literally, without parsing tags")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "Path to a TOML theme file")
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions()
	if err != nil {
		return err
	}
	c := console.New(opts...)

	if len(args) > 0 {
		return c.Print(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := c.Print(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func buildOptions() ([]console.Option, error) {
	var opts []console.Option
	if width > 0 {
		opts = append(opts, console.WithWidth(width))
	}
	if colorMode != "" {
		sys, err := color.ParseSystem(colorMode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, console.WithColorSystem(sys))
	}
	if align, ok := text.ParseAlignment(justify); ok {
		opts = append(opts, console.WithJustify(align))
	} else {
		return nil, fmt.Errorf("unknown justification %q", justify)
	}
	if noWrap {
		opts = append(opts, console.WithNoWrap())
	}
	if noMarkup {
		opts = append(opts, console.WithoutMarkup())
	}
	if themePath != "" {
		th, err := theme.Load(themePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, console.WithTheme(th))
	}
	return opts, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
