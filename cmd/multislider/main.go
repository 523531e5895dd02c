package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/multislider/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┬┐┬ ┬┬ ┌┬┐┬┌─┐┬  ┬┌┬┐┌─┐┬─┐
  ││││ ││  │ │└─┐│  │ ││├┤ ├┬┘
  ┴ ┴└─┘┴─┘┴ ┴└─┘┴─┘┴─┴┘└─┘┴└─
`

// errorOutput is set from --error-format before any command runs.
var errorOutput = errors.OutputText

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.Print(os.Stderr, err, errorOutput)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		errorFormat string
		noColor     bool
	)
	root := &cobra.Command{
		Use:   "multislider",
		Short: "Draggable multi-handle progress sliders",
		Long: `multislider renders progress bars with draggable handles and turns
pointer positions into progress percentages.

The serve command runs a demo page where every browser tab drives its
own sliders over a websocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			out, ok := errors.ParseOutput(errorFormat)
			if !ok {
				return errors.New("E401").
					WithDetail(fmt.Sprintf("unknown error format %q", errorFormat)).
					WithSuggestion("Use --error-format=text, compact or json")
			}
			errorOutput = out
			errors.SetColor(!noColor && os.Getenv("NO_COLOR") == "" && out == errors.OutputText)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&errorFormat, "error-format", "text", "Error output: text, compact or json")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		serveCmd(),
		resolveCmd(),
		initCmd(),
		configCmd(),
		versionCmd(),
	)
	return root
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
