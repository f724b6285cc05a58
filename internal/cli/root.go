package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization
// with values injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2026-08-25T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the gridmorph CLI and returns an error if any command
// fails. This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (map,
// render, expr, catalog), configures logging based on the --verbose
// flag, and executes the command tree against ctx so that signal
// cancellation from main reaches every command.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "gridmorph",
		Short:        "Gridmorph maps arbitrary graphs onto unit-disk grid graphs",
		Long:         `Gridmorph rewrites an arbitrary graph into a grid graph whose maximum independent sets correspond one-to-one with those of the input, up to a fixed overhead reported alongside the result.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gridmorph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMapCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newExprCmd())
	root.AddCommand(newCatalogCmd())

	return root.ExecuteContext(ctx)
}
