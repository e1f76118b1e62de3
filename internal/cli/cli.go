// Package cli implements the vitrine command-line interface.
//
// This package provides commands for rendering built-in objects to their
// rich representations, inspecting known kinds, managing the render cache,
// serving the HTTP API, and browsing rendered bundles interactively. The
// CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render an object and write its representations to files
//   - kinds: List known kinds and registered type renderers
//   - cache: Manage the render payload cache
//   - serve: Run the HTTP API server
//   - view: Browse a rendered bundle in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vitrine-dev/vitrine/internal/config"
	"github.com/vitrine-dev/vitrine/pkg/buildinfo"
)

// configPath is the --config flag value shared by all commands.
var configPath string

// Execute runs the vitrine CLI and returns an error if any command fails.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "vitrine",
		Short:        "Vitrine renders objects to rich display representations",
		Long:         `Vitrine dispatches objects to their rich representations (HTML, PNG, LaTeX, JSON and more) through a pluggable renderer registry, with per-object caching and multiple output sinks.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/vitrine/config.toml)")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newKindsCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newViewCmd())

	return root.ExecuteContext(ctx)
}

// loadConfig reads the config file named by --config, or the default path.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}
