// Package cmd provides Cobra CLI commands for lrutrace.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/lrutrace/internal/cli"
	"github.com/bnema/lrutrace/internal/domain/build"
	"github.com/bnema/lrutrace/internal/logging"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "lrutrace",
		Short: "Replay cache operations and watch LRU eviction step by step",
		Long: `lrutrace - an LRU cache-state simulator.

Give it a capacity and a list of get/put operations and it computes every
intermediate cache state, what each operation added and what it evicted.

Features:
  - Scenario files in TOML, or inline operations with --ops
  - Text, JSON and Apache Arrow output
  - Interactive stepper that walks a trace one operation at a time
  - Hit, miss and eviction counters

Use 'lrutrace run --demo' to replay the built-in walkthrough, or
'lrutrace step --demo' to browse it interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/lrutrace/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger := logging.NewFromEnv()
		logger.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
