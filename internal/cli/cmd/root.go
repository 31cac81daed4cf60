// Package cmd provides Cobra CLI commands for kitematic.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bessdsv/kitematic/internal/cli"
	"github.com/bessdsv/kitematic/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	logStderr bool
	rootCmd   = &cobra.Command{
		Use:   "kitematic",
		Short: "Edit Docker container links from the terminal",
		Long: `Kitematic - edit the links of your Docker containers from the terminal.

Import containers from 'docker inspect' output, then edit their links in
a keyboard and mouse driven panel where every container field is a
typeahead over the stored containers.

Features:
  - Typeahead pickers with inline completion hints
  - Mouse support: click a suggestion, click away to dismiss
  - Live reload of colors and picker settings on config change
  - 'kitematic pick' turns the same picker into a filter for any stdin list

Use 'kitematic links <container>' to open the links panel, or explore the
subcommands for the container store and configuration.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{
				Interactive: isInteractive(cmd),
				LogStderr:   logStderr,
			})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			closeApp()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&logStderr, "log-stderr", false, "also write logs to stderr (ignored by full-screen commands)")
}

// isInteractive reports whether cmd takes over the terminal.
func isInteractive(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "links", "pick":
		return true
	}
	return false
}

// errReported marks errors a command already rendered.
var errReported = errors.New("reported")

// report prints the rendered error to stderr and marks err as shown.
func report(rendered string, err error) error {
	fmt.Fprintln(os.Stderr, rendered)
	return fmt.Errorf("%w: %w", errReported, err)
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when a command fails
	closeApp()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func closeApp() {
	if app != nil {
		_ = app.Close()
		app = nil
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
