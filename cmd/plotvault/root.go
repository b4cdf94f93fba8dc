package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/plotvault/plotvault"
	"github.com/plotvault/plotvault/config"
	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/logging"
	"github.com/plotvault/plotvault/store"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level log output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// containerFile overrides the container location from the config
	containerFile string
	// backendName overrides the container backend from the config
	backendName string

	// cfg is the effective configuration, hydrated before any RunE handler.
	cfg *config.Config

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "plotvault",
		Short: "Versioned storage for named plots",
		Long: TitleStyle.Render("plotvault") + SubtitleStyle.Render(" - versioned storage for named plots") + `

plotvault keeps every saved revision of a named plot family inside a
single container (a sqlite file, a redis namespace, or memory).
Revisions are numbered sequentially per family, and each revision can
carry a comment and a milestone tag.

` + SubtitleStyle.Render("Examples:") + `
  plotvault list                        List every family and revision
  plotvault list canvas                 List revisions of 'canvas' only
  plotvault get canvas 3                Write canvas revision 3 to canvas_v3.bin
  plotvault get canvas 3 -o -           Stream canvas revision 3 to stdout
  plotvault get canvas 3 --to back.db   Copy revision 3 into another container`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&containerFile, "file", "f", "", "container file (default is "+plotvault.DefaultContainerPath+")")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "container backend: memory, sqlite or redis")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is plotvault.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug log output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads the config file and environment, then lays the global
// flags on top. Config errors are warnings: the command still runs on
// defaults.
func initRootConfig() {
	loader := config.NewLoader()
	if cfgFile != "" {
		loader = loader.WithConfigPath(cfgFile)
	} else {
		loader = loader.WithConfigPath("plotvault.yaml")
	}

	loaded, err := loader.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+err.Error())
		loaded = config.DefaultConfig()
	}

	if containerFile != "" {
		loaded.Container.Path = containerFile
	}
	if backendName != "" {
		loaded.Container.Backend = backendName
	}
	if verbose {
		loaded.Log.Level = "debug"
	}

	cfg = loaded
}

// openSession opens the configured container in the given mode and wires it
// into a raw byte store.
func openSession(mode core.OpenMode) (*store.Store[[]byte], error) {
	return plotvault.Open(func(o *plotvault.Options) {
		o.ContainerConfig = cfg.ContainerConfig(mode)
		o.DefaultBase = cfg.DefaultBase
		o.Logger = newLogger()
	})
}

// newLogger builds the CLI logger from the effective config. Output goes to
// stderr so piped artifact bytes on stdout stay clean.
func newLogger() logging.Logger {
	lc := logging.DefaultLoggerConfig()
	lc.Level = config.ParseLevel(cfg.Log.Level)
	lc.Format = cfg.Log.Format
	lc.AddSource = false
	lc.Output = os.Stderr
	lc.Component = "cli"
	return logging.NewLogger(lc)
}
