// Package commands implements the CLI commands for modegen.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/modegen/internal/config"
	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
	"github.com/thoreinstein/modegen/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
const version = "0.1.0"

// dirFlag holds the value of the --dir flag.
var dirFlag string

// outputFlag holds the value of the --output flag.
var outputFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// loadedConfig holds the configuration loaded during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "",
		"directory containing *-mode.md documents (default: from config, else .)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "",
		"output filename written inside the modes directory (default: .roomodes)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("modegen version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "modegen",
	Short: "Generate a .roomodes config from mode documents",
	Long: `modegen converts a directory of human-authored mode documents
(markdown files describing AI-agent personas, named *-mode.md) into the
single .roomodes configuration file consumed by the host agent platform.

Each document contributes one entry: the "# <Name> Mode" heading becomes
the display name and slug, the body becomes the role definition, and an
optional "## Custom Instructions" section becomes supplementary text.
Files that fail to parse are skipped with a logged error; the run still
succeeds.`,
	Example: `  # Generate .roomodes from the current directory
  modegen

  # Generate from a specific directory
  modegen --dir ./modes

  # Inspect what would be generated
  modegen list

  # Check documents for problems
  modegen validate`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	// Running the bare command generates; generate stays available as an
	// explicit subcommand.
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return modegenerrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return modegenerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig surfaces configuration problems before any command runs.
func checkConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return modegenerrors.NewUserError(configLoadErr, "check modegen.yaml syntax")
	}
	if loadedConfig == nil {
		loadedConfig = &config.Config{}
	}

	if err := effectiveConfig().Validate(); err != nil {
		return modegenerrors.NewUserError(err, "check modegen.yaml and flags")
	}

	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
