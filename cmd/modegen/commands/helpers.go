package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/modegen/internal/config"
	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
	"github.com/thoreinstein/modegen/internal/logging"
	"github.com/thoreinstein/modegen/internal/roomodes"
)

// effectiveConfig merges flag overrides onto the loaded configuration.
// Flags win; unset values fall back to defaults.
func effectiveConfig() *config.Config {
	cfg := config.Config{Dir: ".", Output: roomodes.OutputFilename}
	if loadedConfig != nil {
		cfg = *loadedConfig
	}

	if dirFlag != "" {
		cfg.Dir = dirFlag
	}
	if outputFlag != "" {
		cfg.Output = outputFlag
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Output == "" {
		cfg.Output = roomodes.OutputFilename
	}

	return &cfg
}

// newGenerator builds a Generator from the effective configuration and
// the command's logger.
func newGenerator(cmd *cobra.Command) (*roomodes.Generator, error) {
	cfg := effectiveConfig()

	overrides, err := cfg.DialectOverrides()
	if err != nil {
		return nil, modegenerrors.NewUserError(err, "check the dialects map in modegen.yaml")
	}

	var logger *slog.Logger
	if ctx := cmd.Context(); ctx != nil {
		logger = logging.FromContext(ctx)
	} else {
		logger = logging.Default()
	}

	return roomodes.New(roomodes.Options{
		Dir:      cfg.Dir,
		Output:   cfg.Output,
		Dialects: overrides,
		Logger:   logger,
	}), nil
}

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
)

// firstLine returns s up to its first newline.
func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
