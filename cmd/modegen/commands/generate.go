package commands

import (
	"github.com/spf13/cobra"

	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
	"github.com/thoreinstein/modegen/internal/logging"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the .roomodes config file",
	Long: `Generate scans the modes directory for *-mode.md documents, parses
each one, and overwrites the output file with the assembled config.

Documents that fail to parse (for example, a missing "# <Name> Mode"
heading) are logged and skipped; they never fail the run. Only an
unreadable directory or an unwritable output file is fatal.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	g, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	path, count, err := g.Run()
	if err != nil {
		return modegenerrors.NewSystemError(err, "check directory and output file permissions")
	}

	logging.FromContext(cmd.Context()).Info("wrote mode config", "path", path, "modes", count)
	return nil
}
