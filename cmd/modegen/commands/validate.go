package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check mode documents for problems",
	Long: `Validate parses every candidate document and reports anything that
generate would skip or warn about: a missing "# <Name> Mode" heading, an
empty role definition, a slug collision, or an unterminated frontmatter
block.

Unlike generate, validate exits non-zero when any document has an error,
making it suitable for CI.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return runValidateWithWriter(cmd, os.Stdout)
}

// runValidateWithWriter allows injecting a writer for testing.
func runValidateWithWriter(cmd *cobra.Command, w io.Writer) error {
	g, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	entries, issues, err := g.Collect()
	if err != nil {
		return modegenerrors.NewSystemError(err, "check directory permissions")
	}

	errorCount := 0
	for _, issue := range issues {
		if issue.Warning {
			fmt.Fprintln(w, color.YellowString("warning:"), issue.Filename+":", issue.Err)
			continue
		}
		errorCount++
		fmt.Fprintln(w, color.RedString("error:"), issue.Filename+":", issue.Err)
	}

	if errorCount > 0 {
		fmt.Fprintf(w, "\n%d document(s) would be skipped, %d mode(s) would be generated\n",
			errorCount, len(entries))
		return modegenerrors.NewUserError(
			errors.Newf("validation failed: %d document(s) with errors", errorCount),
			"fix the documents listed above")
	}

	fmt.Fprintln(w, color.GreenString("✓"), len(entries), "mode document(s) valid")
	return nil
}
