package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	modegenerrors "github.com/thoreinstein/modegen/internal/errors"
	"github.com/thoreinstein/modegen/internal/roomodes"
)

var listFormat string

func init() {
	listCmd.Flags().StringVar(&listFormat, "format", "table",
		"output format: table, json, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List modes that would be generated",
	Long: `List parses the mode documents and prints the resulting entries
without writing the output file. Documents that fail to parse are
skipped, exactly as generate would skip them.

Examples:
  # Table of modes in the current directory
  modegen list

  # Machine-readable forms
  modegen list --format json
  modegen list --format toml`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd, os.Stdout)
}

// runListWithWriter allows injecting a writer for testing.
func runListWithWriter(cmd *cobra.Command, w io.Writer) error {
	g, err := newGenerator(cmd)
	if err != nil {
		return err
	}

	entries, _, err := g.Collect()
	if err != nil {
		return modegenerrors.NewSystemError(err, "check directory permissions")
	}
	roomodes.SortEntries(entries)

	switch listFormat {
	case "json":
		return outputListJSON(w, entries)
	case "toml":
		return outputListTOML(w, entries)
	case "table":
		return outputListTable(w, entries)
	}

	return modegenerrors.NewUserError(
		errors.Newf("invalid format %q (valid: table, json, toml)", listFormat), "")
}

func outputListJSON(w io.Writer, entries []roomodes.Entry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(roomodes.Config{CustomModes: entries}), "encoding output")
}

func outputListTOML(w io.Writer, entries []roomodes.Entry) error {
	enc := toml.NewEncoder(w)
	return errors.Wrap(enc.Encode(roomodes.Config{CustomModes: entries}), "encoding output")
}

func outputListTable(w io.Writer, entries []roomodes.Entry) error {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No mode documents found")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sSLUG%s\t%sNAME%s\t%sROLE%s\n",
		colorBold, colorReset, colorBold, colorReset, colorBold, colorReset)

	for _, e := range entries {
		role := truncate(firstLine(e.RoleDefinition), 60)
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\n", colorGreen, e.Slug, colorReset, e.Name, role)
	}

	return errors.Wrap(tw.Flush(), "flushing table")
}
