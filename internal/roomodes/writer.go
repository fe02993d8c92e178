package roomodes

import (
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thoreinstein/modegen/pkg/fileutil"
)

// SortEntries orders entries ascending by display name using
// locale-aware collation. The sort is stable so equal names keep their
// filename order, which keeps repeated runs byte-identical.
func SortEntries(entries []Entry) {
	c := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Name, entries[j].Name) < 0
	})
}

// Write sorts the entries, wraps them under the customModes key, and
// atomically overwrites the output file. On failure no partial output is
// produced and any prior file is left intact.
func (g *Generator) Write(entries []Entry) (string, error) {
	SortEntries(entries)

	// Guard against a nil slice serializing as null instead of [].
	if entries == nil {
		entries = []Entry{}
	}

	path := filepath.Join(g.dir, g.output)
	cfg := Config{CustomModes: entries}

	if err := fileutil.AtomicWriteJSON(path, cfg); err != nil {
		return "", errors.Wrapf(err, "writing %s", g.output)
	}

	return path, nil
}
