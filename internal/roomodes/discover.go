package roomodes

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/modegen/internal/mode"
)

// Discover lists candidate mode documents in dir: plain files whose name
// ends in "-mode.md". The listing order carries no meaning downstream;
// the writer re-sorts by display name. An unreadable directory is the
// caller's fatal error.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading modes directory %q", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), FileSuffix) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// readDocument loads one candidate file into an immutable Document.
func readDocument(dir, name string) (mode.Document, error) {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return mode.Document{}, errors.Wrapf(err, "reading mode file %q", name)
	}
	return mode.Document{Filename: name, Raw: string(data)}, nil
}
