package roomodes

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thoreinstein/modegen/internal/mode"
	"github.com/thoreinstein/modegen/pkg/frontmatter"
)

// ErrSlugCollision indicates two documents normalize to the same slug.
// The later file in filename order is skipped.
var ErrSlugCollision = errors.New("slug collision")

// Generator runs the full pipeline: discover, parse, assemble, write.
type Generator struct {
	dir      string
	output   string
	dialects map[string]mode.Dialect
	logger   *slog.Logger
}

// Options configures a Generator. Zero values fall back to the working
// directory, the fixed output filename, and the built-in dialect map.
type Options struct {
	// Dir is the directory holding *-mode.md documents.
	Dir string

	// Output is the config filename, written inside Dir.
	Output string

	// Dialects maps filenames to section-splitting dialects, merged over
	// the built-in reservations.
	Dialects map[string]mode.Dialect

	// Logger receives per-file diagnostics.
	Logger *slog.Logger
}

// New creates a Generator.
func New(opts Options) *Generator {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Output == "" {
		opts.Output = OutputFilename
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Generator{
		dir:      opts.Dir,
		output:   opts.Output,
		dialects: opts.Dialects,
		logger:   opts.Logger,
	}
}

// Issue is one per-file problem found while collecting entries.
// Warnings do not exclude the file; errors do.
type Issue struct {
	Filename string
	Err      error
	Warning  bool
}

func (i Issue) String() string {
	severity := "error"
	if i.Warning {
		severity = "warning"
	}
	return fmt.Sprintf("%s: %s: %v", severity, i.Filename, i.Err)
}

// Collect discovers and parses every candidate document, returning the
// assembled entries and any per-file issues. Files are processed in
// filename order so collision handling is deterministic: the first file
// claiming a slug wins, later claimants are skipped. Only a failure to
// read the directory itself returns a non-nil error.
func (g *Generator) Collect() ([]Entry, []Issue, error) {
	names, err := Discover(g.dir)
	if err != nil {
		return nil, nil, err
	}

	entries := make([]Entry, 0, len(names))
	var issues []Issue
	claimed := make(map[string]string, len(names)) // slug -> filename

	for _, name := range names {
		doc, err := readDocument(g.dir, name)
		if err != nil {
			issues = append(issues, Issue{Filename: name, Err: err})
			continue
		}

		if frontmatter.Unterminated(doc.Raw) {
			issues = append(issues, Issue{
				Filename: name,
				Err:      errors.New("unterminated frontmatter block retained in body"),
				Warning:  true,
			})
		}

		parsed, err := mode.Parse(doc, mode.ResolveDialect(name, g.dialects))
		if err != nil {
			// The filename travels on the Issue; unwrap to avoid
			// repeating it in the message.
			var parseErr *mode.ParseError
			if errors.As(err, &parseErr) {
				err = parseErr.Err
			}
			issues = append(issues, Issue{Filename: name, Err: err})
			continue
		}

		if prior, ok := claimed[parsed.Slug]; ok {
			issues = append(issues, Issue{
				Filename: name,
				Err:      fmt.Errorf("%w: slug %q already claimed by %s", ErrSlugCollision, parsed.Slug, prior),
			})
			continue
		}
		claimed[parsed.Slug] = name

		entries = append(entries, NewEntry(parsed))
	}

	return entries, issues, nil
}

// Run executes the whole pipeline and writes the config file. Per-file
// issues are logged and do not affect the outcome; the returned path and
// entry count describe what was written.
func (g *Generator) Run() (path string, count int, err error) {
	entries, issues, err := g.Collect()
	if err != nil {
		return "", 0, err
	}

	for _, issue := range issues {
		if issue.Warning {
			g.logger.Warn("mode document kept despite problem", "file", issue.Filename, "problem", issue.Err.Error())
			continue
		}
		g.logger.Error("skipping mode document", "file", issue.Filename, "problem", issue.Err.Error())
	}

	path, err = g.Write(entries)
	if err != nil {
		return "", 0, err
	}

	return path, len(entries), nil
}
