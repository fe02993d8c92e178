package mode

import (
	"errors"

	"github.com/thoreinstein/modegen/pkg/frontmatter"
)

// ErrEmptyRoleDefinition indicates a document whose role definition is
// empty after trimming. Persisted entries always carry a non-empty role
// definition, so such documents are skipped.
var ErrEmptyRoleDefinition = errors.New("empty role definition")

// Parse runs one document through the pipeline: strip frontmatter,
// extract the "# <Name> Mode" heading, split sections per the dialect,
// normalize the slug. Failures are document-level: the caller logs and
// skips, never aborts.
func Parse(doc Document, dialect Dialect) (*Parsed, error) {
	text := frontmatter.Strip(doc.Raw)

	name, body, err := ExtractHeading(text)
	if err != nil {
		return nil, &ParseError{Filename: doc.Filename, Err: err}
	}

	role, custom := SplitSections(dialect, body)
	if role == "" {
		return nil, &ParseError{Filename: doc.Filename, Err: ErrEmptyRoleDefinition}
	}

	return &Parsed{
		Name:               name,
		Slug:               NormalizeSlug(name),
		RoleDefinition:     role,
		CustomInstructions: custom,
	}, nil
}
