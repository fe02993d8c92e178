package mode

import (
	"errors"
	"strings"
)

// Dialect selects how a document's body is split into sections. The set
// is closed; resolution happens once per file, keyed on filename, so
// adding a dialect is a data change for callers.
type Dialect string

const (
	// DialectStandard splits on the first "## Custom Instructions" heading.
	DialectStandard Dialect = "standard"

	// DialectRoleHeading takes the role definition from a dedicated
	// "## Role Definition" section when present.
	DialectRoleHeading Dialect = "role-heading"
)

// ErrUnknownDialect indicates a dialect name outside the known set.
var ErrUnknownDialect = errors.New("unknown dialect")

// builtinDialects reserves filenames that use a non-standard dialect.
// The orchestrator document keeps its role definition under an explicit
// "## Role Definition" heading.
var builtinDialects = map[string]Dialect{
	"orchestrator-mode.md": DialectRoleHeading,
}

// ParseDialect validates a dialect name from configuration.
func ParseDialect(name string) (Dialect, error) {
	switch Dialect(name) {
	case DialectStandard, DialectRoleHeading:
		return Dialect(name), nil
	}
	return "", ErrUnknownDialect
}

// ResolveDialect picks the dialect for a filename. Matching is
// case-insensitive. Overrides take precedence over the built-in
// reservations; files matching neither use DialectStandard.
func ResolveDialect(filename string, overrides map[string]Dialect) Dialect {
	lower := strings.ToLower(filename)

	for name, d := range overrides {
		if strings.ToLower(name) == lower {
			return d
		}
	}
	if d, ok := builtinDialects[lower]; ok {
		return d
	}
	return DialectStandard
}
