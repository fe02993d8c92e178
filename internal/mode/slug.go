package mode

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeSlug converts a display name into an identifier-safe slug:
// lowercase, every maximal run of characters outside [a-z0-9] collapsed
// to a single "-", leading and trailing "-" stripped. Idempotent.
func NormalizeSlug(name string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
