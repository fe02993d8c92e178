// Package frontmatter handles the leading YAML metadata block of mode
// documents: a block opened and closed by the "---" delimiter.
package frontmatter

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Delimiter opens and closes a frontmatter block.
const Delimiter = "---"

// Strip removes a leading frontmatter block and returns the trimmed
// remainder. If the text does not begin with the delimiter, or the block
// is never closed, the text is returned unchanged. Unterminated blocks
// are deliberately passed through rather than rejected; callers that
// want a diagnostic can check Unterminated first.
func Strip(text string) string {
	if !strings.HasPrefix(text, Delimiter) {
		return text
	}

	end := strings.Index(text[len(Delimiter):], Delimiter)
	if end < 0 {
		return text
	}

	return strings.TrimSpace(text[len(Delimiter)+end+len(Delimiter):])
}

// Unterminated reports whether the text opens a frontmatter block that
// is never closed. Such a block survives Strip untouched and usually
// means a typo in the document.
func Unterminated(text string) bool {
	if !strings.HasPrefix(text, Delimiter) {
		return false
	}
	return !strings.Contains(text[len(Delimiter):], Delimiter)
}

// Decode parses the frontmatter block into out. It returns false if the
// text carries no closed frontmatter block. The generate pipeline never
// looks inside frontmatter; this exists for validation diagnostics.
func Decode(text string, out any) (bool, error) {
	if !strings.HasPrefix(text, Delimiter) {
		return false, nil
	}

	end := strings.Index(text[len(Delimiter):], Delimiter)
	if end < 0 {
		return false, nil
	}

	block := text[len(Delimiter) : len(Delimiter)+end]
	if err := yaml.Unmarshal([]byte(block), out); err != nil {
		return false, err
	}
	return true, nil
}
