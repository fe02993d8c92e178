package mode

import "strings"

// Section headings recognized by the splitter.
const (
	customInstructionsHeading = "## Custom Instructions"
	roleDefinitionHeading     = "## Role Definition"
)

// SplitSections divides a heading-stripped body into the role definition
// and optional custom instructions. An empty custom value means the
// document has no supplementary section, which is a normal outcome.
func SplitSections(d Dialect, body string) (role, custom string) {
	if d == DialectRoleHeading {
		if r, ok := roleSection(body); ok {
			return r, customSection(body)
		}
	}

	idx := headingIndex(body, customInstructionsHeading)
	if idx < 0 {
		return strings.TrimSpace(body), ""
	}
	return strings.TrimSpace(body[:idx]), customSection(body)
}

// roleSection extracts the text between "## Role Definition" and the
// next level-2 heading (or end of document).
func roleSection(body string) (string, bool) {
	idx := headingIndex(body, roleDefinitionHeading)
	if idx < 0 {
		return "", false
	}

	rest := afterLine(body[idx:])
	if end := nextHeadingIndex(rest); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest), true
}

// customSection extracts the text after the "## Custom Instructions"
// heading line, or "" when the heading is absent.
func customSection(body string) string {
	idx := headingIndex(body, customInstructionsHeading)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(afterLine(body[idx:]))
}

// headingIndex returns the offset of the first line beginning with the
// given heading, or -1. A mid-line occurrence of the heading text is
// body text, not a heading.
func headingIndex(body, heading string) int {
	if strings.HasPrefix(body, heading) {
		return 0
	}
	if i := strings.Index(body, "\n"+heading); i >= 0 {
		return i + 1
	}
	return -1
}

// nextHeadingIndex returns the offset of the first line starting any
// level-2 heading, or -1.
func nextHeadingIndex(s string) int {
	if strings.HasPrefix(s, "## ") {
		return 0
	}
	if i := strings.Index(s, "\n## "); i >= 0 {
		return i + 1
	}
	return -1
}

// afterLine returns everything after the first line of s.
func afterLine(s string) string {
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		return s[nl+1:]
	}
	return ""
}
