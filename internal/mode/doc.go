// Package mode parses human-authored mode documents.
//
// A mode document is a markdown file describing an AI-agent persona. It
// carries an optional frontmatter block, exactly one "# <Name> Mode"
// level-1 heading, and a body whose "## Custom Instructions" section
// (and, in the role-heading dialect, "## Role Definition" section)
// demarcates supplementary text.
//
// The package is pure: every function maps input text to output values
// with no I/O and no shared state, so documents may be parsed in any
// order or concurrently.
package mode
