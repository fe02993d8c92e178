package mode

import "fmt"

// Document is one discovered mode file, read in full before parsing.
type Document struct {
	// Filename is the base name of the file, used for dialect resolution
	// and error context.
	Filename string

	// Raw is the unprocessed file content.
	Raw string
}

// Parsed is the result of running a Document through the pipeline.
// CustomInstructions is the empty string when the document has no
// supplementary section; serialized forms omit the field entirely in
// that case rather than emitting null or "".
type Parsed struct {
	Name               string
	Slug               string
	RoleDefinition     string
	CustomInstructions string
}

// ParseError is a document-level parse failure. The offending file is
// skipped and logged; it never aborts the run.
type ParseError struct {
	Filename string // file that failed to parse
	Err      error  // underlying error
}

func (e *ParseError) Error() string {
	if e.Filename == "" {
		return fmt.Sprintf("parsing mode: %v", e.Err)
	}
	return fmt.Sprintf("parsing mode %s: %v", e.Filename, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
