package roomodes

import "github.com/thoreinstein/modegen/internal/mode"

// OutputFilename is the fixed name of the generated config file.
const OutputFilename = ".roomodes"

// FileSuffix marks candidate mode documents in the modes directory.
const FileSuffix = "-mode.md"

// SourceProject is the provenance constant stamped on every entry.
const SourceProject = "project"

// DefaultGroups is the fixed, ordered capability set shared by every
// generated mode. Order is part of the output contract.
func DefaultGroups() []string {
	return []string{"read", "edit", "browser", "command", "mcp"}
}

// Entry is the persisted form of one mode. Field order matches the
// serialized output. CustomInstructions is omitted entirely when empty;
// it must never serialize as null or "".
type Entry struct {
	Slug               string   `json:"slug" toml:"slug"`
	Name               string   `json:"name" toml:"name"`
	RoleDefinition     string   `json:"roleDefinition" toml:"roleDefinition"`
	Groups             []string `json:"groups" toml:"groups"`
	Source             string   `json:"source" toml:"source"`
	CustomInstructions string   `json:"customInstructions,omitempty" toml:"customInstructions,omitempty"`
}

// Config is the root of the generated file: all entries under the fixed
// customModes key, sorted ascending by name.
type Config struct {
	CustomModes []Entry `json:"customModes" toml:"customModes"`
}

// NewEntry builds the persisted form of a parsed mode, stamping the
// fixed capability groups and provenance.
func NewEntry(p *mode.Parsed) Entry {
	return Entry{
		Slug:               p.Slug,
		Name:               p.Name,
		RoleDefinition:     p.RoleDefinition,
		Groups:             DefaultGroups(),
		Source:             SourceProject,
		CustomInstructions: p.CustomInstructions,
	}
}
