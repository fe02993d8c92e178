package roomodes

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/modegen/internal/logging"
	"github.com/thoreinstein/modegen/internal/mode"
)

func writeModeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func newTestGenerator(t *testing.T, dir string) *Generator {
	t.Helper()
	return New(Options{Dir: dir, Logger: logging.ForTest(t)})
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	// Written in reverse alphabetical order; the output must not care.
	writeModeFile(t, dir, "code-reviewer-mode.md",
		"# Code Reviewer Mode\n\nReview code.\n")
	writeModeFile(t, dir, "backend-developer-mode.md",
		"---\nauthor: someone\n---\n# Backend Developer Mode\n\nBuild services.\n\n## Custom Instructions\n\nKeep it simple.\n")
	writeModeFile(t, dir, "notes.md", "not a mode document")

	g := newTestGenerator(t, dir)
	path, count, err := g.Run()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, filepath.Join(dir, OutputFilename), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, json.Unmarshal(data, &cfg))
	require.Len(t, cfg.CustomModes, 2)

	// Sorted ascending by name.
	assert.Equal(t, "Backend Developer", cfg.CustomModes[0].Name)
	assert.Equal(t, "Code Reviewer", cfg.CustomModes[1].Name)

	first := cfg.CustomModes[0]
	assert.Equal(t, "backend-developer", first.Slug)
	assert.Equal(t, "Build services.", first.RoleDefinition)
	assert.Equal(t, []string{"read", "edit", "browser", "command", "mcp"}, first.Groups)
	assert.Equal(t, "project", first.Source)
	assert.Equal(t, "Keep it simple.", first.CustomInstructions)
}

func TestRunOmitsEmptyCustomInstructions(t *testing.T) {
	dir := t.TempDir()
	writeModeFile(t, dir, "ask-mode.md", "# Ask Mode\n\nAnswer questions.\n")

	g := newTestGenerator(t, dir)
	path, _, err := g.Run()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// The key must be absent, not null or empty.
	assert.NotContains(t, string(data), "customInstructions")
}

func TestRunIsolatesPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	writeModeFile(t, dir, "broken-mode.md", "## No level-1 heading here\n")
	writeModeFile(t, dir, "ask-mode.md", "# Ask Mode\n\nAnswer questions.\n")

	g := newTestGenerator(t, dir)
	_, count, err := g.Run()
	require.NoError(t, err, "per-file failures must not abort the run")
	assert.Equal(t, 1, count)
}

func TestRunIdempotent(t *testing.T) {
	dir := t.TempDir()
	writeModeFile(t, dir, "architect-mode.md", "# Architect Mode\n\nDesign systems.\n")
	writeModeFile(t, dir, "debug-mode.md", "# Debug Mode\n\nFind bugs.\n")

	g := newTestGenerator(t, dir)

	path, _, err := g.Run()
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, _, err = g.Run()
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "repeated runs must be byte-identical")
}

func TestRunEmptyDirectoryWritesEmptyList(t *testing.T) {
	dir := t.TempDir()

	g := newTestGenerator(t, dir)
	path, count, err := g.Run()
	require.NoError(t, err)
	assert.Zero(t, count)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"customModes": []}`, string(data))
	assert.NotContains(t, string(data), "null")
}

func TestRunMissingDirectoryIsFatal(t *testing.T) {
	g := New(Options{Dir: "/nonexistent/modes/dir", Logger: logging.NewDiscard()})
	_, _, err := g.Run()
	require.Error(t, err)
}

func TestCollectSlugCollision(t *testing.T) {
	dir := t.TempDir()
	// Different display names, same slug.
	writeModeFile(t, dir, "a-mode.md", "# Code Reviewer Mode\n\nFirst claimant.\n")
	writeModeFile(t, dir, "b-mode.md", "# Code  Reviewer Mode\n\nSecond claimant.\n")

	g := newTestGenerator(t, dir)
	entries, issues, err := g.Collect()
	require.NoError(t, err)

	// First file in filename order wins.
	require.Len(t, entries, 1)
	assert.Equal(t, "First claimant.", entries[0].RoleDefinition)

	require.Len(t, issues, 1)
	assert.Equal(t, "b-mode.md", issues[0].Filename)
	assert.True(t, errors.Is(issues[0].Err, ErrSlugCollision))
	assert.False(t, issues[0].Warning)
}

func TestCollectUnterminatedFrontmatterWarns(t *testing.T) {
	dir := t.TempDir()
	writeModeFile(t, dir, "odd-mode.md", "---\nauthor: x\n# Odd Mode\n\nRole text.\n")

	g := newTestGenerator(t, dir)
	entries, issues, err := g.Collect()
	require.NoError(t, err)

	// Document is kept; the retained block is only a warning.
	require.Len(t, entries, 1)
	require.Len(t, issues, 1)
	assert.True(t, issues[0].Warning)
}

func TestCollectHonorsDialectOverrides(t *testing.T) {
	dir := t.TempDir()
	writeModeFile(t, dir, "planner-mode.md",
		"# Planner Mode\n\nIntro.\n\n## Role Definition\n\nPlan the work.\n\n## Custom Instructions\n\nSmall steps.\n")

	g := New(Options{
		Dir:      dir,
		Dialects: map[string]mode.Dialect{"planner-mode.md": mode.DialectRoleHeading},
		Logger:   logging.ForTest(t),
	})

	entries, issues, err := g.Collect()
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Len(t, entries, 1)
	assert.Equal(t, "Plan the work.", entries[0].RoleDefinition)
	assert.Equal(t, "Small steps.", entries[0].CustomInstructions)
}

func TestWriteOutputShape(t *testing.T) {
	dir := t.TempDir()
	g := newTestGenerator(t, dir)

	path, err := g.Write([]Entry{{
		Slug:           "architect",
		Name:           "Architect",
		RoleDefinition: "Design systems.",
		Groups:         DefaultGroups(),
		Source:         SourceProject,
	}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `{
  "customModes": [
    {
      "slug": "architect",
      "name": "Architect",
      "roleDefinition": "Design systems.",
      "groups": [
        "read",
        "edit",
        "browser",
        "command",
        "mcp"
      ],
      "source": "project"
    }
  ]
}
`
	assert.Equal(t, want, string(data))
	assert.True(t, strings.HasSuffix(string(data), "\n"))
}
