package nuget

import (
	"fmt"
	"strings"
)

// ArchiveNotFoundError is returned when no package archive can be found
// for upload. No process is started in that case.
type ArchiveNotFoundError struct {
	// Path is the explicit archive path, if one was given.
	Path string
	// Dir, ID and Version describe the search when no path was given.
	Dir     string
	ID      string
	Version string
}

func (e *ArchiveNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("package archive not found: %s", e.Path)
	}
	return fmt.Sprintf("no package archive for %s %s found under %s", e.ID, e.Version, e.Dir)
}

// Suggestion returns guidance on producing the archive.
func (e *ArchiveNotFoundError) Suggestion() string {
	return "Run 'nupack build' first, or pass the archive explicitly with --archive <file.nupkg>."
}

// ToolError is returned when an external tool exits with a non-zero status.
type ToolError struct {
	Tool     string
	Action   string
	ExitCode int
	// Output holds the last lines the tool printed, if they were recorded.
	Output string
	Hint   *Hint
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("%s %s failed with exit code %d", e.Tool, e.Action, e.ExitCode)
	if e.Hint != nil {
		msg += ": " + e.Hint.Message
	}
	return msg
}

// Suggestion returns the hint for a recognized failure, or a pointer to the log.
func (e *ToolError) Suggestion() string {
	if e.Hint == nil || len(e.Hint.Suggestions) == 0 {
		return "Check the tool output above for details."
	}
	var sb strings.Builder
	for _, s := range e.Hint.Suggestions {
		fmt.Fprintf(&sb, "  - %s\n", s)
	}
	return sb.String()
}
