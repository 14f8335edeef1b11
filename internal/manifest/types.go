package manifest

import (
	"fmt"
	"strings"
)

// Format selects the manifest variant.
type Format string

const (
	// FormatNuspec is the legacy manifest read by "nuget pack".
	FormatNuspec Format = "nuspec"

	// FormatProject is the SDK-style project read by "dotnet pack".
	FormatProject Format = "csproj"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatNuspec, FormatProject}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatNuspec, FormatProject:
		return true
	default:
		return false
	}
}

// DefaultFileName is the manifest file name used when none is given.
func (f Format) DefaultFileName() string {
	if f == FormatProject {
		return "Package.csproj"
	}
	return "Package.nuspec"
}

// ParseFormat converts a string to a Format.
// "project" is accepted as an alias of "csproj".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nuspec":
		return FormatNuspec, nil
	case "csproj", "project":
		return FormatProject, nil
	default:
		return "", fmt.Errorf("unknown manifest format %q (available: nuspec, csproj)", s)
	}
}

// Metadata describes one package. Values are built fresh for every action.
type Metadata struct {
	ID           string
	Version      string
	Authors      string
	Description  string
	ContentFiles []string
}

// Validate ensures the fields required by every manifest are present.
func (m Metadata) Validate() error {
	var missing []string
	if strings.TrimSpace(m.ID) == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(m.Version) == "" {
		missing = append(missing, "version")
	}
	if len(missing) > 0 {
		return &ValidationError{MissingFields: missing}
	}
	return nil
}

// AuthorsOrDefault returns the authors, or "Unknown" when blank.
func (m Metadata) AuthorsOrDefault() string {
	if strings.TrimSpace(m.Authors) == "" {
		return UnknownAuthors
	}
	return m.Authors
}

// UnknownAuthors is rendered when no authors are given.
const UnknownAuthors = "Unknown"

// ValidationError indicates that required metadata is missing.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid package metadata: missing required fields: %s", strings.Join(e.MissingFields, ", "))
}

// Suggestion returns guidance on fixing the metadata.
func (e *ValidationError) Suggestion() string {
	var sb strings.Builder
	sb.WriteString("Provide the missing values with flags or in .nupack.yaml:\n")
	for _, field := range e.MissingFields {
		fmt.Fprintf(&sb, "  --%s <value>\n", field)
	}
	sb.WriteString("Both are inferred from the first content file when one is given.\n")
	return sb.String()
}
