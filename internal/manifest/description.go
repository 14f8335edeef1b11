package manifest

import (
	"strings"
)

// ReadmeFileName is the description file written next to every manifest.
const ReadmeFileName = "README.md"

// PlaceholderDescription is used when there is neither a description nor content.
const PlaceholderDescription = "No description provided."

// Description returns the explicit description, or synthesizes one from the
// content file list.
func Description(m Metadata) string {
	if strings.TrimSpace(m.Description) != "" {
		return m.Description
	}
	if len(m.ContentFiles) == 0 {
		return PlaceholderDescription
	}

	var sb strings.Builder
	sb.WriteString("# " + m.ID + "\n")
	sb.WriteString("\n")
	sb.WriteString("Package containing the following files:\n")
	sb.WriteString("\n")
	for _, file := range m.ContentFiles {
		sb.WriteString("- " + BaseName(file) + "\n")
	}
	return sb.String()
}

// BaseName strips the directory from a path written with either separator,
// so manifests built from Windows paths list the same names everywhere.
func BaseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}

// ContentTarget is the in-package path of a content file.
func ContentTarget(file string) string {
	return "contentFiles/any/any/" + BaseName(file)
}
