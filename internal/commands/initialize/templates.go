package initialize

import (
	"fmt"
	"slices"
	"strings"

	"github.com/indaco/nupack/internal/manifest"
)

// Template is a starting configuration for a common packaging setup.
type Template struct {
	Name        string
	Description string
	Format      manifest.Format
	// Feed adds a source section with credential placeholders.
	Feed bool
}

// AllTemplates returns all available templates.
func AllTemplates() []Template {
	return []Template{
		{
			Name:        "nuspec",
			Description: "Legacy .nuspec manifest packed with nuget",
			Format:      manifest.FormatNuspec,
		},
		{
			Name:        "dotnet",
			Description: "SDK-style project packed with dotnet",
			Format:      manifest.FormatProject,
		},
		{
			Name:        "gitlab",
			Description: "SDK-style project pushed to a GitLab package registry",
			Format:      manifest.FormatProject,
			Feed:        true,
		},
	}
}

// TemplateNames returns the names of all available templates.
func TemplateNames() []string {
	templates := AllTemplates()
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// GetTemplate returns the template with the given name, or an error if not found.
func GetTemplate(name string) (*Template, error) {
	for _, t := range AllTemplates() {
		if t.Name == name {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unknown template %q (available: %s)", name, strings.Join(TemplateNames(), ", "))
}

// IsValidTemplate checks if the given name is a valid template.
func IsValidTemplate(name string) bool {
	return slices.Contains(TemplateNames(), name)
}
