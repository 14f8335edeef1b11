package manifest

import "strings"

// RenderNuspec renders the legacy manifest.
func RenderNuspec(m Metadata) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0"?>` + "\n")
	sb.WriteString("<package>\n")
	sb.WriteString("  <metadata>\n")
	sb.WriteString("    <id>" + escape(m.ID) + "</id>\n")
	sb.WriteString("    <version>" + escape(m.Version) + "</version>\n")
	sb.WriteString("    <authors>" + escape(m.AuthorsOrDefault()) + "</authors>\n")
	sb.WriteString("    <description>" + escape(Description(m)) + "</description>\n")
	sb.WriteString("    <readme>" + ReadmeFileName + "</readme>\n")
	sb.WriteString("    <contentFiles>\n")
	for _, file := range m.ContentFiles {
		sb.WriteString(`      <files include="any/any/` + escape(BaseName(file)) +
			`" buildAction="None" copyToOutput="true" flatten="true" />` + "\n")
	}
	sb.WriteString("    </contentFiles>\n")
	sb.WriteString("  </metadata>\n")
	sb.WriteString("  <files>\n")
	sb.WriteString(`    <file src="` + ReadmeFileName + `" target="" />` + "\n")
	for _, file := range m.ContentFiles {
		sb.WriteString(`    <file src="` + escape(file) + `" target="` + escape(ContentTarget(file)) + `" />` + "\n")
	}
	sb.WriteString("  </files>\n")
	sb.WriteString("</package>\n")

	return sb.String()
}
