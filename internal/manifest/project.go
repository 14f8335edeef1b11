package manifest

import "strings"

// DefaultTargetFramework is the framework declared by project manifests.
const DefaultTargetFramework = "net8.0"

// ProjectOptions tunes the project manifest.
type ProjectOptions struct {
	// TargetFramework defaults to DefaultTargetFramework.
	TargetFramework string

	// Readme packs README.md and declares it as PackageReadmeFile.
	// Off by default; the legacy manifest always references it.
	Readme bool
}

// RenderProject renders the SDK-style project manifest.
func RenderProject(m Metadata, opts ProjectOptions) string {
	framework := opts.TargetFramework
	if strings.TrimSpace(framework) == "" {
		framework = DefaultTargetFramework
	}

	var sb strings.Builder

	sb.WriteString(`<Project Sdk="Microsoft.NET.Sdk">` + "\n")
	sb.WriteString("  <PropertyGroup>\n")
	sb.WriteString("    <TargetFramework>" + escape(framework) + "</TargetFramework>\n")
	sb.WriteString("    <PackageId>" + escape(m.ID) + "</PackageId>\n")
	sb.WriteString("    <Version>" + escape(m.Version) + "</Version>\n")
	sb.WriteString("    <Authors>" + escape(m.AuthorsOrDefault()) + "</Authors>\n")
	sb.WriteString("    <Description>" + escape(Description(m)) + "</Description>\n")
	if opts.Readme {
		sb.WriteString("    <PackageReadmeFile>" + ReadmeFileName + "</PackageReadmeFile>\n")
	}
	sb.WriteString("    <IncludeContentInPack>true</IncludeContentInPack>\n")
	sb.WriteString("  </PropertyGroup>\n")
	sb.WriteString("  <ItemGroup>\n")
	if opts.Readme {
		sb.WriteString(`    <None Include="` + ReadmeFileName + `" Pack="true" PackagePath="/" />` + "\n")
	}
	for _, file := range m.ContentFiles {
		sb.WriteString(`    <Content Include="` + escape(file) + `" Pack="true" PackagePath="` + escape(ContentTarget(file)) + `">` + "\n")
		sb.WriteString("      <PackageCopyToOutput>true</PackageCopyToOutput>\n")
		sb.WriteString("    </Content>\n")
	}
	sb.WriteString("  </ItemGroup>\n")
	sb.WriteString("</Project>\n")

	return sb.String()
}

// Render renders the manifest for the given format.
func Render(format Format, m Metadata, opts ProjectOptions) string {
	if format == FormatProject {
		return RenderProject(m, opts)
	}
	return RenderNuspec(m)
}
