// Package parser reads and writes the version recorded in project files.
//
// It backs version sync: after a manifest is generated, the package
// version is written into the files listed under "sync" in .nupack.yaml.
// Supported formats are JSON, YAML, TOML, MSBuild project files, plain
// text and regex-addressed text.
package parser
