// Package clix holds the command-side plumbing shared by the package
// commands: the tool session that streams external tool output and the
// interactive metadata editor.
package clix
