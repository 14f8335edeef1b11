// Package tui provides the interactive pieces of the CLI: huh forms with a
// selectable theme, a spinner for quiet runs, and terminal detection used to
// skip both when nobody is watching.
package tui
