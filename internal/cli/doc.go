// Package cli assembles the nupack command tree.
package cli
