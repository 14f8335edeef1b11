package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestKeyMap_EscQuits(t *testing.T) {
	km := keyMap()

	keys := km.Quit.Keys()
	for _, want := range []string{"ctrl+c", "esc"} {
		found := false
		for _, k := range keys {
			if k == want {
				found = true
			}
		}
		if !found {
			t.Errorf("Quit keys = %v, missing %q", keys, want)
		}
	}

	if !key.Matches(keyMsg("esc"), km.Quit) {
		t.Error("esc should match the quit binding")
	}
}

func TestRequired(t *testing.T) {
	validate := required("package ID")

	if err := validate("Acme.Tools"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	for _, input := range []string{"", "   "} {
		err := validate(input)
		if err == nil {
			t.Fatalf("expected error for %q", input)
		}
		if !strings.Contains(err.Error(), "package ID is required") {
			t.Errorf("error = %q", err)
		}
	}
}

func TestNewPrompter(t *testing.T) {
	p := NewPrompter()
	if _, ok := p.(*TUIPrompter); !ok {
		t.Errorf("NewPrompter() returned %T, want *TUIPrompter", p)
	}
}

// keyMsg satisfies fmt.Stringer the way tea.KeyMsg does for key.Matches.
type keyMsg string

func (k keyMsg) String() string { return string(k) }
