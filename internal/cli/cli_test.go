package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/tui"
)

func TestNew_Commands(t *testing.T) {
	app := New(config.Default())

	want := []string{"init", "generate", "build", "upload", "inspect", "feed-config", "doctor"}
	if len(app.Commands) != len(want) {
		t.Fatalf("got %d commands, want %d", len(app.Commands), len(want))
	}
	for i, name := range want {
		if app.Commands[i].Name != name {
			t.Errorf("command[%d] = %q, want %q", i, app.Commands[i].Name, name)
		}
	}
	if !strings.HasPrefix(app.Version, "v") {
		t.Errorf("Version = %q, want v prefix", app.Version)
	}
}

func TestNew_InvalidTheme(t *testing.T) {
	app := New(config.Default())
	err := app.Run(context.Background(), []string{"nupack", "--theme", "neon", "inspect"})
	if err == nil || !strings.Contains(err.Error(), `unknown theme "neon"`) {
		t.Errorf("err = %v, want unknown theme", err)
	}
}

func TestNew_ThemeFlag(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"known theme", []string{"nupack", "--theme", "dracula", "inspect"}, false},
		{"empty theme uses default", []string{"nupack", "--theme", "", "inspect"}, false},
		{"unknown theme", []string{"nupack", "--theme", "neon", "inspect"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(func() { tui.SetTheme("") })
			app := New(config.Default())
			app.Writer = io.Discard
			app.ErrWriter = io.Discard

			err := app.Run(context.Background(), tt.args)
			if tt.wantErr && (err == nil || !strings.Contains(err.Error(), "available: "+joinThemes())) {
				t.Errorf("err = %v, want list of themes", err)
			}
			if !tt.wantErr && err != nil && strings.Contains(err.Error(), "theme") {
				t.Errorf("err = %v, want theme accepted", err)
			}
		})
	}
}

func TestJoinThemes(t *testing.T) {
	if got := joinThemes(); got != "nupack, base, charm, dracula" {
		t.Errorf("joinThemes() = %q", got)
	}
}
