package printer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// captureStdout returns what fn wrote to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestRenderFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string) string
	}{
		{"Faint", Faint},
		{"Bold", Bold},
		{"Success", Success},
		{"Error", Error},
		{"Warning", Warning},
		{"Info", Info},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Styled output may or may not carry ANSI codes depending on the
			// terminal, but it always contains the text.
			if got := tt.function("Acme.Firmware"); !strings.Contains(got, "Acme.Firmware") {
				t.Errorf("%s() = %q, want it to contain the input", tt.name, got)
			}
		})
	}
}

func TestPrintFunctions(t *testing.T) {
	tests := []struct {
		name     string
		function func(string)
	}{
		{"PrintFaint", PrintFaint},
		{"PrintBold", PrintBold},
		{"PrintSuccess", PrintSuccess},
		{"PrintError", PrintError},
		{"PrintWarning", PrintWarning},
		{"PrintInfo", PrintInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStdout(t, func() { tt.function("manifest written") })

			if !strings.Contains(output, "manifest written") {
				t.Errorf("%s() output %q does not contain the input", tt.name, output)
			}
			if !strings.HasSuffix(output, "\n") {
				t.Errorf("%s() output does not end with newline", tt.name)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	for _, got := range []string{Success("ok"), Error("bad"), Bold("b"), Faint("f")} {
		if strings.Contains(got, "\x1b[") {
			t.Errorf("styled output %q contains ANSI escapes with color disabled", got)
		}
	}
}

type hintedError struct{}

func (hintedError) Error() string      { return "archive missing" }
func (hintedError) Suggestion() string { return "Run 'nupack build' first.\n" }

func TestPrintFailure(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	t.Run("with suggestion in chain", func(t *testing.T) {
		var buf bytes.Buffer
		PrintFailure(&buf, fmt.Errorf("upload: %w", hintedError{}))

		want := "Error: upload: archive missing\n\nRun 'nupack build' first.\n"
		if buf.String() != want {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		PrintFailure(&buf, errors.New("boom"))
		if buf.String() != "Error: boom\n" {
			t.Errorf("output = %q", buf.String())
		}
	})

	t.Run("nil error", func(t *testing.T) {
		var buf bytes.Buffer
		PrintFailure(&buf, nil)
		if buf.Len() != 0 {
			t.Errorf("output = %q", buf.String())
		}
	})
}

func TestLogSink(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	var buf bytes.Buffer
	sink := NewLogSink(&buf)
	sink.now = func() time.Time { return time.Date(2024, 3, 7, 9, 5, 1, 0, time.UTC) }

	sink.Log("Running: nuget pack Package.nuspec")
	sink.Log("Successfully created package.")

	want := "09:05:01 Running: nuget pack Package.nuspec\n09:05:01 Successfully created package.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestTable(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	out := Table(
		[]string{"File", "Id", "Version"},
		[][]string{
			{"boot.pdi", "boot", "2020.11.18"},
			{"tool.dll", "tool", "1.2.3.4"},
		},
	)

	for _, want := range []string{"File", "Version", "boot.pdi", "2020.11.18", "tool.dll", "1.2.3.4"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines < 4 {
		t.Errorf("table has %d lines, want header, separator and rows:\n%s", lines, out)
	}
}
