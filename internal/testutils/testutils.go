// Package testutils holds helpers shared by command tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/urfave/cli/v3"
)

// CaptureStdout runs fn and returns what it wrote to os.Stdout.
func CaptureStdout(fn func()) (string, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}

	orig := os.Stdout
	os.Stdout = w

	done := make(chan struct{})
	var buf bytes.Buffer
	var copyErr error
	go func() {
		_, copyErr = io.Copy(&buf, r)
		close(done)
	}()

	func() {
		defer func() { os.Stdout = orig }()
		fn()
	}()

	_ = w.Close()
	<-done
	_ = r.Close()
	return buf.String(), copyErr
}

// BuildCLIForTests returns a root command wrapping cmds.
func BuildCLIForTests(cmds []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:     "nupack",
		Commands: cmds,
	}
}

// RunCLITest runs app with args from inside dir and fails the test on error.
func RunCLITest(t *testing.T, app *cli.Command, args []string, dir string) {
	t.Helper()
	if err := RunCLIInDir(t, app, args, dir); err != nil {
		t.Fatalf("%v: unexpected error: %v", args, err)
	}
}

// RunCLIInDir runs app with args from inside dir and returns its error.
func RunCLIInDir(t *testing.T, app *cli.Command, args []string, dir string) error {
	t.Helper()
	t.Chdir(dir)
	return app.Run(context.Background(), args)
}

// WriteFile writes data to path and fails the test on error.
func WriteFile(t *testing.T, path string, data string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
