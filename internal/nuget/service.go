package nuget

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/runner"
)

// Runner executes a command and reports its exit code.
// *runner.Operation satisfies it.
type Runner interface {
	Run(ctx context.Context, c runner.Command) (int, error)
}

// Service builds and uploads packages with the external toolchain.
type Service struct {
	fs         core.FileSystem
	run        Runner
	tools      Toolchain
	writer     *manifest.Writer
	transcript *Transcript
}

// NewService creates a Service. transcript may be nil; when set it must
// receive the runner's output so failures can carry hints.
func NewService(fs core.FileSystem, run Runner, tools Toolchain, transcript *Transcript) *Service {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Service{
		fs:         fs,
		run:        run,
		tools:      tools,
		writer:     manifest.NewWriter(fs, manifest.ProjectOptions{}),
		transcript: transcript,
	}
}

// Build packs the manifest at manifestPath.
func (s *Service) Build(ctx context.Context, format manifest.Format, manifestPath string, opts BuildOptions) error {
	if _, err := s.fs.Stat(ctx, manifestPath); err != nil {
		return fmt.Errorf("manifest %q: %w", manifestPath, err)
	}
	tool := s.tools.Executable(ctx, s.fs, format)
	return s.exec(ctx, "pack", PackCommand(tool, format, manifestPath, opts))
}

// UploadRequest describes one upload.
type UploadRequest struct {
	Format  manifest.Format
	Archive string
	// Source is a feed name or URL. It defaults to the feed key when
	// credentials are given.
	Source string
	APIKey string
	// Feed, when set, is written as nuget.config next to the archive and
	// passed to the pusher in place of the API key.
	Feed *manifest.FeedConfig
}

// Upload pushes the archive. A missing archive fails before anything runs.
func (s *Service) Upload(ctx context.Context, req UploadRequest) error {
	info, err := s.fs.Stat(ctx, req.Archive)
	if err != nil || info.IsDir() {
		return &ArchiveNotFoundError{Path: req.Archive}
	}

	push := PushRequest{
		Archive: req.Archive,
		Source:  req.Source,
		APIKey:  req.APIKey,
	}

	if req.Feed != nil {
		path, err := s.writer.WriteFeedConfig(ctx, *req.Feed, filepath.Dir(req.Archive))
		if err != nil {
			return err
		}
		push.ConfigFile = path
		if push.Source == "" {
			push.Source = req.Feed.Key
		}
	}

	tool := s.tools.Executable(ctx, s.fs, req.Format)
	return s.exec(ctx, "push", PushCommand(tool, req.Format, push))
}

func (s *Service) exec(ctx context.Context, action string, cmd runner.Command) error {
	if s.transcript != nil {
		s.transcript.Reset()
	}

	code, err := s.run.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code == 0 {
		return nil
	}

	toolErr := &ToolError{Tool: filepath.Base(cmd.Path), Action: action, ExitCode: code}
	if s.transcript != nil {
		toolErr.Output = s.transcript.String()
		toolErr.Hint = MatchHint(toolErr.Output)
	}
	return toolErr
}
