package operations

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/nuget"
)

// UploadRequest describes which archive to push and where.
type UploadRequest struct {
	// Archive is an explicit package path. When empty the archive of ID and
	// Version is searched for under Dir.
	Archive string
	Dir     string
	ID      string
	Version string

	Source string
	APIKey string
	Feed   *manifest.FeedConfig
}

// UploadOperation pushes a package archive.
type UploadOperation struct {
	format  manifest.Format
	service *nuget.Service
	locator *nuget.Locator
}

// NewUploadOperation creates an upload operation.
func NewUploadOperation(fs core.FileSystem, format manifest.Format, service *nuget.Service) *UploadOperation {
	return &UploadOperation{
		format:  format,
		service: service,
		locator: nuget.NewLocator(fs),
	}
}

// Execute resolves the archive and pushes it. It returns the archive path.
func (op *UploadOperation) Execute(ctx context.Context, req UploadRequest) (string, error) {
	archive := req.Archive
	if archive == "" {
		if strings.TrimSpace(req.ID) == "" {
			return "", &nuget.ArchiveNotFoundError{Dir: req.Dir, ID: "<unknown>", Version: req.Version}
		}
		found, err := op.locator.Find(ctx, req.Dir, req.ID, req.Version)
		if err != nil {
			return "", err
		}
		archive = found
	}

	abs, err := filepath.Abs(archive)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q: %w", archive, err)
	}
	archive = abs

	err = op.service.Upload(ctx, nuget.UploadRequest{
		Format:  op.format,
		Archive: archive,
		Source:  req.Source,
		APIKey:  req.APIKey,
		Feed:    req.Feed,
	})
	return archive, err
}

// Name returns the name of this operation.
func (op *UploadOperation) Name() string {
	return fmt.Sprintf("upload %s", op.format)
}
