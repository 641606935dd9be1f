package upload

import (
	"context"

	"github.com/ytget/webp-uploader/internal/model"
)

// ProgressFunc receives the number of request bytes sent so far and the total
type ProgressFunc func(sent, total int64)

// Uploader defines the interface for the upload service.
type Uploader interface {
	// Upload posts the files and returns the job the server started.
	Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error)

	// SetBaseURL sets the server URL
	SetBaseURL(baseURL string)
}

// Request describes one upload cycle
type Request struct {
	CycleID string
	Files   []*model.SelectedFile
	Quality int
}

// Result is the server's answer to an upload. Exactly one of JobID and
// ArchivePath is set.
type Result struct {
	JobID string

	// ArchivePath is set when the server answered with the archive itself
	ArchivePath string
}
