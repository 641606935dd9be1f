package download

import (
	"context"
	"io"
)

// Fetcher defines the interface for the archive download service.
type Fetcher interface {
	// FetchArchive downloads the archive named by ref, which may be relative
	// to the server URL, and returns the saved path.
	FetchArchive(ctx context.Context, ref string) (string, error)

	// SaveArchive stores an archive body that arrived inline
	SaveArchive(r io.Reader) (string, error)

	// SetBaseURL sets the server URL relative references resolve against
	SetBaseURL(baseURL string)

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)
}
