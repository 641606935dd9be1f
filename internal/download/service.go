package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/ytget/webp-uploader/internal/model"
	"github.com/ytget/webp-uploader/internal/platform"
)

// Archive constants
const (
	ArchiveName        = "optimized_images.zip"
	PartialFilePattern = ".optimized_images-*.part"
	MaxRetries         = 1
	DefaultRetryDelay  = 2 * time.Second
)

// Service downloads finished archives into downloadDir
type Service struct {
	mu          sync.RWMutex
	baseURL     string
	downloadDir string
	httpClient  *http.Client
	retryDelay  time.Duration
	logger      log.Logger
}

// NewService creates a new download service
func NewService(baseURL, downloadDir string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Service{
		baseURL:     baseURL,
		downloadDir: downloadDir,
		// No client timeout: archives can be large, cancellation is by context
		httpClient: &http.Client{},
		retryDelay: DefaultRetryDelay,
		logger:     logger,
	}
}

// SetBaseURL sets the server URL relative references resolve against
func (s *Service) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = baseURL
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// DownloadDirectory returns the current download directory
func (s *Service) DownloadDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.downloadDir
}

// Resolve turns ref into an absolute URL using the server URL as base
func (s *Service) Resolve(ref string) (string, error) {
	s.mu.RLock()
	base := s.baseURL
	s.mu.RUnlock()

	refURL, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("invalid download reference %q: %w", ref, err)
	}
	if refURL.IsAbs() {
		return refURL.String(), nil
	}

	baseURL, err := url.Parse(base + "/")
	if err != nil {
		return "", fmt.Errorf("invalid server url %q: %w", base, err)
	}
	return baseURL.ResolveReference(refURL).String(), nil
}

// FetchArchive downloads the archive named by ref with a single retry on
// transport errors and 5xx responses
func (s *Service) FetchArchive(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", model.ErrEmptyDownload
	}

	target, err := s.Resolve(ref)
	if err != nil {
		return "", err
	}

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			// Backoff delay
			select {
			case <-time.After(s.retryDelay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			level.Info(s.logger).Log("method", "FetchArchive", "msg", "retrying", "url", target, "attempt", attempt+1)
		}

		path, err := s.fetchOnce(ctx, target)
		if err == nil {
			level.Info(s.logger).Log("method", "FetchArchive", "msg", "archive saved", "path", path)
			return path, nil
		}

		lastErr = err
		level.Warn(s.logger).Log("method", "FetchArchive", "attempt", attempt+1, "err", err)

		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if !retryable(err) {
			break
		}
	}

	return "", lastErr
}

// SaveArchive stores an archive body that arrived inline
func (s *Service) SaveArchive(r io.Reader) (string, error) {
	path, err := s.save(r)
	if err != nil {
		level.Error(s.logger).Log("method", "SaveArchive", "err", err)
		return "", err
	}
	level.Info(s.logger).Log("method", "SaveArchive", "msg", "archive saved", "path", path)
	return path, nil
}

func (s *Service) fetchOnce(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", model.NewHTTPError(resp)
	}

	return s.save(resp.Body)
}

// save writes r to a partial file and renames it to a free archive name
func (s *Service) save(r io.Reader) (string, error) {
	dir := s.DownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, PartialFilePattern)
	if err != nil {
		return "", fmt.Errorf("failed to create partial file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close archive: %w", err)
	}

	final, err := platform.UniquePath(dir, ArchiveName)
	if err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, final); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to move archive into place: %w", err)
	}

	return filepath.Clean(final), nil
}

// retryable reports whether a failed fetch is worth one more attempt
func retryable(err error) bool {
	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled)
}
