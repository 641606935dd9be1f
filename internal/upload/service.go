package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/ytget/webp-uploader/internal/model"
)

// Endpoint and header constants
const (
	ProcessPath     = "/process"
	RequestIDHeader = "X-Request-ID"

	MaxResponseBytes = 64 * 1024
)

// Content types that mean the server answered with the archive itself
var archiveContentTypes = []string{"application/zip", "application/x-zip-compressed", "application/octet-stream"}

// ArchiveSaver stores an archive body that arrived inline
type ArchiveSaver interface {
	SaveArchive(r io.Reader) (string, error)
}

type processResponse struct {
	JobID string `json:"job_id"`
}

// Service posts images to the processing server
type Service struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
	archives   ArchiveSaver
	logger     log.Logger
}

// NewService creates a new upload service. archives may be nil when the server
// never answers with an inline archive.
func NewService(baseURL string, archives ArchiveSaver, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Service{
		baseURL: baseURL,
		// No client timeout: large uploads are cancelled through the context
		httpClient: &http.Client{},
		archives:   archives,
		logger:     logger,
	}
}

// SetBaseURL sets the server URL
func (s *Service) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = baseURL
}

func (s *Service) processURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimRight(s.baseURL, "/") + ProcessPath
}

// Upload streams every file and the quality field to POST /process
func (s *Service) Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error) {
	if len(req.Files) == 0 {
		return nil, model.ErrNoFiles
	}

	b, err := buildBody(req)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	pr := &progressReader{r: b.reader, total: b.length, onProgress: onProgress}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.processURL(), pr)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.ContentLength = b.length
	httpReq.Header.Set("Content-Type", b.contentType)
	if req.CycleID != "" {
		httpReq.Header.Set(RequestIDHeader, req.CycleID)
	}

	level.Info(s.logger).Log("method", "Upload", "cycle", req.CycleID, "files", len(req.Files),
		"bytes", b.length, "quality", req.Quality)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		level.Error(s.logger).Log("method", "Upload", "cycle", req.CycleID, "err", err)
		return nil, fmt.Errorf("failed to upload files: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := model.NewHTTPError(resp)
		level.Error(s.logger).Log("method", "Upload", "cycle", req.CycleID, "status", resp.StatusCode, "body", httpErr.Body)
		return nil, httpErr
	}

	if isArchive(resp.Header.Get("Content-Type")) {
		return s.saveInlineArchive(resp.Body)
	}

	var decoded processResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, MaxResponseBytes)).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if decoded.JobID == "" {
		return nil, model.ErrMissingJobID
	}

	level.Info(s.logger).Log("method", "Upload", "cycle", req.CycleID, "job", decoded.JobID)
	return &Result{JobID: decoded.JobID}, nil
}

func (s *Service) saveInlineArchive(r io.Reader) (*Result, error) {
	if s.archives == nil {
		return nil, fmt.Errorf("server answered with an archive but no archive store is configured")
	}
	path, err := s.archives.SaveArchive(r)
	if err != nil {
		return nil, err
	}
	return &Result{ArchivePath: path}, nil
}

func isArchive(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, t := range archiveContentTypes {
		if mediaType == t {
			return true
		}
	}
	return false
}
