package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/ytget/webp-uploader/internal/model"
)

// Stream constants
const (
	ProgressPathPrefix = "/progress/"
	LastEventIDHeader  = "Last-Event-ID"
	EventStreamType    = "text/event-stream"

	// DefaultRetryDelay matches the EventSource reconnection time
	DefaultRetryDelay = 3 * time.Second
	MaxRetryDelay     = 30 * time.Second

	// DefaultMaxReconnects bounds failed reconnects after the first connection
	// fails, so the budget allows DefaultMaxReconnects+1 failed connections in a
	// row; 0 means unbounded
	DefaultMaxReconnects = 10
)

// ErrGaveUp is returned when the stream could not be re-established
var ErrGaveUp = errors.New("progress stream lost")

// Service subscribes to /progress/{job_id}
type Service struct {
	mu            sync.RWMutex
	baseURL       string
	httpClient    *http.Client
	retryDelay    time.Duration
	maxReconnects int
	logger        log.Logger
}

// NewService creates a new progress stream service
func NewService(baseURL string, logger log.Logger) *Service {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Service{
		baseURL: baseURL,
		// Streams are long lived, so no client timeout
		httpClient:    &http.Client{},
		retryDelay:    DefaultRetryDelay,
		maxReconnects: DefaultMaxReconnects,
		logger:        logger,
	}
}

// SetBaseURL sets the server URL
func (s *Service) SetBaseURL(baseURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseURL = baseURL
}

// SetRetryPolicy sets the initial reconnect delay and the consecutive failure
// limit. The server may still change the delay with a retry field.
func (s *Service) SetRetryPolicy(delay time.Duration, maxReconnects int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retryDelay = delay
	s.maxReconnects = maxReconnects
}

// StreamURL returns the progress endpoint for jobID
func (s *Service) StreamURL(jobID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return strings.TrimRight(s.baseURL, "/") + ProgressPathPrefix + url.PathEscape(jobID)
}

// streamState survives reconnects within one subscription
type streamState struct {
	delay    time.Duration
	lastID   string
	received bool
}

// Subscribe opens the stream and keeps it open until a fatal or done event
func (s *Service) Subscribe(ctx context.Context, jobID string, cb Callbacks) error {
	s.mu.RLock()
	state := &streamState{delay: s.retryDelay}
	maxReconnects := s.maxReconnects
	s.mu.RUnlock()

	target := s.StreamURL(jobID)
	logger := log.With(s.logger, "job", jobID)
	failures := 0

	for {
		state.received = false
		terminal, err := s.stream(ctx, target, state, cb, logger)
		if terminal {
			level.Info(logger).Log("method", "Subscribe", "msg", "stream closed after terminal event")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			err = io.ErrUnexpectedEOF
		}

		if state.received {
			failures = 0
		}
		failures++

		level.Warn(logger).Log("method", "Subscribe", "msg", "connection lost", "attempt", failures, "err", err)
		if cb.OnConnectionLost != nil {
			cb.OnConnectionLost(err)
		}

		if isPermanent(err) || (maxReconnects > 0 && failures > maxReconnects) {
			return fmt.Errorf("%w after %d attempts: %w", ErrGaveUp, failures, err)
		}

		select {
		case <-time.After(state.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// stream reads one connection until it ends. It reports true once a terminal
// event was delivered.
func (s *Service) stream(ctx context.Context, target string, state *streamState, cb Callbacks, logger log.Logger) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", EventStreamType)
	req.Header.Set("Cache-Control", "no-cache")
	if state.lastID != "" {
		req.Header.Set(LastEventIDHeader, state.lastID)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to open progress stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, model.NewHTTPError(resp)
	}

	dec := NewDecoder(resp.Body)
	for {
		frame, err := dec.Next()
		if err != nil {
			return false, err
		}

		if frame.Retry > 0 {
			state.delay = min(frame.Retry, MaxRetryDelay)
		}
		if frame.HasID {
			state.lastID = frame.ID
		}
		if frame.Data == "" || !frame.IsMessage() {
			continue
		}

		ev, err := model.ParseEvent([]byte(frame.Data))
		if err != nil {
			level.Debug(logger).Log("method", "stream", "msg", "skipping frame", "err", err)
			continue
		}

		state.received = true
		if cb.OnEvent != nil {
			cb.OnEvent(ev)
		}
		if ev.IsTerminal() {
			return true, nil
		}
	}
}

// isPermanent reports whether reconnecting cannot help. EventSource stops on
// any non-200 answer; here only client errors other than timeouts and rate
// limits are final.
func isPermanent(err error) bool {
	var httpErr *model.HTTPError
	if !errors.As(err, &httpErr) {
		return false
	}
	switch httpErr.StatusCode {
	case http.StatusRequestTimeout, http.StatusTooManyRequests:
		return false
	}
	return httpErr.StatusCode >= 400 && httpErr.StatusCode < 500
}
