package model

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxErrorBodyBytes caps how much of a failed response body is kept
const MaxErrorBodyBytes = 4096

// Protocol errors shared by the HTTP clients
var (
	ErrNoFiles       = errors.New("no files selected")
	ErrMissingJobID  = errors.New("response did not include a job id")
	ErrBusy          = errors.New("an upload cycle is already running")
	ErrEmptyDownload = errors.New("done event did not include a download reference")
)

// HTTPError is a non-2xx response from the processing server
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// NewHTTPError reads at most MaxErrorBodyBytes of resp.Body into an HTTPError
func NewHTTPError(resp *http.Response) *HTTPError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorBodyBytes))
	return &HTTPError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}

// JobError carries the message of a fatal event
type JobError struct {
	JobID   string
	Message string
}

func (e *JobError) Error() string {
	return fmt.Sprintf("job %s failed: %s", e.JobID, e.Message)
}
