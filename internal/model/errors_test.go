package model

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestNewHTTPError(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Body:       io.NopCloser(strings.NewReader("  no files \n")),
	}

	err := NewHTTPError(resp)
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", err.StatusCode)
	}
	if err.Body != "no files" {
		t.Errorf("Expected trimmed body 'no files', got %q", err.Body)
	}
	if err.Error() != "request failed with status 400: no files" {
		t.Errorf("Unexpected error text: %s", err.Error())
	}
}

func TestNewHTTPError_TruncatesBody(t *testing.T) {
	resp := &http.Response{
		StatusCode: http.StatusInternalServerError,
		Body:       io.NopCloser(strings.NewReader(strings.Repeat("x", MaxErrorBodyBytes*2))),
	}

	err := NewHTTPError(resp)
	if len(err.Body) != MaxErrorBodyBytes {
		t.Errorf("Expected body capped at %d bytes, got %d", MaxErrorBodyBytes, len(err.Body))
	}
}

func TestHTTPError_As(t *testing.T) {
	var wrapped error = &HTTPError{StatusCode: http.StatusBadGateway}
	wrapped = errors.Join(errors.New("upload"), wrapped)

	var httpErr *HTTPError
	if !errors.As(wrapped, &httpErr) {
		t.Fatal("Expected errors.As to find HTTPError")
	}
	if httpErr.Error() != "request failed with status 502" {
		t.Errorf("Unexpected error text: %s", httpErr.Error())
	}
}

func TestJobError(t *testing.T) {
	err := &JobError{JobID: "j1", Message: "disk full"}
	if err.Error() != "job j1 failed: disk full" {
		t.Errorf("Unexpected error text: %s", err.Error())
	}
}
