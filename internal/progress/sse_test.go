package progress

import (
	"io"
	"strings"
	"testing"
	"time"
)

func TestDecoder_Frames(t *testing.T) {
	stream := ": keep-alive\n" +
		"data: {\"type\":\"state\"}\n\n" +
		"id:7\r\nevent:message\r\ndata:first\r\ndata:second\r\n\r\n" +
		"retry: 1500\n\n" +
		"event: ping\ndata: x\n\n" +
		"data: partial"

	dec := NewDecoder(strings.NewReader(stream))

	frame, err := dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if frame.Data != `{"type":"state"}` || !frame.IsMessage() {
		t.Errorf("Unexpected first frame: %+v", frame)
	}

	frame, err = dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if frame.Data != "first\nsecond" || frame.ID != "7" || !frame.IsMessage() {
		t.Errorf("Unexpected multi-line frame: %+v", frame)
	}

	frame, err = dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if frame.Retry != 1500*time.Millisecond || frame.Data != "" {
		t.Errorf("Unexpected retry frame: %+v", frame)
	}

	frame, err = dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if frame.IsMessage() || frame.Event != "ping" {
		t.Errorf("Expected named non-message frame, got %+v", frame)
	}

	// Partial frame cut off by EOF is dropped
	if _, err = dec.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestDecoder_EmptyStream(t *testing.T) {
	dec := NewDecoder(strings.NewReader(""))
	if _, err := dec.Next(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestDecoder_IgnoresInvalidRetry(t *testing.T) {
	dec := NewDecoder(strings.NewReader("retry: soon\ndata: x\n\n"))

	frame, err := dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if frame.Retry != 0 || frame.Data != "x" {
		t.Errorf("Unexpected frame: %+v", frame)
	}
}

func TestDecoder_IDOnlyFrames(t *testing.T) {
	dec := NewDecoder(strings.NewReader("id: 7\n\nid\n\ndata: {}\n\n"))

	frame, err := dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !frame.HasID || frame.ID != "7" || frame.Data != "" {
		t.Errorf("Expected id-only frame with id 7, got %+v", frame)
	}

	// An empty id field is still an id: it clears the last event id
	frame, err = dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !frame.HasID || frame.ID != "" {
		t.Errorf("Expected empty id frame, got %+v", frame)
	}

	frame, err = dec.Next()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if frame.HasID || frame.Data != "{}" {
		t.Errorf("Expected data frame without id, got %+v", frame)
	}
}
