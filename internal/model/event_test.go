package model

import (
	"errors"
	"testing"
)

func TestParseEvent(t *testing.T) {
	ev, err := ParseEvent([]byte(`{"type":"file_done","out_name":"a.webp","out_size":1234,"processed":1,"total":3}`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ev.Type != EventFileDone || ev.OutName != "a.webp" || ev.OutSize != 1234 || ev.Processed != 1 || ev.Total != 3 {
		t.Errorf("Unexpected decoded event: %+v", ev)
	}

	ev, err = ParseEvent([]byte(`{"type":"state","state":"processing","total":5}`))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ev.State != JobStateProcessing || ev.Total != 5 {
		t.Errorf("Unexpected decoded state event: %+v", ev)
	}
}

func TestParseEvent_Errors(t *testing.T) {
	if _, err := ParseEvent([]byte(`not json`)); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}

	_, err := ParseEvent([]byte(`{"type":"heartbeat"}`))
	if !errors.Is(err, ErrUnknownEventType) {
		t.Errorf("Expected ErrUnknownEventType, got %v", err)
	}
}

func TestProgressEvent_IsTerminal(t *testing.T) {
	tests := []struct {
		eventType EventType
		expected  bool
	}{
		{EventState, false},
		{EventFileDone, false},
		{EventFileError, false},
		{EventFatal, true},
		{EventDone, true},
	}

	for _, test := range tests {
		result := ProgressEvent{Type: test.eventType}.IsTerminal()
		if result != test.expected {
			t.Errorf("ProgressEvent{%s}.IsTerminal() = %v, expected %v", test.eventType, result, test.expected)
		}
	}
}
