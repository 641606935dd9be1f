package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// EventType discriminates messages on the progress stream
type EventType string

const (
	EventState     EventType = "state"
	EventFileDone  EventType = "file_done"
	EventFileError EventType = "file_error"
	EventFatal     EventType = "fatal"
	EventDone      EventType = "done"
)

// JobState is the server-side stage carried by a state event
type JobState string

const (
	JobStateProcessing JobState = "processing"
	JobStateZipping    JobState = "zipping"
)

// ErrUnknownEventType is returned by ParseEvent for an unrecognized discriminator
var ErrUnknownEventType = errors.New("unknown progress event type")

// ProgressEvent is one message received from /progress/{job_id}. Only the fields
// relevant to Type are populated.
type ProgressEvent struct {
	Type      EventType `json:"type"`
	State     JobState  `json:"state,omitempty"`
	Total     int       `json:"total,omitempty"`
	Processed int       `json:"processed,omitempty"`
	OutName   string    `json:"out_name,omitempty"`
	OutSize   int64     `json:"out_size,omitempty"`
	File      string    `json:"file,omitempty"`
	Error     string    `json:"error,omitempty"`
	Download  string    `json:"download,omitempty"`
}

// IsTerminal returns true for events that end a subscription
func (e ProgressEvent) IsTerminal() bool {
	return e.Type == EventFatal || e.Type == EventDone
}

// ParseEvent decodes a JSON data payload from the progress stream
func ParseEvent(data []byte) (ProgressEvent, error) {
	var ev ProgressEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ProgressEvent{}, fmt.Errorf("failed to decode progress event: %w", err)
	}

	switch ev.Type {
	case EventState, EventFileDone, EventFileError, EventFatal, EventDone:
		return ev, nil
	default:
		return ev, fmt.Errorf("%w: %q", ErrUnknownEventType, ev.Type)
	}
}
