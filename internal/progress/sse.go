package progress

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"
)

// Frame is one dispatched server-sent event
type Frame struct {
	ID    string
	Event string
	Data  string
	Retry time.Duration

	// HasID is set when the frame carried an id field, even an empty one
	HasID bool
}

// IsMessage reports whether the frame would reach an EventSource onmessage
// handler, which only sees unnamed events and events named "message"
func (f Frame) IsMessage() bool {
	return f.Event == "" || f.Event == "message"
}

// Decoder reads frames from a text/event-stream one at a time
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder creates a decoder over r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next returns the next frame that carries data. Frames that only set retry
// or id are returned too so the caller can adopt the new delay and last event
// id. A partial frame cut off by EOF is discarded.
func (d *Decoder) Next() (Frame, error) {
	var (
		frame   Frame
		data    strings.Builder
		hasData bool
	)

	for {
		line, err := d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return Frame{}, err
		}
		line = strings.TrimRight(line, "\r\n")

		if line == "" {
			if hasData || frame.Retry > 0 || frame.HasID {
				frame.Data = data.String()
				return frame, nil
			}
			if err == io.EOF {
				return Frame{}, io.EOF
			}
			// Blank line with no buffered data resets the frame
			frame = Frame{}
			continue
		}

		if strings.HasPrefix(line, ":") {
			if err == io.EOF {
				return Frame{}, io.EOF
			}
			continue
		}

		field, value, _ := strings.Cut(line, ":")
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "data":
			if hasData {
				data.WriteByte('\n')
			}
			data.WriteString(value)
			hasData = true
		case "event":
			frame.Event = value
		case "id":
			if !strings.ContainsRune(value, 0) {
				frame.ID = value
				frame.HasID = true
			}
		case "retry":
			if ms, convErr := strconv.Atoi(value); convErr == nil && ms >= 0 {
				frame.Retry = time.Duration(ms) * time.Millisecond
			}
		}

		if err == io.EOF {
			return Frame{}, io.EOF
		}
	}
}
