package model

import "time"

// Progress display constants
const (
	MaxProgressPercent     = 100
	PendingProgressPercent = 99 // shown until the server confirms completion
)

// Outcome tells the subscriber what to do after an event was applied
type Outcome int

const (
	OutcomeContinue Outcome = iota
	OutcomeFatal
	OutcomeDone
)

// ResultLine is one entry of the running results log
type ResultLine struct {
	OK      bool
	Name    string // output name on success, input name on failure
	Size    int64  // output size on success
	Error   string // server-reported error on failure
	AddedAt time.Time
}

// JobProgress tracks a server job from the progress stream messages
type JobProgress struct {
	JobID     string
	Phase     Phase
	Total     int
	Processed int
	Percent   float64 // 0 to 100
	Download  string  // archive reference from the done event
	LastError string  // message from the fatal event
	Results   []ResultLine
}

// NewJobProgress creates progress state for a freshly accepted job
func NewJobProgress(jobID string) *JobProgress {
	return &JobProgress{
		JobID:   jobID,
		Phase:   PhaseProcessing,
		Results: make([]ResultLine, 0),
	}
}

// Apply folds one event into the progress state and reports whether the
// subscription should continue or which terminal outcome was reached.
func (jp *JobProgress) Apply(ev ProgressEvent) Outcome {
	switch ev.Type {
	case EventState:
		switch ev.State {
		case JobStateProcessing:
			jp.Phase = PhaseProcessing
			jp.Processed = 0
			jp.Percent = 0
			jp.Total = ev.Total
		case JobStateZipping:
			jp.Phase = PhaseZipping
			jp.Percent = PendingProgressPercent
		}
		return OutcomeContinue

	case EventFileDone:
		jp.advance(ev)
		jp.prepend(ResultLine{OK: true, Name: ev.OutName, Size: ev.OutSize, AddedAt: time.Now()})
		return OutcomeContinue

	case EventFileError:
		jp.advance(ev)
		jp.prepend(ResultLine{OK: false, Name: ev.File, Error: ev.Error, AddedAt: time.Now()})
		return OutcomeContinue

	case EventFatal:
		jp.Phase = PhaseFailed
		jp.LastError = ev.Error
		return OutcomeFatal

	case EventDone:
		jp.Phase = PhaseDone
		jp.Percent = MaxProgressPercent
		jp.Download = ev.Download
		return OutcomeDone
	}

	return OutcomeContinue
}

// PercentInt returns the progress rounded down to a whole percent
func (jp *JobProgress) PercentInt() int {
	return int(jp.Percent)
}

// advance updates counters for a per-file event
func (jp *JobProgress) advance(ev ProgressEvent) {
	if ev.Processed > 0 {
		jp.Processed = ev.Processed
	} else {
		jp.Processed++
	}
	if ev.Total > 0 {
		jp.Total = ev.Total
	}

	if jp.Total > 0 {
		percent := float64(jp.Processed) / float64(jp.Total) * 100
		if percent > PendingProgressPercent {
			percent = PendingProgressPercent
		}
		jp.Percent = percent
	}
}

// prepend keeps the results log most-recent-first
func (jp *JobProgress) prepend(line ResultLine) {
	jp.Results = append([]ResultLine{line}, jp.Results...)
}
