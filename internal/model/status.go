package model

// Phase represents the state of the current upload cycle
type Phase string

const (
	// PhaseIdle means nothing is in flight and the client is ready
	PhaseIdle Phase = "Idle"

	// PhaseUploading means the multipart request body is being sent
	PhaseUploading Phase = "Uploading"

	// PhaseProcessing means the server is converting files
	PhaseProcessing Phase = "Processing"

	// PhaseZipping means the server is packaging the archive
	PhaseZipping Phase = "Zipping"

	// PhaseDone means the cycle finished successfully
	PhaseDone Phase = "Done"

	// PhaseFailed means the cycle ended with an error
	PhaseFailed Phase = "Failed"
)

// String returns the string representation of Phase
func (p Phase) String() string {
	return string(p)
}

// IsActive returns true while an upload cycle is in flight
func (p Phase) IsActive() bool {
	return p == PhaseUploading || p == PhaseProcessing || p == PhaseZipping
}

// IsFinished returns true if the cycle reached a terminal phase (done or failed)
func (p Phase) IsFinished() bool {
	return p == PhaseDone || p == PhaseFailed
}
