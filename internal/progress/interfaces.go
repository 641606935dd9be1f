package progress

import (
	"context"

	"github.com/ytget/webp-uploader/internal/model"
)

// Callbacks receive what happens on a subscription. Both run on the
// subscribing goroutine.
type Callbacks struct {
	OnEvent          func(model.ProgressEvent)
	OnConnectionLost func(err error)
}

// Subscriber defines the interface for the progress stream service.
type Subscriber interface {
	// Subscribe blocks until a terminal event was delivered, ctx is done or
	// the stream cannot be re-established.
	Subscribe(ctx context.Context, jobID string, cb Callbacks) error

	// SetBaseURL sets the server URL
	SetBaseURL(baseURL string)
}
