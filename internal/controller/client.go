package controller

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/ytget/webp-uploader/internal/download"
	"github.com/ytget/webp-uploader/internal/estimate"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
	"github.com/ytget/webp-uploader/internal/progress"
	"github.com/ytget/webp-uploader/internal/upload"
)

// CycleIDPrefix prefixes the fallback cycle id
const CycleIDPrefix = "cycle-"

// Deps are the collaborators of a Client
type Deps struct {
	Uploader upload.Uploader
	Progress progress.Subscriber
	Archives download.Fetcher
	Quality  QualityStore
	Texts    i18n.Texts
	Logger   log.Logger
	NameMax  int
}

// Client is the upload client controller
type Client struct {
	mu            sync.Mutex
	selection     *model.Selection
	quality       int
	phase         model.Phase
	job           *model.JobProgress
	uploadPercent int

	uploader upload.Uploader
	progress progress.Subscriber
	archives download.Fetcher
	store    QualityStore
	texts    i18n.Texts
	view     View
	logger   log.Logger
	nameMax  int
}

// NewClient creates a controller rendering through view
func NewClient(deps Deps, view View) *Client {
	logger := deps.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	texts := deps.Texts
	if texts == nil {
		texts = i18n.NewLocalization()
	}
	nameMax := deps.NameMax
	if nameMax <= 0 {
		nameMax = DefaultNameMax
	}
	store := deps.Quality
	if store == nil {
		store = &MemoryQuality{Value: estimate.DefaultQuality}
	}

	return &Client{
		selection: model.NewSelection(),
		quality:   estimate.ClampQuality(store.GetQuality()),
		phase:     model.PhaseIdle,
		uploader:  deps.Uploader,
		progress:  deps.Progress,
		archives:  deps.Archives,
		store:     store,
		texts:     texts,
		view:      view,
		logger:    logger,
		nameMax:   nameMax,
	}
}

// Quality returns the current quality setting
func (c *Client) Quality() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quality
}

// Phase returns the phase of the current or last upload cycle
func (c *Client) Phase() model.Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Busy reports whether an upload cycle is running
func (c *Client) Busy() bool {
	return c.Phase().IsActive()
}

// Files returns a copy of the selection
func (c *Client) Files() []*model.SelectedFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Files()
}

// Rows returns the current display rows
func (c *Client) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rowsLocked()
}

// Results returns the results log of the current or last job
func (c *Client) Results() []model.ResultLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resultsLocked()
}

// SetServerURL points every network service at serverURL
func (c *Client) SetServerURL(serverURL string) {
	c.uploader.SetBaseURL(serverURL)
	c.progress.SetBaseURL(serverURL)
	c.archives.SetBaseURL(serverURL)
}

// SetDownloadDirectory sets where archives are saved
func (c *Client) SetDownloadDirectory(dir string) {
	c.archives.SetDownloadDirectory(dir)
}

// Refresh re-renders every row, for example after a language change
func (c *Client) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view.RenderRows(c.rowsLocked())
	c.view.SetResults(c.resultsLocked())
}

// AddFiles appends files to the selection and re-renders the list
func (c *Client) AddFiles(files ...*model.SelectedFile) {
	if len(files) == 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection.Add(files...)
	c.view.RenderRows(c.rowsLocked())
}

// Remove drops the file at index and re-renders the list. An index from a
// stale render is rejected.
func (c *Client) Remove(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.selection.Remove(index); err != nil {
		return err
	}
	c.view.RenderRows(c.rowsLocked())
	return nil
}

// SetQuality clamps and persists q, then refreshes the estimates in place
func (c *Client) SetQuality(q int) int {
	q = estimate.ClampQuality(q)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.quality = q
	c.store.SetQuality(q)
	c.view.UpdateRows(c.rowsLocked())
	return q
}

// Upload runs one upload cycle: post the files, follow the job and download
// the archive. It blocks until the cycle ends.
func (c *Client) Upload(ctx context.Context) error {
	c.mu.Lock()
	if c.selection.IsEmpty() {
		c.view.Alert(c.texts.GetText(i18n.KeySelectImagesFirst))
		c.mu.Unlock()
		return model.ErrNoFiles
	}
	if c.phase.IsActive() {
		c.mu.Unlock()
		return model.ErrBusy
	}

	req := upload.Request{
		CycleID: generateCycleID(),
		Files:   c.selection.Files(),
		Quality: c.quality,
	}
	c.phase = model.PhaseUploading
	c.job = nil
	c.uploadPercent = 0
	c.view.SetBusy(true)
	c.view.SetProgress(0)
	c.view.SetResults(nil)
	c.view.SetStatus(i18n.Format(c.texts, i18n.KeyUploadingStart, req.Quality))
	c.mu.Unlock()

	logger := log.With(c.logger, "cycle", req.CycleID)
	level.Info(logger).Log("method", "Upload", "files", len(req.Files), "quality", req.Quality)

	result, err := c.uploader.Upload(ctx, req, func(sent, total int64) {
		c.onUploadProgress(sent, total, req.Quality)
	})
	if err != nil {
		return c.failUpload(ctx, logger, err)
	}

	if result.ArchivePath != "" {
		level.Info(logger).Log("method", "Upload", "msg", "server answered with the archive")
		return c.finish(ctx, logger, result.ArchivePath, "")
	}
	return c.follow(ctx, logger, result.JobID)
}

// onUploadProgress reports request bytes as a percentage kept below 100
// until the server answers
func (c *Client) onUploadProgress(sent, total int64, quality int) {
	if total <= 0 {
		return
	}
	percent := int(sent * 100 / total)
	if percent > model.PendingProgressPercent {
		percent = model.PendingProgressPercent
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != model.PhaseUploading || percent == c.uploadPercent {
		return
	}
	c.uploadPercent = percent
	c.view.SetProgress(float64(percent))
	c.view.SetStatus(i18n.Format(c.texts, i18n.KeyUploadingProgress, percent, quality))
}

func (c *Client) failUpload(ctx context.Context, logger log.Logger, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	defer c.view.SetBusy(false)

	if ctx.Err() != nil {
		level.Info(logger).Log("method", "Upload", "msg", "cancelled")
		c.phase = model.PhaseIdle
		c.view.SetStatus(c.texts.GetText(i18n.KeyReady))
		return err
	}

	level.Error(logger).Log("method", "Upload", "err", err)
	c.phase = model.PhaseFailed

	var httpErr *model.HTTPError
	var urlErr *url.Error
	switch {
	case errors.As(err, &httpErr):
		c.view.SetStatus(c.texts.GetText(i18n.KeyError))
		message := httpErr.Body
		if message == "" {
			message = c.texts.GetText(i18n.KeyServerError)
		}
		c.view.Alert(message)
	case errors.Is(err, model.ErrMissingJobID):
		c.view.SetStatus(c.texts.GetText(i18n.KeyError))
		c.view.Alert(c.texts.GetText(i18n.KeyMissingJobID))
	case errors.As(err, &urlErr):
		c.view.SetStatus(c.texts.GetText(i18n.KeyNetworkError))
		c.view.Alert(c.texts.GetText(i18n.KeyNetworkErrorAlert))
	default:
		c.view.SetStatus(c.texts.GetText(i18n.KeyError))
		c.view.Alert(err.Error())
	}
	return err
}

// follow subscribes to the job stream until it ends
func (c *Client) follow(ctx context.Context, logger log.Logger, jobID string) error {
	logger = log.With(logger, "job", jobID)

	c.mu.Lock()
	c.job = model.NewJobProgress(jobID)
	c.phase = model.PhaseProcessing
	c.view.SetProgress(0)
	c.view.SetStatus(c.texts.GetText(i18n.KeyProcessingStart))
	c.mu.Unlock()

	err := c.progress.Subscribe(ctx, jobID, progress.Callbacks{
		OnEvent:          c.handleEvent,
		OnConnectionLost: c.handleConnectionLost,
	})

	c.mu.Lock()
	if err != nil {
		defer c.mu.Unlock()
		defer c.view.SetBusy(false)

		if ctx.Err() != nil {
			level.Info(logger).Log("method", "follow", "msg", "cancelled")
			c.phase = model.PhaseIdle
			c.view.SetStatus(c.texts.GetText(i18n.KeyReady))
			return err
		}

		level.Error(logger).Log("method", "follow", "err", err)
		c.phase = model.PhaseFailed
		c.view.SetStatus(c.texts.GetText(i18n.KeyConnectionGaveUp))
		c.view.Alert(c.texts.GetText(i18n.KeyConnectionGaveUp))
		return err
	}

	job := c.job
	if job.Phase == model.PhaseFailed {
		defer c.mu.Unlock()

		message := job.LastError
		if message == "" {
			message = c.texts.GetText(i18n.KeyServerError)
		}
		level.Error(logger).Log("method", "follow", "msg", "job failed", "err", message)

		// Fatal returns to ready and keeps the selection for another try
		c.phase = model.PhaseIdle
		c.view.Alert(message)
		c.view.SetStatus(c.texts.GetText(i18n.KeyReady))
		c.view.SetProgress(0)
		c.view.SetBusy(false)
		return &model.JobError{JobID: jobID, Message: job.LastError}
	}
	ref := job.Download
	c.mu.Unlock()

	return c.finish(ctx, logger, "", ref)
}

// handleEvent applies one stream event and updates the view
func (c *Client) handleEvent(ev model.ProgressEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.job == nil {
		return
	}
	if c.job.Apply(ev) != model.OutcomeContinue {
		return
	}
	c.phase = c.job.Phase

	switch ev.Type {
	case model.EventState:
		switch ev.State {
		case model.JobStateProcessing:
			c.view.SetProgress(0)
			c.view.SetStatus(i18n.Format(c.texts, i18n.KeyProcessing, 0, c.job.Total))
		case model.JobStateZipping:
			c.view.SetProgress(c.job.Percent)
			c.view.SetStatus(c.texts.GetText(i18n.KeyZipping))
		}

	case model.EventFileDone, model.EventFileError:
		if ev.Type == model.EventFileDone && c.selection.PatchActualSize(ev.OutName, ev.OutSize) >= 0 {
			c.view.UpdateRows(c.rowsLocked())
		}
		c.view.SetProgress(c.job.Percent)
		c.view.SetStatus(i18n.Format(c.texts, i18n.KeyProcessing, c.job.Processed, c.job.Total))
		c.view.SetResults(c.resultsLocked())
	}
}

// handleConnectionLost reports a dropped stream. The subscriber reconnects.
func (c *Client) handleConnectionLost(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	level.Debug(c.logger).Log("method", "handleConnectionLost", "err", err)
	c.view.SetStatus(c.texts.GetText(i18n.KeyConnectionLost))
}

// finish completes a successful cycle. It downloads ref unless the archive
// is already at archivePath, then clears the selection.
func (c *Client) finish(ctx context.Context, logger log.Logger, archivePath, ref string) error {
	var downloadErr error
	if archivePath == "" && ref != "" {
		archivePath, downloadErr = c.archives.FetchArchive(ctx, ref)
		if downloadErr != nil {
			level.Error(logger).Log("method", "finish", "err", downloadErr)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.phase = model.PhaseDone
	c.view.SetProgress(model.MaxProgressPercent)
	c.view.SetStatus(c.texts.GetText(i18n.KeyDone))

	c.selection.Clear()
	c.view.RenderRows(c.rowsLocked())
	c.view.SetBusy(false)

	if downloadErr != nil {
		c.view.Alert(i18n.Format(c.texts, i18n.KeyDownloadFailed, downloadErr.Error()))
		return fmt.Errorf("failed to download archive: %w", downloadErr)
	}
	if archivePath != "" {
		level.Info(logger).Log("method", "finish", "archive", archivePath)
		c.view.ArchiveSaved(archivePath)
	}
	return nil
}

func (c *Client) rowsLocked() []Row {
	return BuildRows(c.selection.Files(), c.quality, c.texts, c.nameMax)
}

func (c *Client) resultsLocked() []model.ResultLine {
	if c.job == nil {
		return nil
	}
	return append([]model.ResultLine(nil), c.job.Results...)
}

// generateCycleID generates a unique upload cycle ID
func generateCycleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(CycleIDPrefix+"%d", time.Now().UnixNano())
	}
	return id.String()
}
