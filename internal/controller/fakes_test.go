package controller

import (
	"context"
	"io"
	"sync"

	"github.com/ytget/webp-uploader/internal/model"
	"github.com/ytget/webp-uploader/internal/progress"
	"github.com/ytget/webp-uploader/internal/upload"
)

// fakeView records every call
type fakeView struct {
	mu       sync.Mutex
	rendered [][]Row
	updated  [][]Row
	statuses []string
	progress []float64
	busy     []bool
	results  [][]model.ResultLine
	alerts   []string
	archives []string
}

func (v *fakeView) RenderRows(rows []Row) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.rendered = append(v.rendered, rows)
}

func (v *fakeView) UpdateRows(rows []Row) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.updated = append(v.updated, rows)
}

func (v *fakeView) SetStatus(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.statuses = append(v.statuses, text)
}

func (v *fakeView) SetProgress(percent float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.progress = append(v.progress, percent)
}

func (v *fakeView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = append(v.busy, busy)
}

func (v *fakeView) SetResults(lines []model.ResultLine) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.results = append(v.results, lines)
}

func (v *fakeView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.alerts = append(v.alerts, message)
}

func (v *fakeView) ArchiveSaved(path string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.archives = append(v.archives, path)
}

func (v *fakeView) lastStatus() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.statuses) == 0 {
		return ""
	}
	return v.statuses[len(v.statuses)-1]
}

func (v *fakeView) lastProgress() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.progress) == 0 {
		return -1
	}
	return v.progress[len(v.progress)-1]
}

func (v *fakeView) lastRendered() []Row {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.rendered) == 0 {
		return nil
	}
	return v.rendered[len(v.rendered)-1]
}

func (v *fakeView) lastResults() []model.ResultLine {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.results) == 0 {
		return nil
	}
	return v.results[len(v.results)-1]
}

func (v *fakeView) hasStatus(text string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, s := range v.statuses {
		if s == text {
			return true
		}
	}
	return false
}

// fakeUploader returns a canned result after replaying progress steps
type fakeUploader struct {
	mu       sync.Mutex
	result   *upload.Result
	err      error
	steps    [][2]int64
	block    chan struct{}
	started  chan struct{}
	requests []upload.Request
	baseURL  string
}

func (u *fakeUploader) Upload(ctx context.Context, req upload.Request, onProgress upload.ProgressFunc) (*upload.Result, error) {
	u.mu.Lock()
	u.requests = append(u.requests, req)
	u.mu.Unlock()

	if u.started != nil {
		close(u.started)
	}
	if u.block != nil {
		select {
		case <-u.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	for _, step := range u.steps {
		onProgress(step[0], step[1])
	}
	return u.result, u.err
}

func (u *fakeUploader) SetBaseURL(baseURL string) { u.baseURL = baseURL }

func (u *fakeUploader) calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.requests)
}

// fakeSubscriber replays lost connections and events
type fakeSubscriber struct {
	events  []model.ProgressEvent
	lost    []error
	err     error
	jobIDs  []string
	baseURL string
}

func (s *fakeSubscriber) Subscribe(ctx context.Context, jobID string, cb progress.Callbacks) error {
	s.jobIDs = append(s.jobIDs, jobID)
	for _, err := range s.lost {
		cb.OnConnectionLost(err)
	}
	for _, ev := range s.events {
		cb.OnEvent(ev)
		if ev.IsTerminal() {
			return nil
		}
	}
	return s.err
}

func (s *fakeSubscriber) SetBaseURL(baseURL string) { s.baseURL = baseURL }

// fakeFetcher pretends to download archives
type fakeFetcher struct {
	path    string
	err     error
	refs    []string
	baseURL string
	dir     string
}

func (f *fakeFetcher) FetchArchive(ctx context.Context, ref string) (string, error) {
	f.refs = append(f.refs, ref)
	return f.path, f.err
}

func (f *fakeFetcher) SaveArchive(r io.Reader) (string, error) { return f.path, f.err }

func (f *fakeFetcher) SetBaseURL(baseURL string) { f.baseURL = baseURL }

func (f *fakeFetcher) SetDownloadDirectory(dir string) { f.dir = dir }
