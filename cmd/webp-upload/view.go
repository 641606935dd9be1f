package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/webp-uploader/internal/controller"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
)

// textView prints controller state as lines of text. Status lines are only
// printed when they change, results only once each.
type textView struct {
	mu         sync.Mutex
	w          io.Writer
	texts      i18n.Texts
	lastStatus string
	printed    int
}

func newTextView(w io.Writer, texts i18n.Texts) *textView {
	return &textView{w: w, texts: texts}
}

func (v *textView) RenderRows(rows []controller.Row) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, row := range rows {
		fmt.Fprintf(v.w, "%s  %s  %s\n", row.Label, row.Original, row.Estimate)
	}
}

// UpdateRows is a no-op: quality is fixed for a CLI run
func (v *textView) UpdateRows([]controller.Row) {}

func (v *textView) SetStatus(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if text == v.lastStatus {
		return
	}
	v.lastStatus = text
	fmt.Fprintln(v.w, text)
}

// SetProgress is a no-op, the status line already carries the percentage
func (v *textView) SetProgress(float64) {}

func (v *textView) SetBusy(bool) {}

func (v *textView) SetResults(lines []model.ResultLine) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// lines are most recent first
	if len(lines) < v.printed {
		v.printed = 0
	}
	for i := len(lines) - v.printed - 1; i >= 0; i-- {
		fmt.Fprintln(v.w, controller.FormatResult(v.texts, lines[i]))
	}
	v.printed = len(lines)
}

func (v *textView) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, message)
}

func (v *textView) ArchiveSaved(path string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fmt.Fprintln(v.w, i18n.Format(v.texts, i18n.KeyArchiveSaved, path))
}
