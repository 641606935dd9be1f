package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/webp-uploader/internal/controller"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
)

// ResultsPanel shows the per-file results of the current job, most recent first
type ResultsPanel struct {
	localization *i18n.Localization

	lines []model.ResultLine

	// UI components
	container *fyne.Container
	header    *widget.Label
	list      *widget.List
}

// NewResultsPanel creates a new results panel
func NewResultsPanel(localization *i18n.Localization) *ResultsPanel {
	rp := &ResultsPanel{
		localization: localization,
		lines:        make([]model.ResultLine, 0),
	}
	rp.createUI()
	return rp
}

// Container returns the panel's root object
func (rp *ResultsPanel) Container() *fyne.Container {
	return rp.container
}

// SetLines replaces the shown lines. Must run on the Fyne goroutine.
func (rp *ResultsPanel) SetLines(lines []model.ResultLine) {
	rp.lines = lines
	rp.list.Refresh()
	if len(lines) > 0 {
		rp.list.ScrollToTop()
	}
}

// Len returns the number of shown lines
func (rp *ResultsPanel) Len() int {
	return len(rp.lines)
}

// RefreshTexts re-applies localized texts
func (rp *ResultsPanel) RefreshTexts() {
	rp.header.SetText(rp.localization.GetText(i18n.KeyResults))
	rp.list.Refresh()
}

// createUI creates the user interface for the results panel
func (rp *ResultsPanel) createUI() {
	rp.header = widget.NewLabel(rp.localization.GetText(i18n.KeyResults))
	rp.header.TextStyle = fyne.TextStyle{Bold: true}

	rp.list = widget.NewList(
		func() int {
			return len(rp.lines)
		},
		func() fyne.CanvasObject {
			return rp.createResultRow()
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			rp.updateResultRow(id, obj)
		},
	)

	rp.container = container.NewBorder(
		rp.header, // top
		nil,       // bottom
		nil,       // left
		nil,       // right
		rp.list,   // center
	)
}

// createResultRow creates a template result row
func (rp *ResultsPanel) createResultRow() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	return label
}

// updateResultRow fills a template row with line id
func (rp *ResultsPanel) updateResultRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(rp.lines) {
		return
	}
	label, ok := obj.(*widget.Label)
	if !ok {
		return
	}

	line := rp.lines[id]
	if line.OK {
		label.Importance = widget.SuccessImportance
	} else {
		label.Importance = widget.DangerImportance
	}
	label.SetText(controller.FormatResult(rp.localization, line))
}
