package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/webp-uploader/internal/controller"
	"github.com/ytget/webp-uploader/internal/i18n"
)

// FileRow represents one selected image: thumbnail, name, original size and
// the estimated or actual converted size
type FileRow struct {
	widget.BaseWidget

	row          controller.Row
	localization *i18n.Localization

	// UI components
	thumbnail     *canvas.Image
	nameLabel     *widget.Label
	originalLabel *widget.Label
	estimateLabel *widget.Label
	removeBtn     *widget.Button

	// Callbacks
	onRemove func(index int)
}

// NewFileRow creates a new file row widget
func NewFileRow(localization *i18n.Localization, onRemove func(index int)) *FileRow {
	fr := &FileRow{
		localization: localization,
		onRemove:     onRemove,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// SetRow shows row. The remove button acts on the index of the last row set,
// so rows must be set again after every render.
func (fr *FileRow) SetRow(row controller.Row) {
	previousPath := fr.row.Path
	fr.row = row

	fr.nameLabel.SetText(row.Label)
	fr.originalLabel.SetText(row.Original)
	fr.estimateLabel.SetText(row.Estimate)
	if row.Actual {
		fr.estimateLabel.Importance = widget.SuccessImportance
	} else {
		fr.estimateLabel.Importance = widget.MediumImportance
	}
	fr.estimateLabel.Refresh()

	if row.Path != previousPath {
		fr.thumbnail.File = row.Path
		fr.thumbnail.Refresh()
	}
}

// Row returns the row currently shown
func (fr *FileRow) Row() controller.Row {
	return fr.row
}

// createUI creates the UI components
func (fr *FileRow) createUI() {
	fr.thumbnail = &canvas.Image{FillMode: canvas.ImageFillContain, ScaleMode: canvas.ImageScaleFastest}
	fr.thumbnail.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))

	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.originalLabel = widget.NewLabel("")
	fr.originalLabel.TextStyle = fyne.TextStyle{Monospace: true}

	fr.estimateLabel = widget.NewLabel("")
	fr.estimateLabel.TextStyle = fyne.TextStyle{Monospace: true}

	fr.removeBtn = widget.NewButton(IconClose, func() {
		if fr.onRemove != nil {
			fr.onRemove(fr.row.Index)
		}
	})
	fr.removeBtn.Importance = widget.LowImportance
}

// CreateRenderer creates the renderer for the file row
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	return &fileRowRenderer{fileRow: fr}
}

type fileRowRenderer struct {
	fileRow *FileRow
	layout  *fyne.Container
}

func (r *fileRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

func (r *fileRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

func (r *fileRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

func (r *fileRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

func (r *fileRowRenderer) Destroy() {}

func (r *fileRowRenderer) createLayout() {
	fr := r.fileRow

	// Keep the thumbnail slot square even before the image loads
	frame := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
	frame.SetMinSize(fyne.NewSize(ThumbnailSize, ThumbnailSize))
	thumb := container.NewStack(frame, fr.thumbnail)

	sizes := container.NewHBox(fr.originalLabel, fr.estimateLabel)
	info := container.NewVBox(fr.nameLabel, sizes)

	mainContent := container.NewBorder(nil, nil, thumb, fr.removeBtn, info)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
