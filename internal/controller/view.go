package controller

import "github.com/ytget/webp-uploader/internal/model"

// Row is the display state of one selected file
type Row struct {
	Index    int
	Name     string
	Label    string // Name shortened for display
	Path     string
	Original string
	Estimate string // estimated or, once known, actual output size
	Savings  int
	Actual   bool
}

// View renders controller state. Methods are called with the controller lock
// held and must not call back into the controller synchronously.
type View interface {
	// RenderRows rebuilds the file list
	RenderRows(rows []Row)

	// UpdateRows refreshes the size text of rows already rendered
	UpdateRows(rows []Row)

	SetStatus(text string)
	SetProgress(percent float64)
	SetBusy(busy bool)

	// SetResults shows the results log, most recent first
	SetResults(lines []model.ResultLine)

	Alert(message string)

	// ArchiveSaved is called once the archive is on disk
	ArchiveSaved(path string)
}

// QualityStore persists the quality setting
type QualityStore interface {
	GetQuality() int
	SetQuality(q int)
}

// MemoryQuality is a QualityStore that keeps the value in memory
type MemoryQuality struct {
	Value int
}

// GetQuality returns the stored quality
func (m *MemoryQuality) GetQuality() int { return m.Value }

// SetQuality stores q
func (m *MemoryQuality) SetQuality(q int) { m.Value = q }
