package model

import (
	"fmt"
	"strings"
	"time"
)

// SelectedFile represents a single image chosen by the user
type SelectedFile struct {
	Name       string    // base name shown in the list and sent as the part filename
	Path       string    // local path the upload streams from
	Size       int64     // original size in bytes
	ActualSize int64     // server-reported output size, 0 while unknown
	AddedAt    time.Time // when the file was selected
}

// HasActualSize reports whether the server already reported the converted size
func (f *SelectedFile) HasActualSize() bool {
	return f.ActualSize > 0
}

// Stem returns the file name without its final extension. A leading dot is not
// treated as an extension separator.
func Stem(name string) string {
	if idx := strings.LastIndex(name, "."); idx > 0 {
		return name[:idx]
	}
	return name
}

// Selection is the ordered list of files waiting for upload. Order is selection
// order and is significant: list rows are addressed by index. It is not safe for
// concurrent use; the controller serializes access.
type Selection struct {
	files []*SelectedFile
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{files: make([]*SelectedFile, 0)}
}

// Add appends files in the given order. Duplicates are kept.
func (s *Selection) Add(files ...*SelectedFile) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if f.AddedAt.IsZero() {
			f.AddedAt = time.Now()
		}
		s.files = append(s.files, f)
	}
}

// Remove drops the file at index, shifting later files down by one
func (s *Selection) Remove(index int) (*SelectedFile, error) {
	if index < 0 || index >= len(s.files) {
		return nil, fmt.Errorf("selection index out of range: %d (len %d)", index, len(s.files))
	}
	removed := s.files[index]
	s.files = append(s.files[:index], s.files[index+1:]...)
	return removed, nil
}

// Len returns the number of selected files
func (s *Selection) Len() int {
	return len(s.files)
}

// IsEmpty reports whether nothing is selected
func (s *Selection) IsEmpty() bool {
	return len(s.files) == 0
}

// At returns the file at index, or nil when out of range
func (s *Selection) At(index int) *SelectedFile {
	if index < 0 || index >= len(s.files) {
		return nil
	}
	return s.files[index]
}

// Files returns a snapshot of the selection in order
func (s *Selection) Files() []*SelectedFile {
	out := make([]*SelectedFile, len(s.files))
	copy(out, s.files)
	return out
}

// Clear empties the selection
func (s *Selection) Clear() {
	s.files = s.files[:0]
}

// TotalSize returns the sum of original sizes
func (s *Selection) TotalSize() int64 {
	var total int64
	for _, f := range s.files {
		total += f.Size
	}
	return total
}

// PatchActualSize records the server-reported size on the row whose stem matches
// outName. Rows that already carry an actual size are skipped first so that files
// sharing a stem are patched in selection order. Returns the patched index or -1.
func (s *Selection) PatchActualSize(outName string, size int64) int {
	stem := Stem(outName)
	fallback := -1
	for i, f := range s.files {
		if Stem(f.Name) != stem {
			continue
		}
		if !f.HasActualSize() {
			f.ActualSize = size
			return i
		}
		if fallback < 0 {
			fallback = i
		}
	}
	if fallback >= 0 {
		s.files[fallback].ActualSize = size
	}
	return fallback
}
