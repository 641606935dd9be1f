package controller

import (
	"github.com/ytget/webp-uploader/internal/estimate"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
)

// DefaultNameMax is the longest file name shown in a row before it is shortened
const DefaultNameMax = 36

// BuildRows turns the selection into display rows for the given quality
func BuildRows(files []*model.SelectedFile, quality int, texts i18n.Texts, nameMax int) []Row {
	rows := make([]Row, 0, len(files))
	for i, f := range files {
		row := Row{
			Index:    i,
			Name:     f.Name,
			Label:    estimate.TruncateName(f.Name, nameMax),
			Path:     f.Path,
			Original: i18n.Format(texts, i18n.KeyOriginalFormat, estimate.BytesToNice(f.Size)),
		}

		if f.HasActualSize() {
			row.Actual = true
			row.Savings = estimate.SavingsPercent(f.Size, f.ActualSize)
			row.Estimate = i18n.Format(texts, i18n.KeyActualFormat, estimate.BytesToNice(f.ActualSize), row.Savings)
		} else {
			size := estimate.EstimateWebPBytes(f.Size, quality)
			row.Savings = estimate.SavingsPercent(f.Size, size)
			row.Estimate = i18n.Format(texts, i18n.KeyEstimatedFormat, estimate.BytesToNice(size), quality, row.Savings)
		}

		rows = append(rows, row)
	}
	return rows
}

// FormatResult renders one results log line
func FormatResult(texts i18n.Texts, line model.ResultLine) string {
	if line.OK {
		return i18n.Format(texts, i18n.KeyResultOK, line.Name, estimate.BytesToNice(line.Size))
	}
	return i18n.Format(texts, i18n.KeyResultFailed, line.Name, line.Error)
}
