package controller

import (
	"testing"

	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
)

func TestBuildRows_Estimates(t *testing.T) {
	texts := i18n.NewLocalization()
	files := []*model.SelectedFile{
		{Name: "photo.jpg", Path: "/p/photo.jpg", Size: 1000000},
		{Name: "tiny.png", Size: 4000},
	}

	rows := BuildRows(files, 95, texts, DefaultNameMax)

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Original != "Original: 977 KB" {
		t.Errorf("Unexpected original text: %q", rows[0].Original)
	}
	if rows[0].Estimate != "Estimated: 501 KB (Q95) · -49%" {
		t.Errorf("Unexpected estimate text: %q", rows[0].Estimate)
	}
	if rows[0].Savings != 49 || rows[0].Actual {
		t.Errorf("Unexpected row state: %+v", rows[0])
	}

	// Inputs under the estimate floor are shown unchanged
	if rows[1].Estimate != "Estimated: 4 KB (Q95) · -0%" {
		t.Errorf("Unexpected small-file estimate: %q", rows[1].Estimate)
	}
	if rows[1].Index != 1 {
		t.Errorf("Expected index 1, got %d", rows[1].Index)
	}
}

func TestBuildRows_ActualSize(t *testing.T) {
	texts := i18n.NewLocalization()
	files := []*model.SelectedFile{{Name: "photo.jpg", Size: 1000000, ActualSize: 250000}}

	rows := BuildRows(files, 60, texts, DefaultNameMax)

	if !rows[0].Actual {
		t.Error("Expected actual size row")
	}
	if rows[0].Estimate != "Actual: 244 KB · -75%" {
		t.Errorf("Unexpected actual text: %q", rows[0].Estimate)
	}
}

func TestBuildRows_TruncatesLabel(t *testing.T) {
	texts := i18n.NewLocalization()
	name := "a-very-long-holiday-photo-name-from-the-camera.jpeg"
	rows := BuildRows([]*model.SelectedFile{{Name: name, Size: 10}}, 95, texts, 20)

	if rows[0].Name != name {
		t.Errorf("Expected full name kept, got %q", rows[0].Name)
	}
	if len([]rune(rows[0].Label)) != 20 {
		t.Errorf("Expected label of 20 runes, got %q", rows[0].Label)
	}
}

func TestFormatResult(t *testing.T) {
	texts := i18n.NewLocalization()

	ok := FormatResult(texts, model.ResultLine{OK: true, Name: "a.webp", Size: 2048})
	if ok != "✔ a.webp · 2 KB" {
		t.Errorf("Unexpected success line: %q", ok)
	}

	failed := FormatResult(texts, model.ResultLine{Name: "b.png", Error: "corrupt"})
	if failed != "✖ b.png: corrupt" {
		t.Errorf("Unexpected failure line: %q", failed)
	}
}
