package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
)

func TestTextView_StatusDeduplicated(t *testing.T) {
	var buf bytes.Buffer
	v := newTextView(&buf, i18n.NewLocalization())

	v.SetStatus("Processing: 1/2")
	v.SetStatus("Processing: 1/2")
	v.SetStatus("Processing: 2/2")

	assert.Equal(t, "Processing: 1/2\nProcessing: 2/2\n", buf.String())
}

func TestTextView_ResultsPrintedOnceOldestFirst(t *testing.T) {
	var buf bytes.Buffer
	v := newTextView(&buf, i18n.NewLocalization())

	a := model.ResultLine{OK: true, Name: "a.webp", Size: 2048}
	b := model.ResultLine{OK: false, Name: "b.png", Error: "broken"}

	v.SetResults([]model.ResultLine{a})
	v.SetResults([]model.ResultLine{b, a})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if assert.Len(t, lines, 2) {
		assert.Contains(t, lines[0], "a.webp")
		assert.Contains(t, lines[1], "b.png")
		assert.Contains(t, lines[1], "broken")
	}

	// A new job starts with an empty log
	v.SetResults(nil)
	v.SetResults([]model.ResultLine{a})
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))
}

func TestCountFailed(t *testing.T) {
	lines := []model.ResultLine{{OK: true}, {OK: false}, {OK: false}}
	assert.Equal(t, 2, countFailed(lines))
	assert.Equal(t, 0, countFailed(nil))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", firstNonEmpty("", "b", "c"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestRun_NoArgs(t *testing.T) {
	assert.Equal(t, 2, run(nil))
}
