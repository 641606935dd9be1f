package estimate

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// File size formatting constants
const (
	FileSizeUnit = 1024
	ZeroSize     = "0 KB"
	Ellipsis     = "…"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// BytesToNice formats a byte count with base-1024 units: whole numbers below a
// megabyte, one decimal from MB up. Halves round away from zero.
func BytesToNice(bytes int64) string {
	if bytes <= 0 {
		return ZeroSize
	}

	val := float64(bytes)
	i := 0
	for val >= FileSizeUnit && i < len(sizeUnits)-1 {
		val /= FileSizeUnit
		i++
	}

	digits := 0
	if i >= 2 {
		digits = 1
	}
	scale := math.Pow(10, float64(digits))
	rounded := math.Round(val*scale) / scale

	return strconv.FormatFloat(rounded, 'f', digits, 64) + " " + sizeUnits[i]
}

// TruncateName shortens name to at most max runes with a middle ellipsis,
// keeping the extension visible when there is room for it
func TruncateName(name string, max int) string {
	if max <= 0 || utf8.RuneCountInString(name) <= max {
		return name
	}

	runes := []rune(name)
	ext := []rune("")
	for i := len(runes) - 1; i > 0; i-- {
		if runes[i] == '.' {
			ext = runes[i:]
			break
		}
	}

	// room for at least a couple of stem characters plus the ellipsis
	if len(ext)+3 > max {
		ext = nil
	}
	keep := max - len(ext) - 1
	if keep < 1 {
		return string(runes[:max])
	}
	return string(runes[:keep]) + Ellipsis + string(ext)
}
