package estimate

import (
	"testing"
	"unicode/utf8"
)

func TestBytesToNice(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{-1, "0 KB"},
		{0, "0 KB"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "2 KB"},
		{2560, "3 KB"},
		{1048575, "1024 KB"},
		{1048576, "1.0 MB"},
		{1572864, "1.5 MB"},
		{1073741824, "1.0 GB"},
		{5 * 1073741824 * 1024, "5120.0 GB"},
	}

	for _, test := range tests {
		result := BytesToNice(test.bytes)
		if result != test.expected {
			t.Errorf("BytesToNice(%d) = %q, expected %q", test.bytes, result, test.expected)
		}
	}
}

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name     string
		max      int
		expected string
	}{
		{"short.png", 20, "short.png"},
		{"a-very-long-file-name.jpeg", 16, "a-very-lon….jpeg"},
		{"abcdefghij", 5, "abcd…"},
		{"x.averylongextension", 8, "x.avery…"},
		{"anything", 0, "anything"},
	}

	for _, test := range tests {
		result := TruncateName(test.name, test.max)
		if result != test.expected {
			t.Errorf("TruncateName(%q, %d) = %q, expected %q", test.name, test.max, result, test.expected)
		}
		if test.max > 0 && utf8.RuneCountInString(result) > test.max {
			t.Errorf("TruncateName(%q, %d) produced %d runes", test.name, test.max, utf8.RuneCountInString(result))
		}
	}
}
