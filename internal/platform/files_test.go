package platform

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFileInManager_NonExistentFile(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.zip")

	err := OpenFileInManager(nonExistentFile)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"photo.jpg", true},
		{"PHOTO.JPEG", true},
		{"scan.Tiff", true},
		{"icon.png", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, test := range tests {
		result := IsImageFile(test.name)
		if result != test.expected {
			t.Errorf("IsImageFile(%s) = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestUniquePath(t *testing.T) {
	dir := t.TempDir()

	first, err := UniquePath(dir, "optimized_images.zip")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first != filepath.Join(dir, "optimized_images.zip") {
		t.Errorf("Expected plain name for free slot, got %s", first)
	}

	if err := os.WriteFile(first, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	second, err := UniquePath(dir, "optimized_images.zip")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second != filepath.Join(dir, "optimized_images (1).zip") {
		t.Errorf("Expected suffixed name, got %s", second)
	}
}

func TestCollectSelectedFiles(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "a.png")
	txt := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(img, make([]byte, 2048), 0644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}
	if err := os.WriteFile(txt, []byte("hello"), 0644); err != nil {
		t.Fatalf("Failed to write text file: %v", err)
	}

	files, errs := CollectSelectedFiles([]string{img, txt, filepath.Join(dir, "missing.jpg"), dir})

	if len(files) != 1 {
		t.Fatalf("Expected 1 accepted file, got %d", len(files))
	}
	if files[0].Name != "a.png" || files[0].Size != 2048 || files[0].Path != img {
		t.Errorf("Unexpected selected file: %+v", files[0])
	}

	if len(errs) != 3 {
		t.Fatalf("Expected 3 errors, got %d", len(errs))
	}
	if !errors.Is(errs[0], ErrNotImage) {
		t.Errorf("Expected ErrNotImage for text file, got %v", errs[0])
	}
}
