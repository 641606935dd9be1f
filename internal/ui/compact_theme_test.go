package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/ytget/webp-uploader/internal/config"
)

func TestVariantFor(t *testing.T) {
	if VariantFor(config.ThemeDark) != theme.VariantDark {
		t.Error("Dark mode should map to the dark variant")
	}
	if VariantFor(config.ThemeLight) != theme.VariantLight {
		t.Error("Light mode should map to the light variant")
	}
}

func TestCompactThemeForcesVariant(t *testing.T) {
	dark, ok := NewCompactTheme(config.ThemeDark).(*CompactTheme)
	if !ok {
		t.Fatal("NewCompactTheme should return *CompactTheme")
	}

	if dark.Variant() != theme.VariantDark {
		t.Errorf("Expected dark variant, got %v", dark.Variant())
	}

	// The requested variant is ignored in favour of the configured one
	light := NewCompactTheme(config.ThemeLight)
	if dark.Color(theme.ColorNameBackground, theme.VariantLight) == light.Color(theme.ColorNameBackground, theme.VariantLight) {
		t.Error("Dark compact theme should use dark background regardless of requested variant")
	}
	if dark.Color(theme.ColorNameSeparator, theme.VariantLight) !=
		theme.DefaultTheme().Color(theme.ColorNameSeparator, theme.VariantDark) {
		t.Error("Fallback colors should use the forced variant")
	}

	if dark.Size(theme.SizeNamePadding) <= 0 {
		t.Error("Padding should be positive")
	}
}
