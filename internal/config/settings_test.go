package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Expected default quality %d, got %d", DefaultQuality, q)
	}

	// Stored as string-encoded integer
	settings.SetQuality(80)
	if raw := app.Preferences().String(KeyQuality); raw != "80" {
		t.Errorf("Expected stored quality \"80\", got %q", raw)
	}
	if q := settings.GetQuality(); q != 80 {
		t.Errorf("Expected quality 80, got %d", q)
	}

	// Test boundary values
	settings.SetQuality(10)
	if settings.GetQuality() != 50 {
		t.Error("Quality should be clamped to minimum 50")
	}
	settings.SetQuality(500)
	if settings.GetQuality() != 100 {
		t.Error("Quality should be clamped to maximum 100")
	}

	// Garbage falls back to default
	app.Preferences().SetString(KeyQuality, "abc")
	if q := settings.GetQuality(); q != DefaultQuality {
		t.Errorf("Expected default quality for garbage value, got %d", q)
	}

	// Out of range values written elsewhere are clamped on read
	app.Preferences().SetString(KeyQuality, "20")
	if q := settings.GetQuality(); q != 50 {
		t.Errorf("Expected clamped quality 50, got %d", q)
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if theme := settings.GetTheme(); theme != ThemeLight {
		t.Errorf("Expected default theme light, got %s", theme)
	}

	if theme := settings.ToggleTheme(); theme != ThemeDark {
		t.Errorf("Expected toggle to dark, got %s", theme)
	}
	if raw := app.Preferences().String(KeyTheme); raw != "dark" {
		t.Errorf("Expected stored theme \"dark\", got %q", raw)
	}
	if theme := settings.ToggleTheme(); theme != ThemeLight {
		t.Errorf("Expected toggle back to light, got %s", theme)
	}

	settings.SetTheme(Theme("sepia"))
	if theme := settings.GetTheme(); theme != ThemeLight {
		t.Errorf("Unknown theme should be stored as light, got %s", theme)
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if u := settings.GetServerURL(); u != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, u)
	}

	settings.SetServerURL(" https://convert.example.com/ ")
	if u := settings.GetServerURL(); u != "https://convert.example.com" {
		t.Errorf("Expected trimmed server URL, got %s", u)
	}

	settings.SetServerURL("")
	if u := settings.GetServerURL(); u != DefaultServerURL {
		t.Errorf("Empty URL should default to %s, got %s", DefaultServerURL, u)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetDownloadDirectory(); dir == "" {
		t.Error("Download directory should not be empty")
	}

	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)
	if dir := settings.GetDownloadDirectory(); dir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, dir)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("pt")
	if lang := settings.GetLanguage(); lang != "pt" {
		t.Errorf("Expected language 'pt', got %s", lang)
	}
}

func TestAutoReveal(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to default to true")
	}
	settings.SetAutoRevealOnComplete(false)
	if settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto-reveal to be false after setting it")
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
