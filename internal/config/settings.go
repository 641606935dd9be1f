package config

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ytget/webp-uploader/internal/estimate"
	"github.com/ytget/webp-uploader/internal/platform"
)

// Theme names persisted under KeyTheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyQuality            = "webp_quality"
	KeyTheme              = "theme"
	KeyServerURL          = "server_url"
	KeyDownloadDir        = "download_directory"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
)

// Default values
const (
	DefaultQuality            = estimate.DefaultQuality
	DefaultTheme              = ThemeLight
	DefaultServerURL          = "http://127.0.0.1:5000"
	DefaultLanguage           = "system"
	DefaultAutoRevealComplete = true
	FallbackDownloadDir       = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetQuality returns the persisted WebP quality. The value is stored as a
// string-encoded integer; unreadable values fall back to the default.
func (s *Settings) GetQuality() int {
	raw := s.app.Preferences().String(KeyQuality)
	if raw == "" {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		s.SetQuality(DefaultQuality)
		return DefaultQuality
	}
	return estimate.ClampQuality(q)
}

// SetQuality persists the WebP quality clamped to [50, 100]
func (s *Settings) SetQuality(q int) {
	s.app.Preferences().SetString(KeyQuality, strconv.Itoa(estimate.ClampQuality(q)))
}

// GetTheme returns the persisted theme
func (s *Settings) GetTheme() Theme {
	switch Theme(s.app.Preferences().String(KeyTheme)) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	default:
		return DefaultTheme
	}
}

// SetTheme persists the theme; unknown names are stored as light
func (s *Settings) SetTheme(theme Theme) {
	if theme != ThemeDark {
		theme = ThemeLight
	}
	s.app.Preferences().SetString(KeyTheme, string(theme))
}

// ToggleTheme flips between light and dark and returns the new theme
func (s *Settings) ToggleTheme() Theme {
	next := ThemeDark
	if s.GetTheme() == ThemeDark {
		next = ThemeLight
	}
	s.SetTheme(next)
	return next
}

// GetServerURL returns the base URL of the conversion server
func (s *Settings) GetServerURL() string {
	serverURL := s.app.Preferences().String(KeyServerURL)
	if serverURL == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return serverURL
}

// SetServerURL sets the server base URL; a trailing slash is dropped
func (s *Settings) SetServerURL(serverURL string) {
	serverURL = strings.TrimRight(strings.TrimSpace(serverURL), "/")
	if serverURL == "" {
		serverURL = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, serverURL)
}

// GetDownloadDirectory returns the directory archives are saved to
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnComplete returns whether to reveal the saved archive
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal the saved archive
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
