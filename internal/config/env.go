package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override persisted preferences
const (
	EnvServerURL   = "WEBP_SERVER_URL"
	EnvDownloadDir = "WEBP_DOWNLOAD_DIR"
	EnvLogLevel    = "WEBP_LOG_LEVEL"
	EnvFile        = ".env"
)

// Log levels understood by EnvLogLevel
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Overrides holds values taken from the environment
type Overrides struct {
	ServerURL   string
	DownloadDir string
	LogLevel    string
}

// LoadEnv reads .env style files into the process environment. Missing files
// are not an error; variables already set are left untouched.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{EnvFile}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// ReadOverrides collects override values from the environment
func ReadOverrides() Overrides {
	return Overrides{
		ServerURL:   strings.TrimSpace(os.Getenv(EnvServerURL)),
		DownloadDir: strings.TrimSpace(os.Getenv(EnvDownloadDir)),
		LogLevel:    normalizeLogLevel(os.Getenv(EnvLogLevel)),
	}
}

// Apply writes non-empty overrides into the settings
func (o Overrides) Apply(s *Settings) {
	if o.ServerURL != "" {
		s.SetServerURL(o.ServerURL)
	}
	if o.DownloadDir != "" {
		s.SetDownloadDirectory(o.DownloadDir)
	}
}

func normalizeLogLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case LogLevelDebug:
		return LogLevelDebug
	case LogLevelWarn, "warning":
		return LogLevelWarn
	case LogLevelError:
		return LogLevelError
	default:
		return LogLevelInfo
	}
}
