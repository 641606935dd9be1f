package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings  = "⚙"
	IconFolder    = "📁"
	IconFile      = "📄"
	IconClose     = "×"
	IconError     = "❌"
	IconOK        = "✔"
	IconThemeDark = "🌙"
	IconThemeLite = "☀"
	IconImage     = "🖼"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	QualityLabelFormat = "%s: Q%d"
)

// Layout sizing (FileRow / lists)
const (
	ThumbnailSize float32 = 48

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 56
	RowDefaultH  float32 = 60

	ResultRowHeight float32 = 28
	ResultsMinH     float32 = 140
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 320
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Window defaults
const (
	DefaultWindowWidth  float32 = 820
	DefaultWindowHeight float32 = 640
)
