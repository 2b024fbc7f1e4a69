package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Log queue sizing. The runner drops lines when the queue is full
// rather than block; 256 lines is far more than one batch produces.
const (
	LogQueueCapacity = 256
)

// Status line texts; the completion summary comes from model.Summary
const (
	StatusIdle     = "Idle"
	StatusStarting = "Starting…"
)

// Button and label texts
const (
	LabelAddFiles     = "Add Files"
	LabelClear        = "Clear"
	LabelBrowse       = "Browse…"
	LabelOpenFolder   = "Open"
	LabelConvert      = "Convert to PPT-Compatible MP4"
	LabelOutputFolder = "Output Folder:"
	LabelProfile      = "Profile:"
	LabelSpeed        = "Speed:"
	LabelCustomSpeed  = "Custom speed (e.g., 1.15x):"
	LabelNormalize    = "Normalize audio loudness"
	LabelOverwrite    = "Overwrite existing files"
	LabelInputVideos  = "Input Videos"
	LabelLog          = "Log"
)

// VideoExtensions filters the file open dialog to video containers
var VideoExtensions = []string{".mp4", ".mov", ".m4v", ".mkv", ".avi", ".webm", ".wmv"}
