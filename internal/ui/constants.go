package ui

// Application identity
const (
	AppID   = "com.cameronspears.vidsquid"
	AppName = "vidsquid"
)

// Window sizing
const (
	WindowWidth  float32 = 420
	WindowHeight float32 = 200

	OutputFormWidth float32 = 380
)

// Icons (emojis/symbols)
const (
	IconFolder   = "📁"
	IconPlay     = "▶"
	IconLanguage = "🌐"
)

// Language codes
const (
	LangEnglish    = "en"
	LangRussian    = "ru"
	LangPortuguese = "pt"
)

// VideoExtensions are the input types offered by the open dialog
var VideoExtensions = []string{".mov", ".mp4", ".avi", ".mkv", ".flv", ".wmv", ".webm"}
