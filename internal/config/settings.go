package config

import (
	"fyne.io/fyne/v2"
	"github.com/ytget/yt-downloader/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyAudioOnly   = "audio_only"
	KeyLanguage    = "app_language"
)

// Default values
const (
	DefaultAudioOnly    = false
	DefaultLanguage     = "system"
	FallbackDownloadDir = "/tmp/downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
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

// GetAudioOnly returns whether audio-only mode was last enabled
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().BoolWithFallback(KeyAudioOnly, DefaultAudioOnly)
}

// SetAudioOnly stores the audio-only toggle
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
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

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// ApplyEnv overrides stored preferences with values set in the environment
func (s *Settings) ApplyEnv(env Env) {
	if env.DownloadDir != "" {
		s.SetDownloadDirectory(env.DownloadDir)
	}
}
