package config

import (
	"fyne.io/fyne/v2"

	"github.com/pptconv/mp4-converter/internal/convert"
	"github.com/pptconv/mp4-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir      = "output_directory"
	KeyQualityProfile = "quality_profile"
	KeySpeedPreset    = "speed_preset"
	KeyCustomSpeed    = "custom_speed"
	KeyNormalizeAudio = "normalize_audio"
	KeyOverwrite      = "overwrite_existing"
)

// Default values
const (
	DefaultSpeedPreset    = "1.0x"
	DefaultCustomSpeed    = "1.0"
	DefaultNormalizeAudio = false
	DefaultOverwrite      = true
)

// Settings manages application configuration backed by Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the configured output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		dir = platform.HomeDirectory()
		s.SetOutputDirectory(dir)
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetQualityProfile returns the configured quality profile name
func (s *Settings) GetQualityProfile() string {
	name := s.app.Preferences().String(KeyQualityProfile)
	if _, ok := convert.Profiles[name]; !ok {
		name = convert.ProfileBaseline
		s.SetQualityProfile(name)
	}
	return name
}

// SetQualityProfile sets the quality profile by display name
func (s *Settings) SetQualityProfile(name string) {
	if _, ok := convert.Profiles[name]; !ok {
		name = convert.ProfileBaseline
	}
	s.app.Preferences().SetString(KeyQualityProfile, name)
}

// GetSpeedPreset returns the configured speed preset
func (s *Settings) GetSpeedPreset() string {
	preset := s.app.Preferences().String(KeySpeedPreset)
	if preset == "" {
		preset = DefaultSpeedPreset
		s.SetSpeedPreset(preset)
	}
	return preset
}

// SetSpeedPreset sets the speed preset
func (s *Settings) SetSpeedPreset(preset string) {
	s.app.Preferences().SetString(KeySpeedPreset, preset)
}

// GetCustomSpeed returns the free-form custom speed value
func (s *Settings) GetCustomSpeed() string {
	custom := s.app.Preferences().String(KeyCustomSpeed)
	if custom == "" {
		custom = DefaultCustomSpeed
		s.SetCustomSpeed(custom)
	}
	return custom
}

// SetCustomSpeed sets the free-form custom speed value
func (s *Settings) SetCustomSpeed(custom string) {
	s.app.Preferences().SetString(KeyCustomSpeed, custom)
}

// GetNormalizeAudio returns whether loudness normalization is enabled
func (s *Settings) GetNormalizeAudio() bool {
	return s.app.Preferences().BoolWithFallback(KeyNormalizeAudio, DefaultNormalizeAudio)
}

// SetNormalizeAudio sets whether loudness normalization is enabled
func (s *Settings) SetNormalizeAudio(normalize bool) {
	s.app.Preferences().SetBool(KeyNormalizeAudio, normalize)
}

// GetOverwrite returns whether existing outputs may be overwritten
func (s *Settings) GetOverwrite() bool {
	return s.app.Preferences().BoolWithFallback(KeyOverwrite, DefaultOverwrite)
}

// SetOverwrite sets whether existing outputs may be overwritten
func (s *Settings) SetOverwrite(overwrite bool) {
	s.app.Preferences().SetBool(KeyOverwrite, overwrite)
}
