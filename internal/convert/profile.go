package convert

import (
	"strconv"
	"strings"
)

// QualityProfile holds the libx264 parameters for one named profile.
// Values are passed to ffmpeg verbatim.
type QualityProfile struct {
	Profile string // H.264 profile tier (baseline/main/high)
	Level   string // H.264 level
	Preset  string // libx264 speed/quality preset
	CRF     string // constant rate factor
}

// Built-in profile display names
const (
	ProfileBaseline = "Most Compatible (Baseline L3.1, 30fps)"
	ProfileMain     = "Balanced (Main L4.0, 30fps)"
	ProfileHigh     = "High Quality (High L4.1, 30fps)"
)

// Profiles maps display names to their encoder parameters. The set is
// fixed; profiles are never mutated at runtime.
var Profiles = map[string]QualityProfile{
	ProfileBaseline: {Profile: "baseline", Level: "3.1", Preset: "veryfast", CRF: "20"},
	ProfileMain:     {Profile: "main", Level: "4.0", Preset: "faster", CRF: "20"},
	ProfileHigh:     {Profile: "high", Level: "4.1", Preset: "fast", CRF: "18"},
}

// ProfileNames returns the profile display names in UI order
func ProfileNames() []string {
	return []string{ProfileBaseline, ProfileMain, ProfileHigh}
}

// SpeedPresetCustom marks the speed preset that enables free-form input
const SpeedPresetCustom = "Custom…"

// SpeedPresets returns the speed choices in UI order, custom last
func SpeedPresets() []string {
	return []string{"0.5x", "0.75x", "1.0x", "1.25x", "1.5x", "2.0x", "2.5x", "3.0x", "4.0x", SpeedPresetCustom}
}

// ParseSpeed resolves a speed preset plus a free-form custom value to a
// single positive multiplier. Invalid or non-positive input falls back
// to 1.0.
func ParseSpeed(preset, custom string) float64 {
	raw := preset
	if preset == SpeedPresetCustom {
		raw = custom
	}

	raw = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(raw)), "x")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return 1.0
	}
	return v
}
