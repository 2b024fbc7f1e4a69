package convert

import (
	"math"
	"strconv"
	"strings"
)

// FFmpeg constants for the presentation-compatible MP4 profile
const (
	// Video settings
	VideoCodec      = "libx264"
	PixelFormat     = "yuv420p"
	OutputFrameRate = "30"
	VSyncMode       = "vfr"

	// Audio settings
	AudioCodec      = "aac"
	AudioBitrate    = "128k"
	AudioSampleRate = "48000"
	AudioChannels   = "2"

	// Container flags
	FastStartFlag = "+faststart"

	// EvenDimensionsFilter forces H.264-safe even dimensions (rounding
	// down, never up) and constant 30 fps
	EvenDimensionsFilter = "scale=trunc(iw/2)*2:trunc(ih/2)*2,fps=30"

	// LoudnormFilter targets -16 LUFS integrated, -1.5 dB true peak
	LoudnormFilter = "loudnorm=I=-16:TP=-1.5:LRA=11"

	// Synthesized silent audio source for inputs without an audio stream
	SilenceSourceFormat   = "lavfi"
	SilenceSource         = "anullsrc=channel_layout=stereo:sample_rate=48000"
	SilenceSourceDuration = "99999"

	// SpeedTolerance is the tolerance within which a speed multiplier
	// counts as identity
	SpeedTolerance = 1e-6
)

// BuildFFmpegArgs assembles the full ffmpeg argument list for one
// conversion. It is a pure function: identical inputs always produce an
// identical argument list. The output path is the final argument and
// ffmpeg is told to overwrite unconditionally; overwrite gating happens
// in the batch runner before invocation.
//
// When addSilence is set (no audio stream in the input) a silent stereo
// 48 kHz track is synthesized and -shortest trims it to the video
// duration; neither tempo nor loudness filters apply to silence.
func BuildFFmpegArgs(inputPath, outputPath string, profile QualityProfile, speed float64, loudNorm, addSilence bool) []string {
	vf := EvenDimensionsFilter
	if !speedIsIdentity(speed) {
		// PTS/speed: faster => divide; slower => multiply
		vf = "setpts=PTS/" + formatSpeed(speed) + "," + EvenDimensionsFilter
	}

	args := []string{
		"-y",
		"-i", inputPath,
		"-map_metadata", "-1",
		"-movflags", FastStartFlag,
		"-vsync", VSyncMode,
		"-vf", vf,
		"-r", OutputFrameRate,
		"-c:v", VideoCodec,
		"-profile:v", profile.Profile,
		"-level", profile.Level,
		"-pix_fmt", PixelFormat,
		"-preset", profile.Preset,
		"-crf", profile.CRF,
	}

	if addSilence {
		args = append(args,
			"-f", SilenceSourceFormat, "-t", SilenceSourceDuration, "-i", SilenceSource,
			"-shortest",
			"-c:a", AudioCodec, "-b:a", AudioBitrate, "-ar", AudioSampleRate, "-ac", AudioChannels,
			"-map", "0:v:0", "-map", "1:a:0",
		)
	} else {
		var aFilters []string
		if loudNorm {
			aFilters = append(aFilters, LoudnormFilter)
		}
		if !speedIsIdentity(speed) {
			aFilters = append(aFilters, AtempoFilter(speed))
		}
		if len(aFilters) > 0 {
			args = append(args, "-filter:a", strings.Join(aFilters, ","))
		}
		args = append(args, "-c:a", AudioCodec, "-b:a", AudioBitrate, "-ar", AudioSampleRate, "-ac", AudioChannels)
	}

	args = append(args, outputPath)
	return args
}

// speedIsIdentity reports whether speed is 1.0 within SpeedTolerance
func speedIsIdentity(speed float64) bool {
	return math.Abs(speed-1.0) <= SpeedTolerance
}

// formatSpeed renders a speed multiplier for use inside a filter expression
func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'g', -1, 64)
}
