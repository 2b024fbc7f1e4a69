package convert

import (
	"encoding/json"
	"os/exec"

	"github.com/pptconv/mp4-converter/internal/platform"
)

// ffprobe invocation constants
const (
	FFprobeLogLevel       = "error"
	FFprobeAudioStreams   = "a"
	FFprobeShowEntries    = "stream=codec_type"
	FFprobeOutputFormat   = "json"
	FFprobeCodecTypeAudio = "audio"
)

// ffprobeOutput matches the JSON emitted by ffprobe -show_entries
type ffprobeOutput struct {
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeStream struct {
	CodecType string `json:"codec_type"`
}

// FFprobe probes media files via the ffprobe command line tool
type FFprobe struct{}

// NewFFprobe creates a new ffprobe-backed prober
func NewFFprobe() Prober {
	return &FFprobe{}
}

// HasAudioStream reports whether the file contains at least one audio
// stream. Any ffprobe failure or unparseable output is treated as "no
// audio stream" so the caller falls back to silence injection instead
// of failing the task.
func (p *FFprobe) HasAudioStream(path string) bool {
	cmd := exec.Command(platform.FFprobeCommand,
		"-v", FFprobeLogLevel,
		"-select_streams", FFprobeAudioStreams,
		"-show_entries", FFprobeShowEntries,
		"-of", FFprobeOutputFormat,
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return false
	}

	var probed ffprobeOutput
	if err := json.Unmarshal(out, &probed); err != nil {
		return false
	}

	for _, stream := range probed.Streams {
		if stream.CodecType == FFprobeCodecTypeAudio {
			return true
		}
	}
	return false
}
