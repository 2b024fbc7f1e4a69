package platform

import "os/exec"

// External tool executables resolved on PATH
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// ToolsAvailable reports whether both ffmpeg and ffprobe resolve on the
// command search path. Batches must not start when this returns false.
func ToolsAvailable() bool {
	return len(MissingTools()) == 0
}

// MissingTools returns the names of required tools that do not resolve
// on PATH, for use in the precondition failure message.
func MissingTools() []string {
	var missing []string
	for _, tool := range []string{FFmpegCommand, FFprobeCommand} {
		if _, err := exec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}
