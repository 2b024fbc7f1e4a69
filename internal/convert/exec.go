package convert

import (
	"bytes"
	"errors"
	"os/exec"
)

// SystemExecutor runs commands via os/exec, capturing stderr for
// diagnostics. ffmpeg writes its error output there.
type SystemExecutor struct{}

// Run executes the command synchronously and returns its exit code and
// captured stderr. A non-zero exit is reported through the exit code,
// not through err.
func (SystemExecutor) Run(name string, args ...string) (int, string, error) {
	cmd := exec.Command(name, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return 0, stderr.String(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), stderr.String(), nil
	}
	return -1, stderr.String(), err
}
