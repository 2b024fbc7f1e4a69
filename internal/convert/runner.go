package convert

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pptconv/mp4-converter/internal/model"
	"github.com/pptconv/mp4-converter/internal/platform"
)

// Options is the read-only per-batch configuration shared by all tasks
type Options struct {
	Profile        QualityProfile
	Speed          float64
	NormalizeAudio bool
	Overwrite      bool
}

// ProgressFunc receives progress updates. It is invoked on the runner's
// goroutine; UI implementations must marshal to their own thread.
type ProgressFunc func(p model.Progress)

// Runner processes conversion tasks strictly in order, one external
// encode process at a time. Log lines are pushed onto the logs channel
// with a non-blocking send so the runner never waits on its consumer.
type Runner struct {
	prober     Prober
	executor   Executor
	logs       chan<- string
	onProgress ProgressFunc
}

// NewRunner creates a batch runner. logs and onProgress may be nil when
// the caller does not observe events.
func NewRunner(prober Prober, executor Executor, logs chan<- string, onProgress ProgressFunc) *Runner {
	return &Runner{
		prober:     prober,
		executor:   executor,
		logs:       logs,
		onProgress: onProgress,
	}
}

// Run processes every task in order and returns the per-task outcomes.
// A task's failure never aborts the batch; every task counts as
// processed for progress purposes, so the final completed count always
// equals the total.
func (r *Runner) Run(tasks []model.ConversionTask, opts Options) []model.TaskOutcome {
	total := len(tasks)
	outcomes := make([]model.TaskOutcome, 0, total)

	for idx, task := range tasks {
		r.reportProgress(idx, total, "Converting: "+filepath.Base(task.InputPath))

		outcome := r.convertOne(task, opts)
		outcomes = append(outcomes, outcome)
		r.log(outcome.LogLine())

		if outcome.Kind == model.OutcomeFailed {
			log.Printf("Task %s failed: %s", task.ID, outcome.Reason)
		}

		r.reportProgress(idx+1, total, fmt.Sprintf("Done %d/%d", idx+1, total))
	}

	return outcomes
}

// convertOne processes a single task. It is the error boundary: any
// panic while preparing or running the task is converted into a failed
// outcome so the batch continues.
func (r *Runner) convertOne(task model.ConversionTask, opts Options) (outcome model.TaskOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			outcome = model.Failed(task, fmt.Sprintf("%s: %v", filepath.Base(task.InputPath), rec))
		}
	}()

	if _, err := os.Stat(task.InputPath); err != nil {
		return model.Skipped(task, "Not found: "+task.InputPath)
	}

	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(task.OutputPath)); err != nil {
		return model.Failed(task, fmt.Sprintf("%s: %v", filepath.Base(task.InputPath), err))
	}

	if !opts.Overwrite {
		if _, err := os.Stat(task.OutputPath); err == nil {
			return model.Skipped(task, "Exists (enable Overwrite to replace): "+task.OutputPath)
		}
	}

	addSilence := !r.prober.HasAudioStream(task.InputPath)
	args := BuildFFmpegArgs(task.InputPath, task.OutputPath, opts.Profile, opts.Speed, opts.NormalizeAudio, addSilence)
	r.log(model.TagCmd + " " + platform.FFmpegCommand + " " + strings.Join(args, " "))

	code, stderr, err := r.executor.Run(platform.FFmpegCommand, args...)
	if err != nil {
		return model.Failed(task, fmt.Sprintf("%s: %v", filepath.Base(task.InputPath), err))
	}
	if code != 0 {
		return model.Failed(task, filepath.Base(task.InputPath)+":\n"+stderr)
	}

	return model.Succeeded(task)
}

// log pushes a line onto the log queue without blocking. Lines are
// dropped when the consumer falls behind the channel capacity.
func (r *Runner) log(line string) {
	if r.logs == nil {
		return
	}
	select {
	case r.logs <- line:
	default:
	}
}

// reportProgress invokes the progress callback if set
func (r *Runner) reportProgress(completed, total int, message string) {
	if r.onProgress == nil {
		return
	}
	r.onProgress(model.Progress{Completed: completed, Total: total, Message: message})
}
