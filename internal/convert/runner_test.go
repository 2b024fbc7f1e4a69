package convert

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pptconv/mp4-converter/internal/model"
)

// fakeProber reports a fixed audio-presence answer
type fakeProber struct {
	hasAudio bool
}

func (p fakeProber) HasAudioStream(string) bool { return p.hasAudio }

// panickyProber panics on its first probe, then reports audio present
type panickyProber struct {
	calls int
}

func (p *panickyProber) HasAudioStream(string) bool {
	p.calls++
	if p.calls == 1 {
		panic("probe blew up")
	}
	return true
}

// fakeExecutor records invocations and returns scripted results
type fakeExecutor struct {
	invocations [][]string
	exitCodes   map[string]int // keyed by input path; missing = 0
	stderr      string
}

func (e *fakeExecutor) Run(name string, args ...string) (int, string, error) {
	e.invocations = append(e.invocations, append([]string{name}, args...))

	for input, code := range e.exitCodes {
		for _, arg := range args {
			if arg == input {
				return code, e.stderr, nil
			}
		}
	}
	return 0, "", nil
}

func writeTempInput(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create temp input: %v", err)
	}
	return path
}

func defaultOptions() Options {
	return Options{
		Profile:   Profiles[ProfileBaseline],
		Speed:     1.0,
		Overwrite: true,
	}
}

func TestRunSkipsMissingInput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	in1 := writeTempInput(t, dir, "a.mov")
	in2 := filepath.Join(dir, "missing.mov")
	in3 := writeTempInput(t, dir, "c.mov")

	tasks := []model.ConversionTask{
		model.NewTask(in1, filepath.Join(outDir, "a_ppt.mp4")),
		model.NewTask(in2, filepath.Join(outDir, "missing_ppt.mp4")),
		model.NewTask(in3, filepath.Join(outDir, "c_ppt.mp4")),
	}

	executor := &fakeExecutor{}
	logs := make(chan string, 64)

	var progress []model.Progress
	runner := NewRunner(fakeProber{hasAudio: true}, executor, logs, func(p model.Progress) {
		progress = append(progress, p)
	})

	outcomes := runner.Run(tasks, defaultOptions())

	if len(outcomes) != 3 {
		t.Fatalf("Expected 3 outcomes, got %d", len(outcomes))
	}
	if outcomes[0].Kind != model.OutcomeSucceeded {
		t.Errorf("Task 1 should succeed, got %v: %s", outcomes[0].Kind, outcomes[0].Reason)
	}
	if outcomes[1].Kind != model.OutcomeSkipped {
		t.Errorf("Task 2 should be skipped, got %v", outcomes[1].Kind)
	}
	if outcomes[2].Kind != model.OutcomeSucceeded {
		t.Errorf("Task 3 should succeed, got %v: %s", outcomes[2].Kind, outcomes[2].Reason)
	}

	// Skipped task never reaches the executor
	if len(executor.invocations) != 2 {
		t.Errorf("Expected 2 ffmpeg invocations, got %d", len(executor.invocations))
	}

	// Exactly one SKIP line
	skips := 0
	close(logs)
	for line := range logs {
		if strings.HasPrefix(line, model.TagSkip) {
			skips++
			if !strings.Contains(line, in2) {
				t.Errorf("Skip line should name the missing input: %s", line)
			}
		}
	}
	if skips != 1 {
		t.Errorf("Expected exactly one SKIP line, got %d", skips)
	}

	// Final progress equals total regardless of skips
	final := progress[len(progress)-1]
	if final.Completed != 3 || final.Total != 3 {
		t.Errorf("Final progress should be 3/3, got %d/%d", final.Completed, final.Total)
	}
	if !final.Done() {
		t.Error("Final progress should report done")
	}
}

func TestRunSkipsExistingOutputWithoutOverwrite(t *testing.T) {
	dir := t.TempDir()

	input := writeTempInput(t, dir, "a.mov")
	output := writeTempInput(t, dir, "a_ppt.mp4") // pre-existing output

	executor := &fakeExecutor{}
	runner := NewRunner(fakeProber{hasAudio: true}, executor, nil, nil)

	opts := defaultOptions()
	opts.Overwrite = false

	outcomes := runner.Run([]model.ConversionTask{model.NewTask(input, output)}, opts)

	if outcomes[0].Kind != model.OutcomeSkipped {
		t.Errorf("Expected skip for existing output, got %v", outcomes[0].Kind)
	}
	if len(executor.invocations) != 0 {
		t.Errorf("Encoder must not be invoked for a skipped task, got %d invocations", len(executor.invocations))
	}
}

func TestRunOverwriteReplacesExistingOutput(t *testing.T) {
	dir := t.TempDir()

	input := writeTempInput(t, dir, "a.mov")
	output := writeTempInput(t, dir, "a_ppt.mp4")

	executor := &fakeExecutor{}
	runner := NewRunner(fakeProber{hasAudio: true}, executor, nil, nil)

	outcomes := runner.Run([]model.ConversionTask{model.NewTask(input, output)}, defaultOptions())

	if outcomes[0].Kind != model.OutcomeSucceeded {
		t.Errorf("Expected success with overwrite enabled, got %v", outcomes[0].Kind)
	}
	if len(executor.invocations) != 1 {
		t.Errorf("Expected 1 invocation, got %d", len(executor.invocations))
	}
}

func TestRunFailureContinuesBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	in1 := writeTempInput(t, dir, "bad.mov")
	in2 := writeTempInput(t, dir, "good.mov")

	executor := &fakeExecutor{
		exitCodes: map[string]int{in1: 1},
		stderr:    "encoder exploded",
	}

	var progress []model.Progress
	runner := NewRunner(fakeProber{hasAudio: true}, executor, nil, func(p model.Progress) {
		progress = append(progress, p)
	})

	tasks := []model.ConversionTask{
		model.NewTask(in1, filepath.Join(outDir, "bad_ppt.mp4")),
		model.NewTask(in2, filepath.Join(outDir, "good_ppt.mp4")),
	}
	outcomes := runner.Run(tasks, defaultOptions())

	if outcomes[0].Kind != model.OutcomeFailed {
		t.Fatalf("Expected failure for bad input, got %v", outcomes[0].Kind)
	}
	if !strings.Contains(outcomes[0].Reason, "encoder exploded") {
		t.Errorf("Failure should carry the captured stderr, got: %s", outcomes[0].Reason)
	}
	if outcomes[1].Kind != model.OutcomeSucceeded {
		t.Errorf("Batch should continue past a failure, got %v", outcomes[1].Kind)
	}

	final := progress[len(progress)-1]
	if final.Completed != 2 || final.Total != 2 {
		t.Errorf("Final progress should be 2/2, got %d/%d", final.Completed, final.Total)
	}
}

func TestRunRecoversFromPanic(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	in1 := writeTempInput(t, dir, "first.mov")
	in2 := writeTempInput(t, dir, "second.mov")

	var progress []model.Progress
	runner := NewRunner(&panickyProber{}, &fakeExecutor{}, nil, func(p model.Progress) {
		progress = append(progress, p)
	})

	tasks := []model.ConversionTask{
		model.NewTask(in1, filepath.Join(outDir, "first_ppt.mp4")),
		model.NewTask(in2, filepath.Join(outDir, "second_ppt.mp4")),
	}
	outcomes := runner.Run(tasks, defaultOptions())

	if outcomes[0].Kind != model.OutcomeFailed {
		t.Fatalf("Panicking task should fail, got %v", outcomes[0].Kind)
	}
	if !strings.Contains(outcomes[0].Reason, "probe blew up") {
		t.Errorf("Failure should carry the panic text, got: %s", outcomes[0].Reason)
	}
	if outcomes[1].Kind != model.OutcomeSucceeded {
		t.Errorf("Batch should continue past a panic, got %v", outcomes[1].Kind)
	}

	final := progress[len(progress)-1]
	if final.Completed != 2 || final.Total != 2 {
		t.Errorf("Final progress should be 2/2, got %d/%d", final.Completed, final.Total)
	}
}

func TestRunFailureDiagnosticNamesTaskID(t *testing.T) {
	dir := t.TempDir()
	input := writeTempInput(t, dir, "bad.mov")

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	executor := &fakeExecutor{
		exitCodes: map[string]int{input: 1},
		stderr:    "boom",
	}
	runner := NewRunner(fakeProber{hasAudio: true}, executor, nil, nil)

	task := model.NewTask(input, filepath.Join(dir, "bad_ppt.mp4"))
	runner.Run([]model.ConversionTask{task}, defaultOptions())

	if !strings.Contains(logged.String(), task.ID) {
		t.Errorf("Failure diagnostic should name the task ID %s, got: %s", task.ID, logged.String())
	}
	if !strings.Contains(logged.String(), "boom") {
		t.Errorf("Failure diagnostic should carry the stderr text, got: %s", logged.String())
	}
}

func TestRunLogsCommandLine(t *testing.T) {
	dir := t.TempDir()
	input := writeTempInput(t, dir, "a.mov")

	logs := make(chan string, 64)
	runner := NewRunner(fakeProber{hasAudio: true}, &fakeExecutor{}, logs, nil)

	runner.Run([]model.ConversionTask{
		model.NewTask(input, filepath.Join(dir, "a_ppt.mp4")),
	}, defaultOptions())

	close(logs)
	var cmdLine string
	for line := range logs {
		if strings.HasPrefix(line, model.TagCmd) {
			cmdLine = line
		}
	}
	if cmdLine == "" {
		t.Fatal("Expected a [CMD] log line")
	}
	if !strings.Contains(cmdLine, "ffmpeg") || !strings.Contains(cmdLine, input) {
		t.Errorf("Command line should name the tool and input: %s", cmdLine)
	}
}

func TestRunSilencePathUsesSilenceCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeTempInput(t, dir, "mute.mov")

	executor := &fakeExecutor{}
	runner := NewRunner(fakeProber{hasAudio: false}, executor, nil, nil)

	runner.Run([]model.ConversionTask{
		model.NewTask(input, filepath.Join(dir, "mute_ppt.mp4")),
	}, defaultOptions())

	if len(executor.invocations) != 1 {
		t.Fatalf("Expected 1 invocation, got %d", len(executor.invocations))
	}
	joined := strings.Join(executor.invocations[0], " ")
	if !strings.Contains(joined, "anullsrc") || !strings.Contains(joined, "-shortest") {
		t.Errorf("Expected silence synthesis in command: %s", joined)
	}
}

func TestRunCreatesOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	input := writeTempInput(t, dir, "a.mov")
	outDir := filepath.Join(dir, "nested", "out")

	runner := NewRunner(fakeProber{hasAudio: true}, &fakeExecutor{}, nil, nil)
	runner.Run([]model.ConversionTask{
		model.NewTask(input, filepath.Join(outDir, "a_ppt.mp4")),
	}, defaultOptions())

	if _, err := os.Stat(outDir); err != nil {
		t.Errorf("Output directory should have been created: %v", err)
	}
}
