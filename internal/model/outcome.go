package model

import "fmt"

// Log line tags rendered into the UI log view
const (
	TagOK    = "[OK]"
	TagSkip  = "[SKIP]"
	TagError = "[ERROR]"
	TagCmd   = "[CMD]"
)

// OutcomeKind classifies how a task ended
type OutcomeKind int

const (
	// OutcomeSucceeded means the external tool finished with exit code 0
	OutcomeSucceeded OutcomeKind = iota

	// OutcomeSkipped means the task was not attempted (missing input,
	// or existing output without overwrite permission)
	OutcomeSkipped

	// OutcomeFailed means the external tool failed or an internal fault
	// occurred while preparing or running the task
	OutcomeFailed
)

// String returns the log tag for the outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSucceeded:
		return TagOK
	case OutcomeSkipped:
		return TagSkip
	case OutcomeFailed:
		return TagError
	default:
		return "[UNKNOWN]"
	}
}

// TaskOutcome is the result of processing one task. Reason holds the
// skip explanation or failure diagnostic; it is empty on success.
type TaskOutcome struct {
	Task   ConversionTask
	Kind   OutcomeKind
	Reason string
}

// Skipped builds a skipped outcome with the given reason
func Skipped(task ConversionTask, reason string) TaskOutcome {
	return TaskOutcome{Task: task, Kind: OutcomeSkipped, Reason: reason}
}

// Failed builds a failed outcome with the given diagnostic
func Failed(task ConversionTask, diagnostic string) TaskOutcome {
	return TaskOutcome{Task: task, Kind: OutcomeFailed, Reason: diagnostic}
}

// Succeeded builds a successful outcome
func Succeeded(task ConversionTask) TaskOutcome {
	return TaskOutcome{Task: task, Kind: OutcomeSucceeded}
}

// LogLine renders the outcome as a single log view line
func (o TaskOutcome) LogLine() string {
	switch o.Kind {
	case OutcomeSucceeded:
		return TagOK + " " + o.Task.OutputPath
	case OutcomeSkipped:
		return TagSkip + " " + o.Reason
	default:
		return TagError + " " + o.Reason
	}
}

// Summary aggregates a batch's outcomes for the completion status line
type Summary struct {
	Succeeded int
	Skipped   int
	Failed    int
}

// Summarize counts the outcomes of a finished batch by kind
func Summarize(outcomes []TaskOutcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeSucceeded:
			s.Succeeded++
		case OutcomeSkipped:
			s.Skipped++
		case OutcomeFailed:
			s.Failed++
		}
	}
	return s
}

// String renders the summary as the batch's final status message
func (s Summary) String() string {
	return fmt.Sprintf("All done. %d converted, %d skipped, %d failed.", s.Succeeded, s.Skipped, s.Failed)
}
