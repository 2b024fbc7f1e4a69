package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskIDPrefix prefixes all generated task IDs
const TaskIDPrefix = "convert-"

// ConversionTask represents a single input/output conversion pair.
// Tasks are immutable once a batch starts.
type ConversionTask struct {
	ID         string
	InputPath  string
	OutputPath string
}

// NewTask creates a conversion task for the given input and output paths
func NewTask(inputPath, outputPath string) ConversionTask {
	return ConversionTask{
		ID:         generateTaskID(),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
