package model

import (
	"strings"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	task := NewTask("/in/clip.mov", "/out/clip_ppt.mp4")

	if task.InputPath != "/in/clip.mov" {
		t.Errorf("Expected InputPath /in/clip.mov, got %s", task.InputPath)
	}
	if task.OutputPath != "/out/clip_ppt.mp4" {
		t.Errorf("Expected OutputPath /out/clip_ppt.mp4, got %s", task.OutputPath)
	}
	if !strings.HasPrefix(task.ID, TaskIDPrefix) {
		t.Errorf("Expected ID to start with %s, got: %s", TaskIDPrefix, task.ID)
	}
}

func TestGenerateTaskIDUnique(t *testing.T) {
	id1 := generateTaskID()
	time.Sleep(1 * time.Millisecond) // Ensure different timestamp
	id2 := generateTaskID()

	if id1 == id2 {
		t.Error("Expected different task IDs")
	}
}

func TestProgressDone(t *testing.T) {
	tests := []struct {
		progress Progress
		expected bool
	}{
		{Progress{Completed: 0, Total: 3}, false},
		{Progress{Completed: 2, Total: 3}, false},
		{Progress{Completed: 3, Total: 3}, true},
		{Progress{Completed: 0, Total: 0}, false},
	}

	for _, test := range tests {
		if got := test.progress.Done(); got != test.expected {
			t.Errorf("Progress(%d/%d).Done() = %v, expected %v",
				test.progress.Completed, test.progress.Total, got, test.expected)
		}
	}
}
