// Package progress reports copy progress to the terminal.
package progress

import (
	"fmt"
	"time"
)

// Tracker interface defines methods for tracking operation progress
type Tracker interface {
	Start(operation string) *Operation
	Update(current, total int64)
	Complete()
	Error(err error)
}

// Operation represents a tracked operation
type Operation struct {
	Name      string
	StartTime time.Time
	Status    string
	Current   int64
	Total     int64
}

// Operation status values.
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// DefaultTracker records progress without rendering it. It is the
// tracker of choice for tests and for callers that only want the
// final state.
type DefaultTracker struct {
	CurrentOperation *Operation
}

// Start begins tracking a new operation
func (t *DefaultTracker) Start(operation string) *Operation {
	t.CurrentOperation = &Operation{
		Name:      operation,
		StartTime: time.Now(),
		Status:    StatusInProgress,
	}
	return t.CurrentOperation
}

// Update updates the progress of the current operation
func (t *DefaultTracker) Update(current, total int64) {
	if t.CurrentOperation == nil {
		return
	}
	t.CurrentOperation.Current = current
	t.CurrentOperation.Total = total
}

// Complete marks the operation as completed
func (t *DefaultTracker) Complete() {
	if t.CurrentOperation != nil {
		t.CurrentOperation.Status = StatusCompleted
	}
}

// Error marks the operation as failed
func (t *DefaultTracker) Error(err error) {
	if t.CurrentOperation != nil {
		t.CurrentOperation.Status = StatusFailed
	}
}

// ConsoleTracker implements Tracker for console output, one line per
// operation, updated in place.
type ConsoleTracker struct {
	currentOperation *Operation
}

// NewConsoleTracker creates a new console-based progress tracker
func NewConsoleTracker() *ConsoleTracker {
	return &ConsoleTracker{}
}

// Start begins tracking a new operation
func (t *ConsoleTracker) Start(operation string) *Operation {
	t.currentOperation = &Operation{
		Name:      operation,
		StartTime: time.Now(),
		Status:    StatusInProgress,
	}
	fmt.Printf("Starting: %s\n", operation)
	return t.currentOperation
}

// Update updates the progress of the current operation
func (t *ConsoleTracker) Update(current, total int64) {
	if t.currentOperation == nil {
		return
	}
	t.currentOperation.Current = current
	t.currentOperation.Total = total

	if total <= 0 {
		return
	}

	rate := float64(current)
	if elapsed := time.Since(t.currentOperation.StartTime).Seconds(); elapsed > 0 {
		rate = float64(current) / elapsed
	}

	fmt.Printf("\r%s: %d/%d files (%.0f%%, %.1f files/sec)",
		t.currentOperation.Name,
		current, total,
		float64(current)/float64(total)*100,
		rate)
}

// Complete marks the current operation as completed
func (t *ConsoleTracker) Complete() {
	if t.currentOperation == nil {
		return
	}
	duration := time.Since(t.currentOperation.StartTime).Round(time.Millisecond)
	fmt.Printf("\nCompleted: %s (%d files, took %v)\n",
		t.currentOperation.Name, t.currentOperation.Current, duration)
	t.currentOperation = nil
}

// Error marks the current operation as failed
func (t *ConsoleTracker) Error(err error) {
	if t.currentOperation == nil {
		return
	}
	fmt.Printf("\nError: %s - %v\n", t.currentOperation.Name, err)
	t.currentOperation = nil
}
