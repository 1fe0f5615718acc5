package progress

import (
	"errors"
	"testing"
)

func TestCopyTracker_TranslatesEvents(t *testing.T) {
	inner := &DefaultTracker{}
	ct := NewCopyTracker(inner)

	ct.StartCopy("data_vocab", "/srv/project/Evaluation/try1/data", 3)

	op := inner.CurrentOperation
	if op == nil {
		t.Fatal("Expected an operation to be started")
	}
	if op.Name != "copy data_vocab -> /srv/project/Evaluation/try1/data" {
		t.Errorf("Unexpected operation name: %s", op.Name)
	}

	ct.FileDone(10)
	ct.FileDone(20)
	if op.Current != 2 || op.Total != 3 {
		t.Errorf("Expected progress 2/3, got %d/%d", op.Current, op.Total)
	}

	ct.FileDone(30)
	ct.Done()
	if op.Status != StatusCompleted {
		t.Errorf("Expected status '%s', got '%s'", StatusCompleted, op.Status)
	}
}

func TestCopyTracker_ResetsBetweenCopies(t *testing.T) {
	inner := &DefaultTracker{}
	ct := NewCopyTracker(inner)

	ct.StartCopy("data_vocab", "/dst/one", 2)
	ct.FileDone(1)
	ct.FileDone(1)
	ct.Done()

	ct.StartCopy("models_vocab", "/dst/two", 5)
	ct.FileDone(1)

	op := inner.CurrentOperation
	if op.Current != 1 || op.Total != 5 {
		t.Errorf("Expected progress 1/5 after reset, got %d/%d", op.Current, op.Total)
	}
}

func TestCopyTracker_Fail(t *testing.T) {
	inner := &DefaultTracker{}
	ct := NewCopyTracker(inner)

	ct.StartCopy("data _enronsent", "/dst", 1)
	ct.Fail(errors.New("copy interrupted"))

	if inner.CurrentOperation.Status != StatusFailed {
		t.Errorf("Expected status '%s', got '%s'", StatusFailed, inner.CurrentOperation.Status)
	}
}

func TestCopyTracker_NilTracker(t *testing.T) {
	ct := NewCopyTracker(nil)

	// All events must be safe without a real tracker.
	ct.StartCopy("data_vocab", "/dst", 1)
	ct.FileDone(1)
	ct.Done()
	ct.Fail(errors.New("ignored"))
}
