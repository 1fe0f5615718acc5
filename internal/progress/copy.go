package progress

import "fmt"

// CopyTracker adapts a Tracker to the copy executor's events: one
// tracked operation per (remote folder, destination) pair, updated
// once per file written.
type CopyTracker struct {
	tracker Tracker
	done    int64
	total   int64
}

// NewCopyTracker wraps tracker. A nil tracker gets a silent
// DefaultTracker so callers never have to branch.
func NewCopyTracker(tracker Tracker) *CopyTracker {
	if tracker == nil {
		tracker = &DefaultTracker{}
	}
	return &CopyTracker{tracker: tracker}
}

// StartCopy begins tracking one copy of the remote folder into dest,
// expecting totalFiles file writes.
func (c *CopyTracker) StartCopy(remote, dest string, totalFiles int64) {
	c.done = 0
	c.total = totalFiles
	c.tracker.Start(fmt.Sprintf("copy %s -> %s", remote, dest))
}

// FileDone records one written file. The byte count parameter matches
// the copy callback shape; only the file count drives the display.
func (c *CopyTracker) FileDone(_ int64) {
	c.done++
	c.tracker.Update(c.done, c.total)
}

// Done finishes the current copy.
func (c *CopyTracker) Done() {
	c.tracker.Complete()
}

// Fail marks the current copy as failed.
func (c *CopyTracker) Fail(err error) {
	c.tracker.Error(err)
}
