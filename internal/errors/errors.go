// Package errors defines the typed errors used by the provisioning
// pipeline.
//
// Two conditions abort a run outright: a clone that cannot be
// completed (FetchError) and a mapped folder that is absent from the
// fresh clone (MissingSourceError). Filesystem failures during the
// copy phase are wrapped in OperationError and are equally fatal;
// nothing is retried and nothing already copied is rolled back.
package errors

import "fmt"

// OperationError wraps a failure from a single filesystem or
// repository operation with the name of the operation that failed.
type OperationError struct {
	Op  string // the operation being performed, e.g. "copy" or "mkdir"
	Err error  // the underlying error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *OperationError) Unwrap() error {
	return e.Err
}

// Is matches OperationErrors by operation name.
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	return e.Op == t.Op
}

// New creates a new OperationError.
func New(op string, err error) *OperationError {
	return &OperationError{Op: op, Err: err}
}

// FetchError indicates that the remote asset repository could not be
// cloned. The URL is credential-redacted and safe to log.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// MissingSourceError indicates that a folder named by the mapping
// table does not exist in the freshly cloned repository. It usually
// means the table is stale or mistyped relative to the remote layout.
type MissingSourceError struct {
	Remote string // the configured remote folder name
	Path   string // the absolute path that was checked
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("remote folder %q missing from clone: %s", e.Remote, e.Path)
}
