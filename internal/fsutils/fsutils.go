// Package fsutils provides the directory and tree-copy primitives
// used by the copy executor.
package fsutils

import (
	"os"

	"github.com/RagerGr/go-hfassets/internal/errors"
)

// EnsureDirAbsent removes dir and everything under it. A missing dir
// is not an error.
func EnsureDirAbsent(dir string) error {
	_, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.New("stat", err)
	}

	if err := os.RemoveAll(dir); err != nil {
		return errors.New("remove", err)
	}
	return nil
}

// EnsureDirExists creates dir and any missing parents. An existing
// dir is left untouched.
func EnsureDirExists(dir string) error {
	_, err := os.Stat(dir)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.New("stat", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("mkdir", err)
	}
	return nil
}
