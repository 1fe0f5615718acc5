// Package paths computes the filesystem locations a provisioning run
// works with. Everything is anchored at the project root, which
// defaults to the directory the binary itself lives in, mirroring a
// setup script that operates relative to its own location.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved locations for one run.
type Paths struct {
	// ProjectRoot is the absolute directory all destinations are
	// created under.
	ProjectRoot string

	// CloneDir is the absolute path the remote repository is cloned
	// into: the clone dir name joined to ProjectRoot.
	CloneDir string
}

// executablePath is a variable so tests can substitute the binary
// location.
var executablePath = os.Executable

// Resolve computes the project root and derives the clone directory
// from it. rootOverride, when non-empty, replaces the default of the
// binary's own directory. cloneDirName must be a single path element;
// manifest validation enforces that before Resolve is reached.
func Resolve(rootOverride, cloneDirName string) (Paths, error) {
	root := rootOverride
	if root == "" {
		exe, err := executablePath()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to locate executable: %w", err)
		}
		resolved, err := filepath.EvalSymlinks(exe)
		if err != nil {
			return Paths{}, fmt.Errorf("failed to resolve executable path: %w", err)
		}
		root = filepath.Dir(resolved)
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("failed to resolve project root: %w", err)
	}

	return Paths{
		ProjectRoot: abs,
		CloneDir:    filepath.Join(abs, cloneDirName),
	}, nil
}

// Dest returns the absolute directory for one mapping destination:
// ProjectRoot/base/name.
func (p Paths) Dest(base, name string) string {
	return filepath.Join(p.ProjectRoot, base, name)
}
