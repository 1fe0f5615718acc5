// Package install implements the copy phase: moving asset folders
// from the fresh clone into their configured destinations.
package install

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/RagerGr/go-hfassets/internal/errors"
	"github.com/RagerGr/go-hfassets/internal/fsutils"
	"github.com/RagerGr/go-hfassets/internal/manifest"
	"github.com/RagerGr/go-hfassets/internal/paths"
	"github.com/RagerGr/go-hfassets/internal/progress"
)

// Installer copies every mapped folder from the clone into its
// destinations. Mappings are processed strictly in table order and
// the first hard error aborts the run: destinations already written
// stay as they are, later entries are never touched.
type Installer struct {
	Paths    paths.Paths
	Mappings []manifest.Mapping
	Tracker  progress.Tracker
}

// Result describes what one mapping entry installed.
type Result struct {
	Remote       string
	Destinations []string
	Files        int64
	Bytes        int64
}

// PlannedCopy is one copy a run would perform.
type PlannedCopy struct {
	Remote string
	Dest   string
}

// Plan returns the ordered list of copies a run would perform,
// without touching the filesystem.
func (i Installer) Plan() []PlannedCopy {
	var plan []PlannedCopy
	for _, m := range i.Mappings {
		for _, d := range m.Destinations {
			plan = append(plan, PlannedCopy{
				Remote: m.Remote,
				Dest:   i.Paths.Dest(d.Base, d.Name),
			})
		}
	}
	return plan
}

// Run executes the copy phase against a clone that is already in
// place. It returns the results of the entries that completed; on
// error those are exactly the entries that ran before the failure.
func (i Installer) Run(ctx context.Context) ([]Result, error) {
	copyTracker := progress.NewCopyTracker(i.Tracker)

	var results []Result
	for _, m := range i.Mappings {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		source := filepath.Join(i.Paths.CloneDir, m.Remote)
		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			return results, &errors.MissingSourceError{Remote: m.Remote, Path: source}
		}

		total, err := fsutils.CountFiles(source)
		if err != nil {
			return results, fmt.Errorf("failed to scan %s: %w", source, err)
		}

		result := Result{Remote: m.Remote}
		for _, d := range m.Destinations {
			dest := i.Paths.Dest(d.Base, d.Name)

			if err := fsutils.EnsureDirExists(dest); err != nil {
				return results, fmt.Errorf("failed to create destination %s: %w", dest, err)
			}

			copyTracker.StartCopy(m.Remote, dest, total)
			stats, err := fsutils.CopyTree(source, dest, copyTracker.FileDone)
			if err != nil {
				copyTracker.Fail(err)
				return results, fmt.Errorf("failed to copy %s into %s: %w", m.Remote, dest, err)
			}
			copyTracker.Done()

			result.Destinations = append(result.Destinations, dest)
			result.Files += stats.Files
			result.Bytes += stats.Bytes

			logger.Debugf("Copied %s into %s (%d files, %d bytes)", m.Remote, dest, stats.Files, stats.Bytes)
		}

		results = append(results, result)
	}

	return results, nil
}
