package fsutils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/RagerGr/go-hfassets/internal/errors"
)

// Stats accumulates what a copy moved.
type Stats struct {
	Files int64
	Bytes int64
}

// CopyTree recursively copies the contents of the directory src into
// dst, creating dst if needed. The copy merges: paths already under
// dst that have no counterpart under src are left untouched, while
// conflicting files are overwritten with the source version. Empty
// directories are copied, file permission bits are preserved, and
// symbolic links are followed.
//
// onFile, when non-nil, is invoked after each regular file is written
// with the number of bytes copied.
func CopyTree(src, dst string, onFile func(int64)) (Stats, error) {
	var stats Stats
	if err := copyTree(src, dst, onFile, &stats); err != nil {
		return stats, err
	}
	return stats, nil
}

// CountFiles walks src the same way CopyTree does and returns the
// number of regular files a copy would transfer. Used to size
// progress reporting.
func CountFiles(src string) (int64, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, errors.New("read dir", err)
	}

	var count int64
	for _, entry := range entries {
		path := filepath.Join(src, entry.Name())

		info, err := os.Stat(path)
		if err != nil {
			return 0, errors.New("stat", err)
		}

		if info.IsDir() {
			sub, err := CountFiles(path)
			if err != nil {
				return 0, err
			}
			count += sub
			continue
		}
		count++
	}

	return count, nil
}

func copyTree(src, dst string, onFile func(int64), stats *Stats) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.New("read dir", err)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return errors.New("mkdir", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		// Stat rather than entry.Info so symlinks are resolved to
		// what they point at.
		info, err := os.Stat(srcPath)
		if err != nil {
			return errors.New("stat", err)
		}

		if info.IsDir() {
			if err := copyTree(srcPath, dstPath, onFile, stats); err != nil {
				return err
			}
			continue
		}

		n, err := copyFile(srcPath, dstPath, info.Mode().Perm())
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += n
		if onFile != nil {
			onFile(n)
		}
	}

	return nil
}

func copyFile(src, dst string, perm os.FileMode) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, errors.New("open", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return 0, errors.New("create", err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, errors.New("copy", err)
	}
	if err := out.Close(); err != nil {
		return n, errors.New("close", err)
	}

	// OpenFile applies perm only when it creates the file; an
	// overwritten file keeps its old mode without this.
	if err := os.Chmod(dst, perm); err != nil {
		return n, errors.New("chmod", err)
	}

	return n, nil
}
