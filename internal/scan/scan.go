// Package scan walks a directory tree on a background goroutine and
// reports each entry it finds, so the UI never blocks on filesystem I/O.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// Entry is one discovered filesystem entry: a file with its size, or an
// (initially empty) directory.
type Entry struct {
	AbsPath string
	IsDir   bool
	Size    uint64
}

// EntryFunc receives one Entry at a time as the walk progresses.
type EntryFunc func(Entry)

// ErrorFunc receives one unreadable-entry error at a time; the walk
// continues regardless, counting each one rather than aborting.
type ErrorFunc func(path string, err error)

// Walk recursively scans root, reporting every file and directory
// underneath it (root itself excluded — callers already know it as the
// FileTree's base) via onEntry, and every unreadable entry via onError.
// It never returns early on a single bad entry.
func Walk(root string, onEntry EntryFunc, onError ErrorFunc) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			onError(path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		if d.IsDir() {
			onEntry(Entry{AbsPath: path, IsDir: true})
			return nil
		}
		info, statErr := d.Info()
		if statErr != nil {
			onError(path, statErr)
			return nil
		}
		onEntry(Entry{AbsPath: path, IsDir: false, Size: diskUsage(info)})
		return nil
	})
}

// StatBasePath resolves and validates the starting path before the walk
// begins, so a bad path surfaces as a StartupFailure rather than an
// empty scan.
func StatBasePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", &os.PathError{Op: "scan", Path: abs, Err: os.ErrInvalid}
	}
	return abs, nil
}
