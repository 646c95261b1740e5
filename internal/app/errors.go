package app

import "fmt"

// StartupError means the terminal couldn't be acquired or the starting
// path couldn't be read; the caller prints it to stderr and exits 2.
type StartupError struct {
	cause error
}

func NewStartupError(cause error) *StartupError { return &StartupError{cause: cause} }

func (e *StartupError) Error() string { return fmt.Sprintf("startup failed: %v", e.cause) }
func (e *StartupError) Unwrap() error { return e.cause }

// PathError covers an Esc at the root path stack or an EnterSelected
// on a folder tile that can no longer be entered (Enter on a file tile
// is a silent no-op, not a PathError); it never carries a message,
// only a transient red-flash effect.
type PathError struct{}

func (e *PathError) Error() string { return "path navigation failed" }

// ScanEntryError means a single directory entry was unreadable during
// the walk; the scan keeps going and the entry is simply skipped.
type ScanEntryError struct {
	Path  string
	cause error
}

func NewScanEntryError(path string, cause error) *ScanEntryError {
	return &ScanEntryError{Path: path, cause: cause}
}

func (e *ScanEntryError) Error() string {
	return fmt.Sprintf("scan entry %q: %v", e.Path, e.cause)
}
func (e *ScanEntryError) Unwrap() error { return e.cause }

// DeleteError means the filesystem removal failed; it carries the text
// shown verbatim in ErrorMessage mode.
type DeleteError struct {
	Path  string
	cause error
}

func NewDeleteError(path string, cause error) *DeleteError {
	return &DeleteError{Path: path, cause: cause}
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("could not delete %q: %v", e.Path, e.cause)
}
func (e *DeleteError) Unwrap() error { return e.cause }

// ResizeBelowMinimum means the terminal shrank below the renderable
// minimum; the caller transitions to ScreenTooSmall.
type ResizeBelowMinimum struct {
	Width, Height int
}

func (e *ResizeBelowMinimum) Error() string {
	return fmt.Sprintf("terminal %dx%d is below the renderable minimum", e.Width, e.Height)
}

// InvariantViolation signals a broken internal invariant (an
// out-of-range selection, a size/descendant mismatch, an unresolvable
// path stack). It is always fatal: the caller restores the terminal
// and panics rather than attempting to keep rendering from a state it
// cannot trust.
type InvariantViolation struct {
	Detail string
}

func (e *InvariantViolation) Error() string { return "invariant violation: " + e.Detail }

// Fatal panics with an InvariantViolation. Treated as fatal: the
// terminal is restored and the process exits rather than continuing to
// render from state it can no longer trust.
func Fatal(detail string) {
	panic(&InvariantViolation{Detail: detail})
}
