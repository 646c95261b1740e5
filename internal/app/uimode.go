package app

import (
	"path/filepath"

	"github.com/r3ap3r2004/dutree/internal/tree"
)

// ModeKind enumerates the states of the UI's mode state machine.
type ModeKind int

const (
	ModeLoading ModeKind = iota
	ModeNormal
	ModeDeleteFile
	ModeConfirming
	ModeErrorMessage
	ModeWarningMessage
	ModeScreenTooSmall
)

func (k ModeKind) String() string {
	switch k {
	case ModeLoading:
		return "Loading"
	case ModeNormal:
		return "Normal"
	case ModeDeleteFile:
		return "DeleteFile"
	case ModeConfirming:
		return "Confirming"
	case ModeErrorMessage:
		return "ErrorMessage"
	case ModeWarningMessage:
		return "WarningMessage"
	case ModeScreenTooSmall:
		return "ScreenTooSmall"
	default:
		return "Unknown"
	}
}

// ConfirmAction names what a Confirming mode will do on "y". The only
// action today is exit, but the type leaves room for more without
// reshaping UiMode.
type ConfirmAction int

const (
	ConfirmExit ConfirmAction = iota
)

// FileToDelete is an immutable snapshot taken at the moment Backspace is
// pressed in Normal mode, so a concurrent rescan mutating FileTree can
// never race the delete-confirmation prompt or the eventual delete call.
type FileToDelete struct {
	BasePath       string
	PathToFile     []string
	Type           tree.FileType
	NumDescendants uint64
	Size           uint64
}

// FullPath reconstructs the absolute filesystem path of the snapshot.
func (f FileToDelete) FullPath() string {
	return filepath.Join(append([]string{f.BasePath}, f.PathToFile...)...)
}

// Name returns the snapshot's own file or folder name.
func (f FileToDelete) Name() string {
	return f.PathToFile[len(f.PathToFile)-1]
}

// UiMode is a tagged variant over the EventRouter states. Only the
// fields relevant to Kind are meaningful.
type UiMode struct {
	Kind ModeKind

	FileToDelete  *FileToDelete
	ConfirmAction ConfirmAction
	Message       string
	PriorKind     ModeKind // valid when Kind == ModeScreenTooSmall or ModeConfirming: the mode to restore once that mode resolves
}

func normalMode() UiMode  { return UiMode{Kind: ModeNormal} }
func loadingMode() UiMode { return UiMode{Kind: ModeLoading} }

func errorMode(msg string) UiMode {
	return UiMode{Kind: ModeErrorMessage, Message: msg}
}

func warningMode(msg string) UiMode {
	return UiMode{Kind: ModeWarningMessage, Message: msg}
}
