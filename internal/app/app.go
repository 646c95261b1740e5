package app

import (
	"os"

	"github.com/r3ap3r2004/dutree/internal/board"
	"github.com/r3ap3r2004/dutree/internal/tree"
)

// App is the single owner of mutable UI state; every Instruction ends up
// calling exactly one of its methods.
type App struct {
	Running bool
	Loaded  bool

	Tree    *tree.FileTree
	Board   *board.Board
	Mode    UiMode
	Effects UiEffects

	// FailedReads counts scan entries skipped because they could not be
	// read; the scan itself is never aborted by one.
	FailedReads uint64

	width, height int
}

// New builds an App watching basePath, starting in Loading mode until
// the scanner reports the initial walk complete.
func New(basePath string) *App {
	ft := tree.New(basePath)
	return &App{
		Running: true,
		Tree:    ft,
		Board:   board.New(ft.GetCurrentFolder()),
		Mode:    loadingMode(),
	}
}

// contentArea returns the grid's rendering region: the full terminal
// minus the title row and the two bottom-line rows.
func (a *App) contentArea() board.Area {
	h := a.height - 3
	if h < 0 {
		h = 0
	}
	return board.Area{X: 0, Y: 1, Width: a.width, Height: h}
}

// resize updates the known terminal dimensions and repacks the board. If
// the new size is below the renderable minimum, the caller is expected
// to have already transitioned to ScreenTooSmall via HandleResize.
func (a *App) resize(width, height int) {
	a.width, a.height = width, height
	a.Board.ChangeArea(a.contentArea())
}

// minRenderableWidth/Height are the smallest terminal a single tile plus
// chrome can render.
const (
	minRenderableWidth  = 20
	minRenderableHeight = 6
)

// HandleResize is the entry point for a terminal resize event. Below the
// minimum, it transitions to ScreenTooSmall (remembering the prior mode
// so it can be restored); at or above it, it restores the prior mode if
// coming out of ScreenTooSmall and repacks the board, preserving the
// selection across the dip.
func (a *App) HandleResize(width, height int) {
	belowMinimum := width < minRenderableWidth || height < minRenderableHeight

	if belowMinimum {
		if a.Mode.Kind != ModeScreenTooSmall {
			a.Mode = UiMode{Kind: ModeScreenTooSmall, PriorKind: a.Mode.Kind}
		}
		a.width, a.height = width, height
		return
	}

	savedSelection := a.Board.SelectedIndex
	wasTooSmall := a.Mode.Kind == ModeScreenTooSmall
	if wasTooSmall {
		a.Mode = UiMode{Kind: a.Mode.PriorKind}
	}
	a.resize(width, height)
	if wasTooSmall && savedSelection != nil && *savedSelection < len(a.Board.Tiles) {
		a.Board.SelectedIndex = savedSelection
	}
}

// RenderAndUpdateBoard re-derives the board from the tree's current
// folder view (e.g. after the scanner adds entries to the base folder
// while it is the one on screen). It clears the selection; marking the
// scan complete is FinishLoading's job.
func (a *App) RenderAndUpdateBoard() {
	a.Board.ChangeFiles(a.Tree.GetCurrentFolder())
}

// AddEntryToBaseFolder installs one scanned filesystem entry into the
// tree. If the base folder is currently the one on screen, the board is
// refreshed so the new entry becomes visible immediately.
func (a *App) AddEntryToBaseFolder(absPath string, isDir bool, size uint64) {
	if err := a.Tree.AddEntry(absPath, isDir, size); err != nil {
		return // an entry that cannot be placed under the base path is skipped silently
	}
	if len(a.Tree.PathStack()) == 0 {
		a.RenderAndUpdateBoard()
	}
}

// IncrementFailedReads records one more unreadable scan entry.
func (a *App) IncrementFailedReads() {
	a.FailedReads++
}

// FinishLoading marks the initial scan complete and switches Loading
// into Normal, if that is still the active mode.
func (a *App) FinishLoading() {
	a.Loaded = true
	if a.Mode.Kind == ModeLoading {
		a.Mode = normalMode()
	}
}

// MoveSelectedRight moves the board selection one step right.
func (a *App) MoveSelectedRight() { a.Board.MoveSelectedRight() }

// MoveSelectedLeft moves the board selection one step left.
func (a *App) MoveSelectedLeft() { a.Board.MoveSelectedLeft() }

// MoveSelectedUp moves the board selection one step up.
func (a *App) MoveSelectedUp() { a.Board.MoveSelectedUp() }

// MoveSelectedDown moves the board selection one step down.
func (a *App) MoveSelectedDown() { a.Board.MoveSelectedDown() }

// EnterSelected descends into the currently selected tile if it is a
// folder; a no-op if nothing is selected, and a PathError (red title
// flash) if the selected tile names something that can no longer be
// entered (e.g. it was deleted by a concurrent rescan).
func (a *App) EnterSelected() error {
	selected := a.Board.CurrentlySelected()
	if selected == nil {
		return nil
	}
	if selected.Type != tree.TypeFolder {
		return nil
	}
	if !a.Tree.EnterFolder(selected.Name) {
		a.flashPathError()
		return &PathError{}
	}
	a.RenderAndUpdateBoard()
	return nil
}

// GoUp leaves the current folder, reporting a PathError (and flashing
// the title) if already at the root.
func (a *App) GoUp() error {
	if !a.Tree.LeaveFolder() {
		a.flashPathError()
		return &PathError{}
	}
	a.RenderAndUpdateBoard()
	return nil
}

func (a *App) flashPathError() {
	a.Effects.CurrentPathIsRed = true
}

// ResetPathColor clears the transient red title flash; called by the
// effects goroutine a short time after flashPathError set it.
func (a *App) ResetPathColor() {
	a.Effects.CurrentPathIsRed = false
}

// PromptFileDeletion snapshots the currently selected tile and
// transitions to DeleteFile mode; a no-op if nothing is selected.
func (a *App) PromptFileDeletion() {
	selected := a.Board.CurrentlySelected()
	if selected == nil {
		return
	}
	snapshot := &FileToDelete{
		BasePath:       a.Tree.BasePath(),
		PathToFile:     append(a.Tree.PathStack(), selected.Name),
		Type:           selected.Type,
		NumDescendants: selected.Descendants,
		Size:           selected.Size,
	}
	a.Mode = UiMode{Kind: ModeDeleteFile, FileToDelete: snapshot}
}

// WarnCannotDeleteWhileLoading transitions to WarningMessage, used when
// Backspace is pressed while the initial scan is still running.
func (a *App) WarnCannotDeleteWhileLoading() {
	a.Mode = warningMode("Cannot delete files while disk is being scanned")
}

// PerformDelete removes the filesystem entry, accounts space_freed from
// the pre-recorded snapshot size (not a post-delete re-lookup, which
// could race a concurrent rescan), removes it from the tree, and returns
// to Normal with the board refreshed. On filesystem failure it
// transitions to ErrorMessage instead.
func (a *App) PerformDelete() {
	snapshot := a.Mode.FileToDelete
	if snapshot == nil {
		a.Mode = normalMode()
		return
	}

	a.Effects.DeletionInProgress = true
	path := snapshot.FullPath()

	var err error
	if snapshot.Type == tree.TypeFolder {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	a.Effects.DeletionInProgress = false

	if err != nil {
		a.Mode = errorMode(NewDeleteError(path, err).Error())
		return
	}

	a.Tree.AddSpaceFreed(snapshot.Size)
	if _, delErr := a.Tree.DeleteFile(snapshot.Name()); delErr != nil {
		a.Mode = errorMode(NewDeleteError(path, delErr).Error())
		return
	}
	a.Effects.FlashSpaceFreed = true

	a.Mode = normalMode()
	a.RenderAndUpdateBoard()
}

// ResetSpaceFreedFlash clears the transient title-bar flash, called by
// the effects goroutine a short time after PerformDelete set it.
func (a *App) ResetSpaceFreedFlash() {
	a.Effects.FlashSpaceFreed = false
}

// CancelDelete returns from DeleteFile mode to Normal without deleting
// anything (n/Esc/q/Ctrl-C all cancel).
func (a *App) CancelDelete() {
	a.Mode = normalMode()
}

// DismissMessage returns from ErrorMessage or WarningMessage to Normal
// on any key.
func (a *App) DismissMessage() {
	a.Mode = normalMode()
}

// PromptExit transitions to Confirming(exit), remembering the mode it
// was called from so CancelConfirm can restore it.
func (a *App) PromptExit() {
	a.Mode = UiMode{Kind: ModeConfirming, ConfirmAction: ConfirmExit, PriorKind: a.Mode.Kind}
}

// ConfirmYes acts on the pending Confirming(action): today, only exit.
func (a *App) ConfirmYes() {
	switch a.Mode.ConfirmAction {
	case ConfirmExit:
		a.Running = false
	}
}

// CancelConfirm returns from Confirming to whichever mode PromptExit was
// called from (Loading or Normal).
func (a *App) CancelConfirm() {
	a.Mode = UiMode{Kind: a.Mode.PriorKind}
}

// Exit stops the run loop.
func (a *App) Exit() {
	a.Running = false
}
