package app

import (
	"fmt"

	"github.com/r3ap3r2004/dutree/internal/layout"
	"github.com/r3ap3r2004/dutree/internal/ui"
)

func fullArea(width, height int) layout.Rect {
	return layout.Rect{X: 0, Y: 0, Width: width, Height: height}
}

func boardAreaToLayoutRect(a *App) layout.Rect {
	c := a.contentArea()
	return layout.Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// titleBar builds the collapsing title line from the tree's current
// path and running space-freed total.
func (a *App) titleBar() ui.TitleBar {
	path := a.Tree.CurrentPath()
	base := a.Tree.BasePath()
	freed := a.Tree.SpaceFreed()
	left := []ui.CollapsingCell{
		{
			ui.CellSizeOpt{Content: fmt.Sprintf("space freed: %s", ui.DisplaySize(freed))},
			ui.CellSizeOpt{Content: ui.DisplaySize(freed)},
		},
	}
	right := []ui.CollapsingCell{
		{
			ui.CellSizeOpt{Content: path},
			ui.CellSizeOpt{Content: base},
		},
	}
	return ui.TitleBar{
		LeftSide:         left,
		RightSide:        right,
		Loading:          !a.Loaded,
		LoadingIndicator: a.Effects.LoadingProgressIndicator,
		PathError:        a.Effects.CurrentPathIsRed,
		SizeFlash:        a.Effects.FlashSpaceFreed,
	}
}

func (a *App) deleteTarget() ui.DeleteTarget {
	snap := a.Mode.FileToDelete
	return ui.DeleteTarget{
		FullPath:       snap.FullPath(),
		Name:           snap.Name(),
		Type:           snap.Type,
		NumDescendants: snap.NumDescendants,
	}
}

// Render draws the whole screen at the dimensions last reported to
// HandleResize: title row, the treemap grid, the bottom help line, and
// whatever modal the current mode calls for. The title is a single
// collapsing row rather than a bordered multi-row widget, since the
// grid tiles below it already carry their own box-drawn borders (see
// DESIGN.md).
func (a *App) Render(screen ui.Screen) {
	if a.Mode.Kind == ModeScreenTooSmall {
		screen.Clear()
		ui.DrawScreenTooSmall(screen, fullArea(a.width, a.height))
		screen.Show()
		return
	}

	selectedIndex := -1
	if a.Board.SelectedIndex != nil {
		selectedIndex = *a.Board.SelectedIndex
	}

	screen.Clear()
	a.titleBar().Render(screen, layout.Rect{X: 0, Y: 0, Width: a.width, Height: 1})
	ui.DrawGrid(screen, boardAreaToLayoutRect(a), a.Board.Tiles, selectedIndex, a.Board.SmallFilesRect)
	ui.DrawBottomLine(screen, fullArea(a.width, a.height), !a.Loaded)

	switch a.Mode.Kind {
	case ModeDeleteFile:
		ui.DrawMessageBox(screen, fullArea(a.width, a.height), a.deleteTarget(), a.Effects.DeletionInProgress)
	case ModeConfirming:
		ui.DrawConfirmBox(screen, fullArea(a.width, a.height), "Exit?")
	case ModeErrorMessage:
		ui.DrawErrorBox(screen, fullArea(a.width, a.height), a.Mode.Message)
	case ModeWarningMessage:
		ui.DrawWarningBox(screen, fullArea(a.width, a.height), []string{a.Mode.Message})
	}

	screen.Show()
}
