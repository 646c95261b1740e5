// Package board owns the laid-out tiles for the folder currently being
// viewed, the selected tile index, and the spatial navigation rules used
// to move the selection in response to arrow/hjkl input.
package board

import (
	"github.com/r3ap3r2004/dutree/internal/layout"
	"github.com/r3ap3r2004/dutree/internal/tree"
)

// Area is the rendering region available to the grid, in character cells.
type Area struct {
	X, Y, Width, Height int
}

// Board holds the tiles squarified from the current folder's contents
// plus which one (if any) is selected.
type Board struct {
	Tiles          []layout.Tile
	SmallFilesRect *layout.Rect
	SelectedIndex  *int

	area   *Area
	folder *tree.Node
}

// New builds a Board for folder with no area set yet; Fill happens once
// ChangeArea is called with a non-empty region.
func New(folder *tree.Node) *Board {
	return &Board{folder: folder}
}

// ChangeFiles re-derives metadata from folder (e.g. after EnterFolder,
// LeaveFolder, or a delete) and re-squarifies against the current area.
// Always clears the selection.
func (b *Board) ChangeFiles(folder *tree.Node) {
	b.folder = folder
	b.ResetSelection()
	b.fill()
}

// ChangeArea updates the available rendering region, repacking and
// clearing the selection on a genuinely new rectangle; a no-op if the
// area is unchanged. The App layer is responsible for the narrower
// case where selection should survive a temporary dip below the
// renderable minimum size.
func (b *Board) ChangeArea(area Area) {
	if b.area != nil && *b.area == area {
		return
	}
	b.area = &area
	b.ResetSelection()
	b.fill()
}

func (b *Board) fill() {
	if b.area == nil || b.folder == nil {
		return
	}
	metadata := tree.MetadataForFolder(b.folder)
	rect := layout.RectF{
		X:      float64(b.area.X),
		Y:      float64(b.area.Y),
		Width:  float64(b.area.Width),
		Height: float64(b.area.Height),
	}
	b.Tiles, b.SmallFilesRect = layout.Squarify(metadata, rect)
	b.clampSelection()
}

// clampSelection drops a selection that no longer has a backing tile
// (e.g. the selected entry was deleted out from under it).
func (b *Board) clampSelection() {
	if b.SelectedIndex == nil {
		return
	}
	if *b.SelectedIndex >= len(b.Tiles) {
		b.SelectedIndex = nil
	}
}

// HasSelection reports whether a tile is currently selected.
func (b *Board) HasSelection() bool {
	return b.SelectedIndex != nil
}

// ResetSelection clears the current selection.
func (b *Board) ResetSelection() {
	b.SelectedIndex = nil
}

// CurrentlySelected returns the selected tile, or nil if none is
// selected.
func (b *Board) CurrentlySelected() *layout.Tile {
	if b.SelectedIndex == nil || *b.SelectedIndex >= len(b.Tiles) {
		return nil
	}
	return &b.Tiles[*b.SelectedIndex]
}

func (b *Board) setSelected(index int) {
	b.SelectedIndex = &index
}

// selectFirstIfNone selects tile 0 when nothing is selected yet and at
// least one tile exists, matching the original's "any arrow key with no
// selection lands on the first tile" behavior.
func (b *Board) selectFirstIfNone() bool {
	if b.SelectedIndex != nil {
		return false
	}
	if len(b.Tiles) > 0 {
		b.setSelected(0)
	}
	return true
}

// MoveSelectedRight moves the selection to the best right-hand candidate
// tile. Ties among aligned candidates are broken by largest overlap with
// the currently-selected tile.
func (b *Board) MoveSelectedRight() {
	if b.selectFirstIfNone() {
		return
	}
	current := b.Tiles[*b.SelectedIndex]
	best := -1
	for i, candidate := range b.Tiles {
		if !candidate.AtLeastMinimumSize() || !candidate.IsRightOf(current) || !candidate.HorizontallyOverlapsWith(current) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		existing := b.Tiles[best]
		if existing.IsAlignedLeftWith(candidate) {
			if existing.GetHorizontalOverlapWith(current) < candidate.GetHorizontalOverlapWith(current) {
				best = i
			}
		} else if candidate.X < existing.X {
			best = i
		}
	}
	if best != -1 {
		b.setSelected(best)
	}
}

// MoveSelectedLeft is the mirror of MoveSelectedRight.
func (b *Board) MoveSelectedLeft() {
	if b.selectFirstIfNone() {
		return
	}
	current := b.Tiles[*b.SelectedIndex]
	best := -1
	for i, candidate := range b.Tiles {
		if !candidate.AtLeastMinimumSize() || !candidate.IsLeftOf(current) || !candidate.HorizontallyOverlapsWith(current) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		existing := b.Tiles[best]
		if existing.IsAlignedRightWith(candidate) {
			if existing.GetHorizontalOverlapWith(current) < candidate.GetHorizontalOverlapWith(current) {
				best = i
			}
		} else if candidate.X+candidate.Width > existing.X+existing.Width {
			best = i
		}
	}
	if best != -1 {
		b.setSelected(best)
	}
}

// MoveSelectedDown moves the selection to the best candidate tile below
// the current one.
func (b *Board) MoveSelectedDown() {
	if b.selectFirstIfNone() {
		return
	}
	current := b.Tiles[*b.SelectedIndex]
	best := -1
	for i, candidate := range b.Tiles {
		if !candidate.AtLeastMinimumSize() || !candidate.IsBelow(current) || !candidate.VerticallyOverlapsWith(current) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		existing := b.Tiles[best]
		if existing.IsAlignedTopWith(candidate) {
			if existing.GetVerticalOverlapWith(current) < candidate.GetVerticalOverlapWith(current) {
				best = i
			}
		} else if candidate.Y < existing.Y {
			best = i
		}
	}
	if best != -1 {
		b.setSelected(best)
	}
}

// MoveSelectedUp is the mirror of MoveSelectedDown.
func (b *Board) MoveSelectedUp() {
	if b.selectFirstIfNone() {
		return
	}
	current := b.Tiles[*b.SelectedIndex]
	best := -1
	for i, candidate := range b.Tiles {
		if !candidate.AtLeastMinimumSize() || !candidate.IsAbove(current) || !candidate.VerticallyOverlapsWith(current) {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		existing := b.Tiles[best]
		if existing.IsAlignedBottomWith(candidate) {
			if existing.GetVerticalOverlapWith(current) < candidate.GetVerticalOverlapWith(current) {
				best = i
			}
		} else if candidate.Y+candidate.Height > existing.Y+existing.Height {
			best = i
		}
	}
	if best != -1 {
		b.setSelected(best)
	}
}
