package board

import (
	"testing"

	"github.com/r3ap3r2004/dutree/internal/tree"
)

func buildFolder(t *testing.T) *tree.Node {
	t.Helper()
	ft := tree.New("/scan")
	add := func(rel string, isDir bool, size uint64) {
		t.Helper()
		if err := ft.AddEntry("/scan/"+rel, isDir, size); err != nil {
			t.Fatalf("AddEntry(%q): %v", rel, err)
		}
	}
	add("big.bin", false, 900)
	add("medium.bin", false, 300)
	add("small.bin", false, 100)
	return ft.GetCurrentFolder()
}

func TestBoardFillPopulatesTilesOnAreaChange(t *testing.T) {
	b := New(buildFolder(t))
	if len(b.Tiles) != 0 {
		t.Fatalf("expected no tiles before an area is set")
	}
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	if len(b.Tiles) == 0 {
		t.Fatalf("expected tiles after ChangeArea")
	}
}

func TestChangeAreaNoOpWhenUnchanged(t *testing.T) {
	b := New(buildFolder(t))
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	b.MoveSelectedRight()
	if !b.HasSelection() {
		t.Fatalf("expected a selection after MoveSelectedRight")
	}
	selected := *b.SelectedIndex
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	if !b.HasSelection() || *b.SelectedIndex != selected {
		t.Fatalf("expected selection to survive an unchanged ChangeArea call")
	}
}

func TestChangeAreaNewRectClearsSelection(t *testing.T) {
	b := New(buildFolder(t))
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	b.MoveSelectedRight()
	if !b.HasSelection() {
		t.Fatalf("expected a selection after MoveSelectedRight")
	}
	b.ChangeArea(Area{X: 0, Y: 0, Width: 100, Height: 30})
	if b.HasSelection() {
		t.Fatalf("expected selection cleared after a genuinely new area")
	}
}

func TestMoveSelectedRightThenLeftReturnsToStart(t *testing.T) {
	b := New(buildFolder(t))
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	b.MoveSelectedRight()
	if !b.HasSelection() {
		t.Skip("no selectable tile pair in this layout")
	}
	start := *b.SelectedIndex
	b.MoveSelectedRight()
	if *b.SelectedIndex == start {
		t.Skip("no second tile to the right in this layout")
	}
	b.MoveSelectedLeft()
	if *b.SelectedIndex != start {
		t.Fatalf("move_right then move_left should return to start: got %d, want %d", *b.SelectedIndex, start)
	}
}

func TestMoveSelectedNoCandidateLeavesSelectionUnchanged(t *testing.T) {
	b := New(buildFolder(t))
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	b.MoveSelectedRight()
	if !b.HasSelection() {
		t.Skip("no selectable tile in this layout")
	}
	// Move as far left as possible; moving left again must be a no-op.
	for i := 0; i < len(b.Tiles); i++ {
		b.MoveSelectedLeft()
	}
	before := *b.SelectedIndex
	b.MoveSelectedLeft()
	if *b.SelectedIndex != before {
		t.Fatalf("expected selection unchanged with no further left candidate")
	}
}

func TestMoveSelectedWithNoSelectionPicksFirstTile(t *testing.T) {
	b := New(buildFolder(t))
	b.ChangeArea(Area{X: 0, Y: 0, Width: 80, Height: 24})
	if b.HasSelection() {
		t.Fatalf("expected no selection immediately after ChangeArea")
	}
	b.MoveSelectedDown()
	if !b.HasSelection() || *b.SelectedIndex != 0 {
		t.Fatalf("expected first tile selected, got %v", b.SelectedIndex)
	}
}
