package app

import (
	"os"
	"path/filepath"
	"testing"
)

// newLoadedApp builds an App over basePath, feeds it the given entries
// as if a scanner had walked them, marks loading complete, and sizes it
// to a roomy 190x50 terminal.
func newLoadedApp(t *testing.T, basePath string, entries []scanEntry) *App {
	t.Helper()
	a := New(basePath)
	for _, e := range entries {
		if err := a.Tree.AddEntry(filepath.Join(basePath, e.rel), e.isDir, e.size); err != nil {
			t.Fatalf("AddEntry(%q): %v", e.rel, err)
		}
	}
	a.HandleResize(190, 50)
	a.FinishLoading()
	a.RenderAndUpdateBoard()
	return a
}

type scanEntry struct {
	rel   string
	isDir bool
	size  uint64
}

// selectTileNamed finds the tile named name on the board and selects it
// directly, sidestepping the need to simulate however many arrow
// presses the squarified layout happens to require.
func selectTileNamed(t *testing.T, a *App, name string) {
	t.Helper()
	for i, tile := range a.Board.Tiles {
		if tile.Name == name {
			index := i
			a.Board.SelectedIndex = &index
			return
		}
	}
	t.Fatalf("no tile named %q on the board (tiles: %+v)", name, a.Board.Tiles)
}

func writeFile(t *testing.T, base, rel string, size int) {
	t.Helper()
	full := filepath.Join(base, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

// S1 — three files: board should show three tiles summing to ~100%.
func TestScenarioThreeFiles(t *testing.T) {
	base := t.TempDir()
	a := newLoadedApp(t, base, []scanEntry{
		{"file1", false, 4000},
		{"file2", false, 5000},
		{"file3", false, 5000},
	})

	if len(a.Board.Tiles) != 3 {
		t.Fatalf("want 3 tiles, got %d", len(a.Board.Tiles))
	}
	var total float64
	largestArea, largestIsFiveK := 0, false
	for _, tile := range a.Board.Tiles {
		total += tile.Percentage
		area := tile.Width * tile.Height
		if area > largestArea {
			largestArea = area
			largestIsFiveK = tile.Size == 5000
		}
	}
	if total < 0.99 || total > 1.01 {
		t.Fatalf("percentages sum to %.4f, want ~1.0", total)
	}
	if !largestIsFiveK {
		t.Fatalf("expected the largest tile to be one of the 5000-byte files")
	}
}

// S2 — enter folder: selecting subfolder1 and pressing Enter descends
// into it, leaving a single "file1" tile and a one-deeper path stack.
func TestScenarioEnterFolder(t *testing.T) {
	base := t.TempDir()
	a := newLoadedApp(t, base, []scanEntry{
		{"file2", false, 4000},
		{"file3", false, 4000},
		{"subfolder1", true, 0},
		{"subfolder1/file1", false, 8000},
	})

	selectTileNamed(t, a, "subfolder1")
	a.HandleKey(KeyEnter)

	if len(a.Tree.PathStack()) != 1 {
		t.Fatalf("path stack = %v, want 1 element", a.Tree.PathStack())
	}
	if len(a.Board.Tiles) != 1 || a.Board.Tiles[0].Name != "file1" {
		t.Fatalf("board tiles = %+v, want single file1 tile", a.Board.Tiles)
	}
}

// S3 — Enter on a file is a no-op: board and path stack are unchanged.
func TestScenarioEnterOnFileIsNoop(t *testing.T) {
	base := t.TempDir()
	a := newLoadedApp(t, base, []scanEntry{
		{"file1", false, 1000},
		{"file2", false, 1000},
		{"file3", false, 1000},
	})

	before := a.Tree.CurrentPath()
	beforeTiles := len(a.Board.Tiles)
	selectTileNamed(t, a, "file1")
	a.HandleKey(KeyEnter)

	if a.Tree.CurrentPath() != before {
		t.Fatalf("path changed from %q to %q", before, a.Tree.CurrentPath())
	}
	if len(a.Tree.PathStack()) != 0 {
		t.Fatalf("path stack = %v, want empty", a.Tree.PathStack())
	}
	if len(a.Board.Tiles) != beforeTiles {
		t.Fatalf("tile count changed from %d to %d", beforeTiles, len(a.Board.Tiles))
	}
}

// S4 — Esc at the root is a PathError: the path stack stays empty, mode
// stays Normal, and the red-flash effect fires.
func TestScenarioEscAtRootIsPathError(t *testing.T) {
	base := t.TempDir()
	a := newLoadedApp(t, base, []scanEntry{
		{"file1", false, 1000},
		{"file2", false, 1000},
		{"file3", false, 1000},
	})

	selectTileNamed(t, a, "file1")
	a.HandleKey(KeyEnter) // no folders present, this is a no-op; exercises Esc below regardless
	a.HandleKey(KeyEsc)
	a.Effects.CurrentPathIsRed = false // clear any flash from the first Esc, if it fired
	a.HandleKey(KeyEsc)

	if len(a.Tree.PathStack()) != 0 {
		t.Fatalf("path stack = %v, want empty", a.Tree.PathStack())
	}
	if a.Mode.Kind != ModeNormal {
		t.Fatalf("mode = %v, want Normal", a.Mode.Kind)
	}
	if !a.Effects.CurrentPathIsRed {
		t.Fatalf("expected the red-flash effect to be set after Esc at root")
	}
}

// S5 — delete file: file2 disappears from disk, root size decreases and
// space_freed grows by at least its size, subfolder1 untouched.
func TestScenarioDeleteFile(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "subfolder1/file1", 4000)
	writeFile(t, base, "file2", 4000)
	writeFile(t, base, "file3", 4000)

	a := newLoadedApp(t, base, []scanEntry{
		{"subfolder1", true, 0},
		{"subfolder1/file1", false, 4000},
		{"file2", false, 4000},
		{"file3", false, 4000},
	})
	sizeBefore := a.Tree.TotalSize()

	selectTileNamed(t, a, "file2")
	a.HandleKey(KeyBackspace)
	if a.Mode.Kind != ModeDeleteFile {
		t.Fatalf("mode = %v, want DeleteFile", a.Mode.Kind)
	}
	a.HandleKey(KeyRuneY)

	if _, err := os.Stat(filepath.Join(base, "file2")); !os.IsNotExist(err) {
		t.Fatalf("file2 still exists on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "subfolder1", "file1")); err != nil {
		t.Fatalf("subfolder1/file1 should be untouched: %v", err)
	}
	if sizeBefore-a.Tree.TotalSize() < 4000 {
		t.Fatalf("root size decremented by %d, want >= 4000", sizeBefore-a.Tree.TotalSize())
	}
	if a.Tree.SpaceFreed() < 4000 {
		t.Fatalf("space_freed = %d, want >= 4000", a.Tree.SpaceFreed())
	}
	if a.Mode.Kind != ModeNormal {
		t.Fatalf("mode = %v, want Normal after delete", a.Mode.Kind)
	}
}

// S6 — delete folder with multiple children: subfolder1 and its whole
// subtree vanish, siblings untouched, ancestor size drops by exactly
// the removed subtree's size.
func TestScenarioDeleteFolderWithDescendants(t *testing.T) {
	base := t.TempDir()
	writeFile(t, base, "file1", 16000)
	writeFile(t, base, "file2", 16000)
	writeFile(t, base, "subfolder1/file5", 4000)
	writeFile(t, base, "subfolder1/subfolder2/file3", 4000)
	writeFile(t, base, "subfolder1/subfolder2/file4", 4000)

	a := newLoadedApp(t, base, []scanEntry{
		{"file1", false, 16000},
		{"file2", false, 16000},
		{"subfolder1", true, 0},
		{"subfolder1/file5", false, 4000},
		{"subfolder1/subfolder2", true, 0},
		{"subfolder1/subfolder2/file3", false, 4000},
		{"subfolder1/subfolder2/file4", false, 4000},
	})
	sizeBefore := a.Tree.TotalSize()

	selectTileNamed(t, a, "subfolder1")
	a.HandleKey(KeyBackspace)
	a.HandleKey(KeyRuneY)

	if _, err := os.Stat(filepath.Join(base, "subfolder1")); !os.IsNotExist(err) {
		t.Fatalf("subfolder1 still exists on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "file1")); err != nil {
		t.Fatalf("file1 should be untouched: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "file2")); err != nil {
		t.Fatalf("file2 should be untouched: %v", err)
	}
	if sizeBefore-a.Tree.TotalSize() != 12000 {
		t.Fatalf("root size decremented by %d, want exactly 12000", sizeBefore-a.Tree.TotalSize())
	}
}

// S7 — delete during loading: Backspace triggers WarningMessage, not
// DeleteFile, and any key dismisses it to Normal, even though the scan
// never finished.
func TestScenarioDeleteDuringLoading(t *testing.T) {
	base := t.TempDir()
	a := New(base)
	if err := a.Tree.AddEntry(filepath.Join(base, "file1"), false, 4000); err != nil {
		t.Fatal(err)
	}
	a.HandleResize(190, 50)
	a.RenderAndUpdateBoard()

	if a.Mode.Kind != ModeLoading {
		t.Fatalf("mode = %v, want Loading", a.Mode.Kind)
	}
	a.HandleKey(KeyBackspace)
	if a.Mode.Kind != ModeWarningMessage {
		t.Fatalf("mode = %v, want WarningMessage", a.Mode.Kind)
	}
	a.HandleKey(KeyRuneQ) // "any key" dismisses
	if a.Mode.Kind != ModeNormal {
		t.Fatalf("mode = %v, want Normal after dismissing the warning", a.Mode.Kind)
	}
}

func TestNewStartsInLoadingMode(t *testing.T) {
	a := New(t.TempDir())
	if a.Mode.Kind != ModeLoading {
		t.Fatalf("mode = %v, want Loading", a.Mode.Kind)
	}
	if !a.Running {
		t.Fatalf("new App should be Running")
	}
}

func TestHandleResizeBelowMinimumEntersScreenTooSmall(t *testing.T) {
	a := newLoadedApp(t, t.TempDir(), []scanEntry{{"f", false, 1}})
	a.HandleResize(10, 4)
	if a.Mode.Kind != ModeScreenTooSmall {
		t.Fatalf("mode = %v, want ScreenTooSmall", a.Mode.Kind)
	}
	a.HandleResize(190, 50)
	if a.Mode.Kind != ModeNormal {
		t.Fatalf("mode = %v, want Normal restored after resize above minimum", a.Mode.Kind)
	}
}

func TestPromptFileDeletionNoopWithoutSelection(t *testing.T) {
	a := newLoadedApp(t, t.TempDir(), []scanEntry{{"f", false, 1}})
	a.Board.ResetSelection()
	a.PromptFileDeletion()
	if a.Mode.Kind != ModeNormal {
		t.Fatalf("mode = %v, want Normal (no-op with no selection)", a.Mode.Kind)
	}
}

func TestDeleteErrorTransitionsToErrorMessage(t *testing.T) {
	base := t.TempDir()
	a := newLoadedApp(t, base, []scanEntry{{"ghost", false, 1000}})
	// The scan recorded "ghost" but it was never actually written to disk,
	// so the filesystem removal in PerformDelete fails.
	selectTileNamed(t, a, "ghost")
	a.HandleKey(KeyBackspace)
	a.HandleKey(KeyRuneY)

	if a.Mode.Kind != ModeErrorMessage {
		t.Fatalf("mode = %v, want ErrorMessage after a failed delete", a.Mode.Kind)
	}
}
