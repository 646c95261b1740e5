package tree

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func addFile(t *testing.T, ft *FileTree, rel string, size uint64) {
	t.Helper()
	if err := ft.AddEntry(filepath.Join(ft.BasePath(), rel), false, size); err != nil {
		t.Fatalf("AddEntry(%q): %v", rel, err)
	}
}

func addDir(t *testing.T, ft *FileTree, rel string) {
	t.Helper()
	if err := ft.AddEntry(filepath.Join(ft.BasePath(), rel), true, 0); err != nil {
		t.Fatalf("AddEntry(%q): %v", rel, err)
	}
}

// checkInvariant walks the whole tree verifying that a Folder's size is
// the sum of its direct children's sizes, and its num_descendants is the
// sum of 1 per child plus each Folder child's own num_descendants.
func checkInvariant(t *testing.T, n *Node) {
	t.Helper()
	if !n.IsFolder() {
		return
	}
	var wantSize, wantDescendants uint64
	for _, child := range n.Children {
		wantSize += child.Size
		wantDescendants++
		if child.IsFolder() {
			wantDescendants += child.NumDescendants
			checkInvariant(t, child)
		}
	}
	if n.Size != wantSize {
		t.Errorf("folder %q: size = %d, want %d", n.Name, n.Size, wantSize)
	}
	if n.NumDescendants != wantDescendants {
		t.Errorf("folder %q: num_descendants = %d, want %d", n.Name, n.NumDescendants, wantDescendants)
	}
}

func TestAddEntryMaintainsSizeAndDescendantInvariant(t *testing.T) {
	ft := New("/scan/root")
	addDir(t, ft, "a")
	addFile(t, ft, "a/one.txt", 10)
	addFile(t, ft, "a/two.txt", 20)
	addDir(t, ft, "a/b")
	addFile(t, ft, "a/b/three.txt", 30)
	addFile(t, ft, "top.txt", 5)

	checkInvariant(t, ft.root)

	if got, want := ft.TotalSize(), uint64(65); got != want {
		t.Fatalf("TotalSize() = %d, want %d", got, want)
	}
	// root descendants: a, a/one.txt, a/two.txt, a/b, a/b/three.txt, top.txt = 6
	if got, want := ft.TotalDescendants(), uint64(6); got != want {
		t.Fatalf("TotalDescendants() = %d, want %d", got, want)
	}
}

func TestEnterLeaveFolderRoundTrip(t *testing.T) {
	ft := New("/scan/root")
	addDir(t, ft, "a")
	addDir(t, ft, "a/b")
	addFile(t, ft, "a/b/c.txt", 1)

	if !ft.EnterFolder("a") {
		t.Fatalf("EnterFolder(a) failed")
	}
	if !ft.EnterFolder("b") {
		t.Fatalf("EnterFolder(b) failed")
	}
	if got, want := ft.CurrentPath(), filepath.Join("/scan/root", "a", "b"); got != want {
		t.Fatalf("CurrentPath() = %q, want %q", got, want)
	}
	if _, ok := ft.ItemInCurrentFolder("c.txt"); !ok {
		t.Fatalf("expected c.txt in current folder")
	}

	if !ft.LeaveFolder() {
		t.Fatalf("LeaveFolder() failed")
	}
	if !ft.LeaveFolder() {
		t.Fatalf("LeaveFolder() failed")
	}
	if ft.LeaveFolder() {
		t.Fatalf("LeaveFolder() at root should fail")
	}
	if got, want := ft.CurrentPath(), "/scan/root"; got != want {
		t.Fatalf("CurrentPath() = %q, want %q", got, want)
	}
}

func TestEnterFolderRejectsFileAndUnknownName(t *testing.T) {
	ft := New("/scan/root")
	addFile(t, ft, "leaf.txt", 1)

	if ft.EnterFolder("leaf.txt") {
		t.Fatalf("EnterFolder on a file should fail")
	}
	if ft.EnterFolder("missing") {
		t.Fatalf("EnterFolder on an unknown name should fail")
	}
}

func TestDeleteFileUpdatesAncestorsAndSpaceFreed(t *testing.T) {
	ft := New("/scan/root")
	addDir(t, ft, "a")
	addFile(t, ft, "a/one.txt", 10)
	addFile(t, ft, "a/two.txt", 20)

	if !ft.EnterFolder("a") {
		t.Fatalf("EnterFolder(a) failed")
	}
	removed, err := ft.DeleteFile("one.txt")
	if err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if removed != 10 {
		t.Fatalf("DeleteFile returned %d, want 10", removed)
	}
	ft.AddSpaceFreed(removed)

	if got, want := ft.TotalSize(), uint64(20); got != want {
		t.Fatalf("TotalSize() after delete = %d, want %d", got, want)
	}
	if got, want := ft.SpaceFreed(), uint64(10); got != want {
		t.Fatalf("SpaceFreed() = %d, want %d", got, want)
	}
	if _, ok := ft.ItemInCurrentFolder("one.txt"); ok {
		t.Fatalf("one.txt should have been removed")
	}
	checkInvariant(t, ft.root)
}

func TestDeleteFileRemovesWholeFolderSubtree(t *testing.T) {
	ft := New("/scan/root")
	addDir(t, ft, "a")
	addFile(t, ft, "a/one.txt", 10)
	addFile(t, ft, "a/two.txt", 20)
	addFile(t, ft, "top.txt", 1)

	removed, err := ft.DeleteFile("a")
	if err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if removed != 30 {
		t.Fatalf("DeleteFile returned %d, want 30", removed)
	}
	if got, want := ft.TotalSize(), uint64(1); got != want {
		t.Fatalf("TotalSize() after delete = %d, want %d", got, want)
	}
	if got, want := ft.TotalDescendants(), uint64(1); got != want {
		t.Fatalf("TotalDescendants() after delete = %d, want %d", got, want)
	}
	checkInvariant(t, ft.root)
}

func TestDeleteFileUnknownNameReturnsError(t *testing.T) {
	ft := New("/scan/root")
	if _, err := ft.DeleteFile("missing"); err == nil {
		t.Fatalf("expected error deleting unknown name")
	}
}

func TestMetadataForFolderSortsDescendingByPercentage(t *testing.T) {
	ft := New("/scan/root")
	addFile(t, ft, "small.txt", 10)
	addFile(t, ft, "big.txt", 90)
	addDir(t, ft, "sub")

	meta := MetadataForFolder(ft.GetCurrentFolder())
	if len(meta) != 3 {
		t.Fatalf("len(meta) = %d, want 3", len(meta))
	}
	if meta[0].Name != "big.txt" {
		t.Fatalf("meta[0].Name = %q, want big.txt", meta[0].Name)
	}
	if meta[0].Percentage <= meta[1].Percentage {
		t.Fatalf("expected descending percentage order, got %v then %v", meta[0], meta[1])
	}
	var total float64
	for _, m := range meta {
		total += m.Percentage
	}
	if total < 0.999 || total > 1.001 {
		t.Fatalf("percentages should sum to 1, got %f", total)
	}
}

func TestMetadataForFolderZeroSizeGivesEqualShare(t *testing.T) {
	ft := New("/scan/root")
	addDir(t, ft, "empty1")
	addDir(t, ft, "empty2")

	got := MetadataForFolder(ft.GetCurrentFolder())
	want := []FileMetadata{
		{Name: "empty1", Size: 0, Descendants: 0, Percentage: 0.5, Type: TypeFolder},
		{Name: "empty2", Size: 0, Descendants: 0, Percentage: 0.5, Type: TypeFolder},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("MetadataForFolder() mismatch (-want +got):\n%s", diff)
	}
}
