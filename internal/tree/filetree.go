package tree

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when a lookup or delete targets a name that does
// not exist in the current folder.
var ErrNotFound = errors.New("tree: not found")

// ErrNotFolder is returned when a path component resolves to a File where
// a Folder was required.
var ErrNotFolder = errors.New("tree: not a folder")

// FileTree wraps the root Folder plus the path stack identifying the
// folder currently being viewed, and the running space_freed accumulator.
type FileTree struct {
	root       *Node
	pathStack  []string
	spaceFreed uint64
	basePath   string
}

// New creates an empty FileTree rooted at basePath (an absolute directory).
func New(basePath string) *FileTree {
	return &FileTree{
		root:     NewFolder(filepath.Base(basePath)),
		basePath: basePath,
	}
}

// BasePath returns the absolute path the tree was scanned from.
func (t *FileTree) BasePath() string { return t.basePath }

// SpaceFreed returns the running total of bytes reclaimed by deletes.
func (t *FileTree) SpaceFreed() uint64 { return t.spaceFreed }

// TotalSize returns the size of the whole scanned subtree (root size).
func (t *FileTree) TotalSize() uint64 { return t.root.Size }

// TotalDescendants returns the root's descendant count.
func (t *FileTree) TotalDescendants() uint64 { return t.root.NumDescendants }

// CurrentPath returns the absolute path of the folder currently being
// viewed: base path joined with every component of the path stack.
func (t *FileTree) CurrentPath() string {
	if len(t.pathStack) == 0 {
		return t.basePath
	}
	return filepath.Join(append([]string{t.basePath}, t.pathStack...)...)
}

// PathStack returns a copy of the current path stack (folder names from
// root down to the currently-viewed folder).
func (t *FileTree) PathStack() []string {
	out := make([]string, len(t.pathStack))
	copy(out, t.pathStack)
	return out
}

// relComponents splits an absolute path into components relative to the
// tree's base path.
func relComponents(basePath, absPath string) ([]string, error) {
	rel, err := filepath.Rel(basePath, absPath)
	if err != nil {
		return nil, fmt.Errorf("tree: could not relativize %q against %q: %w", absPath, basePath, err)
	}
	if rel == "." || rel == "" {
		return nil, nil
	}
	return strings.Split(rel, string(filepath.Separator)), nil
}

// AddEntry installs a scanned filesystem entry (a file or an empty
// directory placeholder) into the tree and incrementally updates size and
// num_descendants on every strict ancestor. absPath is the entry's
// absolute path; size is ignored for directories.
func (t *FileTree) AddEntry(absPath string, isDir bool, size uint64) error {
	components, err := relComponents(t.basePath, absPath)
	if err != nil {
		return err
	}
	if len(components) == 0 {
		return nil // the scan root itself, not a child entry
	}

	node := t.root
	for _, name := range components[:len(components)-1] {
		child, ok := node.Children[name]
		if !ok || !child.IsFolder() {
			child = NewFolder(name)
			node.Children[name] = child
		}
		node.Size += size
		node.NumDescendants++
		node = child
	}

	leafName := components[len(components)-1]
	node.Size += size
	node.NumDescendants++
	if isDir {
		if _, exists := node.Children[leafName]; !exists {
			node.Children[leafName] = NewFolder(leafName)
		}
	} else {
		node.Children[leafName] = NewFile(leafName, size)
	}
	return nil
}

// GetCurrentFolder resolves the path stack to a Folder node. A failure
// here means the path stack was built from something other than
// successful EnterFolder calls, so it must always resolve — it panics
// rather than return a zero value an unsuspecting caller could render.
func (t *FileTree) GetCurrentFolder() *Node {
	node := t.root
	for _, name := range t.pathStack {
		child, ok := node.Children[name]
		if !ok || !child.IsFolder() {
			panic(fmt.Sprintf("tree: invariant violation, could not resolve current folder at %q", name))
		}
		node = child
	}
	return node
}

// ItemInCurrentFolder looks up a single child of the current folder by
// name.
func (t *FileTree) ItemInCurrentFolder(name string) (*Node, bool) {
	child, ok := t.GetCurrentFolder().Children[name]
	return child, ok
}

// EnterFolder pushes name onto the path stack if it names a Folder in the
// current folder; otherwise it is a no-op and reports failure (PathError).
func (t *FileTree) EnterFolder(name string) bool {
	child, ok := t.ItemInCurrentFolder(name)
	if !ok || !child.IsFolder() {
		return false
	}
	t.pathStack = append(t.pathStack, name)
	return true
}

// LeaveFolder pops one element from the path stack and reports whether a
// pop happened; false at root signals the caller to raise a PathError.
func (t *FileTree) LeaveFolder() bool {
	if len(t.pathStack) == 0 {
		return false
	}
	t.pathStack = t.pathStack[:len(t.pathStack)-1]
	return true
}

// DeleteFile removes the named child of the current folder, subtracting
// its size and descendant count from every ancestor up to the root.
// Returns the size of the removed entry so callers can accumulate
// space_freed from the pre-delete snapshot rather than racing the
// mutation.
func (t *FileTree) DeleteFile(name string) (uint64, error) {
	current := t.GetCurrentFolder()
	child, ok := current.Children[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	removedSize := child.Size
	removedDescendants := uint64(1)
	if child.IsFolder() {
		removedDescendants += child.NumDescendants
	}

	node := t.root
	node.Size -= removedSize
	node.NumDescendants -= removedDescendants
	for _, component := range t.pathStack {
		node = node.Children[component]
		node.Size -= removedSize
		node.NumDescendants -= removedDescendants
	}
	delete(current.Children, name)
	return removedSize, nil
}

// AddSpaceFreed accumulates bytes reclaimed by a completed delete. The
// accumulator only ever grows.
func (t *FileTree) AddSpaceFreed(size uint64) {
	t.spaceFreed += size
}

// FileMetadata is a flat tile descriptor derived from a folder's direct
// children, never mutated in place.
type FileMetadata struct {
	Name        string
	Size        uint64
	Descendants uint64 // only meaningful when Type == TypeFolder
	Percentage  float64
	Type        FileType
}

// MetadataForFolder derives the descending-by-percentage FileMetadata list
// for a folder's direct children: ties are broken by name ascending, and a
// folder whose total size is 0 gives every child an equal share so the
// degenerate case still renders.
func MetadataForFolder(folder *Node) []FileMetadata {
	names := make([]string, 0, len(folder.Children))
	for name := range folder.Children {
		names = append(names, name)
	}
	sort.Strings(names)

	total := folder.Size
	out := make([]FileMetadata, 0, len(names))
	for _, name := range names {
		child := folder.Children[name]
		var percentage float64
		if total == 0 {
			percentage = 1.0 / float64(len(folder.Children))
		} else {
			percentage = float64(child.Size) / float64(total)
		}
		out = append(out, FileMetadata{
			Name:        name,
			Size:        child.Size,
			Descendants: child.NumDescendants,
			Percentage:  percentage,
			Type:        child.Type,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Percentage == out[j].Percentage {
			return out[i].Name < out[j].Name
		}
		return out[i].Percentage > out[j].Percentage
	})
	return out
}
