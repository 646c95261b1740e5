// Package layout implements the squarified treemap packer: it takes the
// weighted FileMetadata list for a folder and a bounded area, and produces
// non-overlapping integer-coordinate Tiles that fill it.
package layout

import "github.com/r3ap3r2004/dutree/internal/tree"

// MinWidth and MinHeight are the smallest tile dimensions the renderer can
// draw a bordered box with readable text inside. The asymmetry mirrors a
// terminal cell being roughly HeightWidthRatio times taller than it is
// wide.
const (
	MinWidth  = 8
	MinHeight = 2

	// HeightWidthRatio corrects for non-square terminal cells when
	// comparing a row's long side against the orthogonal minimum.
	HeightWidthRatio = 2.5
)

// RectF is a floating-point rectangle used during layout so that rounding
// to integer cells happens exactly once, at the end.
type RectF struct {
	X, Y, Width, Height float64
}

// Area returns the rectangle's area.
func (r RectF) Area() float64 { return r.Width * r.Height }

// round converts a RectF to integer cell coordinates, fixing up the
// off-by-one gaps that plain truncation would leave between adjacent
// tiles.
func (r RectF) round() Tile {
	roundedX := roundHalfAwayFromZero(r.X)
	roundedY := roundHalfAwayFromZero(r.Y)
	tile := Tile{
		X:      int(roundedX),
		Y:      int(roundedY),
		Width:  int(roundHalfAwayFromZero((r.X - roundedX) + r.Width)),
		Height: int(roundHalfAwayFromZero((r.Y - roundedY) + r.Height)),
	}
	if int(roundHalfAwayFromZero(r.X+r.Width)) > tile.X+tile.Width {
		tile.Width++
	}
	if int(roundHalfAwayFromZero(r.Y+r.Height)) > tile.Y+tile.Height {
		tile.Height++
	}
	return tile
}

func roundHalfAwayFromZero(v float64) float64 {
	if v >= 0 {
		return float64(int(v + 0.5))
	}
	return float64(int(v - 0.5))
}

// Tile is a laid-out, integer-coordinate rectangle carrying the metadata
// of the file or folder it represents.
type Tile struct {
	X, Y, Width, Height int
	Name                string
	Size                uint64
	Descendants         uint64
	HasDescendants      bool
	Percentage          float64
	Type                tree.FileType
}

func newTile(r RectF, m tree.FileMetadata) Tile {
	t := r.round()
	t.Name = m.Name
	t.Size = m.Size
	t.Percentage = m.Percentage
	t.Type = m.Type
	if m.Type == tree.TypeFolder {
		t.Descendants = m.Descendants
		t.HasDescendants = true
	}
	return t
}

// IsDirectlyRightOf reports whether t sits immediately to the right of
// other with no gap.
func (t Tile) IsDirectlyRightOf(other Tile) bool { return t.X == other.X+other.Width }

// IsDirectlyLeftOf reports whether t sits immediately to the left of
// other with no gap.
func (t Tile) IsDirectlyLeftOf(other Tile) bool { return t.X+t.Width == other.X }

// IsDirectlyBelow reports whether t sits immediately below other with no
// gap.
func (t Tile) IsDirectlyBelow(other Tile) bool { return t.Y == other.Y+other.Height }

// IsDirectlyAbove reports whether t sits immediately above other with no
// gap.
func (t Tile) IsDirectlyAbove(other Tile) bool { return t.Y+t.Height == other.Y }

// IsRightOf reports whether t starts at or past other's right edge.
func (t Tile) IsRightOf(other Tile) bool { return t.X >= other.X+other.Width }

// IsLeftOf reports whether t ends at or before other's left edge.
func (t Tile) IsLeftOf(other Tile) bool { return t.X+t.Width <= other.X }

// IsBelow reports whether t starts at or past other's bottom edge.
func (t Tile) IsBelow(other Tile) bool { return t.Y >= other.Y+other.Height }

// IsAbove reports whether t ends at or before other's top edge.
func (t Tile) IsAbove(other Tile) bool { return t.Y+t.Height <= other.Y }

// HorizontallyOverlapsWith reports whether t and other share any vertical
// (row) range — used when scanning left/right for navigation candidates.
func (t Tile) HorizontallyOverlapsWith(other Tile) bool {
	return (t.Y >= other.Y && t.Y <= other.Y+other.Height) ||
		(t.Y+t.Height <= other.Y+other.Height && t.Y+t.Height > other.Y) ||
		(t.Y <= other.Y && t.Y+t.Height >= other.Y+other.Height) ||
		(other.Y <= t.Y && other.Y+other.Height >= t.Y+t.Height)
}

// VerticallyOverlapsWith reports whether t and other share any horizontal
// (column) range — used when scanning up/down for navigation candidates.
func (t Tile) VerticallyOverlapsWith(other Tile) bool {
	return (t.X >= other.X && t.X <= other.X+other.Width) ||
		(t.X+t.Width <= other.X+other.Width && t.X+t.Width > other.X) ||
		(t.X <= other.X && t.X+t.Width >= other.X+other.Width) ||
		(other.X <= t.X && other.X+other.Width >= t.X+t.Width)
}

// GetVerticalOverlapWith returns the width of the horizontal range shared
// between t and other, used to break ties among equally-aligned
// candidates during navigation.
func (t Tile) GetVerticalOverlapWith(other Tile) int {
	if t.X < other.X {
		if t.X+t.Width >= other.X+other.Width {
			return other.Width
		}
		return t.X + t.Width - other.X
	}
	if other.X+other.Width >= t.X+t.Width {
		return t.Width
	}
	return other.X + other.Width - t.X
}

// GetHorizontalOverlapWith returns the height of the vertical range shared
// between t and other, the up/down analog of GetVerticalOverlapWith.
func (t Tile) GetHorizontalOverlapWith(other Tile) int {
	if t.Y < other.Y {
		if t.Y+t.Height >= other.Y+other.Height {
			return other.Height
		}
		return t.Y + t.Height - other.Y
	}
	if other.Y+other.Height >= t.Y+t.Height {
		return t.Height
	}
	return other.Y + other.Height - t.Y
}

// IsAlignedLeftWith reports whether t and other share a left edge.
func (t Tile) IsAlignedLeftWith(other Tile) bool { return t.X == other.X }

// IsAlignedRightWith reports whether t and other share a right edge.
func (t Tile) IsAlignedRightWith(other Tile) bool { return t.X+t.Width == other.X+other.Width }

// IsAlignedTopWith reports whether t and other share a top edge.
func (t Tile) IsAlignedTopWith(other Tile) bool { return t.Y == other.Y }

// IsAlignedBottomWith reports whether t and other share a bottom edge.
func (t Tile) IsAlignedBottomWith(other Tile) bool { return t.Y+t.Height == other.Y+other.Height }

// AtLeastMinimumSize reports whether the tile meets the minimum rendering
// dimensions.
func (t Tile) AtLeastMinimumSize() bool {
	return t.Height >= MinHeight && t.Width >= MinWidth
}
