package layout

import "github.com/r3ap3r2004/dutree/internal/tree"

// Rect is a plain integer rectangle with no attached metadata, used to
// report the trailing unused area the packer could not fill with an
// individually-renderable tile (the "small files" bucket).
type Rect struct {
	X, Y, Width, Height int
}

// treemap holds the mutable state threaded through the recursive squarify
// algorithm: the tiles committed so far, the rectangle still free to pack
// into, and the fixed total size the percentages are scaled against.
type treemap struct {
	tiles          []Tile
	emptySpace     RectF
	totalSize      float64
	smallFilesRect *Rect
}

// Squarify packs metadata (already sorted descending by Percentage, as
// tree.MetadataForFolder produces) into area using the squarified
// treemap algorithm. Once no remaining item can clear the minimum tile
// size at the current orientation, every remaining item is still packed
// into one final degenerate row so each gets a tile; only whatever area
// that row leaves unconsumed is returned as smallFilesRect, for the
// renderer to draw a single hatched placeholder there.
func Squarify(metadata []tree.FileMetadata, area RectF) (tiles []Tile, smallFilesRect *Rect) {
	tm := &treemap{emptySpace: area, totalSize: area.Width * area.Height}
	tm.squarify(metadata, nil)
	return tm.tiles, tm.smallFilesRect
}

func (tm *treemap) layoutrow(row []tree.FileMetadata) {
	rowTotal := 0.0
	for _, m := range row {
		rowTotal += m.Percentage * tm.totalSize
	}
	if rowTotal == 0 {
		return
	}

	if tm.emptySpace.Width <= tm.emptySpace.Height*HeightWidthRatio {
		x := tm.emptySpace.X
		rowHeight := 0.0
		for _, m := range row {
			size := m.Percentage * tm.totalSize
			width := (size / rowTotal) * tm.emptySpace.Width
			relativeHeight := size / width
			height := rowHeight
			if relativeHeight > height {
				height = relativeHeight
			}
			rect := RectF{X: x, Y: tm.emptySpace.Y, Width: width, Height: height}
			x += width
			tm.tiles = append(tm.tiles, newTile(rect, m))
			if height > rowHeight {
				rowHeight = height
			}
		}
		tm.emptySpace.Height -= rowHeight
		tm.emptySpace.Y += rowHeight
	} else {
		y := tm.emptySpace.Y
		rowWidth := 0.0
		for _, m := range row {
			size := m.Percentage * tm.totalSize
			height := (size / rowTotal) * tm.emptySpace.Height
			relativeWidth := size / height
			width := rowWidth
			if relativeWidth > width {
				width = relativeWidth
			}
			rect := RectF{X: tm.emptySpace.X, Y: y, Width: width, Height: height}
			y += height
			tm.tiles = append(tm.tiles, newTile(rect, m))
			if width > rowWidth {
				rowWidth = width
			}
		}
		tm.emptySpace.Width -= rowWidth
		tm.emptySpace.X += rowWidth
	}
}

// worst returns the worst (smallest) aspect ratio across row if every item
// in it clears the minimum side thresholds at the candidate row length, or
// 0 if any item would not.
func (tm *treemap) worst(row []tree.FileMetadata, lengthOfRow, minFirstSide, minSecondSide float64) float64 {
	sum := 0.0
	for _, m := range row {
		sum += m.Percentage * tm.totalSize
	}
	if sum == 0 {
		return 0
	}
	worst := 0.0
	for _, m := range row {
		size := m.Percentage * tm.totalSize
		firstSide := (size / sum) * lengthOfRow
		if firstSide == 0 {
			return 0
		}
		secondSide := size / firstSide
		if firstSide < minFirstSide || secondSide < minSecondSide {
			return 0
		}
		ratio := firstSide / secondSide
		if ratio > 1 {
			ratio = secondSide / firstSide
		}
		if worst == 0 || ratio < worst {
			worst = ratio
		}
	}
	return worst
}

// hasRenderableItems reports whether at least one item in row could meet
// the minimum tile area at the current candidate thresholds.
func (tm *treemap) hasRenderableItems(row []tree.FileMetadata, minFirstSide, minSecondSide float64) bool {
	for _, m := range row {
		size := m.Percentage * tm.totalSize
		if minFirstSide*minSecondSide <= size {
			return true
		}
	}
	return false
}

func (tm *treemap) squarify(children, row []tree.FileMetadata) {
	var lengthOfRow, minFirstSide, minSecondSide float64
	if tm.emptySpace.Height*HeightWidthRatio < tm.emptySpace.Width {
		lengthOfRow = tm.emptySpace.Height * HeightWidthRatio
		minFirstSide = MinHeight * HeightWidthRatio
		minSecondSide = MinWidth / HeightWidthRatio
	} else {
		lengthOfRow = tm.emptySpace.Width / HeightWidthRatio
		minFirstSide = MinWidth / HeightWidthRatio
		minSecondSide = MinHeight * HeightWidthRatio
	}

	if len(children) == 0 {
		if len(row) != 0 {
			tm.layoutrow(row)
		}
		return
	}

	if !tm.hasRenderableItems(children, minFirstSide, minSecondSide) {
		if len(row) > 0 {
			tm.layoutrow(row)
		}
		// None of the remaining children can clear the minimum tile size at
		// the current row orientation. Rather than drop them, pack all of
		// them into one last row regardless of aspect ratio so every item
		// gets some tile; only the area that row doesn't consume is left
		// over for the small-files placeholder.
		tm.layoutrow(children)
		tm.commitSmallFilesRect()
		return
	}

	currentRowWorst := tm.worst(row, lengthOfRow, minFirstSide, minSecondSide)
	rowWithFirstChild := make([]tree.FileMetadata, 0, len(row)+1)
	rowWithFirstChild = append(rowWithFirstChild, row...)
	rowWithFirstChild = append(rowWithFirstChild, children[0])
	rowWithChildWorst := tm.worst(rowWithFirstChild, lengthOfRow, minFirstSide, minSecondSide)

	switch {
	case currentRowWorst != 0 && rowWithChildWorst == 0:
		tm.layoutrow(row)
		tm.squarify(children, nil)
	case len(row) == 1 || currentRowWorst <= rowWithChildWorst || currentRowWorst == 0:
		tm.squarify(children[1:], append(row, children[0]))
	default:
		tm.layoutrow(row)
		tm.squarify(children, nil)
	}
}

// commitSmallFilesRect records whatever rectangle remains free as the
// small-files placeholder, provided it still has positive area.
func (tm *treemap) commitSmallFilesRect() {
	if tm.emptySpace.Width <= 0 || tm.emptySpace.Height <= 0 {
		return
	}
	rounded := tm.emptySpace.round()
	if rounded.Width <= 0 || rounded.Height <= 0 {
		return
	}
	tm.smallFilesRect = &Rect{X: rounded.X, Y: rounded.Y, Width: rounded.Width, Height: rounded.Height}
}
