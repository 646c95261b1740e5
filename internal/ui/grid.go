package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/r3ap3r2004/dutree/internal/layout"
	"github.com/r3ap3r2004/dutree/internal/tree"
)

var (
	styleDefault     = tcell.StyleDefault
	styleFolderName  = styleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleFolderFill  = styleDefault.Background(tcell.ColorBlue)
	styleFolderSel1  = styleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true)
	styleFolderSel2  = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue)
	styleFileFill    = styleDefault.Background(tcell.ColorGray)
	styleFileSel     = styleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGray)
	styleSmallFiles  = styleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	styleEmptyFolder = styleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
)

// DrawGrid renders every tile in tiles (bordered box plus degrading text
// tiers) onto screen, highlighting selectedIndex if non-negative, and
// draws the small-files placeholder if present. An empty tile list draws
// the "Folder is empty" placeholder instead.
func DrawGrid(screen Screen, area layout.Rect, tiles []layout.Tile, selectedIndex int, smallFiles *layout.Rect) {
	if len(tiles) == 0 {
		drawEmptyFolder(screen, area)
		return
	}
	for i, tile := range tiles {
		drawTileText(screen, tile, i == selectedIndex)
		drawRect(screen, tile.X, tile.Y, tile.Width, tile.Height)
	}
	if smallFiles != nil {
		drawSmallFilesRect(screen, *smallFiles)
	}
}

func drawRect(screen Screen, x, y, width, height int) {
	for cx := x; cx <= x+width; cx++ {
		switch cx {
		case x:
			drawNextSymbol(screen, cx, y, topLeft)
			drawNextSymbol(screen, cx, y+height, bottomLeft)
		case x + width:
			drawNextSymbol(screen, cx, y, topRight)
			drawNextSymbol(screen, cx, y+height, bottomRight)
		default:
			drawNextSymbol(screen, cx, y, horizontal)
			drawNextSymbol(screen, cx, y+height, horizontal)
		}
	}
	for cy := y + 1; cy < y+height; cy++ {
		drawNextSymbol(screen, x, cy, vertical)
		drawNextSymbol(screen, x+width, cy, vertical)
	}
}

func drawSmallFilesRect(screen Screen, rect layout.Rect) {
	for x := rect.X + 1; x < rect.X+rect.Width; x++ {
		for y := rect.Y + 1; y < rect.Y+rect.Height; y++ {
			screen.SetContent(x, y, 'x', nil, styleSmallFiles)
		}
	}
	drawRect(screen, rect.X, rect.Y, rect.Width, rect.Height)
}

func drawEmptyFolder(screen Screen, area layout.Rect) {
	for x := area.X + 1; x < area.X+area.Width; x++ {
		for y := area.Y + 1; y < area.Y+area.Height; y++ {
			screen.SetContent(x, y, '█', nil, styleEmptyFolder)
		}
	}
	const text = "Folder is empty"
	startX := area.X + (area.Width-len(text)+1)/2
	SetString(screen, startX, area.Y+area.Height/2-1, text, styleDefault)
	drawRect(screen, area.X, area.Y, area.Width, area.Height)
}

func tileFirstLine(t layout.Tile, maxTextLength int) string {
	name := t.Name
	var filenameText string
	if t.Type == tree.TypeFolder {
		filenameText = name + "/"
	} else {
		filenameText = name
	}
	if t.Type != tree.TypeFolder {
		return TruncateMiddle(filenameText, maxTextLength)
	}

	longForm := fmt.Sprintf("%s (+%d descendants)", filenameText, t.Descendants)
	if len(longForm) <= maxTextLength {
		return longForm
	}
	shortForm := fmt.Sprintf("%s (+%d)", filenameText, t.Descendants)
	if len(shortForm) <= maxTextLength {
		return shortForm
	}
	return TruncateMiddle(filenameText, maxTextLength)
}

func tileSecondLine(t layout.Tile, maxTextLength int) string {
	size := DisplaySize(t.Size)
	sizeRounded := DisplaySizeRounded(t.Size)
	switch {
	case maxTextLength >= len(size)+7:
		return fmt.Sprintf("%s (%.0f%%)", size, t.Percentage*100)
	case maxTextLength > len(size):
		return size
	case maxTextLength > len(sizeRounded):
		return sizeRounded
	case maxTextLength > 6:
		return fmt.Sprintf("(%.0f%%)", t.Percentage*100)
	default:
		return fmt.Sprintf("%.0f%%", t.Percentage*100)
	}
}

func tileStyles(t layout.Tile, selected bool) (fill tcell.Style, hasFill bool, first, second tcell.Style) {
	switch {
	case selected && t.Type == tree.TypeFile:
		return styleFileFill, true, styleFileSel, styleFileSel
	case !selected && t.Type == tree.TypeFile:
		return styleDefault, false, styleDefault, styleDefault
	case selected && t.Type == tree.TypeFolder:
		return styleFolderFill, true, styleFolderSel1, styleFolderSel2
	default: // !selected && folder
		return styleDefault, false, styleFolderName, styleDefault
	}
}

func drawTileText(screen Screen, t layout.Tile, selected bool) {
	maxTextLength := 0
	if t.Width > 2 {
		maxTextLength = t.Width - 2
	}
	firstLine := tileFirstLine(t, maxTextLength)
	secondLine := tileSecondLine(t, maxTextLength)
	firstStart := t.X + (t.Width-len([]rune(firstLine))+1)/2
	secondStart := t.X + (t.Width-len([]rune(secondLine))+1)/2

	fill, hasFill, firstStyle, secondStyle := tileStyles(t, selected)
	if hasFill {
		for x := t.X + 1; x < t.X+t.Width; x++ {
			for y := t.Y + 1; y < t.Y+t.Height; y++ {
				screen.SetContent(x, y, '█', nil, fill)
			}
		}
	}

	switch {
	case t.Height > 5:
		lineGap := 2
		if t.Height%2 == 0 {
			lineGap = 1
		}
		SetString(screen, firstStart, t.Y+t.Height/2-1, firstLine, firstStyle)
		SetString(screen, secondStart, t.Y+t.Height/2+lineGap, secondLine, secondStyle)
	case t.Height == 5:
		SetString(screen, firstStart, t.Y+t.Height/2, firstLine, firstStyle)
		SetString(screen, secondStart, t.Y+t.Height/2+1, secondLine, secondStyle)
	case t.Height == 4:
		SetString(screen, firstStart, t.Y+1, firstLine, firstStyle)
		SetString(screen, secondStart, t.Y+3, secondLine, secondStyle)
	case t.Height > 2:
		SetString(screen, firstStart, t.Y+1, firstLine, firstStyle)
		SetString(screen, secondStart, t.Y+2, secondLine, secondStyle)
	default:
		SetString(screen, firstStart, t.Y+1, firstLine, firstStyle)
	}
}
