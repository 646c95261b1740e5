package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/r3ap3r2004/dutree/internal/layout"
)

// CellSizeOpt is one candidate rendering of a title-bar cell at a given
// collapse level.
type CellSizeOpt struct {
	Content string
	Style   *tcell.Style
}

// CollapsingCell is a cell's alternatives from most to least detailed;
// TitleBar.Render tries shorter combinations across all cells together
// until one combination fits the available width.
type CollapsingCell []CellSizeOpt

func cellAt(cell CollapsingCell, index int) CellSizeOpt {
	if index < len(cell) {
		return cell[index]
	}
	return cell[len(cell)-1]
}

// TitleBar is the collapsing title line: a left side (space freed) and a
// right side (current path / base path), separated by " | ", with an
// optional "comet" loading animation. SizeFlash highlights the left
// side; PathError paints the right side red.
type TitleBar struct {
	LeftSide         []CollapsingCell
	RightSide        []CollapsingCell
	Loading          bool
	LoadingIndicator uint64
	PathError        bool
	SizeFlash        bool
}

func maxCellLen(cells []CollapsingCell) int {
	max := 0
	for _, c := range cells {
		if len(c) > max {
			max = len(c)
		}
	}
	return max
}

// Render draws the title bar into area, one rune-cell row, trying
// progressively shorter combinations of its cells until one fits;
// failing that, it truncates the last right-side cell to fit.
func (tb TitleBar) Render(screen Screen, area layout.Rect) {
	highest := maxCellLen(tb.LeftSide)
	if r := maxCellLen(tb.RightSide); r > highest {
		highest = r
	}
	for i := 0; i < highest; i++ {
		if tb.lineLen(i) < area.Width {
			tb.renderLine(screen, area, i, false)
			return
		}
	}
	tb.renderLine(screen, area, highest, true)
}

func (tb TitleBar) lineLen(index int) int {
	total := 3 // " | "
	for _, c := range tb.LeftSide {
		total += len(cellAt(c, index).Content)
	}
	for _, c := range tb.RightSide {
		total += len(cellAt(c, index).Content)
	}
	return total
}

func (tb TitleBar) leftStyle(opt CellSizeOpt) tcell.Style {
	if tb.SizeFlash {
		return tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
	}
	if opt.Style != nil {
		return *opt.Style
	}
	return styleDefault
}

func (tb TitleBar) rightStyle(opt CellSizeOpt) tcell.Style {
	if tb.PathError {
		return tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorWhite)
	}
	if opt.Style != nil {
		return *opt.Style
	}
	return styleDefault
}

func (tb TitleBar) renderLine(screen Screen, area layout.Rect, index int, truncate bool) {
	pos := area.X + 1
	for _, c := range tb.LeftSide {
		opt := cellAt(c, index)
		SetString(screen, pos, area.Y, opt.Content, tb.leftStyle(opt))
		pos += len([]rune(opt.Content))
	}
	SetString(screen, pos, area.Y, " | ", styleDefault.Foreground(tcell.ColorWhite))
	pos += 3

	if !truncate {
		for _, c := range tb.RightSide {
			opt := cellAt(c, index)
			SetString(screen, pos, area.Y, opt.Content, tb.rightStyle(opt))
			pos += len([]rune(opt.Content))
		}
	} else {
		remaining := len(tb.RightSide)
		for i, c := range tb.RightSide {
			opt := cellAt(c, index)
			budget := area.Width - 1 - pos
			partsLeft := remaining - i
			if partsLeft > 1 {
				budget /= partsLeft
			}
			truncated := TruncateMiddle(opt.Content, budget)
			SetString(screen, pos, area.Y, truncated, tb.rightStyle(opt))
			pos += len([]rune(truncated))
		}
	}

	if tb.Loading {
		tb.drawLoadingChars(screen, area, pos-(area.X+1))
	}
}

// drawLoadingChars bolds a "comet" that sweeps across textLength cells
// of the rendered title; its head sits at LoadingIndicator modulo
// textLength, so it moves as far per tick as the indicator advances.
func (tb TitleBar) drawLoadingChars(screen Screen, area layout.Rect, textLength int) {
	if textLength <= 0 {
		return
	}
	index := int(tb.LoadingIndicator % uint64(textLength))
	boldAt := func(x int) {
		r, comb, style, _ := screen.GetContent(x, area.Y)
		screen.SetContent(x, area.Y, r, comb, style.Bold(true))
	}
	boldAt(area.X + 1 + index)
	if index >= textLength-2 {
		boldAt(area.X + 1)
		boldAt(area.X + 2)
	} else {
		boldAt(area.X + 1 + index + 1)
		boldAt(area.X + 1 + index + 2)
	}
}
