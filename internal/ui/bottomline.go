package ui

import (
	"github.com/r3ap3r2004/dutree/internal/layout"
)

// DrawBottomLine renders the small-files legend glyph and a help line
// that degrades from the full keybinding list down to "(...)" as the
// terminal narrows. loading suppresses the delete hint, since Backspace
// only warns while a scan is still running.
func DrawBottomLine(screen Screen, area layout.Rect, loading bool) {
	legendY := area.Y + area.Height - 2
	screen.SetContent(area.X+1, legendY, 'x', nil, styleSmallFiles)
	SetString(screen, area.X+3, legendY, "= Small files", styleDefault)

	var long, short string
	if loading {
		long = "<hjkl> or <arrow keys> - move around, <ENTER> - enter folder, <ESC> - parent folder"
		short = "←↓↑→/<ENTER>/<ESC>: navigate"
	} else {
		long = "<hjkl> or <arrow keys> - move around, <ENTER> - enter folder, <ESC> - parent folder, <Backspace> - delete"
		short = "←↓↑→/<ENTER>/<ESC>: navigate, <Backspace>: del"
	}
	const tooSmall = "(...)"

	helpY := area.Y + area.Height - 1
	switch {
	case area.Width >= len([]rune(long)):
		SetString(screen, area.X+1, helpY, long, styleDefault)
	case area.Width >= len([]rune(short)):
		SetString(screen, area.X+1, helpY, short, styleDefault)
	default:
		SetString(screen, area.X+1, helpY, tooSmall, styleDefault)
	}
}
