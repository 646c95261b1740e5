package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/r3ap3r2004/dutree/internal/layout"
	"github.com/r3ap3r2004/dutree/internal/tree"
)

// modalArea centers a min(150, area.Width/2) x 10 box in area.
func modalArea(area layout.Rect) layout.Rect {
	width := area.Width / 2
	if width > 150 {
		width = 150
	}
	height := 10
	x := (area.X+area.Width)/2 - width/2
	y := (area.Y+area.Height)/2 - height/2
	return layout.Rect{X: x, Y: y, Width: width, Height: height}
}

func drawFilledRect(screen Screen, style tcell.Style, r layout.Rect) {
	for x := r.X + 1; x < r.X+r.Width; x++ {
		for y := r.Y + 1; y < r.Y+r.Height; y++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
	drawRectStyled(screen, r, style)
}

func drawRectStyled(screen Screen, r layout.Rect, style tcell.Style) {
	for x := r.X; x <= r.X+r.Width; x++ {
		switch x {
		case r.X:
			screen.SetContent(x, r.Y, topLeft, nil, style)
			screen.SetContent(x, r.Y+r.Height, bottomLeft, nil, style)
		case r.X + r.Width:
			screen.SetContent(x, r.Y, topRight, nil, style)
			screen.SetContent(x, r.Y+r.Height, bottomRight, nil, style)
		default:
			screen.SetContent(x, r.Y, horizontal, nil, style)
			screen.SetContent(x, r.Y+r.Height, horizontal, nil, style)
		}
	}
	for y := r.Y + 1; y < r.Y+r.Height; y++ {
		screen.SetContent(r.X, y, vertical, nil, style)
		screen.SetContent(r.X+r.Width, y, vertical, nil, style)
	}
}

func centeredX(r layout.Rect, textLen int) int {
	return r.X + (r.Width-textLen+1)/2
}

// DrawConfirmBox renders a centered "<message>\n(y/n)" prompt, used for
// the exit confirmation.
func DrawConfirmBox(screen Screen, area layout.Rect, message string) {
	r := modalArea(area)
	style := styleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
	drawFilledRect(screen, style, r)

	maxLen := r.Width - 4
	text := TruncateMiddle(message, maxLen)
	SetString(screen, centeredX(r, len(text)), r.Y+r.Height/2-2, text, style)
	const ynLine = "(y/n)"
	SetString(screen, centeredX(r, len(ynLine)), r.Y+r.Height/2, ynLine, style)
}

// DrawErrorBox renders a red bold error message with an ESC-to-dismiss
// hint, degrading the hint text as space shrinks.
func DrawErrorBox(screen Screen, area layout.Rect, message string) {
	r := modalArea(area)
	style := styleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed).Bold(true)
	drawFilledRect(screen, style, r)

	maxLen := r.Width - 4
	text := TruncateEnd(message, maxLen)
	SetString(screen, centeredX(r, len([]rune(text))), r.Y+r.Height/2-2, text, style)

	for _, line := range []string{"(Press <ESC> to dismiss)", "(<ESC> to dismiss)"} {
		if maxLen >= len(line) {
			SetString(screen, centeredX(r, len(line)), r.Y+r.Height/2+2, line, style)
			break
		}
	}
}

// DrawWarningBox renders a yellow bold warning with an any-key-to-dismiss
// hint, picking the longest of a set of candidate messages that still
// fits.
func DrawWarningBox(screen Screen, area layout.Rect, candidates []string) {
	r := modalArea(area)
	style := styleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true)
	drawFilledRect(screen, style, r)

	maxLen := r.Width - 4
	text := candidates[0]
	for _, candidate := range candidates {
		if r.Width >= len(candidate)+5 {
			text = TruncateEnd(candidate, maxLen)
			break
		}
	}
	SetString(screen, centeredX(r, len(text)), r.Y+r.Height/2-2, text, style)

	for _, line := range []string{"(Press any key to dismiss)", "(any key to dismiss)"} {
		if maxLen >= len(line) {
			SetString(screen, centeredX(r, len(line)), r.Y+r.Height/2+2, line, style)
			break
		}
	}
}

// DeleteTarget is the minimal view MessageBox needs of a FileToDelete
// snapshot, kept in internal/ui so this package does not import
// internal/app.
type DeleteTarget struct {
	FullPath       string
	Name           string
	Type           tree.FileType
	NumDescendants uint64
}

func truncatedFileNameLine(target DeleteTarget, maxLen int) string {
	if maxLen > len(target.FullPath) {
		return target.FullPath
	}
	return TruncateMiddle(target.Name, maxLen)
}

// DrawMessageBox renders the delete confirmation ("Delete this file?" /
// "Delete folder with N children?") or, while deletionInProgress, the
// "Deleting / <path>" swap.
func DrawMessageBox(screen Screen, area layout.Rect, target DeleteTarget, deletionInProgress bool) {
	r := modalArea(area)
	style := styleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed).Bold(true)
	drawFilledRect(screen, style, r)

	maxLen := r.Width - 4
	nameLine := truncatedFileNameLine(target, maxLen)

	if deletionInProgress {
		const deletingLine = "Deleting"
		SetString(screen, centeredX(r, len(deletingLine)), r.Y+r.Height/2-1, deletingLine, style)
		SetString(screen, centeredX(r, len([]rune(nameLine))), r.Y+r.Height/2+1, nameLine, style)
		return
	}

	var question string
	switch target.Type {
	case tree.TypeFile:
		switch {
		case maxLen >= 17:
			question = "Delete this file?"
		default:
			question = "Delete?"
		}
	default:
		full := fmt.Sprintf("Delete folder with %d children?", target.NumDescendants)
		short := "Delete folder?"
		if maxLen >= len(full) {
			question = full
		} else {
			question = short
		}
	}
	SetString(screen, centeredX(r, len(question)), r.Y+r.Height/2-3, question, style)
	SetString(screen, centeredX(r, len([]rune(nameLine))), r.Y+r.Height/2, nameLine, style)
	const ynLine = "(y/n)"
	SetString(screen, centeredX(r, len(ynLine)), r.Y+r.Height/2+3, ynLine, style)
}

// DrawScreenTooSmall overlays the whole screen with a centered complaint,
// degrading the message as the terminal shrinks further.
func DrawScreenTooSmall(screen Screen, area layout.Rect) {
	lines := []string{
		`Terminal window is too small ¯\_(ツ)_/¯`,
		`Window too small ¯\_(ツ)_/¯`,
		`too small ¯\_(ツ)_/¯`,
		`¯\_(ツ)_/¯`,
		`!!!`,
	}
	for _, line := range lines {
		n := len([]rune(line))
		if area.Width >= n {
			style := styleDefault.Bold(true)
			SetString(screen, (area.X+area.Width)/2-n/2, area.Y+area.Height/2, line, style)
			return
		}
	}
}
