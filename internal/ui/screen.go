// Package ui renders App state onto a character-cell screen: the tile
// grid with its box-drawing borders, the collapsing title bar, the
// bottom help line, and the modal overlays.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the subset of tcell.Screen's contract the renderer needs,
// satisfied directly by any tcell.Screen and by fakes in tests. Named here
// rather than depending on the concrete type so internal/ui never needs
// a live terminal to be unit tested.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	GetContent(x, y int) (mainc rune, combc []rune, style tcell.Style, width int)
	Clear()
	Show()
	HideCursor()
}

// SetString writes text onto screen starting at (x, y) with style,
// one rune per cell, mirroring tui::buffer::Buffer::set_string.
func SetString(screen Screen, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}
