package ui

// Box-drawing junction runes used to merge adjacent tile borders.
const (
	topRight      = '┐'
	vertical      = '│'
	horizontal    = '─'
	topLeft       = '┌'
	bottomRight   = '┘'
	bottomLeft    = '└'
	verticalLeft  = '┤'
	verticalRight = '├'
	horizontalDn  = '┬'
	horizontalUp  = '┴'
	cross         = '┼'
)

// junctions lists every (a, b) -> combined rune rule from
// draw_next_symbol.rs's combine_symbols match. combineSymbols tries both
// orderings so the table only needs to carry each pair once.
var junctions = map[[2]rune]rune{
	{topRight, topRight}:      topRight,
	{topRight, vertical}:      verticalLeft,
	{topRight, horizontal}:    horizontalDn,
	{topRight, topLeft}:       horizontalDn,
	{topRight, bottomRight}:   verticalLeft,
	{topRight, bottomLeft}:    cross,
	{topRight, verticalLeft}:  verticalLeft,
	{topRight, verticalRight}: cross,
	{topRight, horizontalDn}:  horizontalDn,
	{topRight, horizontalUp}:  cross,
	{topRight, cross}:         cross,

	{horizontal, horizontal}:    horizontal,
	{horizontal, vertical}:      cross,
	{horizontal, topLeft}:       horizontalDn,
	{horizontal, bottomRight}:   horizontalUp,
	{horizontal, bottomLeft}:    horizontalUp,
	{horizontal, verticalLeft}:  cross,
	{horizontal, verticalRight}: cross,
	{horizontal, horizontalDn}:  horizontalDn,
	{horizontal, horizontalUp}:  horizontalUp,
	{horizontal, cross}:         cross,

	{vertical, vertical}:      vertical,
	{vertical, topLeft}:       verticalRight,
	{vertical, bottomRight}:   verticalLeft,
	{vertical, bottomLeft}:    verticalRight,
	{vertical, verticalLeft}:  verticalLeft,
	{vertical, verticalRight}: verticalRight,
	{vertical, horizontalDn}:  cross,
	{vertical, horizontalUp}:  cross,
	{vertical, cross}:         cross,

	{topLeft, topLeft}:       topLeft,
	{topLeft, bottomRight}:   cross,
	{topLeft, bottomLeft}:    verticalRight,
	{topLeft, verticalLeft}:  cross,
	{topLeft, verticalRight}: verticalRight,
	{topLeft, horizontalDn}:  horizontalDn,
	{topLeft, horizontalUp}:  cross,
	{topLeft, cross}:         cross,

	{bottomRight, bottomRight}:   bottomRight,
	{bottomRight, bottomLeft}:    horizontalUp,
	{bottomRight, verticalLeft}:  verticalLeft,
	{bottomRight, verticalRight}: cross,
	{bottomRight, horizontalDn}:  cross,
	{bottomRight, horizontalUp}:  horizontalUp,
	{bottomRight, cross}:         cross,

	{bottomLeft, bottomLeft}:    bottomLeft,
	{bottomLeft, verticalLeft}:  cross,
	{bottomLeft, verticalRight}: verticalRight,
	{bottomLeft, horizontalDn}:  cross,
	{bottomLeft, horizontalUp}:  horizontalUp,
	{bottomLeft, cross}:         cross,

	{verticalLeft, verticalLeft}:  verticalLeft,
	{verticalLeft, verticalRight}: cross,
	{verticalLeft, horizontalDn}:  cross,
	{verticalLeft, horizontalUp}:  horizontalUp,
	{verticalLeft, cross}:         cross,

	{verticalRight, verticalRight}: verticalRight,
	{verticalRight, horizontalDn}:  cross,
	{verticalRight, horizontalUp}:  cross,
	{verticalRight, cross}:         cross,

	{horizontalDn, horizontalDn}: horizontalDn,
	{horizontalDn, horizontalUp}: cross,
	{horizontalDn, cross}:        cross,

	{horizontalUp, horizontalUp}: horizontalUp,
	{horizontalUp, cross}:        cross,

	{cross, cross}: cross,
}

func combineSymbols(a, b rune) (rune, bool) {
	if r, ok := junctions[[2]rune{a, b}]; ok {
		return r, true
	}
	if r, ok := junctions[[2]rune{b, a}]; ok {
		return r, true
	}
	return 0, false
}

// drawNextSymbol writes symbol at (x, y), combining it with whatever
// boundary rune is already there (so two adjacent tile borders merge
// into a single junction character) instead of overwriting it outright.
func drawNextSymbol(screen Screen, x, y int, symbol rune) {
	existing, _, style, _ := screen.GetContent(x, y)
	if combined, ok := combineSymbols(existing, symbol); ok {
		screen.SetContent(x, y, combined, nil, style)
		return
	}
	screen.SetContent(x, y, symbol, nil, style)
}
