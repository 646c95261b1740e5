package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplaySize renders a byte count with one decimal place at the K/M/G
// scale it naturally falls into.
func DisplaySize(bytes uint64) string {
	v := float64(bytes)
	switch {
	case v > 999_999_999:
		return fmt.Sprintf("%.1fG", v/1_000_000_000)
	case v > 999_999:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v > 999:
		return fmt.Sprintf("%.1fK", v/1000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// DisplaySizeRounded is DisplaySize with no decimal place, used as a
// fallback when a tile is too narrow for the one-decimal form.
func DisplaySizeRounded(bytes uint64) string {
	v := float64(bytes)
	switch {
	case v > 999_999_999:
		return fmt.Sprintf("%.0fG", v/1_000_000_000)
	case v > 999_999:
		return fmt.Sprintf("%.0fM", v/1_000_000)
	case v > 999:
		return fmt.Sprintf("%.0fK", v/1000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// truncateToWidth returns the longest prefix of s whose display width
// (go-runewidth, so wide CJK runes count as 2) does not exceed width.
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String()
}

// truncateToWidthFromEnd is truncateToWidth scanning from the back,
// used to build the tail half of a truncate-middle result.
func truncateToWidthFromEnd(s string, width int) string {
	runes := []rune(s)
	var b strings.Builder
	w := 0
	start := len(runes)
	for i := len(runes) - 1; i >= 0; i-- {
		rw := runewidth.RuneWidth(runes[i])
		if w+rw > width {
			break
		}
		w += rw
		start = i
	}
	b.WriteString(string(runes[start:]))
	return b.String()
}

// TruncateMiddle shortens row to maxLength display columns by keeping its
// head and tail and replacing the middle with "[..]" (or "[...]" when
// maxLength is odd), unicode-width aware so CJK text never splits a
// double-width rune.
func TruncateMiddle(row string, maxLength int) string {
	if maxLength < 6 {
		return truncateToWidth(row, maxLength)
	}
	if runewidth.StringWidth(row) <= maxLength {
		return row
	}
	splitPoint := maxLength/2 - 2
	first := truncateToWidth(row, splitPoint)
	last := truncateToWidthFromEnd(row, splitPoint)
	if maxLength%2 == 0 {
		return first + "[..]" + last
	}
	return first + "[...]" + last
}

// TruncateEnd shortens row to maxLength runes, replacing any overflow
// with a trailing "...".
func TruncateEnd(row string, maxLength int) string {
	runes := []rune(row)
	if len(runes) <= maxLength {
		return row
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}
