package format

import (
	"strings"
	"unicode/utf8"
)

// Thermal text helpers for continuous-feed monospace rendering. All widths
// are character counts (runes), never bytes: a currency glyph like Rs or a
// multi-byte symbol costs exactly one unit of the line budget.

// OptimizeForThermal fits text into width characters, appending an ellipsis
// when there is room for one and hard-truncating otherwise.
func OptimizeForThermal(text string, width int) string {
	if utf8.RuneCountInString(text) <= width {
		return text
	}
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if width > 3 {
		return string(runes[:width-3]) + "..."
	}
	return string(runes[:width])
}

// FormatThermalLine lays out a left and right field on one line of exactly
// width characters. When the fields alone overflow, the remaining space
// (after reserving three characters for overflow indication) is split 60/40
// between them and each is truncated independently; at least one space always
// separates the two fields.
func FormatThermalLine(left, right string, width int) string {
	padding := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if padding < 0 {
		available := width - 3
		leftChars := int(float64(available) * 0.6)
		rightChars := available - leftChars
		left = OptimizeForThermal(left, leftChars)
		right = OptimizeForThermal(right, rightChars)
		padding = width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	}
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}

// ThermalSeparator returns char repeated exactly width times.
func ThermalSeparator(width int, char rune) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(char), width)
}

// CenterText centers text within width using leading spaces. Centering is
// left-biased under odd remainders; overlong text is truncated instead.
func CenterText(text string, width int) string {
	length := utf8.RuneCountInString(text)
	if length >= width {
		return OptimizeForThermal(text, width)
	}
	return strings.Repeat(" ", (width-length)/2) + text
}
