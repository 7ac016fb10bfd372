package format

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestOptimizeForThermal(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a very long product name", 10, "a very ..."},
		{"abcdef", 3, "abc"}, // no room for an ellipsis
		{"abcdef", 0, ""},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := OptimizeForThermal(tt.text, tt.width); got != tt.want {
			t.Errorf("OptimizeForThermal(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestFormatThermalLineExactWidth(t *testing.T) {
	tests := []struct {
		left, right string
		width       int
	}{
		{"Subtotal:", "260.00", 32},
		{"Coffee x2", "100.00", 32},
		{"An extremely long item description", "9999999.99", 32},
		{"left", "right", 12},
		{strings.Repeat("a", 50), strings.Repeat("b", 50), 24},
	}
	for _, tt := range tests {
		got := FormatThermalLine(tt.left, tt.right, tt.width)
		if n := utf8.RuneCountInString(got); n != tt.width {
			t.Errorf("FormatThermalLine(%q, %q, %d) has width %d: %q",
				tt.left, tt.right, tt.width, n, got)
		}
	}
}

func TestFormatThermalLinePadding(t *testing.T) {
	got := FormatThermalLine("Total:", "306.80", 20)
	if got != "Total:        306.80" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(FormatThermalLine(strings.Repeat("x", 30), "1.00", 20), " ") {
		t.Error("a separating space must survive even under extreme truncation")
	}
}

func TestThermalWidthsAreRuneCounts(t *testing.T) {
	// Currency glyphs are multi-byte but must cost one character unit.
	line := FormatThermalLine("Total:", "₹306.80", 24)
	if n := utf8.RuneCountInString(line); n != 24 {
		t.Errorf("line with rupee glyph has rune width %d, want 24", n)
	}

	// 9 runes in 21 columns: (21-9)/2 = 6 leading spaces.
	centered := CenterText("€10 • ₹20", 21)
	if !strings.HasPrefix(centered, strings.Repeat(" ", 6)+"€") {
		t.Errorf("CenterText misplaced multi-byte text: %q", centered)
	}

	if got := OptimizeForThermal("₹₹₹₹₹₹", 5); utf8.RuneCountInString(got) != 5 {
		t.Errorf("truncation must cut runes, not bytes: %q", got)
	}
}

func TestThermalSeparator(t *testing.T) {
	if got := ThermalSeparator(32, '-'); got != strings.Repeat("-", 32) {
		t.Errorf("got %q", got)
	}
	if got := ThermalSeparator(5, '='); got != "=====" {
		t.Errorf("got %q", got)
	}
	if got := ThermalSeparator(0, '-'); got != "" {
		t.Errorf("zero width separator must be empty, got %q", got)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"HI", 10, "    HI"},
		{"ODD", 10, "   ODD"}, // left-biased under odd remainders
		{"WIDE ENOUGH ALREADY", 10, "WIDE EN..."},
		{"exact", 5, "exact"},
	}
	for _, tt := range tests {
		if got := CenterText(tt.text, tt.width); got != tt.want {
			t.Errorf("CenterText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
