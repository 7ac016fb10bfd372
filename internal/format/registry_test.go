package format

import (
	"math"
	"reflect"
	"testing"
)

func TestDefaultConfigNeverRejectsItself(t *testing.T) {
	for _, size := range AllSizes() {
		for _, style := range AllStyles() {
			cfg := DefaultConfig(size, style)

			m := cfg.Margins
			if m.Top <= 0 || m.Right <= 0 || m.Bottom <= 0 || m.Left <= 0 {
				t.Errorf("%s/%s: non-positive margin %+v", size, style, m)
			}

			valid, errs := ValidateMargins(m, size.Category())
			if !valid {
				t.Errorf("%s/%s: registry emitted margins it rejects: %v", size, style, errs)
			}
		}
	}
}

func TestDefaultConfigCharsPerLine(t *testing.T) {
	for _, size := range AllSizes() {
		for _, style := range AllStyles() {
			cfg := DefaultConfig(size, style)
			if size.IsThermal() && cfg.CharsPerLine <= 0 {
				t.Errorf("%s/%s: thermal config must have positive chars per line, got %d",
					size, style, cfg.CharsPerLine)
			}
			if !size.IsThermal() && cfg.CharsPerLine != 0 {
				t.Errorf("%s/%s: paper config must have zero chars per line, got %d",
					size, style, cfg.CharsPerLine)
			}
		}
	}
}

func TestColumnWidthsSumToOne(t *testing.T) {
	for _, size := range AllSizes() {
		for _, style := range AllStyles() {
			cfg := DefaultConfig(size, style)
			sum := 0.0
			for _, w := range cfg.ColumnWidths {
				sum += w
			}
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("%s/%s: column widths sum to %v, want 1.0", size, style, sum)
			}
		}
	}
}

func TestDefaultConfigPerCategory(t *testing.T) {
	thermal := DefaultConfig(Thermal80, StyleCompact)
	if thermal.MaxQRCodes != 1 || thermal.QRSizeMM != 15 || thermal.LogoMaxHeightMM != 15 {
		t.Errorf("thermal QR/logo limits wrong: %+v", thermal)
	}
	if thermal.WrapItemNames || thermal.MaxLinesPerItem != 1 {
		t.Errorf("thermal must truncate, not wrap: %+v", thermal)
	}
	if thermal.Margins != (Margins{2, 2, 2, 2}) {
		t.Errorf("compact thermal margins = %+v, want minimal set", thermal.Margins)
	}

	a3 := DefaultConfig(A3, StyleClassic)
	if a3.MaxQRCodes != 3 || a3.QRSizeMM != 25 || a3.LogoMaxHeightMM != 30 {
		t.Errorf("A3 QR/logo limits wrong: %+v", a3)
	}

	a4 := DefaultConfig(A4, StyleClassic)
	if a4.MaxQRCodes != 2 || a4.QRSizeMM != 20 || !a4.WrapItemNames || a4.MaxLinesPerItem != 3 {
		t.Errorf("A4 classic config wrong: %+v", a4)
	}
	if a4.Margins != (Margins{12, 12, 12, 12}) {
		t.Errorf("A4 margins = %+v, want medium set", a4.Margins)
	}

	minimal := DefaultConfig(A4, StyleMinimal)
	if minimal.ShowBorders {
		t.Error("minimal style must not show borders")
	}
	if !a4.ShowBorders {
		t.Error("classic style must show borders")
	}
}

func TestFontScaling(t *testing.T) {
	a3 := DefaultConfig(A3, StyleClassic)
	if a3.Fonts.TitleSize != 19 { // 16 * 1.2, truncated
		t.Errorf("A3 title size = %d, want 19", a3.Fonts.TitleSize)
	}
	t58 := DefaultConfig(Thermal58, StyleCompact)
	if t58.Fonts.BaseSize != int(float64(10)*0.7) {
		t.Errorf("Thermal58 base size = %d, want %d", t58.Fonts.BaseSize, int(float64(10)*0.7))
	}
	a4 := DefaultConfig(A4, StyleClassic)
	if a4.Fonts.BaseSize != 10 || a4.Fonts.TitleSize != 16 {
		t.Errorf("A4 fonts must be unscaled: %+v", a4.Fonts)
	}
}

func TestValidateMarginsListsEverySide(t *testing.T) {
	valid, errs := ValidateMargins(Margins{Top: 1, Right: 10, Bottom: 2, Left: 0}, CategoryPaper)
	if valid {
		t.Fatal("margins below paper minimum must be invalid")
	}
	if len(errs) != 3 {
		t.Fatalf("want 3 failing sides reported, got %d: %v", len(errs), errs)
	}

	valid, errs = ValidateMargins(Margins{2, 2, 2, 2}, CategoryThermal)
	if !valid || len(errs) != 0 {
		t.Errorf("2mm margins are valid for thermal, got %v", errs)
	}

	valid, _ = ValidateMargins(Margins{2, 2, 2, 2}, CategoryPaper)
	if valid {
		t.Error("2mm margins are below paper minimum")
	}
}

func TestFindClosestSize(t *testing.T) {
	if got := FindClosestSize(210, 297, false); got != A4 {
		t.Errorf("FindClosestSize(210, 297) = %s, want A4", got)
	}

	got := FindClosestSize(78, 0, true)
	if got != Thermal76 && got != Thermal80 {
		t.Errorf("FindClosestSize(78, 0, thermal) = %s, want 76mm or 80mm roll", got)
	}

	if got := FindClosestSize(57, 0, true); got != Thermal57 {
		t.Errorf("FindClosestSize(57, 0, thermal) = %s, want THERMAL_57", got)
	}

	// Thermal candidates ignore height entirely.
	if got := FindClosestSize(80, 5000, true); got != Thermal80 {
		t.Errorf("continuous match must ignore height, got %s", got)
	}
}

func TestDefaultConfigDeterministic(t *testing.T) {
	a := DefaultConfig(A4, StyleClassic)
	b := DefaultConfig(A4, StyleClassic)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("DefaultConfig is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestSizeLists(t *testing.T) {
	all := AllSizes()
	if len(all) != len(PaperSizes())+len(ThermalSizes()) {
		t.Error("paper and thermal partitions must cover all sizes")
	}
	if len(ThermalSizes()) != 4 {
		t.Errorf("want 4 thermal sizes, got %d", len(ThermalSizes()))
	}
	for _, s := range ThermalSizes() {
		if !s.IsContinuous() {
			t.Errorf("%s: thermal sizes are continuous", s)
		}
		if s.HeightInches() != 0 {
			t.Errorf("%s: continuous size must report zero height", s)
		}
	}
	for _, s := range PaperSizes() {
		if s.IsContinuous() {
			t.Errorf("%s: paper sizes have fixed height", s)
		}
	}
}

func TestParseBillSize(t *testing.T) {
	got, err := ParseBillSize("THERMAL_80")
	if err != nil || got != Thermal80 {
		t.Errorf("ParseBillSize(THERMAL_80) = %v, %v", got, err)
	}
	if _, err := ParseBillSize("B7"); err == nil {
		t.Error("unknown size name must error")
	}
}
