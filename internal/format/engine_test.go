package format

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestItemLayoutThermalTruncation(t *testing.T) {
	cfg := DefaultConfig(Thermal80, StyleCompact)
	engine := NewEngine(cfg)

	name := "Triple Shot Caramel Macchiato with Oat Milk"
	layout := engine.ItemLayout(name)

	if !layout.Truncated {
		t.Fatal("overlong thermal item name must be marked truncated")
	}
	if !strings.HasSuffix(layout.DisplayName, "...") {
		t.Errorf("display name %q must end in ellipsis", layout.DisplayName)
	}
	if len(layout.Lines) != 1 {
		t.Errorf("thermal layout must be exactly one line, got %d", len(layout.Lines))
	}

	budget := float64(cfg.CharsPerLine) * 0.45
	if float64(utf8.RuneCountInString(layout.DisplayName)) > budget {
		t.Errorf("display name %q exceeds item column budget %v", layout.DisplayName, budget)
	}
}

func TestItemLayoutThermalShortName(t *testing.T) {
	engine := NewEngine(DefaultConfig(Thermal80, StyleCompact))
	layout := engine.ItemLayout("Tea")
	if layout.Truncated || layout.DisplayName != "Tea" {
		t.Errorf("short name must pass through unchanged: %+v", layout)
	}
	if !reflect.DeepEqual(layout.Lines, []string{"Tea"}) {
		t.Errorf("lines = %v, want [Tea]", layout.Lines)
	}
}

func TestItemLayoutPaperWrapping(t *testing.T) {
	cfg := DefaultConfig(A4, StyleClassic)
	engine := NewEngine(cfg)

	name := strings.Repeat("Premium Organic Colombian Coffee Beans ", 4)
	layout := engine.ItemLayout(name)

	if len(layout.Lines) > cfg.MaxLinesPerItem {
		t.Fatalf("got %d lines, max is %d", len(layout.Lines), cfg.MaxLinesPerItem)
	}
	if !layout.Truncated {
		t.Error("wrapped name over the line cap must be marked truncated")
	}
	if !strings.HasSuffix(layout.Lines[len(layout.Lines)-1], "...") {
		t.Errorf("final line %q must carry the ellipsis", layout.Lines[len(layout.Lines)-1])
	}
}

func TestItemLayoutNoWordBoundaries(t *testing.T) {
	// A name longer than the wrap budget with no spaces must still terminate
	// and respect the line cap.
	cfg := DefaultConfig(A4, StyleClassic)
	engine := NewEngine(cfg)

	name := strings.Repeat("x", 200)
	layout := engine.ItemLayout(name)

	if len(layout.Lines) == 0 || len(layout.Lines) > cfg.MaxLinesPerItem {
		t.Errorf("got %d lines for boundary-less name, max is %d",
			len(layout.Lines), cfg.MaxLinesPerItem)
	}
}

func TestItemLayoutWrapDisabled(t *testing.T) {
	cfg := DefaultConfig(A4, StyleClassic)
	cfg.WrapItemNames = false
	engine := NewEngine(cfg)

	name := strings.Repeat("long name ", 12)
	layout := engine.ItemLayout(name)
	if layout.Truncated || len(layout.Lines) != 1 || layout.Lines[0] != name {
		t.Errorf("wrap-disabled layout must be a single unmodified line: %+v", layout)
	}
}

func TestQRLayout(t *testing.T) {
	tests := []struct {
		size      BillSize
		style     LayoutStyle
		requested int
		count     int
		arrange   string
	}{
		{Thermal80, StyleCompact, 3, 1, "vertical"},
		{A4, StyleClassic, 1, 1, "horizontal"},
		{A4, StyleClassic, 2, 2, "horizontal"},
		{A4, StyleClassic, 5, 2, "horizontal"},
		{A3, StyleDetailed, 3, 3, "grid"},
		{Letter, StyleClassic, 4, 3, "grid"},
	}
	for _, tt := range tests {
		engine := NewEngine(DefaultConfig(tt.size, tt.style))
		got := engine.QRLayout(tt.requested)
		if got.Count != tt.count || got.Arrangement != tt.arrange {
			t.Errorf("%s/%s QRLayout(%d) = {count: %d, %s}, want {count: %d, %s}",
				tt.size, tt.style, tt.requested, got.Count, got.Arrangement, tt.count, tt.arrange)
		}
		if got.Arrangement == "grid" {
			if got.Rows != 2 || got.Cols != 2 {
				t.Errorf("grid layout must be 2x2, got %dx%d", got.Rows, got.Cols)
			}
			want := DefaultConfig(tt.size, tt.style).QRSizeMM * 0.8
			if got.SizeMM != want {
				t.Errorf("grid QR size = %v, want %v", got.SizeMM, want)
			}
		}
	}
}

func TestNeedsPaginationThermalNever(t *testing.T) {
	for _, size := range ThermalSizes() {
		engine := NewEngine(DefaultConfig(size, StyleCompact))
		for _, h := range []float64{0, 100, 10000, 1e9} {
			if engine.NeedsPagination(h) {
				t.Errorf("%s: continuous format must never paginate (height %v)", size, h)
			}
		}
	}
}

func TestNeedsPaginationPaperThreshold(t *testing.T) {
	cfg := DefaultConfig(A4, StyleClassic)
	engine := NewEngine(cfg)

	threshold := cfg.PrintableHeightMM() * cfg.PageBreakThreshold
	if engine.NeedsPagination(threshold - 1) {
		t.Error("content under the threshold must fit on one page")
	}
	if !engine.NeedsPagination(threshold + 1) {
		t.Error("content over the threshold must paginate")
	}
}

func TestPageBreaksExplicitBatchSize(t *testing.T) {
	engine := NewEngine(DefaultConfig(A5, StyleClassic))

	items := make([]string, 40)
	for i := range items {
		items[i] = string(rune('a' + i%26))
	}

	pages := PageBreaks(engine, items, 7)

	if want := 6; len(pages) != want { // ceil(40/7)
		t.Fatalf("got %d pages, want %d", len(pages), want)
	}
	for i, page := range pages[:len(pages)-1] {
		if len(page) != 7 {
			t.Errorf("page %d has %d items, want 7", i, len(page))
		}
	}
	if len(pages[len(pages)-1]) != 5 {
		t.Errorf("last page has %d items, want 5", len(pages[len(pages)-1]))
	}

	var flat []string
	for _, page := range pages {
		flat = append(flat, page...)
	}
	if !reflect.DeepEqual(flat, items) {
		t.Error("concatenated pages must reproduce the original item order")
	}
}

func TestPageBreaksSingleBatchWhenFits(t *testing.T) {
	engine := NewEngine(DefaultConfig(A4, StyleClassic))
	items := []string{"Coffee", "Sandwich", "Cake"}
	pages := PageBreaks(engine, items, 0)
	if len(pages) != 1 || !reflect.DeepEqual(pages[0], items) {
		t.Errorf("small order must stay on one page, got %d pages", len(pages))
	}
}

func TestPageBreaksScenario(t *testing.T) {
	// Receipt scenario: three items through an 80mm roll stay in one batch.
	thermal := NewEngine(DefaultConfig(Thermal80, StyleCompact))
	receipt := []string{"Coffee", "Sandwich", "Cake"}
	if h := thermal.EstimateContentHeight(len(receipt), false, false); thermal.NeedsPagination(h) {
		t.Error("thermal receipt must not paginate")
	}
	if pages := PageBreaks(thermal, receipt, 0); len(pages) != 1 {
		t.Errorf("thermal receipt split into %d batches, want 1", len(pages))
	}

	// A long A5 order must split across pages with a derived batch size.
	a5 := NewEngine(DefaultConfig(A5, StyleClassic))
	long := make([]string, 40)
	for i := range long {
		long[i] = "Repeated Item"
	}
	pages := PageBreaks(a5, long, 0)
	if len(pages) < 2 {
		t.Fatalf("40 items on A5 must need more than one page, got %d", len(pages))
	}
	total := 0
	for _, p := range pages {
		total += len(p)
	}
	if total != len(long) {
		t.Errorf("pages hold %d items, want %d", total, len(long))
	}
}

func TestEstimateContentHeightHints(t *testing.T) {
	cfg := DefaultConfig(A4, StyleClassic)
	engine := NewEngine(cfg)

	base := engine.EstimateContentHeight(5, false, false)
	withQR := engine.EstimateContentHeight(5, true, false)
	withLogo := engine.EstimateContentHeight(5, false, true)

	if withQR != base+cfg.QRSizeMM+10 {
		t.Errorf("QR block adds %v, want %v", withQR-base, cfg.QRSizeMM+10)
	}
	if withLogo != base+cfg.LogoMaxHeightMM+5 {
		t.Errorf("logo block adds %v, want %v", withLogo-base, cfg.LogoMaxHeightMM+5)
	}

	// Each extra item costs one paper row.
	if diff := engine.EstimateContentHeight(6, false, false) - base; diff != 7 {
		t.Errorf("per-item height delta = %v, want 7", diff)
	}
}

func TestEngineDeterminism(t *testing.T) {
	engine := NewEngine(DefaultConfig(A4, StyleClassic))
	name := "Premium Organic Colombian Coffee Beans Whole Roast"
	if !reflect.DeepEqual(engine.ItemLayout(name), engine.ItemLayout(name)) {
		t.Error("ItemLayout must be a pure function of its input")
	}
}
