package format

import "fmt"

// Category of physical output stock.
type Category string

const (
	CategoryPaper   Category = "paper"
	CategoryThermal Category = "thermal"
)

// BillSize identifies a supported physical output size. The set is closed;
// per-size data lives in the sizeSpecs table below. Declaration order matters:
// FindClosestSize breaks distance ties by first match in this order.
type BillSize int

const (
	A5 BillSize = iota
	A4
	A3
	HalfLetter
	Letter
	Legal
	Thermal57
	Thermal58
	Thermal76
	Thermal80
	QuarterLetter
	LongStrip
	CashReceipt
)

type sizeSpec struct {
	name        string
	displayName string
	widthMM     float64
	heightMM    float64 // 0 for continuous thermal rolls
	category    Category
}

var sizeSpecs = [...]sizeSpec{
	A5:            {"A5", "A5", 148, 210, CategoryPaper},
	A4:            {"A4", "A4", 210, 297, CategoryPaper},
	A3:            {"A3", "A3", 297, 420, CategoryPaper},
	HalfLetter:    {"HALF_LETTER", "Half Letter", 140, 216, CategoryPaper},
	Letter:        {"LETTER", "Letter", 216, 279, CategoryPaper},
	Legal:         {"LEGAL", "Legal", 216, 356, CategoryPaper},
	Thermal57:     {"THERMAL_57", "57mm Thermal", 57, 0, CategoryThermal},
	Thermal58:     {"THERMAL_58", "58mm Thermal", 58, 0, CategoryThermal},
	Thermal76:     {"THERMAL_76", "76mm Thermal", 76, 0, CategoryThermal},
	Thermal80:     {"THERMAL_80", "80mm Thermal", 80, 0, CategoryThermal},
	QuarterLetter: {"QUARTER_LETTER", "1/4-Letter Strip", 108, 216, CategoryPaper},
	LongStrip:     {"LONG_STRIP", "Long Strip", 70, 194, CategoryPaper},
	CashReceipt:   {"CASH_RECEIPT", "Cash Receipt", 109, 189, CategoryPaper},
}

func (s BillSize) valid() bool {
	return s >= 0 && int(s) < len(sizeSpecs)
}

func (s BillSize) String() string {
	if !s.valid() {
		return fmt.Sprintf("BillSize(%d)", int(s))
	}
	return sizeSpecs[s].name
}

// DisplayName returns the human-readable size name.
func (s BillSize) DisplayName() string { return sizeSpecs[s].displayName }

// WidthMM returns the stock width in millimeters.
func (s BillSize) WidthMM() float64 { return sizeSpecs[s].widthMM }

// HeightMM returns the stock height in millimeters, 0 for continuous rolls.
func (s BillSize) HeightMM() float64 { return sizeSpecs[s].heightMM }

func (s BillSize) WidthInches() float64 { return sizeSpecs[s].widthMM / 25.4 }

func (s BillSize) HeightInches() float64 {
	if sizeSpecs[s].heightMM <= 0 {
		return 0
	}
	return sizeSpecs[s].heightMM / 25.4
}

func (s BillSize) Category() Category { return sizeSpecs[s].category }

func (s BillSize) IsThermal() bool { return sizeSpecs[s].category == CategoryThermal }

// IsContinuous reports whether the size has unbounded height (thermal roll).
func (s BillSize) IsContinuous() bool { return sizeSpecs[s].heightMM == 0 }

// ParseBillSize resolves a size from its name (e.g. "A4", "THERMAL_80").
func ParseBillSize(name string) (BillSize, error) {
	for i, spec := range sizeSpecs {
		if spec.name == name {
			return BillSize(i), nil
		}
	}
	return 0, fmt.Errorf("unknown bill size %q", name)
}

// LayoutStyle is a presentation-density preset, orthogonal to physical size.
type LayoutStyle string

const (
	StyleClassic  LayoutStyle = "classic"
	StyleMinimal  LayoutStyle = "minimal"
	StyleCompact  LayoutStyle = "compact"
	StyleDetailed LayoutStyle = "detailed"
)

// AllStyles lists every layout style.
func AllStyles() []LayoutStyle {
	return []LayoutStyle{StyleClassic, StyleMinimal, StyleCompact, StyleDetailed}
}

// ParseLayoutStyle resolves a style from its name, defaulting to classic.
func ParseLayoutStyle(name string) LayoutStyle {
	switch LayoutStyle(name) {
	case StyleMinimal, StyleCompact, StyleDetailed:
		return LayoutStyle(name)
	default:
		return StyleClassic
	}
}

// Margins are the four page margins in millimeters.
type Margins struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

func (m Margins) HorizontalTotal() float64 { return m.Left + m.Right }

func (m Margins) VerticalTotal() float64 { return m.Top + m.Bottom }

// FontSettings holds point sizes per element plus the two font families.
type FontSettings struct {
	BaseSize   int    `json:"base_size"`
	TitleSize  int    `json:"title_size"`
	HeaderSize int    `json:"header_size"`
	ItemSize   int    `json:"item_size"`
	FooterSize int    `json:"footer_size"`
	MonoFont   string `json:"mono_font"`
	SansFont   string `json:"sans_font"`
}

// Scale returns a copy with every size multiplied by factor. Fonts are unchanged.
func (f FontSettings) Scale(factor float64) FontSettings {
	return FontSettings{
		BaseSize:   int(float64(f.BaseSize) * factor),
		TitleSize:  int(float64(f.TitleSize) * factor),
		HeaderSize: int(float64(f.HeaderSize) * factor),
		ItemSize:   int(float64(f.ItemSize) * factor),
		FooterSize: int(float64(f.FooterSize) * factor),
		MonoFont:   f.MonoFont,
		SansFont:   f.SansFont,
	}
}

// LayoutConfig is the fully-resolved configuration for one (size, style) pair.
// It is built once per render and never mutated afterwards.
type LayoutConfig struct {
	Size               BillSize           `json:"size"`
	Style              LayoutStyle        `json:"style"`
	Margins            Margins            `json:"margins"`
	Fonts              FontSettings       `json:"fonts"`
	CharsPerLine       int                `json:"chars_per_line"` // thermal only, else 0
	MaxQRCodes         int                `json:"max_qr_codes"`
	QRSizeMM           float64            `json:"qr_size_mm"`
	LogoMaxHeightMM    float64            `json:"logo_max_height_mm"`
	ShowBorders        bool               `json:"show_borders"`
	ColumnWidths       map[string]float64 `json:"column_widths"` // fractions summing to 1.0
	WrapItemNames      bool               `json:"wrap_item_names"`
	MaxLinesPerItem    int                `json:"max_lines_per_item"`
	PageBreakThreshold float64            `json:"page_break_threshold"`
}

// PrintableWidthMM is the stock width minus horizontal margins.
func (c LayoutConfig) PrintableWidthMM() float64 {
	return c.Size.WidthMM() - c.Margins.HorizontalTotal()
}

// PrintableHeightMM is the stock height minus vertical margins, 0 for
// continuous sizes.
func (c LayoutConfig) PrintableHeightMM() float64 {
	if c.Size.IsContinuous() {
		return 0
	}
	return c.Size.HeightMM() - c.Margins.VerticalTotal()
}
