package format

import (
	"fmt"
	"math"
)

// Default margin sets per category and size class (mm).
var defaultMargins = map[Category]map[string]Margins{
	CategoryPaper: {
		"large":  {15, 15, 15, 15}, // A3, Letter, Legal
		"medium": {12, 12, 12, 12}, // A4
		"small":  {10, 10, 10, 10}, // A5, Half Letter
		"strip":  {5, 5, 5, 5},
	},
	CategoryThermal: {
		"standard": {3, 3, 3, 3},
		"minimal":  {2, 2, 2, 2},
	},
}

// Minimum margins below which output clips on real printers (mm).
var minMargins = map[Category]Margins{
	CategoryPaper:   {5, 5, 5, 5},
	CategoryThermal: {2, 2, 2, 2},
}

// Font scale factors per size. Unlisted sizes use 1.0.
var fontScales = map[BillSize]float64{
	A3:            1.2,
	A4:            1.0,
	A5:            0.85,
	Letter:        1.0,
	Legal:         1.0,
	HalfLetter:    0.85,
	Thermal80:     0.8,
	Thermal76:     0.75,
	Thermal58:     0.7,
	Thermal57:     0.7,
	QuarterLetter: 0.8,
	LongStrip:     0.75,
	CashReceipt:   0.8,
}

// largePaper is the single place classifying which named sizes count as
// large-format paper (more QR room, wider margins).
var largePaper = map[BillSize]bool{A3: true, Letter: true, Legal: true}

const (
	baseFontSize   = 10
	titleFontSize  = 16
	headerFontSize = 12
	itemFontSize   = 9
	footerFontSize = 8

	// Empirical width of one monospace character at the thermal item font.
	thermalCharPitchMM = 2.5
)

// DefaultConfig resolves the complete layout configuration for a size/style
// pair. It is total over both enumerations: unknown combinations fall back to
// strip margins and a 1.0 font scale rather than failing.
func DefaultConfig(size BillSize, style LayoutStyle) LayoutConfig {
	var margins Margins
	if size.IsThermal() {
		set := "standard"
		if style == StyleCompact {
			set = "minimal"
		}
		margins = defaultMargins[CategoryThermal][set]
	} else {
		switch {
		case largePaper[size]:
			margins = defaultMargins[CategoryPaper]["large"]
		case size == A4:
			margins = defaultMargins[CategoryPaper]["medium"]
		case size == A5 || size == HalfLetter:
			margins = defaultMargins[CategoryPaper]["small"]
		default:
			margins = defaultMargins[CategoryPaper]["strip"]
		}
	}

	fonts := FontSettings{
		BaseSize:   baseFontSize,
		TitleSize:  titleFontSize,
		HeaderSize: headerFontSize,
		ItemSize:   itemFontSize,
		FooterSize: footerFontSize,
		MonoFont:   "Courier",
		SansFont:   "Helvetica",
	}
	scale, ok := fontScales[size]
	if !ok {
		scale = 1.0
	}
	fonts = fonts.Scale(scale)

	charsPerLine := 0
	if size.IsThermal() {
		printableWidth := size.WidthMM() - margins.HorizontalTotal()
		charsPerLine = int(printableWidth / thermalCharPitchMM)
	}

	maxQR := 2
	qrSize := 20.0
	logoMax := 25.0
	if size.IsThermal() {
		maxQR, qrSize, logoMax = 1, 15, 15
	} else if largePaper[size] {
		maxQR = 3
		if size == A3 {
			qrSize, logoMax = 25, 30
		}
	}

	var columns map[string]float64
	switch {
	case style == StyleCompact || size.IsThermal():
		columns = map[string]float64{"item": 0.45, "qty": 0.15, "price": 0.20, "total": 0.20}
	case style == StyleDetailed:
		columns = map[string]float64{"item": 0.35, "description": 0.25, "qty": 0.10, "price": 0.15, "total": 0.15}
	default: // classic, minimal
		columns = map[string]float64{"item": 0.40, "qty": 0.15, "price": 0.20, "total": 0.25}
	}

	maxLines := 3
	if size.IsThermal() {
		maxLines = 1
	}

	return LayoutConfig{
		Size:               size,
		Style:              style,
		Margins:            margins,
		Fonts:              fonts,
		CharsPerLine:       charsPerLine,
		MaxQRCodes:         maxQR,
		QRSizeMM:           qrSize,
		LogoMaxHeightMM:    logoMax,
		ShowBorders:        style != StyleMinimal,
		ColumnWidths:       columns,
		WrapItemNames:      !size.IsThermal(),
		MaxLinesPerItem:    maxLines,
		PageBreakThreshold: 0.85,
	}
}

// ValidateMargins checks margins against the per-category minimums. The result
// is a validation report, not an error: every failing side is listed so an
// admin screen can show all problems at once.
func ValidateMargins(m Margins, category Category) (bool, []string) {
	minimum, ok := minMargins[category]
	if !ok {
		minimum = minMargins[CategoryPaper]
	}

	var errs []string
	if m.Top < minimum.Top {
		errs = append(errs, fmt.Sprintf("Top margin too small (min: %gmm)", minimum.Top))
	}
	if m.Right < minimum.Right {
		errs = append(errs, fmt.Sprintf("Right margin too small (min: %gmm)", minimum.Right))
	}
	if m.Bottom < minimum.Bottom {
		errs = append(errs, fmt.Sprintf("Bottom margin too small (min: %gmm)", minimum.Bottom))
	}
	if m.Left < minimum.Left {
		errs = append(errs, fmt.Sprintf("Left margin too small (min: %gmm)", minimum.Left))
	}

	return len(errs) == 0, errs
}

// AllSizes returns every supported size in declaration order.
func AllSizes() []BillSize {
	sizes := make([]BillSize, len(sizeSpecs))
	for i := range sizeSpecs {
		sizes[i] = BillSize(i)
	}
	return sizes
}

// PaperSizes returns the fixed-page sizes.
func PaperSizes() []BillSize {
	var sizes []BillSize
	for _, s := range AllSizes() {
		if !s.IsThermal() {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// ThermalSizes returns the continuous-roll sizes.
func ThermalSizes() []BillSize {
	var sizes []BillSize
	for _, s := range AllSizes() {
		if s.IsThermal() {
			sizes = append(sizes, s)
		}
	}
	return sizes
}

// FindClosestSize returns the nearest supported size for the given dimensions.
// Continuous candidates are compared on width alone; fixed candidates use
// Euclidean distance over both dimensions. Ties go to the first candidate in
// declaration order.
func FindClosestSize(widthMM, heightMM float64, preferThermal bool) BillSize {
	candidates := PaperSizes()
	if preferThermal {
		candidates = ThermalSizes()
	}
	if len(candidates) == 0 {
		candidates = AllSizes()
	}

	best := candidates[0]
	minDiff := math.Inf(1)
	for _, size := range candidates {
		var diff float64
		if size.IsContinuous() {
			diff = math.Abs(size.WidthMM() - widthMM)
		} else {
			dw := size.WidthMM() - widthMM
			dh := size.HeightMM() - heightMM
			diff = math.Sqrt(dw*dw + dh*dh)
		}
		if diff < minDiff {
			minDiff = diff
			best = size
		}
	}
	return best
}
