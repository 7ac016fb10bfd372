package format

import (
	"strings"
	"unicode/utf8"
)

// Wrap budget for paper item names, in characters. Deliberately approximate:
// the item column is proportional, not monospace, so an exact fit is not
// attainable and the estimator only needs to be stable.
const paperWrapBudget = 40

// ItemLayout is the placement decision for a single line item's name.
type ItemLayout struct {
	DisplayName string   `json:"display_name"`
	Lines       []string `json:"lines"`
	Truncated   bool     `json:"truncated"`
}

// QRLayout describes how QR codes are arranged on the output.
type QRLayout struct {
	Count       int     `json:"count"`
	Arrangement string  `json:"arrangement"` // vertical, horizontal, grid
	SizeMM      float64 `json:"size_mm"`
	SpacingMM   float64 `json:"spacing_mm"`
	Rows        int     `json:"rows,omitempty"`
	Cols        int     `json:"cols,omitempty"`
}

// Engine turns order content into layout decisions for one resolved
// LayoutConfig. The config is its only state; instances are cheap and safe to
// use concurrently as long as each render gets its own.
type Engine struct {
	cfg LayoutConfig
}

func NewEngine(cfg LayoutConfig) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() LayoutConfig { return e.cfg }

// ItemLayout computes wrapping or truncation for a single item name.
// Thermal formats get exactly one line, truncated with an ellipsis when the
// name exceeds the item column's character budget. Paper formats word-wrap up
// to MaxLinesPerItem lines when wrapping is enabled.
func (e *Engine) ItemLayout(name string) ItemLayout {
	result := ItemLayout{DisplayName: name}

	if e.cfg.Size.IsThermal() {
		budget := float64(e.cfg.CharsPerLine) * 0.45 // item column share
		if float64(utf8.RuneCountInString(name)) > budget {
			maxChars := int(budget - 3)
			if maxChars < 0 {
				maxChars = 0
			}
			runes := []rune(name)
			result.DisplayName = string(runes[:maxChars]) + "..."
			result.Truncated = true
		}
		result.Lines = []string{result.DisplayName}
		return result
	}

	if !e.cfg.WrapItemNames {
		result.Lines = []string{name}
		return result
	}

	lines := wrapWords(name, paperWrapBudget)
	if len(lines) > e.cfg.MaxLinesPerItem {
		lines = lines[:e.cfg.MaxLinesPerItem]
		lines[len(lines)-1] = spliceEllipsis(lines[len(lines)-1])
		result.Truncated = true
	}
	result.Lines = lines
	return result
}

// wrapWords greedily packs whole words into lines of at most budget
// characters. A word longer than the budget occupies a line by itself, so
// boundary-less names still terminate.
func wrapWords(text string, budget int) []string {
	words := strings.Fields(text)
	var lines []string
	var current []string

	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if utf8.RuneCountInString(candidate) <= budget {
			current = append(current, word)
		} else {
			if len(current) > 0 {
				lines = append(lines, strings.Join(current, " "))
			}
			current = []string{word}
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// spliceEllipsis replaces the last three characters of line with "...",
// keeping the line within its existing budget rather than growing it.
func spliceEllipsis(line string) string {
	runes := []rune(line)
	if len(runes) <= 3 {
		return "..."
	}
	return string(runes[:len(runes)-3]) + "..."
}

// QRLayout arranges up to MaxQRCodes codes for the configured format.
func (e *Engine) QRLayout(requested int) QRLayout {
	count := requested
	if count > e.cfg.MaxQRCodes {
		count = e.cfg.MaxQRCodes
	}

	if e.cfg.Size.IsThermal() {
		return QRLayout{
			Count:       count,
			Arrangement: "vertical",
			SizeMM:      e.cfg.QRSizeMM,
			SpacingMM:   2,
		}
	}

	if count <= 2 {
		return QRLayout{
			Count:       count,
			Arrangement: "horizontal",
			SizeMM:      e.cfg.QRSizeMM,
			SpacingMM:   5,
		}
	}

	// 3-4 codes go into a 2x2 grid, slightly shrunk to fit.
	return QRLayout{
		Count:       count,
		Arrangement: "grid",
		Rows:        2,
		Cols:        2,
		SizeMM:      e.cfg.QRSizeMM * 0.8,
		SpacingMM:   5,
	}
}

func (e *Engine) itemRowHeightMM() float64 {
	if e.cfg.Size.IsThermal() {
		return 5
	}
	return 7
}

// EstimateContentHeight is a coarse additive estimate of rendered height in
// mm, used only to drive pagination decisions. hasQR and hasLogo are caller
// hints; the engine never re-derives them from template state.
func (e *Engine) EstimateContentHeight(numItems int, hasQR, hasLogo bool) float64 {
	height := 0.0

	if hasLogo {
		height += e.cfg.LogoMaxHeightMM + 5
	}

	height += 30 // business info block
	height += 20 // invoice info block

	height += float64(numItems+1) * e.itemRowHeightMM() // +1 for the header row

	height += 20 // totals block

	if hasQR {
		height += e.cfg.QRSizeMM + 10
	}

	height += 15 // footer block

	return height
}

// NeedsPagination reports whether content of the given estimated height must
// be split across pages. Continuous formats never paginate.
func (e *Engine) NeedsPagination(contentHeightMM float64) bool {
	if e.cfg.Size.IsContinuous() {
		return false
	}
	return contentHeightMM > e.cfg.PrintableHeightMM()*e.cfg.PageBreakThreshold
}

// PageBreaks splits items into consecutive per-page batches, preserving
// order. When itemsPerPage is not positive it is derived from printable
// height, reserving 40% of the page for headers, footers and totals.
func PageBreaks[T any](e *Engine, items []T, itemsPerPage int) [][]T {
	if !e.NeedsPagination(e.EstimateContentHeight(len(items), false, false)) {
		return [][]T{items}
	}

	if itemsPerPage <= 0 {
		available := e.cfg.PrintableHeightMM() * 0.6
		itemsPerPage = int(available / e.itemRowHeightMM())
	}
	if itemsPerPage < 1 {
		itemsPerPage = 1
	}

	var pages [][]T
	for i := 0; i < len(items); i += itemsPerPage {
		end := i + itemsPerPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}
