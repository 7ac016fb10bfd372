package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/furqanmax/Simple-POS/internal/format"
)

// ThermalDriver renders continuous receipts: a monospace text layout built
// with the thermal formatter, emitted as a single PDF page sized to content.
type ThermalDriver struct{}

const thermalLineHeightMM = 4.0

func (d *ThermalDriver) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := doc.Config
	lines := BuildReceiptLines(doc)

	height := cfg.Margins.VerticalTotal() + float64(len(lines))*thermalLineHeightMM
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cfg.Size.WidthMM(), Ht: height},
	})
	pdf.SetMargins(cfg.Margins.Left, cfg.Margins.Top, cfg.Margins.Right)
	pdf.SetAutoPageBreak(false, cfg.Margins.Bottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont(cfg.Fonts.MonoFont, "", float64(cfg.Fonts.ItemSize))
	for _, line := range lines {
		pdf.CellFormat(0, thermalLineHeightMM, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build thermal PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildReceiptText returns the receipt as plain monospace text, one line per
// row of thermal output. Used for the text preview endpoint and for raw
// printer streams.
func BuildReceiptText(doc *Document) string {
	return strings.Join(BuildReceiptLines(doc), "\n")
}

// BuildReceiptLines lays out the full receipt at the config's character
// width. Every returned line fits within CharsPerLine characters.
func BuildReceiptLines(doc *Document) []string {
	cfg := doc.Config
	engine := format.NewEngine(cfg)
	width := cfg.CharsPerLine

	var lines []string
	push := func(s string) { lines = append(lines, format.OptimizeForThermal(s, width)) }
	separator := func() { push(format.ThermalSeparator(width, '-')) }

	if doc.Business.Name != "" {
		push(format.CenterText(doc.Business.Name, width))
	}
	if doc.Business.Address != "" {
		for _, addr := range strings.Split(doc.Business.Address, "\n") {
			push(format.CenterText(addr, width))
		}
	}
	if doc.Business.Phone != "" {
		push(format.CenterText("Tel: "+doc.Business.Phone, width))
	}
	separator()

	push(fmt.Sprintf("Invoice: INV-%06d", doc.Order.ID))
	push("Date: " + doc.Order.CreatedAt.Format("2006-01-02 15:04"))
	if doc.Order.Username != "" {
		push("Cashier: " + doc.Order.Username)
	}
	separator()

	push(format.FormatThermalLine("ITEM", "AMOUNT", width))
	for _, item := range doc.Items {
		layout := engine.ItemLayout(item.Name)
		left := fmt.Sprintf("%s x%.0f", layout.DisplayName, item.Quantity)
		right := money(doc.Currency, item.LineTotal)
		push(format.FormatThermalLine(left, right, width))
	}
	separator()

	push(format.FormatThermalLine("Subtotal:", money(doc.Currency, doc.Order.Subtotal), width))
	push(format.FormatThermalLine(fmt.Sprintf("Tax (%.1f%%):", doc.Order.TaxRate),
		money(doc.Currency, doc.Order.TaxTotal), width))
	push(format.ThermalSeparator(width, '='))
	push(format.FormatThermalLine("TOTAL:", money(doc.Currency, doc.Order.GrandTotal), width))
	push("")

	if doc.Footer.Text != "" {
		push(format.CenterText(doc.Footer.Text, width))
	}
	if doc.Footer.ShowDate {
		push(format.CenterText(doc.GeneratedAt.Format("2006-01-02 15:04:05"), width))
	}

	return lines
}
