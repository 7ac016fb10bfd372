package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/models"
)

// Column order for the items table. ColumnWidths is a map; this fixes the
// presentation order for whichever columns the active style includes.
var columnOrder = []string{"item", "description", "qty", "price", "total"}

var columnTitles = map[string]string{
	"item":        "Item",
	"description": "Description",
	"qty":         "Qty",
	"price":       "Unit Price",
	"total":       "Total",
}

// PaperDriver renders fixed-page invoices as PDF documents.
type PaperDriver struct{}

func (d *PaperDriver) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := doc.Config
	engine := format.NewEngine(cfg)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: cfg.Size.WidthMM(), Ht: cfg.Size.HeightMM()},
	})
	pdf.SetMargins(cfg.Margins.Left, cfg.Margins.Top, cfg.Margins.Right)
	pdf.SetAutoPageBreak(false, cfg.Margins.Bottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	hasLogo := doc.Header.ShowLogo && len(doc.Logo) > 0
	if hasLogo {
		pdf.RegisterImageOptionsReader("logo",
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(doc.Logo))
	}

	pages := format.PageBreaks(engine, doc.Items, 0)
	for i, page := range pages {
		pdf.AddPage()

		if i == 0 {
			d.drawHeader(pdf, tr, doc, hasLogo)
			d.drawInvoiceInfo(pdf, tr, doc)
		} else {
			pdf.SetFont(cfg.Fonts.SansFont, "", float64(cfg.Fonts.BaseSize))
			pdf.CellFormat(0, 6, tr(fmt.Sprintf("Invoice INV-%06d (page %d of %d)",
				doc.Order.ID, i+1, len(pages))), "", 1, "L", false, 0, "")
			pdf.Ln(2)
		}

		d.drawItemsTable(pdf, tr, engine, doc, page)

		if i == len(pages)-1 {
			pdf.Ln(4)
			d.drawTotals(pdf, tr, doc)
			if err := d.drawQRCodes(pdf, engine, doc); err != nil {
				return nil, err
			}
			d.drawFooter(pdf, tr, doc)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to build PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *PaperDriver) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, doc *Document, hasLogo bool) {
	cfg := doc.Config

	if hasLogo {
		pdf.ImageOptions("logo", cfg.Margins.Left, cfg.Margins.Top,
			0, cfg.LogoMaxHeightMM, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
		pdf.SetY(cfg.Margins.Top + cfg.LogoMaxHeightMM + 5)
	}

	if title := doc.Header.Title; title != "" {
		pdf.SetFont(cfg.Fonts.SansFont, "B", float64(cfg.Fonts.TitleSize))
		pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	}

	if doc.Header.ShowBusinessInfo {
		pdf.SetFont(cfg.Fonts.SansFont, "B", float64(cfg.Fonts.HeaderSize))
		if doc.Business.Name != "" {
			pdf.CellFormat(0, 7, tr(doc.Business.Name), "", 1, "L", false, 0, "")
		}

		pdf.SetFont(cfg.Fonts.SansFont, "", float64(cfg.Fonts.BaseSize))
		if doc.Business.Address != "" {
			pdf.MultiCell(0, 5, tr(doc.Business.Address), "", "L", false)
		}
		if doc.Business.Phone != "" {
			pdf.CellFormat(0, 5, tr("Phone: "+doc.Business.Phone), "", 1, "L", false, 0, "")
		}
		if doc.Business.Email != "" {
			pdf.CellFormat(0, 5, tr("Email: "+doc.Business.Email), "", 1, "L", false, 0, "")
		}
		if doc.Business.TaxID != "" {
			pdf.CellFormat(0, 5, tr("Tax ID: "+doc.Business.TaxID), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)
}

func (d *PaperDriver) drawInvoiceInfo(pdf *gofpdf.Fpdf, tr func(string) string, doc *Document) {
	cfg := doc.Config
	pdf.SetFont(cfg.Fonts.SansFont, "", float64(cfg.Fonts.BaseSize))

	rows := [][2]string{
		{"Invoice #:", fmt.Sprintf("INV-%06d", doc.Order.ID)},
		{"Date:", doc.Order.CreatedAt.Format("2006-01-02 15:04")},
		{"Operator:", doc.Order.Username},
		{"Status:", doc.Order.Status},
	}
	for _, row := range rows {
		pdf.CellFormat(35, 6, tr(row[0]), "", 0, "R", false, 0, "")
		pdf.CellFormat(60, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
}

// activeColumns returns the style's columns in presentation order with their
// absolute widths in mm.
func activeColumns(cfg format.LayoutConfig) ([]string, []float64) {
	var names []string
	var widths []float64
	for _, name := range columnOrder {
		if frac, ok := cfg.ColumnWidths[name]; ok {
			names = append(names, name)
			widths = append(widths, cfg.PrintableWidthMM()*frac)
		}
	}
	return names, widths
}

func (d *PaperDriver) drawItemsTable(pdf *gofpdf.Fpdf, tr func(string) string, engine *format.Engine, doc *Document, items []models.OrderItem) {
	cfg := doc.Config
	names, widths := activeColumns(cfg)

	border := ""
	if cfg.ShowBorders {
		border = "1"
	}

	// Header row
	pdf.SetFont(cfg.Fonts.SansFont, "B", float64(cfg.Fonts.BaseSize))
	pdf.SetFillColor(200, 200, 200)
	for i, name := range names {
		ln := 0
		if i == len(names)-1 {
			ln = 1
		}
		pdf.CellFormat(widths[i], 7, tr(columnTitles[name]), "1", ln, "C", true, 0, "")
	}

	pdf.SetFont(cfg.Fonts.SansFont, "", float64(cfg.Fonts.ItemSize))
	for _, item := range items {
		layout := engine.ItemLayout(item.Name)
		lines := layout.Lines
		if len(lines) == 0 {
			lines = []string{layout.DisplayName}
		}

		for li, line := range lines {
			for ci, name := range names {
				ln := 0
				if ci == len(names)-1 {
					ln = 1
				}
				var text string
				align := "R"
				if li == 0 {
					switch name {
					case "item":
						text, align = line, "L"
					case "description":
						text, align = "", "L"
					case "qty":
						text = fmt.Sprintf("%.2f", item.Quantity)
					case "price":
						text = money(doc.Currency, item.UnitPrice)
					case "total":
						text = money(doc.Currency, item.LineTotal)
					}
				} else if name == "item" {
					text, align = line, "L"
				}
				pdf.CellFormat(widths[ci], 6, tr(text), border, ln, align, false, 0, "")
			}
		}
	}
}

func (d *PaperDriver) drawTotals(pdf *gofpdf.Fpdf, tr func(string) string, doc *Document) {
	cfg := doc.Config
	order := doc.Order

	labelW, valueW := 40.0, 35.0
	indent := cfg.PrintableWidthMM() - labelW - valueW
	pdf.SetFont(cfg.Fonts.SansFont, "", float64(cfg.Fonts.BaseSize))

	pdf.CellFormat(indent, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(labelW, 6, tr("Subtotal:"), "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 6, tr(money(doc.Currency, order.Subtotal)), "", 1, "R", false, 0, "")

	pdf.CellFormat(indent, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(labelW, 6, tr(fmt.Sprintf("Tax (%.1f%%):", order.TaxRate)), "", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 6, tr(money(doc.Currency, order.TaxTotal)), "", 1, "R", false, 0, "")

	pdf.SetFont(cfg.Fonts.SansFont, "B", float64(cfg.Fonts.HeaderSize))
	pdf.CellFormat(indent, 8, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(labelW, 8, tr("Grand Total:"), "T", 0, "R", false, 0, "")
	pdf.CellFormat(valueW, 8, tr(money(doc.Currency, order.GrandTotal)), "T", 1, "R", false, 0, "")
}

func (d *PaperDriver) drawQRCodes(pdf *gofpdf.Fpdf, engine *format.Engine, doc *Document) error {
	if len(doc.QRPayloads) == 0 {
		return nil
	}

	cfg := doc.Config
	layout := engine.QRLayout(len(doc.QRPayloads))

	pdf.Ln(5)
	x := cfg.Margins.Left
	y := pdf.GetY()

	for i := 0; i < layout.Count; i++ {
		img, err := qrPNG(doc.QRPayloads[i], 256)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("qr%d", i)
		pdf.RegisterImageOptionsReader(name,
			gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(img))

		var px, py float64
		switch layout.Arrangement {
		case "grid":
			col := i % layout.Cols
			row := i / layout.Cols
			px = x + float64(col)*(layout.SizeMM+layout.SpacingMM)
			py = y + float64(row)*(layout.SizeMM+layout.SpacingMM)
		default: // horizontal
			px = x + float64(i)*(layout.SizeMM+layout.SpacingMM)
			py = y
		}
		pdf.ImageOptions(name, px, py, layout.SizeMM, layout.SizeMM,
			false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	}

	rows := 1
	if layout.Arrangement == "grid" {
		rows = layout.Rows
	}
	pdf.SetY(y + float64(rows)*(layout.SizeMM+layout.SpacingMM))
	return nil
}

func (d *PaperDriver) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, doc *Document) {
	cfg := doc.Config
	pdf.Ln(6)
	pdf.SetFont(cfg.Fonts.SansFont, "", float64(cfg.Fonts.FooterSize))
	pdf.SetTextColor(102, 102, 102)

	if doc.Footer.Text != "" {
		pdf.CellFormat(0, 5, tr(doc.Footer.Text), "", 1, "C", false, 0, "")
	}
	if doc.Footer.ShowDate {
		pdf.CellFormat(0, 5, tr("Generated on "+doc.GeneratedAt.Format("2006-01-02 15:04:05")),
			"", 1, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

func money(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}
