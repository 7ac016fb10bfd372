package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/models"
)

func testDocument(size format.BillSize, style format.LayoutStyle) *Document {
	created := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return &Document{
		Order: models.Order{
			ID:         42,
			Username:   "admin",
			Subtotal:   260.00,
			TaxRate:    18,
			TaxTotal:   46.80,
			GrandTotal: 306.80,
			Status:     models.OrderStatusFinalized,
			CreatedAt:  created,
		},
		Items: []models.OrderItem{
			{Name: "Coffee", Quantity: 2, UnitPrice: 50.00, LineTotal: 100.00},
			{Name: "Sandwich", Quantity: 1, UnitPrice: 80.00, LineTotal: 80.00},
			{Name: "Cake", Quantity: 2, UnitPrice: 40.00, LineTotal: 80.00},
		},
		Business: models.BusinessInfo{
			Name:    "Corner Cafe",
			Address: "123 Main Street",
			Phone:   "(555) 123-4567",
		},
		Header:      models.TemplateHeader{Title: "INVOICE", ShowBusinessInfo: true},
		Footer:      models.TemplateFooter{Text: "Thank you for your business!", ShowDate: true},
		Currency:    "₹",
		Config:      format.DefaultConfig(size, style),
		GeneratedAt: created,
	}
}

func TestBuildReceiptLinesWidth(t *testing.T) {
	for _, size := range format.ThermalSizes() {
		doc := testDocument(size, format.StyleCompact)
		lines := BuildReceiptLines(doc)
		if len(lines) == 0 {
			t.Fatalf("%s: empty receipt", size)
		}
		for _, line := range lines {
			if n := utf8.RuneCountInString(line); n > doc.Config.CharsPerLine {
				t.Errorf("%s: line %q is %d chars, budget %d", size, line, n, doc.Config.CharsPerLine)
			}
		}
	}
}

func TestBuildReceiptTextContent(t *testing.T) {
	doc := testDocument(format.Thermal80, format.StyleCompact)
	text := BuildReceiptText(doc)

	for _, want := range []string{
		"Corner Cafe",
		"Invoice: INV-000042",
		"Coffee x2",
		"₹306.80",
		"Tax (18.0%):",
		"TOTAL:",
		"Thank you for your business!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}

	// Item and total rows are exactly the configured width.
	for _, line := range BuildReceiptLines(doc) {
		if strings.HasPrefix(line, "TOTAL:") {
			if n := utf8.RuneCountInString(line); n != doc.Config.CharsPerLine {
				t.Errorf("total row width %d, want %d: %q", n, doc.Config.CharsPerLine, line)
			}
		}
	}
}

func TestThermalDriverRender(t *testing.T) {
	doc := testDocument(format.Thermal80, format.StyleCompact)
	out, err := (&ThermalDriver{}).Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("thermal output is not a PDF document")
	}
}

func TestPaperDriverRender(t *testing.T) {
	for _, style := range format.AllStyles() {
		doc := testDocument(format.A4, style)
		doc.QRPayloads = []string{"upi://pay?pa=cafe@bank&am=306.80"}
		out, err := (&PaperDriver{}).Render(context.Background(), doc)
		if err != nil {
			t.Fatalf("%s: Render: %v", style, err)
		}
		if !bytes.HasPrefix(out, []byte("%PDF")) {
			t.Errorf("%s: output is not a PDF document", style)
		}
	}
}

func TestPaperDriverPagination(t *testing.T) {
	doc := testDocument(format.A5, format.StyleClassic)
	items := make([]models.OrderItem, 40)
	for i := range items {
		items[i] = models.OrderItem{Name: "Repeated Item", Quantity: 1, UnitPrice: 10, LineTotal: 10}
	}
	doc.Items = items

	out, err := (&PaperDriver{}).Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// gofpdf writes one /Page object per emitted page, plus the /Pages root
	// (which this substring also matches). Two or more pages means >= 3 hits.
	if hits := bytes.Count(out, []byte("/Type /Page")); hits < 3 {
		t.Errorf("40 items on A5 must span multiple pages, counted %d markers", hits)
	}
}

func TestForConfig(t *testing.T) {
	if _, ok := ForConfig(format.DefaultConfig(format.Thermal58, format.StyleCompact)).(*ThermalDriver); !ok {
		t.Error("thermal sizes must use the thermal driver")
	}
	if _, ok := ForConfig(format.DefaultConfig(format.A4, format.StyleClassic)).(*PaperDriver); !ok {
		t.Error("paper sizes must use the paper driver")
	}
}
