package services

import (
	"strings"
	"testing"

	"github.com/furqanmax/Simple-POS/internal/models"
)

func TestValidateItem(t *testing.T) {
	tests := []struct {
		name    string
		item    models.OrderItemInput
		wantErr string
	}{
		{"valid", models.OrderItemInput{Name: "Coffee", Quantity: 2, UnitPrice: 50}, ""},
		{"empty name", models.OrderItemInput{Name: "", Quantity: 1, UnitPrice: 1}, "item name"},
		{"name too long", models.OrderItemInput{Name: strings.Repeat("x", 129), Quantity: 1, UnitPrice: 1}, "item name"},
		{"name at limit", models.OrderItemInput{Name: strings.Repeat("x", 128), Quantity: 1, UnitPrice: 1}, ""},
		{"zero quantity", models.OrderItemInput{Name: "A", Quantity: 0, UnitPrice: 1}, "quantity"},
		{"negative quantity", models.OrderItemInput{Name: "A", Quantity: -1, UnitPrice: 1}, "quantity"},
		{"quantity too large", models.OrderItemInput{Name: "A", Quantity: 1000000, UnitPrice: 1}, "quantity"},
		{"free item", models.OrderItemInput{Name: "A", Quantity: 1, UnitPrice: 0}, ""},
		{"negative price", models.OrderItemInput{Name: "A", Quantity: 1, UnitPrice: -0.01}, "unit price"},
		{"price too large", models.OrderItemInput{Name: "A", Quantity: 1, UnitPrice: 10000000}, "unit price"},
		{"multibyte name counts runes", models.OrderItemInput{Name: strings.Repeat("₹", 128), Quantity: 1, UnitPrice: 1}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateItem(tt.item)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	items := []models.OrderItemInput{
		{Name: "Coffee", Quantity: 2, UnitPrice: 50},
		{Name: "Sandwich", Quantity: 1, UnitPrice: 80},
		{Name: "Cake", Quantity: 1, UnitPrice: 80},
	}

	lines, subtotal, taxTotal, grandTotal := ComputeTotals(items, 18)

	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0].LineTotal != 100 {
		t.Errorf("first line total = %v, want 100", lines[0].LineTotal)
	}
	if subtotal != 260 {
		t.Errorf("subtotal = %v, want 260", subtotal)
	}
	if taxTotal != 46.80 {
		t.Errorf("tax total = %v, want 46.80", taxTotal)
	}
	if grandTotal != 306.80 {
		t.Errorf("grand total = %v, want 306.80", grandTotal)
	}
}

func TestComputeTotalsZeroTax(t *testing.T) {
	items := []models.OrderItemInput{
		{Name: "Water", Quantity: 3, UnitPrice: 10},
	}
	_, subtotal, taxTotal, grandTotal := ComputeTotals(items, 0)
	if subtotal != 30 || taxTotal != 0 || grandTotal != 30 {
		t.Errorf("got subtotal=%v tax=%v grand=%v, want 30/0/30", subtotal, taxTotal, grandTotal)
	}
}

func TestComputeTotalsRoundsPerLine(t *testing.T) {
	// 3 x 0.335 = 1.005 which rounds to 1.01 per line; the subtotal must
	// equal the sum of the printed line totals.
	items := []models.OrderItemInput{
		{Name: "Widget", Quantity: 3, UnitPrice: 0.335},
		{Name: "Widget", Quantity: 3, UnitPrice: 0.335},
	}
	lines, subtotal, _, _ := ComputeTotals(items, 0)

	var sum float64
	for _, l := range lines {
		sum += l.LineTotal
	}
	if subtotal != sum {
		t.Errorf("subtotal %v does not equal sum of line totals %v", subtotal, sum)
	}
}

func TestComputeTotalsEmpty(t *testing.T) {
	lines, subtotal, taxTotal, grandTotal := ComputeTotals(nil, 18)
	if len(lines) != 0 || subtotal != 0 || taxTotal != 0 || grandTotal != 0 {
		t.Errorf("empty input should produce all zeros, got %v/%v/%v", subtotal, taxTotal, grandTotal)
	}
}
