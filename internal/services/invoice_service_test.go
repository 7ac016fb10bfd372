package services

import (
	"testing"
	"time"

	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/models"
)

func TestOutputFolder(t *testing.T) {
	tests := []struct {
		name     string
		settings *models.Settings
		fallback string
		want     string
	}{
		{"settings folder wins", &models.Settings{InvoiceFolder: "/srv/pos/invoices"}, "./invoices", "/srv/pos/invoices"},
		{"blank setting falls back", &models.Settings{}, "./invoices", "./invoices"},
		{"nil settings falls back", nil, "./invoices", "./invoices"},
	}
	for _, tt := range tests {
		if got := outputFolder(tt.settings, tt.fallback); got != tt.want {
			t.Errorf("%s: outputFolder = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInvoiceFilename(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 5, 0, time.UTC)

	got := invoiceFilename(42, format.Thermal80, false, ts)
	if got != "invoice_42_THERMAL_80_20260314_103005.pdf" {
		t.Errorf("got %q", got)
	}

	got = invoiceFilename(42, format.A4, true, ts)
	if got != "invoice_42_A4_preview_20260314_103005.pdf" {
		t.Errorf("got %q", got)
	}
}
