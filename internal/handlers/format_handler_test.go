package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/furqanmax/Simple-POS/internal/format"
)

func TestListSizes(t *testing.T) {
	h := NewFormatHandler()

	req := httptest.NewRequest("GET", "/api/formats/sizes", nil)
	rec := httptest.NewRecorder()
	h.ListSizes(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var sizes []sizeInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &sizes); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(sizes) != len(format.AllSizes()) {
		t.Errorf("got %d sizes, want %d", len(sizes), len(format.AllSizes()))
	}

	byName := map[string]sizeInfo{}
	for _, s := range sizes {
		byName[s.Name] = s
	}
	a4, ok := byName["A4"]
	if !ok {
		t.Fatal("A4 missing from size list")
	}
	if a4.WidthMM != 210 || a4.HeightMM != 297 || a4.Category != "paper" {
		t.Errorf("unexpected A4 entry: %+v", a4)
	}
	roll, ok := byName["THERMAL_80"]
	if !ok {
		t.Fatal("THERMAL_80 missing from size list")
	}
	if !roll.Continuous || roll.Category != "thermal" {
		t.Errorf("unexpected THERMAL_80 entry: %+v", roll)
	}
}

func TestListSizesFiltersByCategory(t *testing.T) {
	h := NewFormatHandler()

	req := httptest.NewRequest("GET", "/api/formats/sizes?category=thermal", nil)
	rec := httptest.NewRecorder()
	h.ListSizes(rec, req)

	var sizes []sizeInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &sizes); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(sizes) == 0 {
		t.Fatal("no thermal sizes returned")
	}
	for _, s := range sizes {
		if s.Category != "thermal" {
			t.Errorf("non-thermal size %s in thermal listing", s.Name)
		}
	}
}

func TestGetDefaultConfig(t *testing.T) {
	h := NewFormatHandler()

	req := httptest.NewRequest("GET", "/api/formats/config?size=THERMAL_80&style=compact", nil)
	rec := httptest.NewRecorder()
	h.GetDefaultConfig(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var cfg format.LayoutConfig
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	want := format.DefaultConfig(format.Thermal80, format.StyleCompact)
	if cfg.CharsPerLine != want.CharsPerLine {
		t.Errorf("chars per line = %d, want %d", cfg.CharsPerLine, want.CharsPerLine)
	}
}

func TestGetDefaultConfigRejectsUnknownSize(t *testing.T) {
	h := NewFormatHandler()

	req := httptest.NewRequest("GET", "/api/formats/config?size=B5", nil)
	rec := httptest.NewRecorder()
	h.GetDefaultConfig(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestValidateMarginsEndpoint(t *testing.T) {
	h := NewFormatHandler()

	body := `{"size":"A4","margins":{"top":1,"right":10,"bottom":1,"left":10}}`
	req := httptest.NewRequest("POST", "/api/formats/validate-margins", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ValidateMargins(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp validateMarginsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if resp.Valid {
		t.Error("expected invalid margins")
	}
	if len(resp.Problems) != 2 {
		t.Errorf("got %d problems, want 2 (top and bottom)", len(resp.Problems))
	}
}

func TestClosestSizeEndpoint(t *testing.T) {
	h := NewFormatHandler()

	req := httptest.NewRequest("GET", "/api/formats/closest-size?width_mm=210&height_mm=297", nil)
	rec := httptest.NewRecorder()
	h.ClosestSize(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var info sizeInfo
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if info.Name != "A4" {
		t.Errorf("closest to 210x297 = %s, want A4", info.Name)
	}
}

func TestClosestSizeRequiresWidth(t *testing.T) {
	h := NewFormatHandler()

	req := httptest.NewRequest("GET", "/api/formats/closest-size", nil)
	rec := httptest.NewRecorder()
	h.ClosestSize(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
