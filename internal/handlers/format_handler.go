package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/furqanmax/Simple-POS/internal/format"
)

// FormatHandler exposes the layout catalog: supported sizes, styles, their
// default configurations, margin validation and closest-size matching.
type FormatHandler struct{}

func NewFormatHandler() *FormatHandler {
	return &FormatHandler{}
}

type sizeInfo struct {
	Name         string  `json:"name"`
	DisplayName  string  `json:"display_name"`
	WidthMM      float64 `json:"width_mm"`
	HeightMM     float64 `json:"height_mm"`
	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
	Category     string  `json:"category"`
	Continuous   bool    `json:"continuous"`
}

func describeSize(s format.BillSize) sizeInfo {
	return sizeInfo{
		Name:         s.String(),
		DisplayName:  s.DisplayName(),
		WidthMM:      s.WidthMM(),
		HeightMM:     s.HeightMM(),
		WidthInches:  s.WidthInches(),
		HeightInches: s.HeightInches(),
		Category:     string(s.Category()),
		Continuous:   s.IsContinuous(),
	}
}

// ListSizes returns every supported bill size. The category query
// parameter narrows to "paper" or "thermal".
func (h *FormatHandler) ListSizes(w http.ResponseWriter, r *http.Request) {
	var sizes []format.BillSize
	switch r.URL.Query().Get("category") {
	case "paper":
		sizes = format.PaperSizes()
	case "thermal":
		sizes = format.ThermalSizes()
	default:
		sizes = format.AllSizes()
	}

	infos := make([]sizeInfo, 0, len(sizes))
	for _, s := range sizes {
		infos = append(infos, describeSize(s))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

func (h *FormatHandler) ListStyles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(format.AllStyles())
}

// GetDefaultConfig returns the resolved layout configuration for a size
// and optional style.
func (h *FormatHandler) GetDefaultConfig(w http.ResponseWriter, r *http.Request) {
	size, err := format.ParseBillSize(r.URL.Query().Get("size"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	style := format.ParseLayoutStyle(r.URL.Query().Get("style"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(format.DefaultConfig(size, style))
}

type validateMarginsRequest struct {
	Size    string         `json:"size"`
	Margins format.Margins `json:"margins"`
}

type validateMarginsResponse struct {
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

// ValidateMargins checks margins against the minimums of the size's
// category and reports every failing side.
func (h *FormatHandler) ValidateMargins(w http.ResponseWriter, r *http.Request) {
	var req validateMarginsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	size, err := format.ParseBillSize(req.Size)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	valid, problems := format.ValidateMargins(req.Margins, size.Category())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(validateMarginsResponse{Valid: valid, Problems: problems})
}

// ClosestSize matches arbitrary stock dimensions to the nearest supported
// size. Query parameters: width_mm, height_mm, prefer_thermal.
func (h *FormatHandler) ClosestSize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	widthMM, err := strconv.ParseFloat(q.Get("width_mm"), 64)
	if err != nil || widthMM <= 0 {
		http.Error(w, "width_mm must be a positive number", http.StatusBadRequest)
		return
	}
	heightMM, _ := strconv.ParseFloat(q.Get("height_mm"), 64)
	preferThermal := q.Get("prefer_thermal") == "true"

	size := format.FindClosestSize(widthMM, heightMM, preferThermal)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(describeSize(size))
}
