package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/furqanmax/Simple-POS/internal/services"
)

type InvoiceHandler struct {
	Service *services.InvoiceService
}

func NewInvoiceHandler(s *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: s}
}

func (h *InvoiceHandler) requestFromHTTP(r *http.Request, preview bool) services.GenerateRequest {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	q := r.URL.Query()
	return services.GenerateRequest{
		OrderID:    orderID,
		Size:       q.Get("size"),
		Style:      q.Get("style"),
		Preview:    preview,
		QRPayloads: q["qr"],
	}
}

// GenerateInvoice renders the order's invoice PDF and returns its metadata.
func (h *InvoiceHandler) GenerateInvoice(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Generate(r.Context(), h.requestFromHTTP(r, false))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DownloadInvoice renders the invoice and streams the PDF bytes.
func (h *InvoiceHandler) DownloadInvoice(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Generate(r.Context(), h.requestFromHTTP(r, false))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := os.ReadFile(result.Path)
	if err != nil {
		http.Error(w, "Failed to read generated invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Write(pdf)
}

// PreviewInvoice renders a preview PDF (not archived).
func (h *InvoiceHandler) PreviewInvoice(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Generate(r.Context(), h.requestFromHTTP(r, true))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf, err := os.ReadFile(result.Path)
	if err != nil {
		http.Error(w, "Failed to read generated invoice", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", result.Filename))
	w.Write(pdf)
}

// PreviewInvoiceText returns the plain-text receipt for thermal sizes.
func (h *InvoiceHandler) PreviewInvoiceText(w http.ResponseWriter, r *http.Request) {
	text, err := h.Service.PreviewText(r.Context(), h.requestFromHTTP(r, true))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(text))
}

type bulkGenerateRequest struct {
	OrderIDs []int  `json:"order_ids"`
	Size     string `json:"size"`
	Style    string `json:"style"`
}

// GenerateBulk renders invoices for many orders at once.
func (h *InvoiceHandler) GenerateBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.OrderIDs) == 0 {
		http.Error(w, "order_ids is required", http.StatusBadRequest)
		return
	}

	results := h.Service.GenerateBulk(r.Context(), req.OrderIDs, req.Size, req.Style)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
