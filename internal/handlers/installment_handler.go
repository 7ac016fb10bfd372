package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/services"
)

type InstallmentHandler struct {
	Service *services.InstallmentService
}

func NewInstallmentHandler(s *services.InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{Service: s}
}

func (h *InstallmentHandler) CreateInstallment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateInstallmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	inst, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(inst)
}

func (h *InstallmentHandler) ListInstallments(w http.ResponseWriter, r *http.Request) {
	installments, err := h.Service.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(installments)
}

func (h *InstallmentHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Service.MarkPaid(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"installment_id": id, "status": models.InstallmentPaid})
}
