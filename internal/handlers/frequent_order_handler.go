package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/furqanmax/Simple-POS/internal/middleware"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/repositories"
	"github.com/furqanmax/Simple-POS/internal/services"
)

type FrequentOrderHandler struct {
	Repo *repositories.FrequentOrderRepository
}

func NewFrequentOrderHandler(repo *repositories.FrequentOrderRepository) *FrequentOrderHandler {
	return &FrequentOrderHandler{Repo: repo}
}

func (h *FrequentOrderHandler) CreatePreset(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateFrequentOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Label == "" {
		http.Error(w, "label is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) == 0 {
		http.Error(w, "items are required", http.StatusBadRequest)
		return
	}
	for _, item := range req.Items {
		if err := services.ValidateItem(item); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	// Only admins may create global presets; everyone else owns theirs.
	owner := &userID
	if req.OwnerUserID == nil {
		if role, _ := middleware.GetRoleFromContext(r.Context()); role == models.RoleAdmin {
			owner = nil
		}
	}

	fo := &models.FrequentOrder{
		Label:       req.Label,
		OwnerUserID: owner,
		Items:       req.Items,
	}
	if err := h.Repo.Create(r.Context(), fo); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(fo)
}

func (h *FrequentOrderHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	presets, err := h.Repo.ListForUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(presets)
}

func (h *FrequentOrderHandler) UpdatePreset(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	existing, err := h.Repo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Preset not found", http.StatusNotFound)
		return
	}

	var req models.UpdateFrequentOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Label != nil {
		existing.Label = *req.Label
	}
	if req.Items != nil {
		for _, item := range *req.Items {
			if err := services.ValidateItem(item); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}
		existing.Items = *req.Items
	}

	if err := h.Repo.Update(r.Context(), existing); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(existing)
}

func (h *FrequentOrderHandler) DeletePreset(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repo.Deactivate(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
}
