package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/repositories"
	"github.com/furqanmax/Simple-POS/internal/services"
)

// Logo uploads above this size are rejected outright.
const maxLogoBytes = 2 << 20

type AssetHandler struct {
	Assets    *repositories.AssetRepository
	Templates *services.TemplateService
}

func NewAssetHandler(assets *repositories.AssetRepository, templates *services.TemplateService) *AssetHandler {
	return &AssetHandler{Assets: assets, Templates: templates}
}

// UploadLogo stores a PNG or JPEG logo for a template, replacing any
// previous one as the current logo.
func (h *AssetHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	templateID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		http.Error(w, "Invalid multipart body", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("logo")
	if err != nil {
		http.Error(w, "Missing logo file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		http.Error(w, "Failed to read logo file", http.StatusBadRequest)
		return
	}
	if len(data) == 0 || len(data) > maxLogoBytes {
		http.Error(w, "Logo must be between 1 byte and 2MB", http.StatusBadRequest)
		return
	}
	if kind := http.DetectContentType(data); kind != "image/png" && kind != "image/jpeg" {
		http.Error(w, "Logo must be a PNG or JPEG image", http.StatusBadRequest)
		return
	}

	if _, err := h.Templates.Get(r.Context(), templateID); err != nil {
		http.Error(w, "Template not found", http.StatusNotFound)
		return
	}

	asset := &models.InvoiceAsset{
		TemplateID:  templateID,
		Type:        "logo",
		StorageKind: "blob",
		Blob:        data,
	}
	if err := h.Assets.Create(r.Context(), asset); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(asset)
}

// GetLogo serves the template's current logo image.
func (h *AssetHandler) GetLogo(w http.ResponseWriter, r *http.Request) {
	templateID, _ := strconv.Atoi(mux.Vars(r)["id"])

	asset, err := h.Assets.GetLogo(r.Context(), templateID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if asset == nil {
		http.Error(w, "Template has no logo", http.StatusNotFound)
		return
	}

	if len(asset.Blob) > 0 {
		w.Header().Set("Content-Type", http.DetectContentType(asset.Blob))
		w.Write(asset.Blob)
		return
	}
	http.ServeFile(w, r, asset.Path)
}

// DeleteLogo removes the template's current logo.
func (h *AssetHandler) DeleteLogo(w http.ResponseWriter, r *http.Request) {
	templateID, _ := strconv.Atoi(mux.Vars(r)["id"])

	asset, err := h.Assets.GetLogo(r.Context(), templateID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if asset == nil {
		http.Error(w, "Template has no logo", http.StatusNotFound)
		return
	}
	if err := h.Assets.Delete(r.Context(), asset.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
