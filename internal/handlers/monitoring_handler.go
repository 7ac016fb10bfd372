package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/furqanmax/Simple-POS/internal/auth"
	"github.com/furqanmax/Simple-POS/internal/monitoring"
)

type MonitoringHandler struct {
	Collector *monitoring.Collector
	Hub       *monitoring.Hub
	JWT       *auth.JWTManager
}

func NewMonitoringHandler(collector *monitoring.Collector, hub *monitoring.Hub, jwt *auth.JWTManager) *MonitoringHandler {
	return &MonitoringHandler{Collector: collector, Hub: hub, JWT: jwt}
}

// SystemStats returns a database and host health snapshot.
func (h *MonitoringHandler) SystemStats(w http.ResponseWriter, r *http.Request) {
	stats := h.Collector.Collect(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// DashboardWS upgrades to a websocket carrying live order events. Browsers
// cannot set an Authorization header on the upgrade request, so the token
// travels as a query parameter.
func (h *MonitoringHandler) DashboardWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusUnauthorized)
		return
	}
	if _, err := h.JWT.ValidateToken(token); err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}
	h.Hub.HandleWebSocket(w, r)
}
