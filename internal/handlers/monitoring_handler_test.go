package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/furqanmax/Simple-POS/internal/auth"
	"github.com/furqanmax/Simple-POS/internal/config"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/monitoring"
)

func testJWTManager() *auth.JWTManager {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "pos-test"
	return auth.NewJWTManager(cfg)
}

func TestDashboardWSRejectsMissingToken(t *testing.T) {
	h := NewMonitoringHandler(nil, monitoring.NewHub(), testJWTManager())
	req := httptest.NewRequest("GET", "/ws/dashboard", nil)
	rec := httptest.NewRecorder()

	h.DashboardWS(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestDashboardWSRejectsInvalidToken(t *testing.T) {
	h := NewMonitoringHandler(nil, monitoring.NewHub(), testJWTManager())
	req := httptest.NewRequest("GET", "/ws/dashboard?token=not-a-jwt", nil)
	rec := httptest.NewRecorder()

	h.DashboardWS(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestDashboardWSAcceptsValidToken(t *testing.T) {
	jwt := testJWTManager()
	token, err := jwt.GenerateToken(&models.User{ID: 1, Username: "admin", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	h := NewMonitoringHandler(nil, monitoring.NewHub(), jwt)
	// No upgrade headers, so the websocket handshake itself fails. Anything
	// other than 401 proves the token check passed.
	req := httptest.NewRequest("GET", "/ws/dashboard?token="+token, nil)
	rec := httptest.NewRecorder()

	h.DashboardWS(rec, req)

	if rec.Code == http.StatusUnauthorized {
		t.Errorf("valid token rejected with 401: %s", rec.Body.String())
	}
}
