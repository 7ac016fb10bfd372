package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/furqanmax/Simple-POS/internal/handlers"
	"github.com/furqanmax/Simple-POS/internal/middleware"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	orderHandler *handlers.OrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	templateHandler *handlers.TemplateHandler,
	assetHandler *handlers.AssetHandler,
	formatHandler *handlers.FormatHandler,
	settingHandler *handlers.SettingHandler,
	frequentOrderHandler *handlers.FrequentOrderHandler,
	installmentHandler *handlers.InstallmentHandler,
	healthHandler *handlers.HealthHandler,
	monitoringHandler *handlers.MonitoringHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.PanicRecovery)
	r.Use(middleware.RequestLogging)
	r.Use(middleware.MetricsMiddleware)

	// Public routes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authenticated account routes
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")
	authAPI.HandleFunc("/password", authHandler.ChangePassword).Methods("PUT")

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.CreateUser)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/{id}/active", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.SetActive)).ServeHTTP).Methods("PATCH")

	// Orders
	ordersAPI := r.PathPrefix("/api/orders").Subrouter()
	ordersAPI.Use(authMiddleware.Authenticate)
	ordersAPI.HandleFunc("", orderHandler.ListOrders).Methods("GET")
	ordersAPI.HandleFunc("", orderHandler.FinalizeOrder).Methods("POST")
	ordersAPI.HandleFunc("/{id}", orderHandler.GetOrder).Methods("GET")
	ordersAPI.HandleFunc("/{id}/cancel", authMiddleware.RequireAdmin(http.HandlerFunc(orderHandler.CancelOrder)).ServeHTTP).Methods("POST")

	// Invoice rendering
	ordersAPI.HandleFunc("/{id}/invoice", invoiceHandler.GenerateInvoice).Methods("POST")
	ordersAPI.HandleFunc("/{id}/invoice/download", invoiceHandler.DownloadInvoice).Methods("GET")
	ordersAPI.HandleFunc("/{id}/invoice/preview", invoiceHandler.PreviewInvoice).Methods("GET")
	ordersAPI.HandleFunc("/{id}/invoice/preview-text", invoiceHandler.PreviewInvoiceText).Methods("GET")

	invoicesAPI := r.PathPrefix("/api/invoices").Subrouter()
	invoicesAPI.Use(authMiddleware.Authenticate)
	invoicesAPI.HandleFunc("/bulk", invoiceHandler.GenerateBulk).Methods("POST")

	// Templates (editing is admin only)
	templatesAPI := r.PathPrefix("/api/templates").Subrouter()
	templatesAPI.Use(authMiddleware.Authenticate)
	templatesAPI.HandleFunc("", templateHandler.ListTemplates).Methods("GET")
	templatesAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(templateHandler.CreateTemplate)).ServeHTTP).Methods("POST")
	templatesAPI.HandleFunc("/{id}", templateHandler.GetTemplate).Methods("GET")
	templatesAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(templateHandler.UpdateTemplate)).ServeHTTP).Methods("PUT")
	templatesAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(templateHandler.DeleteTemplate)).ServeHTTP).Methods("DELETE")
	templatesAPI.HandleFunc("/{id}/default", authMiddleware.RequireAdmin(http.HandlerFunc(templateHandler.SetDefaultTemplate)).ServeHTTP).Methods("POST")
	templatesAPI.HandleFunc("/{id}/logo", assetHandler.GetLogo).Methods("GET")
	templatesAPI.HandleFunc("/{id}/logo", authMiddleware.RequireAdmin(http.HandlerFunc(assetHandler.UploadLogo)).ServeHTTP).Methods("POST")
	templatesAPI.HandleFunc("/{id}/logo", authMiddleware.RequireAdmin(http.HandlerFunc(assetHandler.DeleteLogo)).ServeHTTP).Methods("DELETE")

	// Format catalog
	formatsAPI := r.PathPrefix("/api/formats").Subrouter()
	formatsAPI.Use(authMiddleware.Authenticate)
	formatsAPI.HandleFunc("/sizes", formatHandler.ListSizes).Methods("GET")
	formatsAPI.HandleFunc("/styles", formatHandler.ListStyles).Methods("GET")
	formatsAPI.HandleFunc("/config", formatHandler.GetDefaultConfig).Methods("GET")
	formatsAPI.HandleFunc("/validate-margins", formatHandler.ValidateMargins).Methods("POST")
	formatsAPI.HandleFunc("/closest-size", formatHandler.ClosestSize).Methods("GET")

	// Settings and preferences
	settingsAPI := r.PathPrefix("/api/settings").Subrouter()
	settingsAPI.Use(authMiddleware.Authenticate)
	settingsAPI.HandleFunc("", settingHandler.GetSettings).Methods("GET")
	settingsAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(settingHandler.UpdateSettings)).ServeHTTP).Methods("PUT")
	settingsAPI.HandleFunc("/preferences", settingHandler.GetPreferences).Methods("GET")
	settingsAPI.HandleFunc("/preferences", settingHandler.SavePreferences).Methods("PUT")

	// Frequent order presets
	presetsAPI := r.PathPrefix("/api/frequent-orders").Subrouter()
	presetsAPI.Use(authMiddleware.Authenticate)
	presetsAPI.HandleFunc("", frequentOrderHandler.ListPresets).Methods("GET")
	presetsAPI.HandleFunc("", frequentOrderHandler.CreatePreset).Methods("POST")
	presetsAPI.HandleFunc("/{id}", frequentOrderHandler.UpdatePreset).Methods("PUT")
	presetsAPI.HandleFunc("/{id}", frequentOrderHandler.DeletePreset).Methods("DELETE")

	// Installments
	installmentsAPI := r.PathPrefix("/api/installments").Subrouter()
	installmentsAPI.Use(authMiddleware.Authenticate)
	installmentsAPI.HandleFunc("", installmentHandler.ListInstallments).Methods("GET")
	installmentsAPI.HandleFunc("", installmentHandler.CreateInstallment).Methods("POST")
	installmentsAPI.HandleFunc("/{id}/paid", installmentHandler.MarkPaid).Methods("POST")

	// Monitoring
	systemAPI := r.PathPrefix("/api/system").Subrouter()
	systemAPI.Use(authMiddleware.Authenticate)
	systemAPI.HandleFunc("/stats", authMiddleware.RequireAdmin(http.HandlerFunc(monitoringHandler.SystemStats)).ServeHTTP).Methods("GET")

	// Browsers cannot send an Authorization header on a websocket upgrade,
	// so the dashboard feed sits outside the auth subrouters and the
	// handler validates a token query parameter instead.
	r.HandleFunc("/ws/dashboard", monitoringHandler.DashboardWS)

	return r
}
