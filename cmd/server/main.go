package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/furqanmax/Simple-POS/internal/auth"
	"github.com/furqanmax/Simple-POS/internal/cache"
	"github.com/furqanmax/Simple-POS/internal/config"
	"github.com/furqanmax/Simple-POS/internal/database"
	"github.com/furqanmax/Simple-POS/internal/db"
	"github.com/furqanmax/Simple-POS/internal/handlers"
	appHTTP "github.com/furqanmax/Simple-POS/internal/http"
	"github.com/furqanmax/Simple-POS/internal/middleware"
	"github.com/furqanmax/Simple-POS/internal/monitoring"
	"github.com/furqanmax/Simple-POS/internal/repositories"
	"github.com/furqanmax/Simple-POS/internal/services"
	"github.com/furqanmax/Simple-POS/internal/storage"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional; lookups just miss when it is down.
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (continuing without cache)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to run migrations: %v", err)
	}
	cancel()

	jwtManager := auth.NewJWTManager(cfg)
	archive := storage.NewArchive(cfg)
	hub := monitoring.NewHub()
	collector := monitoring.NewCollector(pool)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	templateRepo := repositories.NewTemplateRepository(pool)
	settingRepo := repositories.NewSettingRepository(pool)
	frequentOrderRepo := repositories.NewFrequentOrderRepository(pool)
	installmentRepo := repositories.NewInstallmentRepository(pool)
	preferenceRepo := repositories.NewPreferenceRepository(pool)
	assetRepo := repositories.NewAssetRepository(pool)

	// Services
	userService := services.NewUserService(userRepo, jwtManager)
	orderService := services.NewOrderService(orderRepo, templateRepo, settingRepo, hub)
	invoiceService := services.NewInvoiceService(orderRepo, assetRepo, settingRepo, archive, hub, cfg.Invoice.Folder, cfg.Invoice.DefaultPageSize)
	templateService := services.NewTemplateService(templateRepo)
	settingService := services.NewSettingService(settingRepo)
	installmentService := services.NewInstallmentService(installmentRepo)

	if err := userService.EnsureAdmin(context.Background(), os.Getenv("ADMIN_PASSWORD")); err != nil {
		log.Printf("[Users] Failed to seed admin user: %v", err)
	}

	sweepCtx, sweepCancel := context.WithCancel(context.Background())
	defer sweepCancel()
	installmentService.StartOverdueSweep(sweepCtx)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	templateHandler := handlers.NewTemplateHandler(templateService)
	assetHandler := handlers.NewAssetHandler(assetRepo, templateService)
	formatHandler := handlers.NewFormatHandler()
	settingHandler := handlers.NewSettingHandler(settingService, preferenceRepo)
	frequentOrderHandler := handlers.NewFrequentOrderHandler(frequentOrderRepo)
	installmentHandler := handlers.NewInstallmentHandler(installmentService)
	healthHandler := handlers.NewHealthHandler(pool)
	monitoringHandler := handlers.NewMonitoringHandler(collector, hub, jwtManager)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	router := appHTTP.NewRouter(
		authHandler,
		userHandler,
		orderHandler,
		invoiceHandler,
		templateHandler,
		assetHandler,
		formatHandler,
		settingHandler,
		frequentOrderHandler,
		installmentHandler,
		healthHandler,
		monitoringHandler,
		authMiddleware,
	)

	handler := middleware.NewCORS(cfg)(router)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("POS server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
