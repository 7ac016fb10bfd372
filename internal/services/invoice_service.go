package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/furqanmax/Simple-POS/internal/cache"
	"github.com/furqanmax/Simple-POS/internal/format"
	"github.com/furqanmax/Simple-POS/internal/metrics"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/monitoring"
	"github.com/furqanmax/Simple-POS/internal/render"
	"github.com/furqanmax/Simple-POS/internal/repositories"
	"github.com/furqanmax/Simple-POS/internal/storage"
)

const bulkWorkers = 5

// GenerateRequest selects what to render and how.
type GenerateRequest struct {
	OrderID    int
	Size       string // BillSize name; empty means the settings default
	Style      string // layout style name; empty means classic
	Preview    bool   // preview renders are not archived
	QRPayloads []string
}

// GenerateResult is one rendered invoice.
type GenerateResult struct {
	OrderID  int    `json:"order_id"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Size     string `json:"size"`
	Bytes    int    `json:"bytes"`
	Err      string `json:"error,omitempty"`
}

type InvoiceService struct {
	OrderRepo   *repositories.OrderRepository
	AssetRepo   *repositories.AssetRepository
	SettingRepo *repositories.SettingRepository
	Archive     *storage.Archive
	Hub         *monitoring.Hub
	Folder      string
	DefaultSize string // used when the settings row is unreachable
}

func NewInvoiceService(orderRepo *repositories.OrderRepository, assetRepo *repositories.AssetRepository, settingRepo *repositories.SettingRepository, archive *storage.Archive, hub *monitoring.Hub, folder, defaultSize string) *InvoiceService {
	return &InvoiceService{
		OrderRepo:   orderRepo,
		AssetRepo:   assetRepo,
		SettingRepo: settingRepo,
		Archive:     archive,
		Hub:         hub,
		Folder:      folder,
		DefaultSize: defaultSize,
	}
}

// settings returns the settings row, cache first.
func (s *InvoiceService) settings(ctx context.Context) (*models.Settings, error) {
	if cached, ok := cache.GetCachedSettings(ctx); ok {
		return cached, nil
	}
	settings, err := s.SettingRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	cache.CacheSettings(ctx, settings)
	return settings, nil
}

// ResolveConfig turns the request's size and style names into a layout
// config, consulting the settings default page size when none is given.
func (s *InvoiceService) ResolveConfig(ctx context.Context, sizeName, styleName string) (format.LayoutConfig, error) {
	if sizeName == "" {
		settings, err := s.settings(ctx)
		if err != nil {
			if s.DefaultSize == "" {
				return format.LayoutConfig{}, fmt.Errorf("failed to load settings: %w", err)
			}
			sizeName = s.DefaultSize
		} else {
			sizeName = settings.PageSize
		}
	}
	size, err := format.ParseBillSize(sizeName)
	if err != nil {
		return format.LayoutConfig{}, err
	}
	style := format.ParseLayoutStyle(styleName)
	return format.DefaultConfig(size, style), nil
}

// Generate renders one invoice PDF from the order's frozen snapshot, writes
// it to the invoice folder and, for finalized (non-preview) renders,
// uploads it to the archive.
func (s *InvoiceService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	cfg, err := s.ResolveConfig(ctx, req.Size, req.Style)
	if err != nil {
		return nil, err
	}

	order, err := s.OrderRepo.Get(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order %d: %w", req.OrderID, err)
	}
	snapshot, err := s.OrderRepo.GetSnapshot(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for order %d: %w", req.OrderID, err)
	}

	doc := s.buildDocument(ctx, order, snapshot, cfg, req.QRPayloads)

	start := time.Now()
	driver := render.ForConfig(cfg)
	pdf, err := driver.Render(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice for order %d: %w", req.OrderID, err)
	}
	metrics.InvoiceRenderDuration.Observe(time.Since(start).Seconds())
	metrics.InvoicesGenerated.WithLabelValues(string(cfg.Size.Category())).Inc()

	folder := s.Folder
	if settings, serr := s.settings(ctx); serr == nil {
		folder = outputFolder(settings, s.Folder)
	}
	filename := invoiceFilename(req.OrderID, cfg.Size, req.Preview, time.Now())
	path := filepath.Join(folder, filename)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create invoice folder: %w", err)
	}
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write invoice file: %w", err)
	}

	if !req.Preview && s.Archive != nil && s.Archive.Enabled() {
		if err := s.Archive.StoreInvoice(ctx, filename, pdf); err != nil {
			// Archive failures never block the sale; the local copy exists.
			log.Printf("[Invoice] Archive upload failed for %s: %v", filename, err)
		}
	}

	if s.Hub != nil && !req.Preview {
		s.Hub.Publish(monitoring.Event{
			Type:      "invoice_generated",
			OrderID:   req.OrderID,
			Message:   fmt.Sprintf("Invoice %s generated", filename),
			Timestamp: time.Now(),
		})
	}

	return &GenerateResult{
		OrderID:  req.OrderID,
		Filename: filename,
		Path:     path,
		Size:     cfg.Size.String(),
		Bytes:    len(pdf),
	}, nil
}

// PreviewText renders the thermal receipt as plain text, used by the UI's
// live preview pane for thermal sizes.
func (s *InvoiceService) PreviewText(ctx context.Context, req GenerateRequest) (string, error) {
	cfg, err := s.ResolveConfig(ctx, req.Size, req.Style)
	if err != nil {
		return "", err
	}
	if !cfg.Size.IsThermal() {
		return "", fmt.Errorf("text preview is only available for thermal sizes, got %s", cfg.Size)
	}

	order, err := s.OrderRepo.Get(ctx, req.OrderID)
	if err != nil {
		return "", fmt.Errorf("failed to load order %d: %w", req.OrderID, err)
	}
	snapshot, err := s.OrderRepo.GetSnapshot(ctx, req.OrderID)
	if err != nil {
		return "", fmt.Errorf("failed to load snapshot for order %d: %w", req.OrderID, err)
	}

	doc := s.buildDocument(ctx, order, snapshot, cfg, req.QRPayloads)
	return render.BuildReceiptText(doc), nil
}

// GenerateBulk renders invoices for many orders concurrently. Per-order
// failures are reported in the result slice instead of aborting the batch.
func (s *InvoiceService) GenerateBulk(ctx context.Context, orderIDs []int, size, style string) []GenerateResult {
	results := make([]GenerateResult, len(orderIDs))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < bulkWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res, err := s.Generate(ctx, GenerateRequest{
					OrderID: orderIDs[idx],
					Size:    size,
					Style:   style,
				})
				if err != nil {
					results[idx] = GenerateResult{OrderID: orderIDs[idx], Err: err.Error()}
					continue
				}
				results[idx] = *res
			}
		}()
	}
	for idx := range orderIDs {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

func (s *InvoiceService) buildDocument(ctx context.Context, order *models.OrderWithItems, snapshot *models.InvoiceSnapshot, cfg format.LayoutConfig, qrPayloads []string) *render.Document {
	doc := &render.Document{
		Order:       order.Order,
		Items:       snapshot.Items,
		Business:    snapshot.Template.BusinessInfo,
		Header:      snapshot.Template.Header,
		Footer:      snapshot.Template.Footer,
		Currency:    snapshot.Settings.CurrencySymbol,
		QRPayloads:  qrPayloads,
		Config:      cfg,
		GeneratedAt: time.Now(),
	}
	// Totals come from the snapshot, not the live row, so re-renders match
	// the original paperwork even after data fixes.
	doc.Order.Subtotal = snapshot.Subtotal
	doc.Order.TaxRate = snapshot.TaxRate
	doc.Order.TaxTotal = snapshot.TaxTotal
	doc.Order.GrandTotal = snapshot.GrandTotal

	if snapshot.Template.Header.ShowLogo && order.InvoiceTemplateID != nil && s.AssetRepo != nil {
		if logo, err := s.AssetRepo.GetLogo(ctx, *order.InvoiceTemplateID); err == nil && logo != nil {
			if logo.StorageKind == "blob" {
				doc.Logo = logo.Blob
			} else if logo.Path != "" {
				if data, err := os.ReadFile(logo.Path); err == nil {
					doc.Logo = data
				}
			}
		}
	}
	return doc
}

// outputFolder prefers the operator-editable invoice folder setting over
// the configured default.
func outputFolder(settings *models.Settings, fallback string) string {
	if settings != nil && settings.InvoiceFolder != "" {
		return settings.InvoiceFolder
	}
	return fallback
}

func invoiceFilename(orderID int, size format.BillSize, preview bool, now time.Time) string {
	suffix := ""
	if preview {
		suffix = "_preview"
	}
	return fmt.Sprintf("invoice_%d_%s%s_%s.pdf", orderID, size.String(), suffix, now.Format("20060102_150405"))
}
