package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/furqanmax/Simple-POS/internal/metrics"
	"github.com/furqanmax/Simple-POS/internal/models"
	"github.com/furqanmax/Simple-POS/internal/monitoring"
	"github.com/furqanmax/Simple-POS/internal/repositories"
)

// Item validation bounds.
const (
	maxItemNameLen = 128
	maxQuantity    = 999999
	maxUnitPrice   = 9999999.99
)

type OrderService struct {
	OrderRepo    *repositories.OrderRepository
	TemplateRepo *repositories.TemplateRepository
	SettingRepo  *repositories.SettingRepository
	Hub          *monitoring.Hub
}

func NewOrderService(orderRepo *repositories.OrderRepository, templateRepo *repositories.TemplateRepository, settingRepo *repositories.SettingRepository, hub *monitoring.Hub) *OrderService {
	return &OrderService{
		OrderRepo:    orderRepo,
		TemplateRepo: templateRepo,
		SettingRepo:  settingRepo,
		Hub:          hub,
	}
}

// ValidateItem checks one line item against the input bounds.
func ValidateItem(item models.OrderItemInput) error {
	nameLen := utf8.RuneCountInString(item.Name)
	if nameLen < 1 || nameLen > maxItemNameLen {
		return fmt.Errorf("item name must be 1 to %d characters", maxItemNameLen)
	}
	if item.Quantity <= 0 || item.Quantity > maxQuantity {
		return fmt.Errorf("quantity must be greater than 0 and at most %d", maxQuantity)
	}
	if item.UnitPrice < 0 || item.UnitPrice > maxUnitPrice {
		return fmt.Errorf("unit price must be between 0 and %.2f", maxUnitPrice)
	}
	return nil
}

// round2 rounds money amounts to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives line totals, subtotal, tax and grand total from the
// raw inputs. Each line total is rounded before summing so what prints per
// line adds up to the printed subtotal.
func ComputeTotals(items []models.OrderItemInput, taxRate float64) (lines []models.OrderItem, subtotal, taxTotal, grandTotal float64) {
	for _, in := range items {
		line := round2(in.Quantity * in.UnitPrice)
		lines = append(lines, models.OrderItem{
			Name:      in.Name,
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
			LineTotal: line,
		})
		subtotal += line
	}
	subtotal = round2(subtotal)
	taxTotal = round2(subtotal * taxRate / 100)
	grandTotal = round2(subtotal + taxTotal)
	return lines, subtotal, taxTotal, grandTotal
}

// Finalize validates the items, computes totals, freezes the invoice
// snapshot and stores everything in one transaction.
func (s *OrderService) Finalize(ctx context.Context, userID int, req *models.FinalizeOrderRequest) (*models.OrderWithItems, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("cannot finalize an empty order")
	}
	for i, item := range req.Items {
		if err := ValidateItem(item); err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	settings, err := s.SettingRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	taxRate := settings.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	if taxRate < 0 || taxRate > 100 {
		return nil, errors.New("tax rate must be between 0 and 100")
	}

	var template *models.InvoiceTemplate
	if req.TemplateID != nil {
		template, err = s.TemplateRepo.Get(ctx, *req.TemplateID)
	} else {
		template, err = s.TemplateRepo.GetDefault(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load template: %w", err)
	}

	lines, subtotal, taxTotal, grandTotal := ComputeTotals(req.Items, taxRate)

	now := time.Now()
	snapshot := &models.InvoiceSnapshot{
		CreatedAt:  now,
		Items:      lines,
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		TaxTotal:   taxTotal,
		GrandTotal: grandTotal,
		Template: models.TemplateContent{
			Name:         template.Name,
			Header:       template.Header,
			Footer:       template.Footer,
			Styles:       template.Styles,
			BusinessInfo: template.BusinessInfo,
		},
		Settings: models.SnapshotSettings{
			CurrencySymbol: settings.CurrencySymbol,
			Locale:         settings.Locale,
			TimeZone:       settings.TimeZone,
			PageSize:       settings.PageSize,
		},
	}

	order := &models.Order{
		UserID:            userID,
		Subtotal:          subtotal,
		TaxRate:           taxRate,
		TaxTotal:          taxTotal,
		GrandTotal:        grandTotal,
		InvoiceTemplateID: &template.ID,
	}

	if err := s.OrderRepo.CreateFinalized(ctx, order, lines, snapshot); err != nil {
		return nil, fmt.Errorf("failed to finalize order: %w", err)
	}

	metrics.OrdersFinalized.Inc()
	if s.Hub != nil {
		s.Hub.Publish(monitoring.Event{
			Type:      "order_finalized",
			OrderID:   order.ID,
			Message:   fmt.Sprintf("Order #%d finalized, total %.2f", order.ID, grandTotal),
			Timestamp: now,
		})
	}

	return &models.OrderWithItems{Order: *order, Items: lines}, nil
}

func (s *OrderService) Get(ctx context.Context, id int) (*models.OrderWithItems, error) {
	return s.OrderRepo.Get(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	return s.OrderRepo.List(ctx, filter)
}

// Cancel voids a finalized order. The order row and snapshot stay for the
// audit trail.
func (s *OrderService) Cancel(ctx context.Context, id int) error {
	affected, err := s.OrderRepo.Cancel(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to cancel order %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("order %d not found or not in finalized state", id)
	}
	if s.Hub != nil {
		s.Hub.Publish(monitoring.Event{
			Type:      "order_canceled",
			OrderID:   id,
			Message:   fmt.Sprintf("Order #%d canceled", id),
			Timestamp: time.Now(),
		})
	}
	return nil
}
