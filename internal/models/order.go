package models

import (
	"encoding/json"
	"time"
)

// Order statuses. Draft orders never reach the database; an order row is
// created at finalization time and can only move to canceled afterwards.
const (
	OrderStatusFinalized = "finalized"
	OrderStatusCanceled  = "canceled"
)

// Order represents a finalized sale.
type Order struct {
	ID                int             `json:"id"`
	UserID            int             `json:"user_id"`
	Username          string          `json:"username,omitempty"`
	Subtotal          float64         `json:"subtotal"`
	TaxRate           float64         `json:"tax_rate"`
	TaxTotal          float64         `json:"tax_total"`
	GrandTotal        float64         `json:"grand_total"`
	Status            string          `json:"status"`
	InvoiceTemplateID *int            `json:"invoice_template_id"`
	InvoiceSnapshot   json.RawMessage `json:"invoice_snapshot,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        int     `json:"id"`
	OrderID   int     `json:"order_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// OrderWithItems bundles an order with its line items.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderItemInput is a caller-supplied line item before validation.
type OrderItemInput struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// FinalizeOrderRequest creates and finalizes an order in one step.
type FinalizeOrderRequest struct {
	Items      []OrderItemInput `json:"items"`
	TaxRate    *float64         `json:"tax_rate,omitempty"`    // default from settings
	TemplateID *int             `json:"template_id,omitempty"` // default template when nil
}

// OrderFilter narrows order-history queries.
type OrderFilter struct {
	UserID    int
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// InvoiceSnapshot freezes everything needed to re-render an invoice exactly
// as it looked at finalization time, independent of later template or
// settings edits.
type InvoiceSnapshot struct {
	CreatedAt  time.Time        `json:"created_at"`
	Items      []OrderItem      `json:"items"`
	Subtotal   float64          `json:"subtotal"`
	TaxRate    float64          `json:"tax_rate"`
	TaxTotal   float64          `json:"tax_total"`
	GrandTotal float64          `json:"grand_total"`
	Template   TemplateContent  `json:"template"`
	Settings   SnapshotSettings `json:"settings"`
}

// SnapshotSettings is the slice of system settings captured in a snapshot.
type SnapshotSettings struct {
	CurrencySymbol string `json:"currency_symbol"`
	Locale         string `json:"locale"`
	TimeZone       string `json:"time_zone"`
	PageSize       string `json:"page_size"`
}
