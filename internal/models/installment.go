package models

import "time"

// Installment payment statuses.
const (
	InstallmentPending = "pending"
	InstallmentPaid    = "paid"
	InstallmentOverdue = "overdue"
)

// Installment tracks a deferred payment against an order.
type Installment struct {
	ID            int        `json:"id"`
	OrderID       *int       `json:"order_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	Amount        float64    `json:"amount"`
	DueDate       time.Time  `json:"due_date"`
	PaidDate      *time.Time `json:"paid_date"`
	Status        string     `json:"status"`
	Notes         string     `json:"notes"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateInstallmentRequest struct {
	OrderID       *int      `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Amount        float64   `json:"amount"`
	DueDate       time.Time `json:"due_date"`
	Notes         string    `json:"notes"`
}
