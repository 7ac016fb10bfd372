package models

import "time"

// User roles. Admins manage users, templates, settings and can cancel orders.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// UserPreference holds per-operator overrides of the global settings.
type UserPreference struct {
	UserID         int      `json:"user_id"`
	CurrencySymbol *string  `json:"currency_symbol"`
	DateFormat     string   `json:"date_format"`
	Language       string   `json:"language"`
	TaxRate        *float64 `json:"tax_rate"`
	ShowTax        bool     `json:"show_tax"`
	AutoPrint      bool     `json:"auto_print"`
	InvoiceCopies  int      `json:"invoice_copies"`
	EnableSound    bool     `json:"enable_sound"`
	AutoClearOrder bool     `json:"auto_clear_order"`
}
