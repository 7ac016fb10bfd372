package models

// Settings is the singleton system configuration row.
type Settings struct {
	CurrencySymbol string  `json:"currency_symbol"`
	DefaultTaxRate float64 `json:"default_tax_rate"`
	Locale         string  `json:"locale"`
	TimeZone       string  `json:"time_zone"`
	PageSize       string  `json:"page_size"` // default BillSize name, e.g. "A4"
	InvoiceFolder  string  `json:"invoice_folder"`
}

// UpdateSettingsRequest carries partial settings updates; nil fields are left
// unchanged.
type UpdateSettingsRequest struct {
	CurrencySymbol *string  `json:"currency_symbol,omitempty"`
	DefaultTaxRate *float64 `json:"default_tax_rate,omitempty"`
	Locale         *string  `json:"locale,omitempty"`
	TimeZone       *string  `json:"time_zone,omitempty"`
	PageSize       *string  `json:"page_size,omitempty"`
	InvoiceFolder  *string  `json:"invoice_folder,omitempty"`
}
