package models

import "time"

// InvoiceTemplate is an admin-managed invoice appearance preset. The JSON
// sub-documents are stored as JSONB columns.
type InvoiceTemplate struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	IsDefault    bool           `json:"is_default"`
	Header       TemplateHeader `json:"header"`
	Footer       TemplateFooter `json:"footer"`
	Styles       TemplateStyles `json:"styles"`
	BusinessInfo BusinessInfo   `json:"business_info"`
	CreatedAt    time.Time      `json:"created_at"`
}

// TemplateContent is the template portion embedded in invoice snapshots.
type TemplateContent struct {
	Name         string         `json:"name"`
	Header       TemplateHeader `json:"header"`
	Footer       TemplateFooter `json:"footer"`
	Styles       TemplateStyles `json:"styles"`
	BusinessInfo BusinessInfo   `json:"business_info"`
}

type TemplateHeader struct {
	ShowLogo         bool   `json:"show_logo"`
	ShowBusinessInfo bool   `json:"show_business_info"`
	Title            string `json:"title"`
}

type TemplateFooter struct {
	Text     string `json:"text"`
	ShowDate bool   `json:"show_date"`
}

// TemplateStyles carries the template's margin overrides (mm) and base font
// choices. Margins are validated against category minimums on save.
type TemplateStyles struct {
	FontFamily     string  `json:"font_family"`
	FontSize       int     `json:"font_size"`
	HeaderFontSize int     `json:"header_font_size"`
	MarginTop      float64 `json:"margin_top"`
	MarginBottom   float64 `json:"margin_bottom"`
	MarginLeft     float64 `json:"margin_left"`
	MarginRight    float64 `json:"margin_right"`
}

type BusinessInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	TaxID   string `json:"tax_id"`
}

// CreateTemplateRequest creates or updates a template.
type CreateTemplateRequest struct {
	Name         string         `json:"name"`
	IsDefault    bool           `json:"is_default"`
	Header       TemplateHeader `json:"header"`
	Footer       TemplateFooter `json:"footer"`
	Styles       TemplateStyles `json:"styles"`
	BusinessInfo BusinessInfo   `json:"business_info"`
}

// InvoiceAsset is an image attached to a template (logo or QR payload image).
type InvoiceAsset struct {
	ID          int       `json:"id"`
	TemplateID  int       `json:"template_id"`
	Type        string    `json:"type"`         // logo, qr
	StorageKind string    `json:"storage_kind"` // file, blob
	Path        string    `json:"path,omitempty"`
	Blob        []byte    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
