package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type SettingRepository struct {
	DB *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{DB: db}
}

// Get returns the singleton settings row.
func (r *SettingRepository) Get(ctx context.Context) (*models.Settings, error) {
	var s models.Settings
	err := r.DB.QueryRow(ctx,
		`SELECT currency_symbol, default_tax_rate, locale, time_zone, page_size, invoice_folder
		 FROM settings WHERE id=1`,
	).Scan(&s.CurrencySymbol, &s.DefaultTaxRate, &s.Locale, &s.TimeZone, &s.PageSize, &s.InvoiceFolder)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update applies the non-nil fields of the request and returns the updated row.
func (r *SettingRepository) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.Settings, error) {
	_, err := r.DB.Exec(ctx,
		`UPDATE settings SET
		   currency_symbol = COALESCE($1, currency_symbol),
		   default_tax_rate = COALESCE($2, default_tax_rate),
		   locale = COALESCE($3, locale),
		   time_zone = COALESCE($4, time_zone),
		   page_size = COALESCE($5, page_size),
		   invoice_folder = COALESCE($6, invoice_folder)
		 WHERE id=1`,
		req.CurrencySymbol, req.DefaultTaxRate, req.Locale, req.TimeZone, req.PageSize, req.InvoiceFolder)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
