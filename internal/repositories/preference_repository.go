package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type PreferenceRepository struct {
	DB *pgxpool.Pool
}

func NewPreferenceRepository(db *pgxpool.Pool) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Get returns the operator's preferences, falling back to defaults when no
// row exists yet.
func (r *PreferenceRepository) Get(ctx context.Context, userID int) (*models.UserPreference, error) {
	var p models.UserPreference
	err := r.DB.QueryRow(ctx,
		`SELECT user_id, currency_symbol, date_format, language, tax_rate,
		        show_tax, auto_print, invoice_copies, enable_sound, auto_clear_order
		 FROM user_preferences WHERE user_id=$1`, userID,
	).Scan(&p.UserID, &p.CurrencySymbol, &p.DateFormat, &p.Language, &p.TaxRate,
		&p.ShowTax, &p.AutoPrint, &p.InvoiceCopies, &p.EnableSound, &p.AutoClearOrder)
	if err == pgx.ErrNoRows {
		return &models.UserPreference{
			UserID:         userID,
			DateFormat:     "MM/DD/YYYY",
			Language:       "English",
			ShowTax:        true,
			InvoiceCopies:  1,
			EnableSound:    true,
			AutoClearOrder: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save upserts the operator's preferences.
func (r *PreferenceRepository) Save(ctx context.Context, p *models.UserPreference) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO user_preferences(user_id, currency_symbol, date_format, language, tax_rate,
		                              show_tax, auto_print, invoice_copies, enable_sound, auto_clear_order)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id) DO UPDATE SET
		   currency_symbol=EXCLUDED.currency_symbol,
		   date_format=EXCLUDED.date_format,
		   language=EXCLUDED.language,
		   tax_rate=EXCLUDED.tax_rate,
		   show_tax=EXCLUDED.show_tax,
		   auto_print=EXCLUDED.auto_print,
		   invoice_copies=EXCLUDED.invoice_copies,
		   enable_sound=EXCLUDED.enable_sound,
		   auto_clear_order=EXCLUDED.auto_clear_order,
		   updated_at=now()`,
		p.UserID, p.CurrencySymbol, p.DateFormat, p.Language, p.TaxRate,
		p.ShowTax, p.AutoPrint, p.InvoiceCopies, p.EnableSound, p.AutoClearOrder)
	return err
}
