package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type TemplateRepository struct {
	DB *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

func (r *TemplateRepository) Create(ctx context.Context, t *models.InvoiceTemplate) error {
	header, footer, styles, business, err := marshalTemplateParts(t)
	if err != nil {
		return err
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Only one template may be default at a time.
	if t.IsDefault {
		if _, err := tx.Exec(ctx, `UPDATE invoice_templates SET is_default=FALSE WHERE is_default`); err != nil {
			return err
		}
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO invoice_templates(name, is_default, header, footer, styles, business_info)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		t.Name, t.IsDefault, header, footer, styles, business,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *TemplateRepository) Get(ctx context.Context, id int) (*models.InvoiceTemplate, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, is_default, header, footer, styles, business_info, created_at
		 FROM invoice_templates WHERE id=$1`, id)
	return scanTemplate(row)
}

// GetDefault returns the default template. There is always one; the seed
// migration guarantees it.
func (r *TemplateRepository) GetDefault(ctx context.Context) (*models.InvoiceTemplate, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, is_default, header, footer, styles, business_info, created_at
		 FROM invoice_templates WHERE is_default LIMIT 1`)
	return scanTemplate(row)
}

func (r *TemplateRepository) List(ctx context.Context) ([]*models.InvoiceTemplate, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, is_default, header, footer, styles, business_info, created_at
		 FROM invoice_templates ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.InvoiceTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *TemplateRepository) Update(ctx context.Context, t *models.InvoiceTemplate) error {
	header, footer, styles, business, err := marshalTemplateParts(t)
	if err != nil {
		return err
	}

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if t.IsDefault {
		if _, err := tx.Exec(ctx,
			`UPDATE invoice_templates SET is_default=FALSE WHERE is_default AND id<>$1`, t.ID); err != nil {
			return err
		}
	}

	tag, err := tx.Exec(ctx,
		`UPDATE invoice_templates
		 SET name=$1, is_default=$2, header=$3, footer=$4, styles=$5, business_info=$6
		 WHERE id=$7`,
		t.Name, t.IsDefault, header, footer, styles, business, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %d not found", t.ID)
	}

	return tx.Commit(ctx)
}

// Delete removes a non-default template. Deleting the default is refused
// so invoice generation always has a fallback.
func (r *TemplateRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM invoice_templates WHERE id=$1 AND NOT is_default`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %d not found or is the default", id)
	}
	return nil
}

// SetDefault makes the given template the single default.
func (r *TemplateRepository) SetDefault(ctx context.Context, id int) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE invoice_templates SET is_default=FALSE WHERE is_default`); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `UPDATE invoice_templates SET is_default=TRUE WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("template %d not found", id)
	}

	return tx.Commit(ctx)
}

func marshalTemplateParts(t *models.InvoiceTemplate) (header, footer, styles, business []byte, err error) {
	if header, err = json.Marshal(t.Header); err != nil {
		return
	}
	if footer, err = json.Marshal(t.Footer); err != nil {
		return
	}
	if styles, err = json.Marshal(t.Styles); err != nil {
		return
	}
	business, err = json.Marshal(t.BusinessInfo)
	return
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTemplate(row rowScanner) (*models.InvoiceTemplate, error) {
	var t models.InvoiceTemplate
	var header, footer, styles, business []byte
	err := row.Scan(&t.ID, &t.Name, &t.IsDefault, &header, &footer, &styles, &business, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(header, &t.Header); err != nil {
		return nil, fmt.Errorf("bad header JSON for template %d: %w", t.ID, err)
	}
	if err := json.Unmarshal(footer, &t.Footer); err != nil {
		return nil, fmt.Errorf("bad footer JSON for template %d: %w", t.ID, err)
	}
	if err := json.Unmarshal(styles, &t.Styles); err != nil {
		return nil, fmt.Errorf("bad styles JSON for template %d: %w", t.ID, err)
	}
	if err := json.Unmarshal(business, &t.BusinessInfo); err != nil {
		return nil, fmt.Errorf("bad business_info JSON for template %d: %w", t.ID, err)
	}
	return &t, nil
}
