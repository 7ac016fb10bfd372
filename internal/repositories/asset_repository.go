package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type AssetRepository struct {
	DB *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) *AssetRepository {
	return &AssetRepository{DB: db}
}

func (r *AssetRepository) Create(ctx context.Context, a *models.InvoiceAsset) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO invoice_assets(template_id, type, storage_kind, path, blob)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		a.TemplateID, a.Type, a.StorageKind, a.Path, a.Blob,
	).Scan(&a.ID, &a.CreatedAt)
}

// GetLogo returns the most recent logo asset for a template, or nil when
// the template has none.
func (r *AssetRepository) GetLogo(ctx context.Context, templateID int) (*models.InvoiceAsset, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, template_id, type, storage_kind, COALESCE(path, ''), blob, created_at
		 FROM invoice_assets
		 WHERE template_id=$1 AND type='logo'
		 ORDER BY created_at DESC LIMIT 1`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	var a models.InvoiceAsset
	if err := rows.Scan(&a.ID, &a.TemplateID, &a.Type, &a.StorageKind, &a.Path, &a.Blob, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM invoice_assets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %d not found", id)
	}
	return nil
}
