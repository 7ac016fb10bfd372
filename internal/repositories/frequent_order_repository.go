package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type FrequentOrderRepository struct {
	DB *pgxpool.Pool
}

func NewFrequentOrderRepository(db *pgxpool.Pool) *FrequentOrderRepository {
	return &FrequentOrderRepository{DB: db}
}

func (r *FrequentOrderRepository) Create(ctx context.Context, fo *models.FrequentOrder) error {
	items, err := json.Marshal(fo.Items)
	if err != nil {
		return err
	}
	fo.Active = true
	fo.IsGlobal = fo.OwnerUserID == nil
	return r.DB.QueryRow(ctx,
		`INSERT INTO frequent_orders(label, owner_user_id, items, active)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, created_at`,
		fo.Label, fo.OwnerUserID, items, fo.Active,
	).Scan(&fo.ID, &fo.CreatedAt)
}

func (r *FrequentOrderRepository) Get(ctx context.Context, id int) (*models.FrequentOrder, error) {
	var fo models.FrequentOrder
	var items []byte
	err := r.DB.QueryRow(ctx,
		`SELECT id, label, owner_user_id, items, active, created_at
		 FROM frequent_orders WHERE id=$1`, id,
	).Scan(&fo.ID, &fo.Label, &fo.OwnerUserID, &items, &fo.Active, &fo.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &fo.Items); err != nil {
		return nil, fmt.Errorf("bad items JSON for frequent order %d: %w", fo.ID, err)
	}
	fo.IsGlobal = fo.OwnerUserID == nil
	return &fo, nil
}

// ListForUser returns active presets visible to the operator: their own
// plus the global ones.
func (r *FrequentOrderRepository) ListForUser(ctx context.Context, userID int) ([]*models.FrequentOrder, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, label, owner_user_id, items, active, created_at
		 FROM frequent_orders
		 WHERE active AND (owner_user_id IS NULL OR owner_user_id = $1)
		 ORDER BY label`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []*models.FrequentOrder
	for rows.Next() {
		var fo models.FrequentOrder
		var items []byte
		if err := rows.Scan(&fo.ID, &fo.Label, &fo.OwnerUserID, &items, &fo.Active, &fo.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &fo.Items); err != nil {
			return nil, fmt.Errorf("bad items JSON for frequent order %d: %w", fo.ID, err)
		}
		fo.IsGlobal = fo.OwnerUserID == nil
		presets = append(presets, &fo)
	}
	return presets, rows.Err()
}

func (r *FrequentOrderRepository) Update(ctx context.Context, fo *models.FrequentOrder) error {
	items, err := json.Marshal(fo.Items)
	if err != nil {
		return err
	}
	tag, err := r.DB.Exec(ctx,
		`UPDATE frequent_orders SET label=$1, items=$2 WHERE id=$3 AND active`,
		fo.Label, items, fo.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("frequent order %d not found", fo.ID)
	}
	return nil
}

// Deactivate soft-deletes a preset so past orders built from it stay
// explainable.
func (r *FrequentOrderRepository) Deactivate(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE frequent_orders SET active=FALSE WHERE id=$1 AND active`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("frequent order %d not found", id)
	}
	return nil
}
