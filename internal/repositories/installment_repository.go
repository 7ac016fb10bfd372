package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type InstallmentRepository struct {
	DB *pgxpool.Pool
}

func NewInstallmentRepository(db *pgxpool.Pool) *InstallmentRepository {
	return &InstallmentRepository{DB: db}
}

func (r *InstallmentRepository) Create(ctx context.Context, inst *models.Installment) error {
	inst.Status = models.InstallmentPending
	return r.DB.QueryRow(ctx,
		`INSERT INTO installments(order_id, customer_name, customer_phone, amount, due_date, status, notes)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		inst.OrderID, inst.CustomerName, inst.CustomerPhone, inst.Amount,
		inst.DueDate, inst.Status, inst.Notes,
	).Scan(&inst.ID, &inst.CreatedAt)
}

func (r *InstallmentRepository) Get(ctx context.Context, id int) (*models.Installment, error) {
	var inst models.Installment
	err := r.DB.QueryRow(ctx,
		`SELECT id, order_id, customer_name, COALESCE(customer_phone, ''), amount,
		        due_date, paid_date, status, notes, created_at
		 FROM installments WHERE id=$1`, id,
	).Scan(&inst.ID, &inst.OrderID, &inst.CustomerName, &inst.CustomerPhone,
		&inst.Amount, &inst.DueDate, &inst.PaidDate, &inst.Status, &inst.Notes, &inst.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

// List returns installments, optionally filtered by status, due soonest first.
func (r *InstallmentRepository) List(ctx context.Context, status string) ([]*models.Installment, error) {
	query := `SELECT id, order_id, customer_name, COALESCE(customer_phone, ''), amount,
	                 due_date, paid_date, status, notes, created_at
	          FROM installments`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status=$1`
		args = append(args, status)
	}
	query += ` ORDER BY due_date, id`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var installments []*models.Installment
	for rows.Next() {
		var inst models.Installment
		if err := rows.Scan(&inst.ID, &inst.OrderID, &inst.CustomerName, &inst.CustomerPhone,
			&inst.Amount, &inst.DueDate, &inst.PaidDate, &inst.Status, &inst.Notes, &inst.CreatedAt); err != nil {
			return nil, err
		}
		installments = append(installments, &inst)
	}
	return installments, rows.Err()
}

// MarkPaid records the payment date and moves the installment to paid.
func (r *InstallmentRepository) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE installments SET status=$1, paid_date=$2 WHERE id=$3 AND status<>$1`,
		models.InstallmentPaid, paidAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("installment %d not found or already paid", id)
	}
	return nil
}

// SweepOverdue flips pending installments past their due date to overdue.
// Returns the number of rows flipped.
func (r *InstallmentRepository) SweepOverdue(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE installments SET status=$1 WHERE status=$2 AND due_date < $3`,
		models.InstallmentOverdue, models.InstallmentPending, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
