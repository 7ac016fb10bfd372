package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/furqanmax/Simple-POS/internal/models"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreateFinalized inserts the order with its items and snapshot in one
// transaction. Orders only ever enter the database finalized.
func (r *OrderRepository) CreateFinalized(ctx context.Context, order *models.Order, items []models.OrderItem, snapshot *models.InvoiceSnapshot) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	order.Status = models.OrderStatusFinalized
	err = tx.QueryRow(ctx,
		`INSERT INTO orders(user_id, subtotal, tax_rate, tax_total, grand_total, status, invoice_template_id, invoice_snapshot)
		 VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		order.UserID, order.Subtotal, order.TaxRate, order.TaxTotal,
		order.GrandTotal, order.Status, order.InvoiceTemplateID, snapshotJSON,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}
	order.InvoiceSnapshot = snapshotJSON

	for i := range items {
		items[i].OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items(order_id, name, quantity, unit_price, line_total)
			 VALUES($1, $2, $3, $4, $5)
			 RETURNING id`,
			order.ID, items[i].Name, items[i].Quantity, items[i].UnitPrice, items[i].LineTotal,
		).Scan(&items[i].ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Get retrieves an order with its items and the operator's username.
func (r *OrderRepository) Get(ctx context.Context, id int) (*models.OrderWithItems, error) {
	var order models.OrderWithItems
	err := r.DB.QueryRow(ctx,
		`SELECT o.id, o.user_id, o.subtotal, o.tax_rate, o.tax_total, o.grand_total,
		        o.status, o.invoice_template_id, o.invoice_snapshot, o.created_at,
		        COALESCE(u.username, '') as username
		 FROM orders o
		 LEFT JOIN users u ON o.user_id = u.id
		 WHERE o.id = $1`, id,
	).Scan(&order.ID, &order.UserID, &order.Subtotal, &order.TaxRate, &order.TaxTotal,
		&order.GrandTotal, &order.Status, &order.InvoiceTemplateID, &order.InvoiceSnapshot,
		&order.CreatedAt, &order.Username)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.Query(ctx,
		`SELECT id, order_id, name, quantity, unit_price, line_total
		 FROM order_items WHERE order_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.Name, &item.Quantity,
			&item.UnitPrice, &item.LineTotal); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

// List returns order history matching the filter, newest first.
func (r *OrderRepository) List(ctx context.Context, filter models.OrderFilter) ([]*models.Order, error) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.UserID > 0 {
		conditions = append(conditions, fmt.Sprintf("o.user_id = $%d", argNum))
		args = append(args, filter.UserID)
		argNum++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("o.status = $%d", argNum))
		args = append(args, filter.Status)
		argNum++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at >= $%d", argNum))
		args = append(args, *filter.StartDate)
		argNum++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("o.created_at <= $%d", argNum))
		args = append(args, *filter.EndDate)
		argNum++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 200
	}

	query := fmt.Sprintf(`
		SELECT o.id, o.user_id, o.subtotal, o.tax_rate, o.tax_total, o.grand_total,
		       o.status, o.invoice_template_id, o.created_at,
		       COALESCE(u.username, '') as username
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.id
		%s
		ORDER BY o.created_at DESC, o.id DESC
		LIMIT $%d
	`, whereClause, argNum)
	args = append(args, limit)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Subtotal, &o.TaxRate, &o.TaxTotal,
			&o.GrandTotal, &o.Status, &o.InvoiceTemplateID, &o.CreatedAt, &o.Username); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Cancel marks a finalized order canceled. Returns the number of rows
// affected so callers can distinguish "not found" from "already canceled".
func (r *OrderRepository) Cancel(ctx context.Context, id int) (int64, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE orders SET status=$1 WHERE id=$2 AND status=$3`,
		models.OrderStatusCanceled, id, models.OrderStatusFinalized)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// GetSnapshot returns only the frozen invoice snapshot of an order.
func (r *OrderRepository) GetSnapshot(ctx context.Context, id int) (*models.InvoiceSnapshot, error) {
	var raw []byte
	err := r.DB.QueryRow(ctx,
		`SELECT invoice_snapshot FROM orders WHERE id=$1`, id,
	).Scan(&raw)
	if err != nil {
		return nil, err
	}
	var snapshot models.InvoiceSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
