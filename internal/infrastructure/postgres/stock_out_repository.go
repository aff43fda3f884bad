package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL (usable con pool o tx).
// Los asientos son inmutables: no hay Update ni Delete.
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste un asiento de salida.
func (r *StockOutRepo) Create(entry *entity.StockOut) error {
	query := `
		INSERT INTO stock_out (reference, item_id, quantity, selling_price, date_out, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING stock_out_id`
	err := r.q.QueryRow(context.Background(), query,
		entry.Reference, entry.ItemID, entry.Quantity,
		entry.SellingPrice, entry.DateOut, entry.UserID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert stock_out: %w", err)
	}
	return nil
}

// List lista asientos de salida (date_out DESC) con los nombres denormalizados.
func (r *StockOutRepo) List(limit, offset int) ([]*entity.StockOut, error) {
	query := `
		SELECT s.stock_out_id, s.reference, s.item_id, COALESCE(i.item_name, ''),
		       s.quantity, s.selling_price, s.date_out, s.user_id,
		       COALESCE(u.username, ''), s.created_at
		FROM stock_out s
		LEFT JOIN items i ON s.item_id = i.item_id
		LEFT JOIN users u ON s.user_id = u.user_id
		ORDER BY s.date_out DESC, s.stock_out_id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock_out: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOut
	for rows.Next() {
		var e entity.StockOut
		if err := rows.Scan(&e.ID, &e.Reference, &e.ItemID, &e.ItemName,
			&e.Quantity, &e.SellingPrice, &e.DateOut, &e.UserID,
			&e.Username, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock_out: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
