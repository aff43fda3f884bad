package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación del puerto StockInRepository sobre PostgreSQL (usable con pool o tx).
// Los asientos son inmutables: no hay Update ni Delete.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste un asiento de entrada.
func (r *StockInRepo) Create(entry *entity.StockIn) error {
	query := `
		INSERT INTO stock_in (reference, item_id, supplier_id, quantity, purchase_price, date_in, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING stock_in_id`
	err := r.q.QueryRow(context.Background(), query,
		entry.Reference, entry.ItemID, entry.SupplierID, entry.Quantity,
		entry.PurchasePrice, entry.DateIn, entry.UserID, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert stock_in: %w", err)
	}
	return nil
}

// List lista asientos de entrada (date_in DESC) con los nombres denormalizados.
func (r *StockInRepo) List(limit, offset int) ([]*entity.StockIn, error) {
	query := `
		SELECT s.stock_in_id, s.reference, s.item_id, COALESCE(i.item_name, ''),
		       s.supplier_id, COALESCE(sup.supplier_name, ''), s.quantity,
		       s.purchase_price, s.date_in, s.user_id, COALESCE(u.username, ''), s.created_at
		FROM stock_in s
		LEFT JOIN items i ON s.item_id = i.item_id
		LEFT JOIN suppliers sup ON s.supplier_id = sup.supplier_id
		LEFT JOIN users u ON s.user_id = u.user_id
		ORDER BY s.date_in DESC, s.stock_in_id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock_in: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockIn
	for rows.Next() {
		var e entity.StockIn
		if err := rows.Scan(&e.ID, &e.Reference, &e.ItemID, &e.ItemName,
			&e.SupplierID, &e.SupplierName, &e.Quantity,
			&e.PurchasePrice, &e.DateIn, &e.UserID, &e.Username, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock_in: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
