package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un nuevo item. CurrentStock inicia en 0.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (item_name, category_id, purchase_price, selling_price, current_stock, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, $5, $6, $7)
		RETURNING item_id`
	err := r.q.QueryRow(context.Background(), query,
		item.Name, item.CategoryID, item.PurchasePrice, item.SellingPrice,
		nullIfEmpty(item.Image), item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // categoría inexistente
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un item por ID con el nombre de su categoría.
func (r *ItemRepo) GetByID(id int64) (*entity.Item, error) {
	query := `
		SELECT i.item_id, i.item_name, i.category_id, COALESCE(c.category_name, ''),
		       i.purchase_price, i.selling_price, i.current_stock, COALESCE(i.image, ''),
		       i.created_at, i.updated_at
		FROM items i
		LEFT JOIN categories c ON i.category_id = c.category_id
		WHERE i.item_id = $1`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.CategoryID, &it.CategoryName,
		&it.PurchasePrice, &it.SellingPrice, &it.CurrentStock, &it.Image,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza un item existente. No toca current_stock (se maneja vía asientos).
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET item_name = $2, category_id = $3, purchase_price = $4,
		       selling_price = $5, image = $6, updated_at = $7
		WHERE item_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.CategoryID, item.PurchasePrice,
		item.SellingPrice, nullIfEmpty(item.Image), item.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista todos los items con su categoría, ordenados por nombre.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `
		SELECT i.item_id, i.item_name, i.category_id, COALESCE(c.category_name, ''),
		       i.purchase_price, i.selling_price, i.current_stock, COALESCE(i.image, ''),
		       i.created_at, i.updated_at
		FROM items i
		LEFT JOIN categories c ON i.category_id = c.category_id
		ORDER BY i.item_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.CategoryID, &it.CategoryName,
			&it.PurchasePrice, &it.SellingPrice, &it.CurrentStock, &it.Image,
			&it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// GetForUpdate obtiene el item y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción del TxRunner.
func (r *ItemRepo) GetForUpdate(id int64) (*entity.Item, error) {
	query := `
		SELECT item_id, item_name, category_id, purchase_price, selling_price,
		       current_stock, COALESCE(image, ''), created_at, updated_at
		FROM items WHERE item_id = $1
		FOR UPDATE`
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.CategoryID, &it.PurchasePrice, &it.SellingPrice,
		&it.CurrentStock, &it.Image, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item for update: %w", err)
	}
	return &it, nil
}

// UpdateStock fija el contador current_stock del item.
func (r *ItemRepo) UpdateStock(id int64, currentStock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE items SET current_stock = $2, updated_at = now() WHERE item_id = $1`,
		id, currentStock,
	)
	if err != nil {
		return fmt.Errorf("update item stock: %w", err)
	}
	return nil
}

// CountMovements cuenta asientos de stock_in y stock_out que referencian el item.
func (r *ItemRepo) CountMovements(id int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(), `
		SELECT (SELECT COUNT(*) FROM stock_in WHERE item_id = $1)
		     + (SELECT COUNT(*) FROM stock_out WHERE item_id = $1)`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count item movements: %w", err)
	}
	return count, nil
}

// Delete elimina un item por ID. FK en uso → ErrItemInUse.
func (r *ItemRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE item_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrItemInUse
		}
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// nullIfEmpty mapea "" a NULL para columnas opcionales.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
