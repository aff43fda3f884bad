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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL (usable con pool o tx).
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un nuevo proveedor.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_name, contact_person, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING supplier_id`
	err := r.q.QueryRow(context.Background(), query,
		supplier.Name, nullIfEmpty(supplier.ContactPerson), nullIfEmpty(supplier.Phone),
		nullIfEmpty(supplier.Address), supplier.CreatedAt, supplier.UpdatedAt,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	query := `
		SELECT supplier_id, supplier_name, COALESCE(contact_person, ''), COALESCE(phone, ''),
		       COALESCE(address, ''), created_at, updated_at
		FROM suppliers WHERE supplier_id = $1`
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET supplier_name = $2, contact_person = $3, phone = $4,
		       address = $5, updated_at = $6
		WHERE supplier_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		supplier.ID, supplier.Name, nullIfEmpty(supplier.ContactPerson),
		nullIfEmpty(supplier.Phone), nullIfEmpty(supplier.Address), supplier.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// List lista todos los proveedores ordenados por nombre.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT supplier_id, supplier_name, COALESCE(contact_person, ''), COALESCE(phone, ''),
		       COALESCE(address, ''), created_at, updated_at
		FROM suppliers ORDER BY supplier_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Phone, &s.Address,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// CountStockIns cuenta los asientos de entrada que referencian al proveedor.
func (r *SupplierRepo) CountStockIns(id int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM stock_in WHERE supplier_id = $1`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stock_in by supplier: %w", err)
	}
	return count, nil
}

// Delete elimina un proveedor por ID. FK en uso → ErrSupplierInUse.
func (r *SupplierRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE supplier_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSupplierInUse
		}
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
