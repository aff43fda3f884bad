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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// El rol se persiste como role_id (FK a roles) y se mapea a entity.Role al leer.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Username duplicado → ErrUsernameAlreadyUsed.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, password, role_id, phone_number, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING user_id`
	err := r.q.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Role.ID(),
		nullIfEmpty(user.PhoneNumber), nullIfEmpty(user.Address),
		user.CreatedAt, user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyUsed
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT user_id, username, password, role_id, COALESCE(phone_number, ''),
		       COALESCE(address, ''), created_at, updated_at
		FROM users WHERE user_id = $1`
	return r.scanUser(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByUsername obtiene un usuario por username exacto.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT user_id, username, password, role_id, COALESCE(phone_number, ''),
		       COALESCE(address, ''), created_at, updated_at
		FROM users WHERE username = $1`
	return r.scanUser(r.q.QueryRow(context.Background(), query, username), "get user by username")
}

func (r *UserRepo) scanUser(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var roleID int64
	err := row.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &roleID,
		&u.PhoneNumber, &u.Address, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Role = entity.RoleFromID(roleID)
	return &u, nil
}

// Update actualiza un usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET username = $2, password = $3, role_id = $4,
		       phone_number = $5, address = $6, updated_at = $7
		WHERE user_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Role.ID(),
		nullIfEmpty(user.PhoneNumber), nullIfEmpty(user.Address), user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyUsed
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// List lista todos los usuarios ordenados por username.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `
		SELECT user_id, username, password, role_id, COALESCE(phone_number, ''),
		       COALESCE(address, ''), created_at, updated_at
		FROM users ORDER BY username ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var roleID int64
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &roleID,
			&u.PhoneNumber, &u.Address, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Role = entity.RoleFromID(roleID)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// CountMovements cuenta asientos de stock registrados por el usuario.
func (r *UserRepo) CountMovements(id int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(), `
		SELECT (SELECT COUNT(*) FROM stock_in WHERE user_id = $1)
		     + (SELECT COUNT(*) FROM stock_out WHERE user_id = $1)`, id,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count user movements: %w", err)
	}
	return count, nil
}

// Delete elimina un usuario por ID. FK en uso → ErrUserHasMovements.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserHasMovements
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
