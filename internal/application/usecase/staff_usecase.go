package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// StaffUseCase casos de uso CRUD para usuarios del personal.
// Las contraseñas se hashean con bcrypt antes de persistir.
type StaffUseCase struct {
	repo repository.UserRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.UserRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Create crea un usuario. Username duplicado → ErrUsernameAlreadyUsed.
func (uc *StaffUseCase) Create(in dto.StaffRequest) (*dto.StaffResponse, error) {
	if in.Username == "" || in.Password == "" || in.RoleID == 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByUsername(in.Username)
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyUsed
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         entity.RoleFromID(in.RoleID),
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

// Update actualiza un usuario. Password vacío conserva el hash actual.
func (uc *StaffUseCase) Update(id int64, in dto.StaffRequest) (*dto.StaffResponse, error) {
	if in.Username == "" || in.RoleID == 0 {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	existing, _ := uc.repo.GetByUsername(in.Username)
	if existing != nil && existing.ID != id {
		return nil, domain.ErrUsernameAlreadyUsed
	}
	if in.Password != "" {
		if len(in.Password) < 8 {
			return nil, domain.ErrInvalidInput
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.Username = in.Username
	user.Role = entity.RoleFromID(in.RoleID)
	user.PhoneNumber = in.PhoneNumber
	user.Address = in.Address
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toStaffResponse(user), nil
}

// List lista todos los usuarios ordenados por username.
func (uc *StaffUseCase) List() ([]dto.StaffResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toStaffResponse(u))
	}
	return out, nil
}

// Delete borra un usuario. Si registró asientos de stock → ErrUserHasMovements.
func (uc *StaffUseCase) Delete(id int64) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountMovements(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrUserHasMovements
	}
	return uc.repo.Delete(id)
}

func toStaffResponse(u *entity.User) *dto.StaffResponse {
	if u == nil {
		return nil
	}
	return &dto.StaffResponse{
		UserID:      u.ID,
		Username:    u.Username,
		RoleName:    u.Role.String(),
		PhoneNumber: u.PhoneNumber,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
