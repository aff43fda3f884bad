package usecase

import (
	"time"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
	"github.com/jhoicas/inventario-tienda/internal/domain/entity"
	"github.com/jhoicas/inventario-tienda/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para items.
// CurrentStock no se toca aquí: nace en 0 y solo lo mutan los asientos del
// ledger de inventario.
type ItemUseCase struct {
	repo         repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, categoryRepo repository.CategoryRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo, categoryRepo: categoryRepo}
}

// Create crea un item con stock 0. La categoría debe existir.
func (uc *ItemUseCase) Create(in dto.ItemRequest) (*dto.ItemResponse, error) {
	if in.ItemName == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.Item{
		Name:          in.ItemName,
		CategoryID:    in.CategoryID,
		PurchasePrice: in.PurchasePrice,
		SellingPrice:  in.SellingPrice,
		CurrentStock:  0,
		Image:         in.Image,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	item.CategoryName = category.Name
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID.
func (uc *ItemUseCase) GetByID(id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return toItemResponse(item), nil
}

// Update actualiza nombre, categoría, precios e imagen. No permite modificar
// CurrentStock (se maneja vía asientos de stock).
func (uc *ItemUseCase) Update(id int64, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if in.ItemName == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	item.Name = in.ItemName
	item.CategoryID = in.CategoryID
	item.PurchasePrice = in.PurchasePrice
	item.SellingPrice = in.SellingPrice
	item.Image = in.Image
	item.UpdatedAt = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	item.CategoryName = category.Name
	return toItemResponse(item), nil
}

// List lista todos los items con su categoría, ordenados por nombre.
func (uc *ItemUseCase) List() ([]dto.ItemResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Delete borra un item. Si tiene asientos de stock asociados → ErrItemInUse:
// el historial del ledger nunca queda huérfano.
func (uc *ItemUseCase) Delete(id int64) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	count, err := uc.repo.CountMovements(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrItemInUse
	}
	return uc.repo.Delete(id)
}

func toItemResponse(it *entity.Item) *dto.ItemResponse {
	if it == nil {
		return nil
	}
	return &dto.ItemResponse{
		ItemID:        it.ID,
		ItemName:      it.Name,
		CategoryID:    it.CategoryID,
		CategoryName:  it.CategoryName,
		PurchasePrice: it.PurchasePrice,
		SellingPrice:  it.SellingPrice,
		CurrentStock:  it.CurrentStock,
		Image:         it.Image,
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
