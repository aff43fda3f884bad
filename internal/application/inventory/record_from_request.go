package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-tienda/internal/application/dto"
	"github.com/jhoicas/inventario-tienda/internal/domain"
)

// RecordStockInFromRequest adapta el request HTTP al caso de uso
// RecordStockIn(ctx, StockInInput). authUserID es el usuario del token; si el
// body trae user_id se valida que exista y se usa ese.
func (uc *LedgerUseCase) RecordStockInFromRequest(ctx context.Context, authUserID int64, in dto.StockInRequest) (*dto.StockInResponse, error) {
	userID, err := uc.resolveUserID(authUserID, in.UserID)
	if err != nil {
		return nil, err
	}
	dateIn, err := parseDate(in.DateIn)
	if err != nil {
		return nil, err
	}
	entry, err := uc.RecordStockIn(ctx, StockInInput{
		ItemID:        in.ItemID,
		SupplierID:    in.SupplierID,
		Quantity:      in.Quantity,
		PurchasePrice: in.PurchasePrice,
		DateIn:        dateIn,
		UserID:        userID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockInResponse{
		StockInID:     entry.ID,
		Reference:     entry.Reference,
		ItemID:        entry.ItemID,
		SupplierID:    entry.SupplierID,
		Quantity:      entry.Quantity,
		PurchasePrice: entry.PurchasePrice,
		DateIn:        entry.DateIn,
		UserID:        entry.UserID,
		CreatedAt:     entry.CreatedAt,
	}, nil
}

// RecordStockOutFromRequest adapta el request HTTP al caso de uso
// RecordStockOut(ctx, StockOutInput).
func (uc *LedgerUseCase) RecordStockOutFromRequest(ctx context.Context, authUserID int64, in dto.StockOutRequest) (*dto.StockOutResponse, error) {
	userID, err := uc.resolveUserID(authUserID, in.UserID)
	if err != nil {
		return nil, err
	}
	dateOut, err := parseDate(in.DateOut)
	if err != nil {
		return nil, err
	}
	entry, err := uc.RecordStockOut(ctx, StockOutInput{
		ItemID:       in.ItemID,
		Quantity:     in.Quantity,
		SellingPrice: in.SellingPrice,
		DateOut:      dateOut,
		UserID:       userID,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockOutResponse{
		StockOutID:   entry.ID,
		Reference:    entry.Reference,
		ItemID:       entry.ItemID,
		Quantity:     entry.Quantity,
		SellingPrice: entry.SellingPrice,
		DateOut:      entry.DateOut,
		UserID:       entry.UserID,
		CreatedAt:    entry.CreatedAt,
	}, nil
}

// resolveUserID: user_id del body si viene (validando que exista), si no el del token.
func (uc *LedgerUseCase) resolveUserID(authUserID, bodyUserID int64) (int64, error) {
	if bodyUserID == 0 || bodyUserID == authUserID {
		return authUserID, nil
	}
	user, err := uc.userRepo.GetByID(bodyUserID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, domain.ErrNotFound
	}
	return bodyUserID, nil
}

// parseDate acepta fecha simple (formulario) o RFC 3339.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return t, nil
}
