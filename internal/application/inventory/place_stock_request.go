package inventory

import (
	"context"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
)

// PlaceStockFromRequest adapta el request HTTP al caso de uso PlaceStock(ctx, StockEntryInput).
// IdProductWarehouse y Price del request se descartan.
func (uc *PlaceStockUseCase) PlaceStockFromRequest(ctx context.Context, in dto.ProductWarehouseRequest) (int, error) {
	input := StockEntryInput{
		WarehouseID: in.IdWarehouse,
		ProductID:   in.IdProduct,
		OrderID:     in.IdOrder,
		Amount:      in.Amount,
		CreatedAt:   in.CreatedAt,
	}
	return uc.PlaceStock(ctx, input)
}
