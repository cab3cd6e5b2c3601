package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductWarehouseRequest body para POST /api/warehouse.
// IdProductWarehouse y Price se ignoran en la entrada: el ID lo genera la BD y el precio se recalcula.
type ProductWarehouseRequest struct {
	IdProductWarehouse int             `json:"IdProductWarehouse"`
	IdWarehouse        int             `json:"IdWarehouse" validate:"required,gt=0"`
	IdProduct          int             `json:"IdProduct" validate:"required,gt=0"`
	IdOrder            int             `json:"IdOrder" validate:"gte=0"`
	Amount             int             `json:"Amount" validate:"required,min=1"`
	Price              decimal.Decimal `json:"Price"`
	CreatedAt          time.Time       `json:"CreatedAt" validate:"required"`
}
