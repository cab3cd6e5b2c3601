package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductWarehouse representa el registro de stock ingresado a una bodega contra una orden.
// Price es el total de la línea (precio unitario del producto * Amount), nunca el enviado por el cliente.
type ProductWarehouse struct {
	ID          int
	WarehouseID int
	ProductID   int
	OrderID     int
	Amount      int
	Price       decimal.Decimal
	CreatedAt   time.Time
}
