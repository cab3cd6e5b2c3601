package repository

import (
	"context"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
)

// ProductWarehouseRepository define el puerto para los registros de stock en bodega.
type ProductWarehouseRepository interface {
	ExistsForOrder(ctx context.Context, orderID int) (bool, error)
	// Create inserta el registro y asigna el ID generado en record.ID.
	Create(ctx context.Context, record *entity.ProductWarehouse) error
}
