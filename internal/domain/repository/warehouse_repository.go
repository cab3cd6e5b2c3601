package repository

import "context"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
}
