package repository

import (
	"context"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
)

// ProductRepository define el puerto de lectura de productos (DIP).
type ProductRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
	// GetByID devuelve domain.ErrProductNotFound si no existe.
	GetByID(ctx context.Context, id int) (*entity.Product, error)
}
