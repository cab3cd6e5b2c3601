package repository

import (
	"context"
	"time"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
)

// OrderRepository define el puerto para buscar y completar órdenes.
// Usado dentro de transacciones para garantizar consistencia.
type OrderRepository interface {
	// FindOpen devuelve la primera orden que coincide con los criterios (nil, nil si ninguna)
	// y bloquea su fila hasta el fin de la transacción.
	FindOpen(ctx context.Context, match entity.OrderMatch) (*entity.Order, error)
	// SetFulfilled marca la orden como completada en at. No falla si la orden no existe.
	SetFulfilled(ctx context.Context, orderID int, at time.Time) error
}
