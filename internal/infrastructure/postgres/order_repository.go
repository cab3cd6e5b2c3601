package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// FindOpen busca la orden más antigua que coincide (producto, cantidad, creada antes de AsOf y
// sin completar a esa fecha) y bloquea la fila (SELECT FOR UPDATE). Fuera de una tx el bloqueo
// dura solo la sentencia.
func (r *OrderRepo) FindOpen(ctx context.Context, match entity.OrderMatch) (*entity.Order, error) {
	query := `
		SELECT id_order, id_product, amount, created_at, fulfilled_at
		FROM "order"
		WHERE id_product = $1
		  AND amount = $2
		  AND created_at <= $3
		  AND (fulfilled_at IS NULL OR fulfilled_at > $3)
		  AND ($4::int = 0 OR id_order = $4::int)
		ORDER BY created_at, id_order
		LIMIT 1
		FOR UPDATE`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, match.ProductID, match.Amount, match.AsOf, match.OrderID).Scan(
		&o.ID, &o.ProductID, &o.Amount, &o.CreatedAt, &o.FulfilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find open order: %w", err)
	}
	return &o, nil
}

// SetFulfilled marca la orden como completada. Si no existe no hace nada.
func (r *OrderRepo) SetFulfilled(ctx context.Context, orderID int, at time.Time) error {
	_, err := r.q.Exec(ctx, `UPDATE "order" SET fulfilled_at = $2 WHERE id_order = $1`, orderID, at)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}
