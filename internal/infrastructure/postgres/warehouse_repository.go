package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Exists indica si hay una bodega con ese ID.
func (r *WarehouseRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM warehouse WHERE id_warehouse = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("warehouse exists: %w", err)
	}
	return exists, nil
}
