package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

var _ repository.ProductWarehouseRepository = (*ProductWarehouseRepo)(nil)

// ProductWarehouseRepo implementación sobre PostgreSQL (usable con pool o tx).
type ProductWarehouseRepo struct {
	q Querier
}

// NewProductWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductWarehouseRepository(q Querier) *ProductWarehouseRepo {
	return &ProductWarehouseRepo{q: q}
}

// ExistsForOrder indica si ya hay stock registrado contra la orden.
func (r *ProductWarehouseRepo) ExistsForOrder(ctx context.Context, orderID int) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM product_warehouse WHERE id_order = $1)`, orderID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product_warehouse exists for order: %w", err)
	}
	return exists, nil
}

// Create persiste el registro y asigna el ID generado.
func (r *ProductWarehouseRepo) Create(ctx context.Context, record *entity.ProductWarehouse) error {
	query := `
		INSERT INTO product_warehouse (id_warehouse, id_product, id_order, amount, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_product_warehouse`
	err := r.q.QueryRow(ctx, query,
		record.WarehouseID, record.ProductID, record.OrderID,
		record.Amount, record.Price, record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		if isUniqueViolation(err, orderStockConstraint) {
			return fmt.Errorf("insert product_warehouse: %w", domain.ErrOrderAlreadyFulfilled)
		}
		return fmt.Errorf("insert product_warehouse: %w", err)
	}
	return nil
}
