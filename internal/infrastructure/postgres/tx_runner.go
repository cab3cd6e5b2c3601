package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/warehouse-api/internal/application/inventory"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool     *pgxpool.Pool
	isoLevel pgx.TxIsoLevel
}

// NewTxRunner construye el runner con el pool y el nivel de aislamiento ("read committed",
// "repeatable read" o "serializable"; vacío = read committed).
func NewTxRunner(pool *pgxpool.Pool, isolation string) (*TxRunner, error) {
	iso, err := ParseIsoLevel(isolation)
	if err != nil {
		return nil, err
	}
	return &TxRunner{pool: pool, isoLevel: iso}, nil
}

// ParseIsoLevel traduce el nombre configurado a pgx.TxIsoLevel.
func ParseIsoLevel(s string) (pgx.TxIsoLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "read committed", "read_committed":
		return pgx.ReadCommitted, nil
	case "repeatable read", "repeatable_read":
		return pgx.RepeatableRead, nil
	case "serializable":
		return pgx.Serializable, nil
	default:
		return "", fmt.Errorf("nivel de aislamiento no soportado: %q", s)
	}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	stockRepo repository.ProductWarehouseRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: r.isoLevel})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	warehouseRepo := NewWarehouseRepository(tx)
	orderRepo := NewOrderRepository(tx)
	stockRepo := NewProductWarehouseRepository(tx)

	if err := fn(productRepo, warehouseRepo, orderRepo, stockRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
