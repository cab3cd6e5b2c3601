package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// orderStockConstraint índice único que impide dos registros de stock para la misma orden.
const orderStockConstraint = "ux_product_warehouse_order"

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
// Con constraint no vacío, además exige que la violación sea sobre ese constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
