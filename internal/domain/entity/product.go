package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo. Es de solo lectura para el flujo de recepción.
type Product struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal // precio unitario
}

// LinePrice devuelve el precio de una línea de amount unidades (Price * amount).
func (p *Product) LinePrice(amount int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(amount)))
}
