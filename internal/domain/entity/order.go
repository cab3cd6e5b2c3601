package entity

import "time"

// Order representa una orden de compra de un producto. FulfilledAt nil = orden abierta.
type Order struct {
	ID          int
	ProductID   int
	Amount      int
	CreatedAt   time.Time
	FulfilledAt *time.Time
}

// OrderMatch criterios para buscar la orden que satisface una entrada de stock.
// OrderID en 0 significa cualquier orden.
type OrderMatch struct {
	OrderID   int
	ProductID int
	Amount    int
	AsOf      time.Time
}

// Matches indica si la orden puede ser satisfecha por una entrada con los criterios dados:
// mismo producto y cantidad, creada no después de AsOf, y sin completar a esa fecha.
func (o *Order) Matches(m OrderMatch) bool {
	if m.OrderID != 0 && o.ID != m.OrderID {
		return false
	}
	if o.ProductID != m.ProductID || o.Amount != m.Amount {
		return false
	}
	if o.CreatedAt.After(m.AsOf) {
		return false
	}
	return o.FulfilledAt == nil || o.FulfilledAt.After(m.AsOf)
}
