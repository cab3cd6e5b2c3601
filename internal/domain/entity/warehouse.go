package entity

// Warehouse representa una bodega. El flujo de recepción solo verifica su existencia.
type Warehouse struct {
	ID      int
	Name    string
	Address string
}
