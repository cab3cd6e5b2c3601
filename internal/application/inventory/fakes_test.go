package inventory_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Almacén en memoria con semántica transaccional: cada Run trabaja sobre una
// copia y solo la publica si fn no devuelve error.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	products   map[int]entity.Product
	warehouses map[int]entity.Warehouse
	orders     map[int]entity.Order
	records    []entity.ProductWarehouse
	nextID     int
}

func (s *memState) clone() *memState {
	c := &memState{
		products:   make(map[int]entity.Product, len(s.products)),
		warehouses: make(map[int]entity.Warehouse, len(s.warehouses)),
		orders:     make(map[int]entity.Order, len(s.orders)),
		records:    append([]entity.ProductWarehouse(nil), s.records...),
		nextID:     s.nextID,
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.orders {
		if v.FulfilledAt != nil {
			at := *v.FulfilledAt
			v.FulfilledAt = &at
		}
		c.orders[k] = v
	}
	return c
}

type memTxRunner struct {
	state   *memState
	runs    int
	calls   int
	commits int
	// failOn hace fallar la operación con ese nombre con errDriver.
	failOn string
	// createErr, si no es nil, lo devuelve Create tal cual.
	createErr error
}

var errDriver = errors.New("driver: conexión perdida")

func newMemTxRunner() *memTxRunner {
	return &memTxRunner{state: &memState{
		products:   map[int]entity.Product{},
		warehouses: map[int]entity.Warehouse{},
		orders:     map[int]entity.Order{},
		nextID:     1,
	}}
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	orderRepo repository.OrderRepository,
	stockRepo repository.ProductWarehouseRepository,
) error) error {
	r.runs++
	tx := &memTx{runner: r, state: r.state.clone()}
	if err := fn(productView{tx}, warehouseView{tx}, tx, tx); err != nil {
		return err
	}
	r.state = tx.state
	r.commits++
	return nil
}

// memTx implementa los cuatro repositorios sobre la copia de la transacción.
type memTx struct {
	runner *memTxRunner
	state  *memState
}

func (t *memTx) hit(op string) error {
	t.runner.calls++
	if t.runner.failOn == op {
		return errDriver
	}
	return nil
}

func (t *memTx) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	if err := t.hit("GetByID"); err != nil {
		return nil, err
	}
	p, ok := t.state.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (t *memTx) FindOpen(ctx context.Context, match entity.OrderMatch) (*entity.Order, error) {
	if err := t.hit("FindOpen"); err != nil {
		return nil, err
	}
	var candidates []entity.Order
	for _, o := range t.state.orders {
		if o.Matches(match) {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if !candidates[i].CreatedAt.Equal(candidates[j].CreatedAt) {
			return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
		}
		return candidates[i].ID < candidates[j].ID
	})
	o := candidates[0]
	return &o, nil
}

func (t *memTx) SetFulfilled(ctx context.Context, orderID int, at time.Time) error {
	if err := t.hit("SetFulfilled"); err != nil {
		return err
	}
	o, ok := t.state.orders[orderID]
	if !ok {
		return nil
	}
	o.FulfilledAt = &at
	t.state.orders[orderID] = o
	return nil
}

func (t *memTx) ExistsForOrder(ctx context.Context, orderID int) (bool, error) {
	if err := t.hit("ExistsForOrder"); err != nil {
		return false, err
	}
	for _, rec := range t.state.records {
		if rec.OrderID == orderID {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) Create(ctx context.Context, record *entity.ProductWarehouse) error {
	if err := t.hit("Create"); err != nil {
		return err
	}
	if t.runner.createErr != nil {
		return t.runner.createErr
	}
	record.ID = t.state.nextID
	t.state.nextID++
	t.state.records = append(t.state.records, *record)
	return nil
}

// productView y warehouseView resuelven Exists para cada tabla.
type productView struct{ *memTx }

func (v productView) Exists(ctx context.Context, id int) (bool, error) {
	if err := v.hit("ProductExists"); err != nil {
		return false, err
	}
	_, ok := v.state.products[id]
	return ok, nil
}

type warehouseView struct{ *memTx }

func (v warehouseView) Exists(ctx context.Context, id int) (bool, error) {
	if err := v.hit("WarehouseExists"); err != nil {
		return false, err
	}
	_, ok := v.state.warehouses[id]
	return ok, nil
}
