package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/internal/domain/entity"
	"github.com/jhoicas/warehouse-api/internal/domain/repository"
)

const tracerName = "github.com/jhoicas/warehouse-api/internal/application/inventory"

// PlaceStockUseCase registra el ingreso de un producto a bodega contra una orden de compra abierta:
// valida producto y bodega, busca la orden, la marca como completada, calcula el precio e inserta
// el registro en product_warehouse. Todo en una sola transacción.
type PlaceStockUseCase struct {
	txRunner TxRunner
	now      func() time.Time
	tracer   trace.Tracer
}

// NewPlaceStockUseCase construye el caso de uso.
func NewPlaceStockUseCase(txRunner TxRunner) *PlaceStockUseCase {
	return &PlaceStockUseCase{
		txRunner: txRunner,
		now:      time.Now,
		tracer:   otel.Tracer(tracerName),
	}
}

// WithClock reemplaza el reloj usado para FulfilledAt (tests).
func (uc *PlaceStockUseCase) WithClock(now func() time.Time) *PlaceStockUseCase {
	uc.now = now
	return uc
}

// StockEntryInput entrada para ingresar stock a una bodega.
// OrderID es opcional: en 0 se acepta cualquier orden que coincida.
type StockEntryInput struct {
	WarehouseID int
	ProductID   int
	OrderID     int
	Amount      int
	CreatedAt   time.Time
}

func (in StockEntryInput) validate() error {
	if in.WarehouseID <= 0 || in.ProductID <= 0 || in.OrderID < 0 {
		return domain.ErrInvalidInput
	}
	if in.Amount < 1 || in.CreatedAt.IsZero() {
		return domain.ErrInvalidInput
	}
	return nil
}

// PlaceStock ejecuta el flujo completo y devuelve el ID del registro generado.
// Cualquier error hace Rollback: la orden no queda marcada y no se inserta nada.
func (uc *PlaceStockUseCase) PlaceStock(ctx context.Context, input StockEntryInput) (id int, err error) {
	if err := input.validate(); err != nil {
		return 0, err
	}

	ctx, span := uc.tracer.Start(ctx, "inventory.PlaceStock", trace.WithAttributes(
		attribute.Int("warehouse.id", input.WarehouseID),
		attribute.Int("product.id", input.ProductID),
		attribute.Int("order.id", input.OrderID),
		attribute.Int("stock.amount", input.Amount),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.Int("product_warehouse.id", id))
		}
		span.End()
	}()

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		warehouseRepo repository.WarehouseRepository,
		orderRepo repository.OrderRepository,
		stockRepo repository.ProductWarehouseRepository,
	) error {
		exists, err := productRepo.Exists(ctx, input.ProductID)
		if err != nil {
			return dataAccess(err)
		}
		if !exists {
			return domain.ErrProductNotFound
		}

		exists, err = warehouseRepo.Exists(ctx, input.WarehouseID)
		if err != nil {
			return dataAccess(err)
		}
		if !exists {
			return domain.ErrWarehouseNotFound
		}

		// Bloquea la fila de la orden (FOR UPDATE) hasta el Commit
		order, err := orderRepo.FindOpen(ctx, entity.OrderMatch{
			OrderID:   input.OrderID,
			ProductID: input.ProductID,
			Amount:    input.Amount,
			AsOf:      input.CreatedAt,
		})
		if err != nil {
			return dataAccess(err)
		}
		if order == nil {
			return fmt.Errorf("%w (producto %d, cantidad %d)", domain.ErrNoMatchingOrder, input.ProductID, input.Amount)
		}

		fulfilled, err := stockRepo.ExistsForOrder(ctx, order.ID)
		if err != nil {
			return dataAccess(err)
		}
		if fulfilled {
			return domain.ErrOrderAlreadyFulfilled
		}

		if err := orderRepo.SetFulfilled(ctx, order.ID, uc.now()); err != nil {
			return dataAccess(err)
		}

		product, err := productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrProductNotFound) {
				return err
			}
			return dataAccess(err)
		}

		record := &entity.ProductWarehouse{
			WarehouseID: input.WarehouseID,
			ProductID:   input.ProductID,
			OrderID:     order.ID,
			Amount:      input.Amount,
			Price:       product.LinePrice(input.Amount),
			CreatedAt:   input.CreatedAt,
		}
		if err := stockRepo.Create(ctx, record); err != nil {
			// índice único sobre id_order: otra transacción completó la orden primero
			if errors.Is(err, domain.ErrOrderAlreadyFulfilled) {
				return err
			}
			return dataAccess(err)
		}
		id = record.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func dataAccess(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrDataAccess, err)
}
