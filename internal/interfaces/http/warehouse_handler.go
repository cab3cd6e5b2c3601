package http

import (
	"bytes"
	"context"
	"errors"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-api/internal/application/dto"
	"github.com/jhoicas/warehouse-api/internal/domain"
	"github.com/jhoicas/warehouse-api/pkg/logger"
)

// StockPlacer caso de uso de ingreso de stock (implementado por inventory.PlaceStockUseCase).
type StockPlacer interface {
	PlaceStockFromRequest(ctx context.Context, in dto.ProductWarehouseRequest) (int, error)
}

// WarehouseHandler maneja las peticiones HTTP de ingreso de productos a bodega.
type WarehouseHandler struct {
	uc       StockPlacer
	validate *validatorv10.Validate
	log      *logger.Logger
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc StockPlacer, validate *validatorv10.Validate, log *logger.Logger) *WarehouseHandler {
	return &WarehouseHandler{uc: uc, validate: validate, log: log}
}

// AddProductToWarehouse godoc
// @Summary      Ingresar producto a bodega
// @Description  Busca la orden abierta que coincide (producto, cantidad, fecha), la marca como completada
// @Description  e inserta el registro en product_warehouse con precio = precio del producto * Amount.
// @Tags         warehouse
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProductWarehouseRequest  true  "IdWarehouse, IdProduct, IdOrder, Amount, CreatedAt (Price e IdProductWarehouse se ignoran)"
// @Success      200   {integer} int  "ID del registro generado"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/warehouse [post]
func (h *WarehouseHandler) AddProductToWarehouse(c *fiber.Ctx) error {
	if len(bytes.TrimSpace(c.Body())) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "solicitud inválida"})
	}
	var in dto.ProductWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "solicitud inválida"})
	}
	if in.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Amount debe ser mayor que 0"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}

	id, err := h.uc.PlaceStockFromRequest(c.UserContext(), in)
	if err != nil {
		ev := h.log.Warn()
		if domain.Kind(err) == domain.KindDataAccessFailure {
			ev = h.log.Error()
		}
		ev.Err(err).
			Str("request_id", GetRequestID(c)).
			Int("id_product", in.IdProduct).
			Int("id_warehouse", in.IdWarehouse).
			Int("amount", in.Amount).
			Msg("ingreso de stock rechazado")
		// Todas las fallas del flujo responden 404; el código permite distinguirlas.
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: errorCode(err), Message: err.Error()})
	}
	return c.Status(fiber.StatusOK).JSON(id)
}

// errorCode detalla domain.Kind para el cliente: NOT_FOUND se separa en producto y bodega.
func errorCode(err error) string {
	switch domain.Kind(err) {
	case domain.KindInvalidRequest:
		return "INVALID_INPUT"
	case domain.KindNotFound:
		if errors.Is(err, domain.ErrWarehouseNotFound) {
			return "WAREHOUSE_NOT_FOUND"
		}
		return "PRODUCT_NOT_FOUND"
	case domain.KindNoMatchingOrder:
		return "NO_MATCHING_ORDER"
	case domain.KindOrderAlreadyFulfilled:
		return "ORDER_ALREADY_FULFILLED"
	default:
		return "DATA_ACCESS"
	}
}
