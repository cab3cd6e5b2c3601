package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrProductNotFound       = errors.New("el producto no existe")
	ErrWarehouseNotFound     = errors.New("la bodega no existe")
	ErrNoMatchingOrder       = errors.New("no existe una orden que coincida con el producto y la cantidad")
	ErrOrderAlreadyFulfilled = errors.New("la orden ya fue completada")
	ErrDataAccess            = errors.New("error de acceso a datos")
)

// ErrorKind clasifica los errores del flujo de recepción de stock.
type ErrorKind string

const (
	KindInvalidRequest        ErrorKind = "INVALID_REQUEST"
	KindNotFound              ErrorKind = "NOT_FOUND"
	KindNoMatchingOrder       ErrorKind = "NO_MATCHING_ORDER"
	KindOrderAlreadyFulfilled ErrorKind = "ORDER_ALREADY_FULFILLED"
	KindDataAccessFailure     ErrorKind = "DATA_ACCESS_FAILURE"
)

// Kind devuelve la categoría de err. Cualquier error no reconocido se trata como fallo de acceso a datos.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidRequest
	case errors.Is(err, ErrProductNotFound), errors.Is(err, ErrWarehouseNotFound):
		return KindNotFound
	case errors.Is(err, ErrNoMatchingOrder):
		return KindNoMatchingOrder
	case errors.Is(err, ErrOrderAlreadyFulfilled):
		return KindOrderAlreadyFulfilled
	default:
		return KindDataAccessFailure
	}
}
