package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/warehouse-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlaceStock StockPlacer
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	warehouseHandler := NewWarehouseHandler(deps.PlaceStock, NewValidator(), deps.Logger.Component("warehouse"))
	api.Post("/warehouse", warehouseHandler.AddProductToWarehouse)
}
