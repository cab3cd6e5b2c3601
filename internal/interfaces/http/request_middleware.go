package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/propagation"

	"github.com/jhoicas/warehouse-api/pkg/logger"
)

// GetRequestID devuelve el ID de la petición asignado por el middleware requestid.
func GetRequestID(c *fiber.Ctx) string {
	return c.GetRespHeader(fiber.HeaderXRequestID)
}

// AccessLog registra método, ruta, estado y latencia de cada petición.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("request_id", GetRequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return err
	}
}

// TraceContext extrae el contexto de traza entrante (traceparent) y lo deja en c.UserContext(),
// de modo que los spans del caso de uso cuelgan de la traza del cliente.
func TraceContext(prop propagation.TextMapPropagator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(prop.Extract(c.UserContext(), headerCarrier{c: c}))
		return c.Next()
	}
}

// headerCarrier adapta los headers de la petición a propagation.TextMapCarrier.
type headerCarrier struct {
	c *fiber.Ctx
}

func (h headerCarrier) Get(key string) string { return h.c.Get(key) }

func (h headerCarrier) Set(key, value string) { h.c.Request().Header.Set(key, value) }

func (h headerCarrier) Keys() []string {
	var keys []string
	h.c.Request().Header.VisitAll(func(k, _ []byte) {
		keys = append(keys, string(k))
	})
	return keys
}
