package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	apphttp "github.com/jhoicas/warehouse-api/internal/interfaces/http"
	"github.com/jhoicas/warehouse-api/pkg/logger"
)

func TestAccessLog_RegistraPeticion(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "req-123" }}))
	app.Use(apphttp.AccessLog(log))
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-123", line["request_id"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/health", line["path"])
	assert.Equal(t, float64(http.StatusNoContent), line["status"])
	assert.Equal(t, "info", line["level"])
}

func TestTraceContext_ExtraeTraceparent(t *testing.T) {
	app := fiber.New()
	app.Use(apphttp.TraceContext(propagation.TraceContext{}))
	app.Get("/trace", func(c *fiber.Ctx) error {
		sc := trace.SpanContextFromContext(c.UserContext())
		return c.JSON(fiber.Map{"valid": sc.IsValid(), "remote": sc.IsRemote(), "trace_id": sc.TraceID().String()})
	})

	get := func(traceparent string) map[string]any {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/trace", nil)
		if traceparent != "" {
			req.Header.Set("traceparent", traceparent)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return out
	}

	out := get("00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	assert.Equal(t, true, out["valid"])
	assert.Equal(t, true, out["remote"])
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", out["trace_id"])

	out = get("")
	assert.Equal(t, false, out["valid"], "sin header no hay traza padre")
}
