package docs

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

// swagger.json (servido en /docs) y la plantilla registrada deben describir la misma API.
func TestSwaggerDoc_CoincideConArchivo(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var registered map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &registered))

	raw, err := os.ReadFile("swagger.json")
	require.NoError(t, err)
	var file map[string]any
	require.NoError(t, json.Unmarshal(raw, &file))

	assert.Equal(t, file["paths"], registered["paths"])
	assert.Equal(t, file["definitions"], registered["definitions"])
	assert.Contains(t, registered["paths"], "/api/warehouse")
}
