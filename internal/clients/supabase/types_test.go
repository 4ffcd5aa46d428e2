package supabase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericCoercion(t *testing.T) {
	t.Parallel()

	var row productRow
	err := json.Unmarshal([]byte(`{"id":7,"name":"Cable","model":"USB-C","price":"not a number","stock":null}`), &row)
	require.NoError(t, err)

	// Unparseable and null numerics coerce to zero instead of failing the row.
	assert.Equal(t, 0.0, float64(row.Price))
	assert.Equal(t, 0, int(row.Stock))
	assert.Equal(t, "Cable", row.Name)
}
