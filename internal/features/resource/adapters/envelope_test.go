package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecord_FieldNamedData(t *testing.T) {
	t.Run("ObjectField", func(t *testing.T) {
		r, err := decodeRecord([]byte(`{"data":{"id":"9","status":"PENDING","data":{"weight":3}}}`))

		require.NoError(t, err)
		assert.Equal(t, "9", r.String("id"))
		assert.Equal(t, "PENDING", r.String("status"))
		assert.Equal(t, map[string]any{"weight": float64(3)}, r["data"])
	})

	t.Run("StringField", func(t *testing.T) {
		r, err := decodeRecord([]byte(`{"data":{"id":"9","data":"x"}}`))

		require.NoError(t, err)
		assert.Equal(t, "9", r.String("id"))
		assert.Equal(t, "x", r["data"])
	})

	t.Run("DoubleNested", func(t *testing.T) {
		r, err := decodeRecord([]byte(`{"data":{"data":{"id":7,"data":[1,2]}}}`))

		require.NoError(t, err)
		assert.Equal(t, "7", r.String("id"))
		assert.Equal(t, []any{float64(1), float64(2)}, r["data"])
	})
}

func TestDecodeCollection_InnerScalarDataIsNotAnEnvelope(t *testing.T) {
	_, err := decodeCollection([]byte(`{"data":{"data":"x"}}`))

	assert.Error(t, err)
}
