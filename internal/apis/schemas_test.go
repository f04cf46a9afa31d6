package apis

import (
	"testing"

	"github.com/jackc/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrapValue(t *testing.T) {
	wrapped, err := wrapValue("PC")
	require.NoError(t, err)
	assert.Equal(t, pgtype.Present, wrapped.Status)
	assert.JSONEq(t, `{"value": "PC"}`, string(wrapped.Bytes))
	assert.Equal(t, "PC", unwrapValue(wrapped))

	wrapped, err = wrapValue([]any{"PC", "PS5"})
	require.NoError(t, err)
	assert.Equal(t, []any{"PC", "PS5"}, unwrapValue(wrapped))

	wrapped, err = wrapValue(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"value": null}`, string(wrapped.Bytes))
	assert.Nil(t, unwrapValue(wrapped))
}

func TestUnwrapValueNullColumn(t *testing.T) {
	assert.Nil(t, unwrapValue(pgtype.JSONB{Status: pgtype.Null}))
}

func TestJsonbToRaw(t *testing.T) {
	raw := jsonbToRaw(pgtype.JSONB{Bytes: []byte(`{"options": ["PC"]}`), Status: pgtype.Present})
	assert.JSONEq(t, `{"options": ["PC"]}`, string(raw))

	assert.Equal(t, "null", string(jsonbToRaw(pgtype.JSONB{Status: pgtype.Null})))
}

func TestRawToJsonb(t *testing.T) {
	j := rawToJsonb([]byte(`{"options": ["PC"]}`))
	assert.Equal(t, pgtype.Present, j.Status)

	assert.Equal(t, pgtype.Null, rawToJsonb(nil).Status)
	assert.Equal(t, pgtype.Null, rawToJsonb([]byte("null")).Status)
}
