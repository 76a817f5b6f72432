package counting_test

import (
	"encoding/json"
	"testing"

	"stock-counter/feature/counting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_UnmarshalKeepsOrderAndRepeats(t *testing.T) {
	var s counting.Session
	err := json.Unmarshal([]byte(`{"b":{"quantidade":3},"a":{"quantidade":-1},"b":{"quantidade":2},"c":{"quantidade":0,"extra":true}}`), &s)
	require.NoError(t, err)

	assert.Equal(t, counting.Session{
		{Barcode: "b", Quantity: 3},
		{Barcode: "a", Quantity: -1},
		{Barcode: "b", Quantity: 2},
		{Barcode: "c", Quantity: 0},
	}, s)
}

func TestSession_UnmarshalEmptyObject(t *testing.T) {
	var s counting.Session
	require.NoError(t, json.Unmarshal([]byte(`{}`), &s))
	assert.NotNil(t, s)
	assert.Empty(t, s)
}

func TestSession_UnmarshalKeepsLiteralBarcodes(t *testing.T) {
	var s counting.Session
	require.NoError(t, json.Unmarshal([]byte(`{" 123\t":{"quantidade":1},"123":{"quantidade":2}}`), &s))
	assert.Equal(t, counting.Session{
		{Barcode: " 123\t", Quantity: 1},
		{Barcode: "123", Quantity: 2},
	}, s)
}

func TestSession_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Array", `[{"codigo_barra":"1","quantidade":1}]`},
		{"String", `"123"`},
		{"MissingQuantity", `{"123":{}}`},
		{"NullQuantity", `{"123":{"quantidade":null}}`},
		{"FractionalQuantity", `{"123":{"quantidade":1.5}}`},
		{"TextQuantity", `{"123":{"quantidade":"5"}}`},
		{"BareNumber", `{"123":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s counting.Session
			err := json.Unmarshal([]byte(tt.body), &s)
			assert.ErrorIs(t, err, counting.ErrInvalidSession)
		})
	}
}

func TestSession_MarshalRoundTripsRepeats(t *testing.T) {
	in := counting.Session{{Barcode: "x", Quantity: 1}, {Barcode: "x", Quantity: -4}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"x":{"quantidade":1},"x":{"quantidade":-4}}`, string(data))

	var out counting.Session
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
