package backenddomain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawInt_UnmarshalJSON(t *testing.T) {
	json := jsoniter.ConfigCompatibleWithStandardLibrary

	tests := []struct {
		name       string
		input      string
		expected   int
		expectedOK bool
	}{
		{name: "Número", input: `{"DetallePedidoCantidad": 3}`, expected: 3, expectedOK: true},
		{name: "Texto numérico", input: `{"DetallePedidoCantidad": "3"}`, expected: 3, expectedOK: true},
		{name: "Decimal inteiro", input: `{"DetallePedidoCantidad": 4.0}`, expected: 4, expectedOK: true},
		{name: "Nulo", input: `{"DetallePedidoCantidad": null}`, expected: 0, expectedOK: true},
		{name: "Ausente", input: `{}`, expected: 0, expectedOK: true},
		{name: "Texto não numérico", input: `{"DetallePedidoCantidad": "tres"}`, expected: 0, expectedOK: false},
		{name: "Fracionário", input: `{"DetallePedidoCantidad": 2.5}`, expected: 0, expectedOK: false},
		{name: "Booleano", input: `{"DetallePedidoCantidad": true}`, expected: 0, expectedOK: false},
		{name: "Objeto", input: `{"DetallePedidoCantidad": {"valor": 1}}`, expected: 0, expectedOK: false},
		{name: "Expoente gigante", input: `{"DetallePedidoCantidad": 1e400}`, expected: 0, expectedOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item OrderItem
			require.NoError(t, json.Unmarshal([]byte(tt.input), &item))

			got, ok := item.Quantity.Int()
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expectedOK, ok)
		})
	}
}
