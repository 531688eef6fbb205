package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   decimal.Decimal
		wantOK bool
	}{
		{name: "inteiro", raw: "20", want: decimal.NewFromInt(20), wantOK: true},
		{name: "decimal com espaços", raw: " 15.50 ", want: decimal.RequireFromString("15.5"), wantOK: true},
		{name: "vazio", raw: "", want: decimal.Zero, wantOK: false},
		{name: "não numérico", raw: "abc", want: decimal.Zero, wantOK: false},
		{name: "negativo", raw: "-3", want: decimal.Zero, wantOK: false},
		{name: "notação científica", raw: "1.5e3", want: decimal.NewFromInt(1500), wantOK: true},
		{name: "expoente gigante", raw: "1e400000000", want: decimal.Zero, wantOK: false},
		{name: "expoente negativo gigante", raw: "1e-400000000", want: decimal.Zero, wantOK: false},
		{name: "texto longo demais", raw: strings.Repeat("9", 64), want: decimal.Zero, wantOK: false},
		{name: "NaN", raw: "NaN", want: decimal.Zero, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.True(t, tt.want.Equal(got), "esperado %s, obtido %s", tt.want, got)
		})
	}
}

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, "lacteos", NormalizeText("  Lácteos "))
	assert.Equal(t, "entregado", NormalizeText("ENTREGADO"))
	assert.Equal(t, "", NormalizeText("   "))
}
