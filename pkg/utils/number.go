package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Limites aceitos para um valor monetário. Expoentes fora da faixa fariam a
// soma reescalar o valor para um big.Int gigante.
const (
	maxAmountLength   = 32
	minAmountExponent = -8
	maxAmountExponent = 12
)

// ParseAmount interpreta um valor monetário bruto. Valores vazios, não
// numéricos, negativos ou fora dos limites resultam em zero e ok=false.
func ParseAmount(raw string) (amount decimal.Decimal, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxAmountLength {
		return decimal.Zero, false
	}

	value, err := decimal.NewFromString(raw)
	if err != nil || value.IsNegative() {
		return decimal.Zero, false
	}

	if exp := value.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return decimal.Zero, false
	}

	return value, true
}
