package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais. Usado na
// conversão do saldo de unidades menores da moeda para exibição.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
