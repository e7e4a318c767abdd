package utils

import (
	"math"
	"strconv"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatCurrency formata um valor monetário em reais no padrão pt-BR,
// ex.: R$ 1.234,56.
func FormatCurrency(value float64) string {
	formatted := strconv.FormatFloat(RoundWithTwoDecimalPlace(value), 'f', 2, 64)

	negative := strings.HasPrefix(formatted, "-")
	formatted = strings.TrimPrefix(formatted, "-")

	parts := strings.SplitN(formatted, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	result := "R$ " + strings.Join(groups, ".") + "," + fracPart
	if negative {
		result = "-" + result
	}

	return result
}
