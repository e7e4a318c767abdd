package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "Valor simples", value: 49.9, want: "R$ 49,90"},
		{name: "Milhar com separador", value: 1234.56, want: "R$ 1.234,56"},
		{name: "Milhões", value: 1234567.89, want: "R$ 1.234.567,89"},
		{name: "Zero", value: 0, want: "R$ 0,00"},
		{name: "Negativo", value: -1234.5, want: "-R$ 1.234,50"},
		{name: "Arredondamento de centavos", value: 10.006, want: "R$ 10,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.01, RoundWithTwoDecimalPlace(10.006))
	assert.Equal(t, 10.0, RoundWithTwoDecimalPlace(10.004))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-10")
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), *parsed)

	parsed, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, parsed)

	_, err = ParseDate("10/01/2024")
	require.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)

	other, err := GenerateID()
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestPrettyJson(t *testing.T) {
	pretty := PrettyJson(map[string]int{"total": 10})
	assert.Contains(t, pretty, "\"total\": 10")

	raw := PrettyJson([]byte(`{"total":10}`))
	assert.Contains(t, raw, "total")
}
