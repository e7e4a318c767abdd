package utils

import "time"

// ParseDate interpreta uma data YYYY-MM-DD vinda da query string.
// String vazia significa ausência do parâmetro (lado ilimitado do
// período) e devolve nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
