package domain

import "time"

// PeriodFilters delimita um período de calendário com intervalo fechado
// nas duas pontas. Uma ponta nil significa ilimitada daquele lado.
type PeriodFilters struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// IsUnbounded informa se nenhum limite de período foi aplicado.
func (f *PeriodFilters) IsUnbounded() bool {
	return f == nil || (f.StartDate == nil && f.EndDate == nil)
}

// Contains verifica se a data pertence ao período. A comparação é feita
// na granularidade de dia: uma venda datada exatamente no início ou no
// fim do período é incluída.
func (f *PeriodFilters) Contains(d Date) bool {
	if f == nil {
		return true
	}

	if f.StartDate != nil {
		start := DateOf(*f.StartDate)
		if d.Before(start.Time) {
			return false
		}
	}

	if f.EndDate != nil {
		end := DateOf(*f.EndDate)
		if d.After(end.Time) {
			return false
		}
	}

	return true
}
