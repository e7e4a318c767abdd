package domain

import (
	"fmt"
	"strings"
	"time"
)

// Date é uma data de calendário, sem hora. O backoffice mistura datas
// puras ("2024-01-10") com timestamps completos; qualquer componente de
// horário é descartado na decodificação para evitar exclusão indevida
// nas bordas de um filtro de período.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf trunca um time.Time para a granularidade de dia.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format(time.DateOnly))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return nil
	}

	// Primeiro o formato canônico de data, depois timestamps completos.
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("data inválida %q: esperado YYYY-MM-DD", raw)
		}
	}

	*d = DateOf(parsed)
	return nil
}

// MonthKey retorna a chave do mês no formato YYYY-MM.
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// Sale representa uma venda registrada no backoffice. É imutável do ponto
// de vista deste serviço: não existe operação de edição de venda.
type Sale struct {
	ID         int     `json:"id"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       Date    `json:"date"`
}

// SaleInput é o corpo aceito no registro de uma nova venda.
type SaleInput struct {
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Date       Date    `json:"date"`
}

// Validate verifica os campos obrigatórios antes de enviar ao backoffice.
func (s SaleInput) Validate() []FieldError {
	var errs []FieldError

	if s.ProductID <= 0 {
		errs = append(errs, FieldError{Field: "product_id", Message: "Produto é obrigatório"})
	}

	if s.Quantity <= 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "Quantidade deve ser maior que zero"})
	}

	if s.TotalPrice < 0 {
		errs = append(errs, FieldError{Field: "total_price", Message: "Valor total não pode ser negativo"})
	}

	if s.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "Data da venda é obrigatória"})
	}

	return errs
}
