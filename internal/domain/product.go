package domain

import "strings"

// Product representa um item do catálogo mantido pelo backoffice.
// A cópia local é somente leitura e substituída integralmente a cada
// refresh do snapshot.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	CategoryID  int     `json:"category_id"`
}

// ProductInput é o corpo aceito nas operações de criação e atualização.
// O ID é atribuído pelo backoffice.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
	CategoryID  int     `json:"category_id"`
}

// FieldError descreve uma falha de validação de um campo específico,
// para feedback inline no formulário.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate verifica os campos obrigatórios antes de enviar ao backoffice.
func (p ProductInput) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Nome é obrigatório"})
	}

	if strings.TrimSpace(p.Brand) == "" {
		errs = append(errs, FieldError{Field: "brand", Message: "Marca é obrigatória"})
	}

	if p.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "Preço não pode ser negativo"})
	}

	if p.CategoryID <= 0 {
		errs = append(errs, FieldError{Field: "category_id", Message: "Categoria é obrigatória"})
	}

	return errs
}

// ProductIndex indexa produtos por ID para resolução de vendas.
type ProductIndex map[int]Product

func NewProductIndex(products []Product) ProductIndex {
	index := make(ProductIndex, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return index
}
