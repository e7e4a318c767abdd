package backofficeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
)

func (c *BackofficeClient) ListSales(ctx context.Context, filters *domain.PeriodFilters) ([]domain.Sale, error) {
	endpoint, err := c.endpoint("/sales")
	if err != nil {
		return nil, err
	}

	// O backoffice aplica o mesmo intervalo fechado de datas; um lado
	// ausente fica ilimitado.
	if filters != nil {
		query := endpoint.Query()
		if filters.StartDate != nil {
			query.Set("start", filters.StartDate.Format(time.DateOnly))
		}
		if filters.EndDate != nil {
			query.Set("end", filters.EndDate.Format(time.DateOnly))
		}
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listagem de vendas falhou com status: %s", resp.Status)
	}

	var sales []domain.Sale
	if err := json.NewDecoder(resp.Body).Decode(&sales); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return sales, nil
}

func (c *BackofficeClient) CreateSale(ctx context.Context, input domain.SaleInput) (*domain.Sale, error) {
	endpoint, err := c.endpoint("/sales")
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a venda: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("registro de venda falhou com status: %s", resp.Status)
	}

	var sale domain.Sale
	if err := json.NewDecoder(resp.Body).Decode(&sale); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &sale, nil
}
