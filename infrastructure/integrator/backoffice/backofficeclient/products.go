package backofficeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/estoquelab/painel-vendas-api/internal/domain"
)

func (c *BackofficeClient) endpoint(segments ...string) (*url.URL, error) {
	base, err := url.Parse(c.config.Backoffice.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base do backoffice: %w", err)
	}

	base.Path = path.Join(append([]string{base.Path}, segments...)...)
	return base, nil
}

func (c *BackofficeClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	endpoint, err := c.endpoint("/products")
	if err != nil {
		return nil, err
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
		return nil, fmt.Errorf("listagem de produtos falhou com status: %s", resp.Status)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return products, nil
}

func (c *BackofficeClient) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	return c.upsertProduct(ctx, http.MethodPost, []string{"/products"}, input)
}

func (c *BackofficeClient) UpdateProduct(ctx context.Context, productID int, input domain.ProductInput) (*domain.Product, error) {
	return c.upsertProduct(ctx, http.MethodPut, []string{"/products", strconv.Itoa(productID)}, input)
}

func (c *BackofficeClient) upsertProduct(ctx context.Context, method string, segments []string, input domain.ProductInput) (*domain.Product, error) {
	endpoint, err := c.endpoint(segments...)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o produto: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), bytes.NewReader(body))
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
		return nil, fmt.Errorf("gravação de produto falhou com status: %s", resp.Status)
	}

	var product domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&product); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &product, nil
}

func (c *BackofficeClient) DeleteProduct(ctx context.Context, productID int) error {
	endpoint, err := c.endpoint("/products", strconv.Itoa(productID))
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("remoção de produto falhou com status: %s", resp.Status)
	}

	return nil
}

// UploadProductsCSV encaminha o arquivo CSV como multipart/form-data no
// campo "file", do jeito que o backoffice espera.
func (c *BackofficeClient) UploadProductsCSV(ctx context.Context, filename string, file io.Reader) ([]domain.Product, error) {
	endpoint, err := c.endpoint("/products/upload")
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o formulário multipart: %w", err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("erro ao copiar o arquivo para o formulário: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o formulário multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("importação de produtos falhou com status: %s", resp.Status)
	}

	var created []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return created, nil
}
