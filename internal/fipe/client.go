package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://parallelum.com.br/fipe/api/v1"

// UpstreamError carrega o status e o corpo retornados pela tabela FIPE
// quando a consulta falha, para serem repassados ao cliente
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("consulta FIPE retornou status %d", e.StatusCode)
}

// Client consulta a tabela FIPE via HTTP
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient cria um cliente FIPE apontando para FIPE_BASE_URL, ou para a API
// pública quando não configurado
func NewClient() *Client {
	baseURL := os.Getenv("FIPE_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

// Get executa uma consulta e retorna o corpo bruto da resposta
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("falha ao montar requisição FIPE: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar FIPE: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("falha ao ler resposta FIPE: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	return body, nil
}
