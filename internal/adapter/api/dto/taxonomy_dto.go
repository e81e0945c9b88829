package dto

import (
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
)

// CategoryRequest representa os dados de uma categoria para criação ou atualização
type CategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	Icon   string `json:"icon"`
	Active *bool  `json:"active"`
}

// CategoryResponse representa a resposta com dados de uma categoria
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BrandRequest representa os dados de uma marca para criação ou atualização
type BrandRequest struct {
	Name        string `json:"name" binding:"required"`
	BrandFipeID string `json:"brand_fipe_id"`
	Logo        string `json:"logo"`
}

// BrandResponse representa a resposta com dados de uma marca
type BrandResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BrandFipeID string    `json:"brand_fipe_id,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ModelRequest representa os dados de um modelo para criação ou atualização
type ModelRequest struct {
	BrandID     string `json:"brand_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	ModelFipeID string `json:"model_fipe_id"`
}

// ModelResponse representa a resposta com dados de um modelo
type ModelResponse struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brand_id"`
	Name        string    `json:"name"`
	ModelFipeID string    `json:"model_fipe_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToCategoryResponse converte uma categoria do domínio para DTO de resposta
func ToCategoryResponse(c *taxonomy.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Icon:      c.Icon,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCategoryListResponse converte uma lista de categorias para DTOs de resposta
func ToCategoryListResponse(categories []*taxonomy.Category) []CategoryResponse {
	data := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		data[i] = ToCategoryResponse(c)
	}
	return data
}

// ToBrandResponse converte uma marca do domínio para DTO de resposta
func ToBrandResponse(b *taxonomy.Brand) BrandResponse {
	return BrandResponse{
		ID:          b.ID,
		Name:        b.Name,
		BrandFipeID: b.BrandFipeID,
		Logo:        b.Logo,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// ToBrandListResponse converte uma lista de marcas para DTOs de resposta
func ToBrandListResponse(brands []*taxonomy.Brand) []BrandResponse {
	data := make([]BrandResponse, len(brands))
	for i, b := range brands {
		data[i] = ToBrandResponse(b)
	}
	return data
}

// ToModelResponse converte um modelo do domínio para DTO de resposta
func ToModelResponse(m *taxonomy.Model) ModelResponse {
	return ModelResponse{
		ID:          m.ID,
		BrandID:     m.BrandID,
		Name:        m.Name,
		ModelFipeID: m.ModelFipeID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToModelListResponse converte uma lista de modelos para DTOs de resposta
func ToModelListResponse(models []*taxonomy.Model) []ModelResponse {
	data := make([]ModelResponse, len(models))
	for i, m := range models {
		data[i] = ToModelResponse(m)
	}
	return data
}
