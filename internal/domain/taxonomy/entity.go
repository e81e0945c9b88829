package taxonomy

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound  = errors.New("categoria não encontrada")
	ErrBrandNotFound     = errors.New("marca não encontrada")
	ErrModelNotFound     = errors.New("modelo não encontrado")
	ErrCategoryDuplicate = errors.New("categoria com este nome já existe")
	ErrBrandDuplicate    = errors.New("marca com este nome já existe")
	ErrModelDuplicate    = errors.New("modelo com este nome já existe para esta marca")
	ErrCategoryInUse     = errors.New("existem veículos usando esta categoria")
	ErrBrandInUse        = errors.New("existem veículos usando esta marca")
	ErrModelInUse        = errors.New("existem veículos usando este modelo")
)

// Category representa um tipo de veículo (carros, motos, caminhões)
type Category struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Icon      string     `json:"icon,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Brand representa uma marca de veículo, com o código FIPE correspondente
type Brand struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	BrandFipeID string     `json:"brand_fipe_id,omitempty"`
	Logo        string     `json:"logo,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Model representa um modelo de veículo vinculado a uma marca
type Model struct {
	ID          string     `json:"id"`
	BrandID     string     `json:"brand_id"`
	Name        string     `json:"name"`
	ModelFipeID string     `json:"model_fipe_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// NewCategory cria uma nova categoria ativa
func NewCategory(name, icon string) *Category {
	now := time.Now()
	return &Category{
		ID:        uuid.New().String(),
		Name:      name,
		Icon:      icon,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewBrand cria uma nova marca
func NewBrand(name, brandFipeID, logo string) *Brand {
	now := time.Now()
	return &Brand{
		ID:          uuid.New().String(),
		Name:        name,
		BrandFipeID: brandFipeID,
		Logo:        logo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewModel cria um novo modelo
func NewModel(brandID, name, modelFipeID string) *Model {
	now := time.Now()
	return &Model{
		ID:          uuid.New().String(),
		BrandID:     brandID,
		Name:        name,
		ModelFipeID: modelFipeID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
