package vehicle

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
)

var (
	ErrNotFound       = errors.New("veículo não encontrado")
	ErrPlateDuplicate = errors.New("placa já cadastrada")
	ErrInvalidStatus  = errors.New("status inválido")
)

// Status representa a situação comercial do veículo
type Status string

const (
	StatusAvailable Status = "Available"
	StatusReserved  Status = "Reserved"
	StatusSold      Status = "Sold"
)

// Valid verifica se o status é um dos valores aceitos
func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold:
		return true
	}
	return false
}

// Vehicle representa um veículo do estoque. Pertence a exatamente uma loja;
// remover o veículo não afeta a loja.
type Vehicle struct {
	ID              string             `json:"id"`
	StoreID         string             `json:"store_id"`
	Store           *store.Store       `json:"store,omitempty"`
	CategoryID      string             `json:"category_id"`
	Category        *taxonomy.Category `json:"category,omitempty"`
	BrandID         string             `json:"brand_id"`
	Brand           *taxonomy.Brand    `json:"brand,omitempty"`
	ModelID         string             `json:"model_id"`
	Model           *taxonomy.Model    `json:"model,omitempty"`
	Plate           string             `json:"plate"`
	ManufactureYear int                `json:"manufacture_year"`
	ModelYear       int                `json:"model_year"`
	Mileage         int                `json:"mileage"`
	Color           string             `json:"color,omitempty"`
	FuelType        string             `json:"fuel_type,omitempty"`
	Price           float64            `json:"price"`
	FipeCode        string             `json:"fipe_code,omitempty"`
	FipeValue       *float64           `json:"fipe_value,omitempty"`
	Description     string             `json:"description,omitempty"`
	Status          Status             `json:"status"`
	HomeHighlight   bool               `json:"home_highlight"`
	BrandHighlight  bool               `json:"brand_highlight"`
	Features        []string           `json:"features,omitempty"`
	Specifications  map[string]any     `json:"specifications,omitempty"`
	Photos          []*photo.Photo     `json:"photos,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	DeletedAt       *time.Time         `json:"deleted_at,omitempty"`
}

// NewVehicle cria um novo veículo com status Available por padrão
func NewVehicle(storeID, categoryID, brandID, modelID, plate string) *Vehicle {
	now := time.Now()
	return &Vehicle{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		CategoryID: categoryID,
		BrandID:    brandID,
		ModelID:    modelID,
		Plate:      plate,
		Status:     StatusAvailable,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CoverPhotoURL resolve a foto de capa: a foto marcada como capa ou, na
// ausência dela, a primeira por ordem de exibição
func (v *Vehicle) CoverPhotoURL() string {
	for _, p := range v.Photos {
		if p.IsCover {
			return p.URL
		}
	}
	if len(v.Photos) > 0 {
		return v.Photos[0].URL
	}
	return ""
}
