package dto

import (
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
)

// VehicleRequest representa os dados de um veículo para criação. Marca e
// modelo podem vir por ID ou por nome; nomes desconhecidos são cadastrados
// automaticamente.
type VehicleRequest struct {
	StoreID         string         `json:"store_id" binding:"required"`
	CategoryID      string         `json:"category_id" binding:"required"`
	Plate           string         `json:"plate" binding:"required"`
	ManufactureYear int            `json:"manufacture_year" binding:"required"`
	ModelYear       int            `json:"model_year" binding:"required"`
	Mileage         int            `json:"mileage"`
	Color           string         `json:"color"`
	FuelType        string         `json:"fuel_type"`
	Price           float64        `json:"price" binding:"required"`
	FipeCode        string         `json:"fipe_code"`
	FipeValue       *float64       `json:"fipe_value"`
	BrandID         string         `json:"brand_id"`
	BrandName       string         `json:"brand_name"`
	BrandFipeID     string         `json:"brand_fipe_id"`
	BrandLogo       string         `json:"brand_logo"`
	ModelID         string         `json:"model_id"`
	ModelName       string         `json:"model_name"`
	ModelFipeID     string         `json:"model_fipe_id"`
	Description     string         `json:"description"`
	Status          string         `json:"status"`
	HomeHighlight   bool           `json:"home_highlight"`
	BrandHighlight  bool           `json:"brand_highlight"`
	Features        []string       `json:"features"`
	Specifications  map[string]any `json:"specifications"`
}

// VehicleUpdateRequest representa os dados de um veículo para atualização
// parcial; campos ausentes não são alterados
type VehicleUpdateRequest struct {
	StoreID         *string        `json:"store_id"`
	CategoryID      *string        `json:"category_id"`
	Plate           *string        `json:"plate"`
	ManufactureYear *int           `json:"manufacture_year"`
	ModelYear       *int           `json:"model_year"`
	Mileage         *int           `json:"mileage"`
	Color           *string        `json:"color"`
	FuelType        *string        `json:"fuel_type"`
	Price           *float64       `json:"price"`
	FipeCode        *string        `json:"fipe_code"`
	FipeValue       *float64       `json:"fipe_value"`
	BrandID         *string        `json:"brand_id"`
	BrandName       *string        `json:"brand_name"`
	BrandFipeID     *string        `json:"brand_fipe_id"`
	BrandLogo       *string        `json:"brand_logo"`
	ModelID         *string        `json:"model_id"`
	ModelName       *string        `json:"model_name"`
	ModelFipeID     *string        `json:"model_fipe_id"`
	Description     *string        `json:"description"`
	Status          *string        `json:"status"`
	HomeHighlight   *bool          `json:"home_highlight"`
	BrandHighlight  *bool          `json:"brand_highlight"`
	Features        []string       `json:"features"`
	Specifications  map[string]any `json:"specifications"`
}

// VehicleStatusRequest representa a alteração de status de um veículo
type VehicleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// VehicleSearchQuery representa os parâmetros de busca de veículos
type VehicleSearchQuery struct {
	CategoryID     string   `form:"category_id"`
	BrandFipeID    string   `form:"brand_fipe_id"`
	ModelFipeID    string   `form:"model_fipe_id"`
	StoreID        string   `form:"store_id"`
	MinPrice       *float64 `form:"min_price"`
	MaxPrice       *float64 `form:"max_price"`
	YearMin        *int     `form:"year_min"`
	YearMax        *int     `form:"year_max"`
	HomeHighlight  bool     `form:"home_highlight"`
	BrandHighlight bool     `form:"brand_highlight"`
	Search         string   `form:"search"`
	Status         string   `form:"status"`
	Sort           string   `form:"sort"`
	Order          string   `form:"order"`
	Page           int      `form:"page"`
	PageSize       int      `form:"page_size"`
}

// ToSearchFilters converte os parâmetros de busca para os filtros do domínio
func (q VehicleSearchQuery) ToSearchFilters() vehicle.SearchFilters {
	pagination := GetPagination(q.Page, q.PageSize)

	return vehicle.SearchFilters{
		CategoryID:     q.CategoryID,
		BrandFipeID:    q.BrandFipeID,
		ModelFipeID:    q.ModelFipeID,
		StoreID:        q.StoreID,
		MinPrice:       q.MinPrice,
		MaxPrice:       q.MaxPrice,
		YearMin:        q.YearMin,
		YearMax:        q.YearMax,
		HomeHighlight:  q.HomeHighlight,
		BrandHighlight: q.BrandHighlight,
		Search:         q.Search,
		Status:         vehicle.Status(q.Status),
		Sort:           q.Sort,
		Order:          q.Order,
		Page:           pagination.Page,
		PageSize:       pagination.PageSize,
	}
}

// VehicleResponse representa a resposta com dados completos de um veículo
type VehicleResponse struct {
	ID              string          `json:"id"`
	StoreID         string          `json:"store_id"`
	StoreName       string          `json:"store_name,omitempty"`
	CategoryID      string          `json:"category_id"`
	CategoryName    string          `json:"category_name,omitempty"`
	BrandID         string          `json:"brand_id"`
	BrandName       string          `json:"brand_name,omitempty"`
	ModelID         string          `json:"model_id"`
	ModelName       string          `json:"model_name,omitempty"`
	Plate           string          `json:"plate"`
	ManufactureYear int             `json:"manufacture_year"`
	ModelYear       int             `json:"model_year"`
	Mileage         int             `json:"mileage"`
	Color           string          `json:"color,omitempty"`
	FuelType        string          `json:"fuel_type,omitempty"`
	Price           float64         `json:"price"`
	FipeCode        string          `json:"fipe_code,omitempty"`
	FipeValue       *float64        `json:"fipe_value,omitempty"`
	Description     string          `json:"description,omitempty"`
	Status          string          `json:"status"`
	HomeHighlight   bool            `json:"home_highlight"`
	BrandHighlight  bool            `json:"brand_highlight"`
	Features        []string        `json:"features,omitempty"`
	Specifications  map[string]any  `json:"specifications,omitempty"`
	Photos          []PhotoResponse `json:"photos,omitempty"`
	CoverPhotoURL   string          `json:"cover_photo_url,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// VehicleListResponse representa a resposta com a lista de veículos
// paginada. Os campos de paginação ficam na raiz do envelope, não em um
// objeto pagination aninhado.
type VehicleListResponse struct {
	Data       []VehicleResponse `json:"data"`
	TotalCount int               `json:"total_count"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// PublicVehicleResponse representa a projeção pública de um veículo na
// vitrine, com loja, taxonomia e capa desnormalizadas
type PublicVehicleResponse struct {
	ID              string              `json:"id"`
	Store           PublicStoreResponse `json:"store"`
	CategoryName    string              `json:"category_name"`
	BrandName       string              `json:"brand_name"`
	ModelName       string              `json:"model_name"`
	ManufactureYear int                 `json:"manufacture_year"`
	ModelYear       int                 `json:"model_year"`
	Mileage         int                 `json:"mileage"`
	Color           string              `json:"color,omitempty"`
	FuelType        string              `json:"fuel_type,omitempty"`
	Price           float64             `json:"price"`
	FipeValue       *float64            `json:"fipe_value,omitempty"`
	Description     string              `json:"description,omitempty"`
	HomeHighlight   bool                `json:"home_highlight"`
	BrandHighlight  bool                `json:"brand_highlight"`
	Features        []string            `json:"features,omitempty"`
	Specifications  map[string]any      `json:"specifications,omitempty"`
	Photos          []PhotoResponse     `json:"photos,omitempty"`
	CoverPhotoURL   string              `json:"cover_photo_url,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
}

// PublicVehicleListResponse representa a vitrine pública paginada
type PublicVehicleListResponse struct {
	Data       []PublicVehicleResponse `json:"data"`
	TotalCount int                     `json:"total_count"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"page_size"`
	TotalPages int                     `json:"total_pages"`
}

// ToCreateInput converte o DTO de criação para a entrada do serviço
func (r VehicleRequest) ToCreateInput() vehicle.CreateInput {
	return vehicle.CreateInput{
		StoreID:         r.StoreID,
		CategoryID:      r.CategoryID,
		Plate:           r.Plate,
		ManufactureYear: r.ManufactureYear,
		ModelYear:       r.ModelYear,
		Mileage:         r.Mileage,
		Color:           r.Color,
		FuelType:        r.FuelType,
		Price:           r.Price,
		FipeCode:        r.FipeCode,
		FipeValue:       r.FipeValue,
		BrandID:         r.BrandID,
		BrandName:       r.BrandName,
		BrandFipeID:     r.BrandFipeID,
		BrandLogo:       r.BrandLogo,
		ModelID:         r.ModelID,
		ModelName:       r.ModelName,
		ModelFipeID:     r.ModelFipeID,
		Description:     r.Description,
		Status:          vehicle.Status(r.Status),
		HomeHighlight:   r.HomeHighlight,
		BrandHighlight:  r.BrandHighlight,
		Features:        r.Features,
		Specifications:  r.Specifications,
	}
}

// ToUpdateInput converte o DTO de atualização para a entrada do serviço
func (r VehicleUpdateRequest) ToUpdateInput() vehicle.UpdateInput {
	in := vehicle.UpdateInput{
		StoreID:         r.StoreID,
		CategoryID:      r.CategoryID,
		Plate:           r.Plate,
		ManufactureYear: r.ManufactureYear,
		ModelYear:       r.ModelYear,
		Mileage:         r.Mileage,
		Color:           r.Color,
		FuelType:        r.FuelType,
		Price:           r.Price,
		FipeCode:        r.FipeCode,
		FipeValue:       r.FipeValue,
		BrandID:         r.BrandID,
		BrandName:       r.BrandName,
		BrandFipeID:     r.BrandFipeID,
		BrandLogo:       r.BrandLogo,
		ModelID:         r.ModelID,
		ModelName:       r.ModelName,
		ModelFipeID:     r.ModelFipeID,
		Description:     r.Description,
		Features:        r.Features,
		Specifications:  r.Specifications,
	}

	if r.Status != nil {
		status := vehicle.Status(*r.Status)
		in.Status = &status
	}
	in.HomeHighlight = r.HomeHighlight
	in.BrandHighlight = r.BrandHighlight

	return in
}

// ToVehicleResponse converte um veículo do domínio para DTO de resposta
func ToVehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	resp := VehicleResponse{
		ID:              v.ID,
		StoreID:         v.StoreID,
		CategoryID:      v.CategoryID,
		BrandID:         v.BrandID,
		ModelID:         v.ModelID,
		Plate:           v.Plate,
		ManufactureYear: v.ManufactureYear,
		ModelYear:       v.ModelYear,
		Mileage:         v.Mileage,
		Color:           v.Color,
		FuelType:        v.FuelType,
		Price:           v.Price,
		FipeCode:        v.FipeCode,
		FipeValue:       v.FipeValue,
		Description:     v.Description,
		Status:          string(v.Status),
		HomeHighlight:   v.HomeHighlight,
		BrandHighlight:  v.BrandHighlight,
		Features:        v.Features,
		Specifications:  v.Specifications,
		Photos:          ToPhotoListResponse(v.Photos),
		CoverPhotoURL:   v.CoverPhotoURL(),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}

	if v.Store != nil {
		resp.StoreName = v.Store.Name
	}
	if v.Category != nil {
		resp.CategoryName = v.Category.Name
	}
	if v.Brand != nil {
		resp.BrandName = v.Brand.Name
	}
	if v.Model != nil {
		resp.ModelName = v.Model.Name
	}

	return resp
}

// ToVehicleListResponse converte uma página de veículos para DTO de resposta paginada
func ToVehicleListResponse(vehicles []*vehicle.Vehicle, totalCount, page, pageSize int) VehicleListResponse {
	data := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		data[i] = ToVehicleResponse(v)
	}

	return VehicleListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToPublicVehicleResponse converte um veículo do domínio para a projeção
// pública
func ToPublicVehicleResponse(v *vehicle.Vehicle) PublicVehicleResponse {
	resp := PublicVehicleResponse{
		ID:              v.ID,
		ManufactureYear: v.ManufactureYear,
		ModelYear:       v.ModelYear,
		Mileage:         v.Mileage,
		Color:           v.Color,
		FuelType:        v.FuelType,
		Price:           v.Price,
		FipeValue:       v.FipeValue,
		Description:     v.Description,
		HomeHighlight:   v.HomeHighlight,
		BrandHighlight:  v.BrandHighlight,
		Features:        v.Features,
		Specifications:  v.Specifications,
		Photos:          ToPhotoListResponse(v.Photos),
		CoverPhotoURL:   v.CoverPhotoURL(),
		CreatedAt:       v.CreatedAt,
	}

	if v.Store != nil {
		resp.Store = ToPublicStoreResponse(v.Store)
	}
	if v.Category != nil {
		resp.CategoryName = v.Category.Name
	}
	if v.Brand != nil {
		resp.BrandName = v.Brand.Name
	}
	if v.Model != nil {
		resp.ModelName = v.Model.Name
	}

	return resp
}

// ToPublicVehicleListResponse converte uma página de veículos para a vitrine
// pública paginada
func ToPublicVehicleListResponse(vehicles []*vehicle.Vehicle, totalCount, page, pageSize int) PublicVehicleListResponse {
	data := make([]PublicVehicleResponse, len(vehicles))
	for i, v := range vehicles {
		data[i] = ToPublicVehicleResponse(v)
	}

	return PublicVehicleListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
