package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// TaxonomyResolver resolve marca e modelo por nome, criando-os quando
// necessário. Implementado pelo serviço de taxonomia.
type TaxonomyResolver interface {
	GetOrCreateBrand(ctx context.Context, name, brandFipeID, logo string) (*taxonomy.Brand, error)
	GetOrCreateModel(ctx context.Context, brandID, name, modelFipeID string) (*taxonomy.Model, error)
}

// Authorizer decide o que o usuário pode ver e mutar. Implementado pelo
// scope.Resolver.
type Authorizer interface {
	AuthorizeNestedResource(ctx context.Context, caller scope.Caller, owningStoreID string) error
	ListingScope(ctx context.Context, caller scope.Caller) (scope.Scope, error)
}

// Service orquestra as operações de veículos, delegando toda decisão de
// escopo ao Authorizer
type Service struct {
	vehicles Repository
	taxonomy TaxonomyResolver
	auth     Authorizer
	log      logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(vehicles Repository, tax TaxonomyResolver, auth Authorizer, log logger.Logger) *Service {
	return &Service{
		vehicles: vehicles,
		taxonomy: tax,
		auth:     auth,
		log:      log,
	}
}

// CreateInput contém os dados para criação de um veículo. BrandID e ModelID
// vazios acionam a resolução por nome (get-or-create).
type CreateInput struct {
	StoreID         string
	CategoryID      string
	Plate           string
	ManufactureYear int
	ModelYear       int
	Mileage         int
	Color           string
	FuelType        string
	Price           float64
	FipeCode        string
	FipeValue       *float64
	BrandID         string
	BrandName       string
	BrandFipeID     string
	BrandLogo       string
	ModelID         string
	ModelName       string
	ModelFipeID     string
	Description     string
	Status          Status
	HomeHighlight   bool
	BrandHighlight  bool
	Features        []string
	Specifications  map[string]any
}

// UpdateInput contém os dados para atualização de um veículo. Campos nulos
// não são alterados.
type UpdateInput struct {
	StoreID         *string
	CategoryID      *string
	Plate           *string
	ManufactureYear *int
	ModelYear       *int
	Mileage         *int
	Color           *string
	FuelType        *string
	Price           *float64
	FipeCode        *string
	FipeValue       *float64
	BrandID         *string
	BrandName       *string
	BrandFipeID     *string
	BrandLogo       *string
	ModelID         *string
	ModelName       *string
	ModelFipeID     *string
	Description     *string
	Status          *Status
	HomeHighlight   *bool
	BrandHighlight  *bool
	Features        []string
	Specifications  map[string]any
}

// PagedResult é uma página de veículos com o total antes da paginação
type PagedResult struct {
	Vehicles []*Vehicle
	Total    int
}

// List executa a busca restrita ao escopo de listagem do usuário
func (s *Service) List(ctx context.Context, caller scope.Caller, filters SearchFilters) (*PagedResult, error) {
	sc, err := s.auth.ListingScope(ctx, caller)
	if err != nil {
		return nil, err
	}

	filters.Normalize()

	vehicles, total, err := s.vehicles.Search(ctx, filters, sc)
	if err != nil {
		return nil, err
	}

	return &PagedResult{Vehicles: vehicles, Total: total}, nil
}

// Get busca um veículo verificando a permissão do usuário sobre a loja dona
func (s *Service) Get(ctx context.Context, caller scope.Caller, id string) (*Vehicle, error) {
	v, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.auth.AuthorizeNestedResource(ctx, caller, v.StoreID); err != nil {
		return nil, err
	}

	return v, nil
}

// Create valida placa única no sistema inteiro, resolve marca e modelo e
// verifica a permissão sobre a loja alvo antes de persistir
func (s *Service) Create(ctx context.Context, caller scope.Caller, in CreateInput) (*Vehicle, error) {
	if err := s.auth.AuthorizeNestedResource(ctx, caller, in.StoreID); err != nil {
		return nil, err
	}

	existing, err := s.vehicles.FindByPlate(ctx, in.Plate)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("falha ao validar placa: %w", err)
	}
	if existing != nil {
		return nil, ErrPlateDuplicate
	}

	brandID := in.BrandID
	if brandID == "" {
		brand, err := s.taxonomy.GetOrCreateBrand(ctx, in.BrandName, in.BrandFipeID, in.BrandLogo)
		if err != nil {
			return nil, fmt.Errorf("falha ao resolver marca: %w", err)
		}
		brandID = brand.ID
	}

	modelID := in.ModelID
	if modelID == "" {
		model, err := s.taxonomy.GetOrCreateModel(ctx, brandID, in.ModelName, in.ModelFipeID)
		if err != nil {
			return nil, fmt.Errorf("falha ao resolver modelo: %w", err)
		}
		modelID = model.ID
	}

	v := NewVehicle(in.StoreID, in.CategoryID, brandID, modelID, in.Plate)
	v.ManufactureYear = in.ManufactureYear
	v.ModelYear = in.ModelYear
	v.Mileage = in.Mileage
	v.Color = in.Color
	v.FuelType = in.FuelType
	v.Price = in.Price
	v.FipeCode = in.FipeCode
	v.FipeValue = in.FipeValue
	v.Description = in.Description
	v.HomeHighlight = in.HomeHighlight
	v.BrandHighlight = in.BrandHighlight
	v.Features = in.Features
	v.Specifications = in.Specifications
	if in.Status != "" {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		v.Status = in.Status
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}

	s.log.Info("veículo criado", "vehicle_id", v.ID, "store_id", v.StoreID, "plate", v.Plate)
	return v, nil
}

// Update atualiza um veículo aplicando as mesmas validações da criação
func (s *Service) Update(ctx context.Context, caller scope.Caller, id string, in UpdateInput) (*Vehicle, error) {
	v, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if in.StoreID != nil && *in.StoreID != v.StoreID {
		if err := s.auth.AuthorizeNestedResource(ctx, caller, *in.StoreID); err != nil {
			return nil, err
		}
		v.StoreID = *in.StoreID
	}

	if in.Plate != nil && *in.Plate != v.Plate {
		existing, err := s.vehicles.FindByPlate(ctx, *in.Plate)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("falha ao validar placa: %w", err)
		}
		if existing != nil {
			return nil, ErrPlateDuplicate
		}
		v.Plate = *in.Plate
	}

	if in.BrandName != nil {
		brandID := ""
		if in.BrandID != nil {
			brandID = *in.BrandID
		}
		if brandID == "" {
			fipeID, logo := "", ""
			if in.BrandFipeID != nil {
				fipeID = *in.BrandFipeID
			}
			if in.BrandLogo != nil {
				logo = *in.BrandLogo
			}
			brand, err := s.taxonomy.GetOrCreateBrand(ctx, *in.BrandName, fipeID, logo)
			if err != nil {
				return nil, fmt.Errorf("falha ao resolver marca: %w", err)
			}
			brandID = brand.ID
		}
		v.BrandID = brandID
	} else if in.BrandID != nil {
		v.BrandID = *in.BrandID
	}

	if in.ModelName != nil {
		modelID := ""
		if in.ModelID != nil {
			modelID = *in.ModelID
		}
		if modelID == "" {
			fipeID := ""
			if in.ModelFipeID != nil {
				fipeID = *in.ModelFipeID
			}
			model, err := s.taxonomy.GetOrCreateModel(ctx, v.BrandID, *in.ModelName, fipeID)
			if err != nil {
				return nil, fmt.Errorf("falha ao resolver modelo: %w", err)
			}
			modelID = model.ID
		}
		v.ModelID = modelID
	} else if in.ModelID != nil {
		v.ModelID = *in.ModelID
	}

	if in.CategoryID != nil {
		v.CategoryID = *in.CategoryID
	}
	if in.ManufactureYear != nil {
		v.ManufactureYear = *in.ManufactureYear
	}
	if in.ModelYear != nil {
		v.ModelYear = *in.ModelYear
	}
	if in.Mileage != nil {
		v.Mileage = *in.Mileage
	}
	if in.Color != nil {
		v.Color = *in.Color
	}
	if in.FuelType != nil {
		v.FuelType = *in.FuelType
	}
	if in.Price != nil {
		v.Price = *in.Price
	}
	if in.FipeCode != nil {
		v.FipeCode = *in.FipeCode
	}
	if in.FipeValue != nil {
		v.FipeValue = in.FipeValue
	}
	if in.Description != nil {
		v.Description = *in.Description
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		v.Status = *in.Status
	}
	if in.HomeHighlight != nil {
		v.HomeHighlight = *in.HomeHighlight
	}
	if in.BrandHighlight != nil {
		v.BrandHighlight = *in.BrandHighlight
	}
	if in.Features != nil {
		v.Features = in.Features
	}
	if in.Specifications != nil {
		v.Specifications = in.Specifications
	}
	v.UpdatedAt = time.Now()

	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}

	return v, nil
}

// UpdateStatus altera apenas o status do veículo
func (s *Service) UpdateStatus(ctx context.Context, caller scope.Caller, id string, status Status) (*Vehicle, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	v, err := s.Get(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if err := s.vehicles.UpdateStatus(ctx, v.ID, status); err != nil {
		return nil, err
	}

	v.Status = status
	return v, nil
}

// Delete marca o veículo como removido
func (s *Service) Delete(ctx context.Context, caller scope.Caller, id string) error {
	v, err := s.Get(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.vehicles.SoftDelete(ctx, v.ID); err != nil {
		return err
	}

	s.log.Info("veículo removido", "vehicle_id", v.ID)
	return nil
}
