package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// VehicleCounter informa quantos veículos referenciam cada registro da
// taxonomia; usado para bloquear remoções.
type VehicleCounter interface {
	CountByCategory(ctx context.Context, categoryID string) (int, error)
	CountByBrand(ctx context.Context, brandID string) (int, error)
	CountByModel(ctx context.Context, modelID string) (int, error)
}

// Service orquestra o CRUD de categorias, marcas e modelos
type Service struct {
	categories CategoryRepository
	brands     BrandRepository
	models     ModelRepository
	vehicles   VehicleCounter
}

// NewService cria uma nova instância de Service
func NewService(categories CategoryRepository, brands BrandRepository, models ModelRepository, vehicles VehicleCounter) *Service {
	return &Service{
		categories: categories,
		brands:     brands,
		models:     models,
		vehicles:   vehicles,
	}
}

// ==================== CATEGORIAS ====================

// ListCategories retorna todas as categorias ordenadas por nome
func (s *Service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.FindAll(ctx)
}

// ListActiveCategories retorna apenas as categorias ativas, para a vitrine
// pública
func (s *Service) ListActiveCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.FindActive(ctx)
}

// GetCategory busca uma categoria pelo ID
func (s *Service) GetCategory(ctx context.Context, id string) (*Category, error) {
	return s.categories.FindByID(ctx, id)
}

// CreateCategory cria uma categoria com nome único
func (s *Service) CreateCategory(ctx context.Context, name, icon string) (*Category, error) {
	if err := s.ensureCategoryNameFree(ctx, name); err != nil {
		return nil, err
	}

	c := NewCategory(name, icon)
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateCategory atualiza uma categoria garantindo nome único
func (s *Service) UpdateCategory(ctx context.Context, id, name, icon string, active *bool) (*Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != c.Name {
		if err := s.ensureCategoryNameFree(ctx, name); err != nil {
			return nil, err
		}
		c.Name = name
	}
	if icon != "" {
		c.Icon = icon
	}
	if active != nil {
		c.Active = *active
	}
	c.UpdatedAt = time.Now()

	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteCategory remove uma categoria sem veículos vinculados
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.vehicles.CountByCategory(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("falha ao contar veículos: %w", err)
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categories.SoftDelete(ctx, c.ID)
}

func (s *Service) ensureCategoryNameFree(ctx context.Context, name string) error {
	existing, err := s.categories.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrCategoryNotFound) {
		return fmt.Errorf("falha ao validar nome da categoria: %w", err)
	}
	if existing != nil {
		return ErrCategoryDuplicate
	}
	return nil
}

// ==================== MARCAS ====================

// ListBrands retorna todas as marcas ordenadas por nome
func (s *Service) ListBrands(ctx context.Context) ([]*Brand, error) {
	return s.brands.FindAll(ctx)
}

// GetBrand busca uma marca pelo ID
func (s *Service) GetBrand(ctx context.Context, id string) (*Brand, error) {
	return s.brands.FindByID(ctx, id)
}

// CreateBrand cria uma marca com nome único
func (s *Service) CreateBrand(ctx context.Context, name, brandFipeID, logo string) (*Brand, error) {
	existing, err := s.brands.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrBrandNotFound) {
		return nil, fmt.Errorf("falha ao validar nome da marca: %w", err)
	}
	if existing != nil {
		return nil, ErrBrandDuplicate
	}

	b := NewBrand(name, brandFipeID, logo)
	if err := s.brands.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// UpdateBrand atualiza uma marca garantindo nome único
func (s *Service) UpdateBrand(ctx context.Context, id, name, brandFipeID, logo string) (*Brand, error) {
	b, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != b.Name {
		existing, err := s.brands.FindByName(ctx, name)
		if err != nil && !errors.Is(err, ErrBrandNotFound) {
			return nil, fmt.Errorf("falha ao validar nome da marca: %w", err)
		}
		if existing != nil {
			return nil, ErrBrandDuplicate
		}
		b.Name = name
	}
	if brandFipeID != "" {
		b.BrandFipeID = brandFipeID
	}
	if logo != "" {
		b.Logo = logo
	}
	b.UpdatedAt = time.Now()

	if err := s.brands.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteBrand remove uma marca sem veículos vinculados
func (s *Service) DeleteBrand(ctx context.Context, id string) error {
	b, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.vehicles.CountByBrand(ctx, b.ID)
	if err != nil {
		return fmt.Errorf("falha ao contar veículos: %w", err)
	}
	if count > 0 {
		return ErrBrandInUse
	}

	return s.brands.SoftDelete(ctx, b.ID)
}

// GetOrCreateBrand busca uma marca pelo nome, criando-a se não existir.
// Idempotente: a chave é o nome.
func (s *Service) GetOrCreateBrand(ctx context.Context, name, brandFipeID, logo string) (*Brand, error) {
	existing, err := s.brands.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrBrandNotFound) {
		return nil, fmt.Errorf("falha ao buscar marca: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	b := NewBrand(name, brandFipeID, logo)
	if err := s.brands.Create(ctx, b); err != nil {
		// Corrida entre duas criações: a restrição de unicidade venceu,
		// então a marca existe agora
		if errors.Is(err, ErrBrandDuplicate) {
			return s.brands.FindByName(ctx, name)
		}
		return nil, err
	}
	return b, nil
}

// ==================== MODELOS ====================

// ListModels retorna todos os modelos
func (s *Service) ListModels(ctx context.Context) ([]*Model, error) {
	return s.models.FindAll(ctx)
}

// ListModelsByBrand retorna os modelos de uma marca
func (s *Service) ListModelsByBrand(ctx context.Context, brandID string) ([]*Model, error) {
	if _, err := s.brands.FindByID(ctx, brandID); err != nil {
		return nil, err
	}
	return s.models.FindByBrand(ctx, brandID)
}

// GetModel busca um modelo pelo ID
func (s *Service) GetModel(ctx context.Context, id string) (*Model, error) {
	return s.models.FindByID(ctx, id)
}

// CreateModel cria um modelo com nome único por marca
func (s *Service) CreateModel(ctx context.Context, brandID, name, modelFipeID string) (*Model, error) {
	if _, err := s.brands.FindByID(ctx, brandID); err != nil {
		return nil, err
	}

	existing, err := s.models.FindByBrandAndName(ctx, brandID, name)
	if err != nil && !errors.Is(err, ErrModelNotFound) {
		return nil, fmt.Errorf("falha ao validar nome do modelo: %w", err)
	}
	if existing != nil {
		return nil, ErrModelDuplicate
	}

	m := NewModel(brandID, name, modelFipeID)
	if err := s.models.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateModel atualiza um modelo garantindo nome único por marca
func (s *Service) UpdateModel(ctx context.Context, id, name, modelFipeID string) (*Model, error) {
	m, err := s.models.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != m.Name {
		existing, err := s.models.FindByBrandAndName(ctx, m.BrandID, name)
		if err != nil && !errors.Is(err, ErrModelNotFound) {
			return nil, fmt.Errorf("falha ao validar nome do modelo: %w", err)
		}
		if existing != nil {
			return nil, ErrModelDuplicate
		}
		m.Name = name
	}
	if modelFipeID != "" {
		m.ModelFipeID = modelFipeID
	}
	m.UpdatedAt = time.Now()

	if err := s.models.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteModel remove um modelo sem veículos vinculados
func (s *Service) DeleteModel(ctx context.Context, id string) error {
	m, err := s.models.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.vehicles.CountByModel(ctx, m.ID)
	if err != nil {
		return fmt.Errorf("falha ao contar veículos: %w", err)
	}
	if count > 0 {
		return ErrModelInUse
	}

	return s.models.SoftDelete(ctx, m.ID)
}

// GetOrCreateModel busca um modelo pelo par (marca, nome), criando-o se não
// existir
func (s *Service) GetOrCreateModel(ctx context.Context, brandID, name, modelFipeID string) (*Model, error) {
	existing, err := s.models.FindByBrandAndName(ctx, brandID, name)
	if err != nil && !errors.Is(err, ErrModelNotFound) {
		return nil, fmt.Errorf("falha ao buscar modelo: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	m := NewModel(brandID, name, modelFipeID)
	if err := s.models.Create(ctx, m); err != nil {
		if errors.Is(err, ErrModelDuplicate) {
			return s.models.FindByBrandAndName(ctx, brandID, name)
		}
		return nil, err
	}
	return m, nil
}
