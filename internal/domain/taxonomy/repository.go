package taxonomy

import (
	"context"
)

// CategoryRepository define as operações de persistência para categorias
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	FindByID(ctx context.Context, id string) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindAll(ctx context.Context) ([]*Category, error)
	FindActive(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, c *Category) error
	SoftDelete(ctx context.Context, id string) error
}

// BrandRepository define as operações de persistência para marcas
type BrandRepository interface {
	Create(ctx context.Context, b *Brand) error
	FindByID(ctx context.Context, id string) (*Brand, error)
	FindByName(ctx context.Context, name string) (*Brand, error)
	FindAll(ctx context.Context) ([]*Brand, error)
	Update(ctx context.Context, b *Brand) error
	SoftDelete(ctx context.Context, id string) error
}

// ModelRepository define as operações de persistência para modelos
type ModelRepository interface {
	Create(ctx context.Context, m *Model) error
	FindByID(ctx context.Context, id string) (*Model, error)
	FindByBrandAndName(ctx context.Context, brandID, name string) (*Model, error)
	FindAll(ctx context.Context) ([]*Model, error)
	FindByBrand(ctx context.Context, brandID string) ([]*Model, error)
	Update(ctx context.Context, m *Model) error
	SoftDelete(ctx context.Context, id string) error
}
