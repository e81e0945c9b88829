package vehicle

import (
	"context"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
)

// Repository define as operações de persistência para veículos.
// Registros com deleted_at preenchido não são retornados.
type Repository interface {
	// Create persiste um novo veículo
	Create(ctx context.Context, v *Vehicle) error

	// FindByID busca um veículo com loja, taxonomia e fotos carregadas
	FindByID(ctx context.Context, id string) (*Vehicle, error)

	// FindByPlate busca um veículo pela placa (comparação exata,
	// sensível a caixa)
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)

	// Search executa a busca filtrada, ordenada e paginada, restrita ao
	// escopo informado. Retorna a página e o total antes da paginação.
	Search(ctx context.Context, filters SearchFilters, sc scope.Scope) ([]*Vehicle, int, error)

	// Update atualiza um veículo existente
	Update(ctx context.Context, v *Vehicle) error

	// UpdateStatus atualiza apenas o status do veículo
	UpdateStatus(ctx context.Context, id string, status Status) error

	// SoftDelete marca um veículo como removido
	SoftDelete(ctx context.Context, id string) error

	// CountByStore retorna o número de veículos de uma loja
	CountByStore(ctx context.Context, storeID string) (int, error)

	// CountByCategory retorna o número de veículos de uma categoria
	CountByCategory(ctx context.Context, categoryID string) (int, error)

	// CountByBrand retorna o número de veículos de uma marca
	CountByBrand(ctx context.Context, brandID string) (int, error)

	// CountByModel retorna o número de veículos de um modelo
	CountByModel(ctx context.Context, modelID string) (int, error)
}
