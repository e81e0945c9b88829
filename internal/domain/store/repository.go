package store

import (
	"context"
)

// Repository define as operações de persistência para lojas.
// Registros com deleted_at preenchido não são retornados.
type Repository interface {
	// Create persiste uma nova loja
	Create(ctx context.Context, s *Store) error

	// FindByID busca uma loja pelo ID
	FindByID(ctx context.Context, id string) (*Store, error)

	// FindByCNPJ busca uma loja pelo CNPJ
	FindByCNPJ(ctx context.Context, cnpj string) (*Store, error)

	// FindAll retorna todas as lojas ordenadas por nome
	FindAll(ctx context.Context) ([]*Store, error)

	// FindChildren retorna as filiais diretas de uma loja
	FindChildren(ctx context.Context, parentID string) ([]*Store, error)

	// CountChildren retorna o número de filiais diretas de uma loja
	CountChildren(ctx context.Context, parentID string) (int, error)

	// Update atualiza uma loja existente
	Update(ctx context.Context, s *Store) error

	// SoftDelete marca uma loja como removida
	SoftDelete(ctx context.Context, id string) error
}
