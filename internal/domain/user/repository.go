package user

import (
	"context"
)

// Repository define as operações de persistência para usuários.
// Registros com deleted_at preenchido não são retornados.
type Repository interface {
	// Create persiste um novo usuário
	Create(ctx context.Context, u *User) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id string) (*User, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll retorna todos os usuários ordenados por nome
	FindAll(ctx context.Context) ([]*User, error)

	// Update atualiza um usuário existente
	Update(ctx context.Context, u *User) error

	// SoftDelete marca um usuário como removido
	SoftDelete(ctx context.Context, id string) error
}
