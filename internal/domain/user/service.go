package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
)

// StoreChecker verifica a existência de uma loja. Implementado pelo
// repositório de lojas.
type StoreChecker interface {
	Exists(ctx context.Context, storeID string) (bool, error)
}

// Service orquestra o gerenciamento de usuários: email único e as regras de
// vínculo papel/loja (manager exige loja, admin não pode ter).
type Service struct {
	users  Repository
	stores StoreChecker
}

// NewService cria uma nova instância de Service
func NewService(users Repository, stores StoreChecker) *Service {
	return &Service{users: users, stores: stores}
}

// CreateInput contém os dados para criação de um usuário
type CreateInput struct {
	Email    string
	Password string
	Name     string
	Role     Role
	StoreID  *string
	Active   *bool
}

// UpdateInput contém os dados para atualização de um usuário. Campos nulos
// não são alterados.
type UpdateInput struct {
	Email    *string
	Password *string
	Name     *string
	Role     *Role
	StoreID  *string
	Active   *bool
}

// List retorna todos os usuários
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.users.FindAll(ctx)
}

// Get busca um usuário pelo ID
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.users.FindByID(ctx, id)
}

// Create valida email único e o vínculo papel/loja antes de persistir
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	if !in.Role.Valid() {
		return nil, ErrInvalidRole
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("falha ao validar email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailDuplicate
	}

	storeID := in.StoreID
	if storeID != nil && *storeID == "" {
		storeID = nil
	}

	if err := s.validateRoleStore(ctx, in.Role, storeID); err != nil {
		return nil, err
	}

	u := NewUser(in.Email, in.Name, in.Role, storeID)
	if err := u.SetPassword(in.Password); err != nil {
		return nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	if in.Active != nil {
		u.Active = *in.Active
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Update atualiza um usuário aplicando as mesmas validações da criação
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && *in.Email != u.Email {
		existing, err := s.users.FindByEmail(ctx, *in.Email)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("falha ao validar email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailDuplicate
		}
		u.Email = *in.Email
	}

	finalRole := u.Role
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, ErrInvalidRole
		}
		finalRole = *in.Role
	}

	finalStoreID := u.StoreID
	if in.StoreID != nil {
		if *in.StoreID == "" {
			finalStoreID = nil
		} else {
			finalStoreID = in.StoreID
		}
	}

	if err := s.validateRoleStore(ctx, finalRole, finalStoreID); err != nil {
		return nil, err
	}

	u.Role = finalRole
	u.StoreID = finalStoreID

	if in.Password != nil && *in.Password != "" {
		if err := u.SetPassword(*in.Password); err != nil {
			return nil, fmt.Errorf("falha ao gerar hash da senha: %w", err)
		}
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	u.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Delete marca o usuário como removido
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.users.SoftDelete(ctx, u.ID)
}

// Authenticate valida email e senha e retorna o usuário ativo
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !u.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	if !u.Active {
		return nil, ErrInactiveUser
	}

	return u, nil
}

func (s *Service) validateRoleStore(ctx context.Context, role Role, storeID *string) error {
	switch role {
	case RoleManager:
		if storeID == nil {
			return ErrManagerNeedsStore
		}
		exists, err := s.stores.Exists(ctx, *storeID)
		if err != nil {
			return fmt.Errorf("falha ao verificar loja: %w", err)
		}
		if !exists {
			return store.ErrNotFound
		}
	case RoleAdmin:
		if storeID != nil {
			return ErrAdminWithStore
		}
	}
	return nil
}
