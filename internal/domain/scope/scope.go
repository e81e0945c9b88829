package scope

import (
	"errors"
)

var (
	// ErrForbidden indica que o usuário autenticado não tem permissão
	// sobre a loja alvo
	ErrForbidden = errors.New("você não tem permissão para acessar esta loja")

	// ErrManagerWithoutStore indica um manager sem loja vinculada; esse
	// usuário nunca passa em verificações de escopo de loja
	ErrManagerWithoutStore = errors.New("manager deve estar vinculado a uma loja")
)

// Role representa o papel do usuário
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

// Caller identifica o usuário da requisição para fins de autorização.
// StoreID só tem significado para managers.
type Caller struct {
	UserID  string
	Role    Role
	StoreID string
}

// IsAdmin indica se o usuário é administrador
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Scope é o conjunto de lojas ao qual uma listagem fica restrita.
// All verdadeiro significa escopo universal (admin).
type Scope struct {
	All      bool
	StoreIDs []string
}

// Unrestricted retorna o escopo universal
func Unrestricted() Scope {
	return Scope{All: true}
}

// RestrictedTo retorna um escopo restrito ao conjunto de lojas informado
func RestrictedTo(storeIDs ...string) Scope {
	return Scope{StoreIDs: storeIDs}
}

// Contains verifica se uma loja pertence ao escopo
func (s Scope) Contains(storeID string) bool {
	if s.All {
		return true
	}
	for _, id := range s.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}
