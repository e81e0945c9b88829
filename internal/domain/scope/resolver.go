package scope

import (
	"context"
	"fmt"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
)

// StoreDirectory é a visão da hierarquia de lojas de que o resolver precisa
type StoreDirectory interface {
	FindByID(ctx context.Context, id string) (*store.Store, error)
	FindChildren(ctx context.Context, parentID string) ([]*store.Store, error)
}

// Resolver é a autoridade única para decidir se um usuário pode agir sobre
// uma loja e qual conjunto de lojas restringe suas listagens.
//
// A verificação pontual e o escopo de listagem são intencionalmente
// assimétricos: agir sobre um alvo específico exige que ele seja a própria
// loja, sua matriz direta ou uma filial direta; já o escopo de listagem de
// um manager de matriz inclui todas as filiais, pois ele navega por todo o
// estoque que administra.
type Resolver struct {
	stores StoreDirectory
}

// NewResolver cria uma nova instância de Resolver
func NewResolver(stores StoreDirectory) *Resolver {
	return &Resolver{stores: stores}
}

// AuthorizeStoreAction decide se o usuário pode agir sobre a loja alvo.
// Admin sempre pode. Manager precisa de loja vinculada; a existência do
// alvo é verificada antes da permissão, então alvo inexistente retorna
// store.ErrNotFound e alvo fora do escopo retorna ErrForbidden.
func (r *Resolver) AuthorizeStoreAction(ctx context.Context, caller Caller, targetStoreID string) error {
	if caller.IsAdmin() {
		return nil
	}

	if caller.StoreID == "" {
		return ErrManagerWithoutStore
	}

	target, err := r.stores.FindByID(ctx, targetStoreID)
	if err != nil {
		return err
	}

	if target.ID == caller.StoreID {
		return nil
	}

	// Matriz agindo sobre filial direta
	if target.ParentID != nil && *target.ParentID == caller.StoreID {
		return nil
	}

	own, err := r.stores.FindByID(ctx, caller.StoreID)
	if err != nil {
		return fmt.Errorf("falha ao buscar loja do usuário: %w", err)
	}

	// Filial agindo sobre a própria matriz
	if own.ParentID != nil && *own.ParentID == target.ID {
		return nil
	}

	return ErrForbidden
}

// AuthorizeNestedResource decide se o usuário pode agir sobre um recurso
// (veículo, foto) pertencente à loja informada. Mesma semântica de
// AuthorizeStoreAction.
func (r *Resolver) AuthorizeNestedResource(ctx context.Context, caller Caller, owningStoreID string) error {
	return r.AuthorizeStoreAction(ctx, caller, owningStoreID)
}

// ListingScope calcula o conjunto de lojas que restringe as listagens do
// usuário: a própria loja, a matriz direta (se houver) e as filiais diretas
// (se houver). Admin recebe escopo universal.
func (r *Resolver) ListingScope(ctx context.Context, caller Caller) (Scope, error) {
	if caller.IsAdmin() {
		return Unrestricted(), nil
	}

	if caller.StoreID == "" {
		return Scope{}, ErrManagerWithoutStore
	}

	own, err := r.stores.FindByID(ctx, caller.StoreID)
	if err != nil {
		return Scope{}, fmt.Errorf("falha ao buscar loja do usuário: %w", err)
	}

	ids := []string{own.ID}
	if own.ParentID != nil && *own.ParentID != "" {
		ids = append(ids, *own.ParentID)
	}

	children, err := r.stores.FindChildren(ctx, own.ID)
	if err != nil {
		return Scope{}, fmt.Errorf("falha ao buscar filiais: %w", err)
	}
	for _, child := range children {
		ids = append(ids, child.ID)
	}

	return RestrictedTo(ids...), nil
}
