package store

import (
	"context"
	"errors"
	"fmt"
)

// ValidateParent verifica se uma loja pode receber filiais. Uma filial só
// pode ser criada sob uma loja que não possui matriz.
func ValidateParent(ctx context.Context, repo Repository, parentID string) error {
	parent, err := repo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrParentNotFound
		}
		return fmt.Errorf("falha ao buscar loja matriz: %w", err)
	}

	if parent.IsBranch() {
		return ErrParentIsBranch
	}

	return nil
}

// ValidateReparent verifica se uma loja existente pode passar a ser filial
// de newParentID. Além das regras de ValidateParent, uma matriz que possui
// filiais não pode virar filial (criaria profundidade 3).
func ValidateReparent(ctx context.Context, repo Repository, s *Store, newParentID string) error {
	if s.ID == newParentID {
		return ErrSelfParent
	}

	if err := ValidateParent(ctx, repo, newParentID); err != nil {
		return err
	}

	children, err := repo.CountChildren(ctx, s.ID)
	if err != nil {
		return fmt.Errorf("falha ao contar filiais: %w", err)
	}

	if children > 0 {
		return ErrHasBranches
	}

	return nil
}
