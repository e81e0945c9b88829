package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// VehicleCounter é o colaborador que informa quantos veículos referenciam
// uma loja. Implementado pelo repositório de veículos.
type VehicleCounter interface {
	CountByStore(ctx context.Context, storeID string) (int, error)
}

// Service orquestra as operações de lojas garantindo as invariantes de
// hierarquia (profundidade máxima 2) e as pré-condições de remoção.
type Service struct {
	stores   Repository
	vehicles VehicleCounter
	log      logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(stores Repository, vehicles VehicleCounter, log logger.Logger) *Service {
	return &Service{
		stores:   stores,
		vehicles: vehicles,
		log:      log,
	}
}

// CreateInput contém os dados para criação de uma loja
type CreateInput struct {
	Name     string
	CNPJ     string
	Address  string
	Phone    string
	ParentID *string
}

// UpdateInput contém os dados para atualização de uma loja. Campos nulos
// não são alterados; ParentID aponta para string vazia para remover a matriz.
type UpdateInput struct {
	Name     *string
	CNPJ     *string
	Address  *string
	Phone    *string
	ParentID *string
}

// List retorna todas as lojas com matriz e filiais carregadas
func (s *Service) List(ctx context.Context) ([]*Store, error) {
	return s.stores.FindAll(ctx)
}

// Get busca uma loja pelo ID
func (s *Service) Get(ctx context.Context, id string) (*Store, error) {
	return s.stores.FindByID(ctx, id)
}

// Create valida CNPJ único e a hierarquia antes de persistir
func (s *Service) Create(ctx context.Context, in CreateInput) (*Store, error) {
	existing, err := s.stores.FindByCNPJ(ctx, in.CNPJ)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("falha ao validar CNPJ: %w", err)
	}
	if existing != nil {
		return nil, ErrCNPJDuplicate
	}

	parentID := in.ParentID
	if parentID != nil && *parentID == "" {
		parentID = nil
	}

	if parentID != nil {
		if err := ValidateParent(ctx, s.stores, *parentID); err != nil {
			return nil, err
		}
	}

	st, err := NewStore(in.Name, in.CNPJ, in.Address, in.Phone, parentID)
	if err != nil {
		return nil, err
	}

	if err := s.stores.Create(ctx, st); err != nil {
		return nil, err
	}

	s.log.Info("loja criada", "store_id", st.ID, "name", st.Name)
	return st, nil
}

// Update valida CNPJ único e a hierarquia quando a matriz muda
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Store, error) {
	st, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.CNPJ != nil && *in.CNPJ != st.CNPJ {
		existing, err := s.stores.FindByCNPJ(ctx, *in.CNPJ)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("falha ao validar CNPJ: %w", err)
		}
		if existing != nil {
			return nil, ErrCNPJDuplicate
		}
		st.CNPJ = *in.CNPJ
	}

	if in.ParentID != nil {
		newParent := *in.ParentID
		current := ""
		if st.ParentID != nil {
			current = *st.ParentID
		}

		if newParent != current {
			if newParent == "" {
				st.ParentID = nil
			} else {
				if err := ValidateReparent(ctx, s.stores, st, newParent); err != nil {
					return nil, err
				}
				st.ParentID = &newParent
			}
		}
	}

	if in.Name != nil {
		st.Name = *in.Name
	}
	if in.Address != nil {
		st.Address = *in.Address
	}
	if in.Phone != nil {
		st.Phone = *in.Phone
	}
	st.UpdatedAt = time.Now()

	if err := s.stores.Update(ctx, st); err != nil {
		return nil, err
	}

	return st, nil
}

// Delete marca a loja como removida. Bloqueado enquanto existirem veículos
// ou filiais referenciando a loja.
func (s *Service) Delete(ctx context.Context, id string) error {
	st, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return err
	}

	vehicleCount, err := s.vehicles.CountByStore(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("falha ao contar veículos: %w", err)
	}
	if vehicleCount > 0 {
		return ErrHasVehicles
	}

	branchCount, err := s.stores.CountChildren(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("falha ao contar filiais: %w", err)
	}
	if branchCount > 0 {
		return ErrHasBranches
	}

	if err := s.stores.SoftDelete(ctx, st.ID); err != nil {
		return err
	}

	s.log.Info("loja removida", "store_id", st.ID)
	return nil
}
