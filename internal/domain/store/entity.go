package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("nome não pode ser vazio")
	ErrEmptyCNPJ      = errors.New("CNPJ não pode ser vazio")
	ErrNotFound       = errors.New("loja não encontrada")
	ErrCNPJDuplicate  = errors.New("CNPJ já cadastrado")
	ErrParentNotFound = errors.New("loja matriz não encontrada")
	ErrParentIsBranch = errors.New("não é possível criar filial de uma filial; apenas 2 níveis de hierarquia são permitidos")
	ErrSelfParent     = errors.New("uma loja não pode ser matriz de si mesma")
	ErrHasBranches    = errors.New("a loja possui filiais")
	ErrHasVehicles    = errors.New("existem veículos cadastrados nesta loja")
)

// Store representa uma loja no sistema. Uma loja sem matriz (ParentID nulo)
// é matriz ou loja independente; uma loja com ParentID é filial.
type Store struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CNPJ      string     `json:"cnpj"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	ParentID  *string    `json:"parent_id,omitempty"`
	Parent    *Store     `json:"parent,omitempty"`
	Children  []*Store   `json:"children,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// NewStore cria uma nova loja
func NewStore(name, cnpj, address, phone string, parentID *string) (*Store, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if cnpj == "" {
		return nil, ErrEmptyCNPJ
	}

	now := time.Now()
	return &Store{
		ID:        uuid.New().String(),
		Name:      name,
		CNPJ:      cnpj,
		Address:   address,
		Phone:     phone,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsBranch indica se a loja é uma filial
func (s *Store) IsBranch() bool {
	return s.ParentID != nil && *s.ParentID != ""
}

// HierarchyIDs retorna o conjunto "loja + matriz direta" usado nas
// verificações pontuais de posse. Filiais irmãs não entram aqui; o
// conjunto mais amplo usado em listagens é calculado pelo scope.Resolver.
func (s *Store) HierarchyIDs() []string {
	ids := []string{s.ID}
	if s.IsBranch() {
		ids = append(ids, *s.ParentID)
	}
	return ids
}
