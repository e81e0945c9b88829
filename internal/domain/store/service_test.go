package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// fakeRepository implementa Repository em memória para os testes
type fakeRepository struct {
	stores  map[string]*Store
	deleted map[string]bool
}

func newFakeRepository(stores ...*Store) *fakeRepository {
	r := &fakeRepository{
		stores:  make(map[string]*Store),
		deleted: make(map[string]bool),
	}
	for _, s := range stores {
		r.stores[s.ID] = s
	}
	return r
}

func (r *fakeRepository) Create(ctx context.Context, s *Store) error {
	r.stores[s.ID] = s
	return nil
}

func (r *fakeRepository) FindByID(ctx context.Context, id string) (*Store, error) {
	s, ok := r.stores[id]
	if !ok || r.deleted[id] {
		return nil, ErrNotFound
	}
	return s, nil
}

func (r *fakeRepository) FindByCNPJ(ctx context.Context, cnpj string) (*Store, error) {
	for _, s := range r.stores {
		if s.CNPJ == cnpj && !r.deleted[s.ID] {
			return s, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) FindAll(ctx context.Context) ([]*Store, error) {
	var all []*Store
	for _, s := range r.stores {
		if !r.deleted[s.ID] {
			all = append(all, s)
		}
	}
	return all, nil
}

func (r *fakeRepository) FindChildren(ctx context.Context, parentID string) ([]*Store, error) {
	var children []*Store
	for _, s := range r.stores {
		if s.ParentID != nil && *s.ParentID == parentID && !r.deleted[s.ID] {
			children = append(children, s)
		}
	}
	return children, nil
}

func (r *fakeRepository) CountChildren(ctx context.Context, parentID string) (int, error) {
	children, _ := r.FindChildren(ctx, parentID)
	return len(children), nil
}

func (r *fakeRepository) Update(ctx context.Context, s *Store) error {
	if _, ok := r.stores[s.ID]; !ok {
		return ErrNotFound
	}
	r.stores[s.ID] = s
	return nil
}

func (r *fakeRepository) SoftDelete(ctx context.Context, id string) error {
	if _, ok := r.stores[id]; !ok {
		return ErrNotFound
	}
	r.deleted[id] = true
	return nil
}

// fakeVehicleCounter devolve contagens fixas por loja
type fakeVehicleCounter struct {
	counts map[string]int
}

func (f *fakeVehicleCounter) CountByStore(ctx context.Context, storeID string) (int, error) {
	return f.counts[storeID], nil
}

func strPtr(s string) *string { return &s }

func newTestService(repo *fakeRepository, counts map[string]int) *Service {
	return NewService(repo, &fakeVehicleCounter{counts: counts}, logger.Nop())
}

func TestCreateStore(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, nil)

	st, err := svc.Create(context.Background(), CreateInput{
		Name:    "AutoShop Centro",
		CNPJ:    "11.222.333/0001-44",
		Address: "Av. Central, 100",
		Phone:   "11 91234-5678",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, st.ID)
	assert.Nil(t, st.ParentID)

	stored, err := repo.FindByID(context.Background(), st.ID)
	require.NoError(t, err)
	assert.Equal(t, "AutoShop Centro", stored.Name)
}

func TestCreateStoreCNPJDuplicado(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "s1", Name: "Existente", CNPJ: "11.222.333/0001-44"})
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name: "Outra",
		CNPJ: "11.222.333/0001-44",
	})

	assert.ErrorIs(t, err, ErrCNPJDuplicate)
}

func TestCreateStoreSemNome(t *testing.T) {
	svc := newTestService(newFakeRepository(), nil)

	_, err := svc.Create(context.Background(), CreateInput{CNPJ: "11.222.333/0001-44"})

	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestCreateBranch(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "matriz", Name: "Matriz", CNPJ: "1"})
	svc := newTestService(repo, nil)

	st, err := svc.Create(context.Background(), CreateInput{
		Name:     "Filial Norte",
		CNPJ:     "2",
		ParentID: strPtr("matriz"),
	})

	require.NoError(t, err)
	require.NotNil(t, st.ParentID)
	assert.Equal(t, "matriz", *st.ParentID)
	assert.True(t, st.IsBranch())
}

func TestCreateBranchMatrizInexistente(t *testing.T) {
	svc := newTestService(newFakeRepository(), nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:     "Filial",
		CNPJ:     "2",
		ParentID: strPtr("nao-existe"),
	})

	assert.ErrorIs(t, err, ErrParentNotFound)
}

func TestCreateBranchDeFilial(t *testing.T) {
	// A hierarquia tem no máximo dois níveis; filial não recebe filiais
	repo := newFakeRepository(
		&Store{ID: "matriz", Name: "Matriz", CNPJ: "1"},
		&Store{ID: "filial", Name: "Filial", CNPJ: "2", ParentID: strPtr("matriz")},
	)
	svc := newTestService(repo, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:     "Subfilial",
		CNPJ:     "3",
		ParentID: strPtr("filial"),
	})

	assert.ErrorIs(t, err, ErrParentIsBranch)
}

func TestCreateBranchParentIDVazio(t *testing.T) {
	// ParentID apontando para string vazia equivale a loja sem matriz
	svc := newTestService(newFakeRepository(), nil)

	st, err := svc.Create(context.Background(), CreateInput{
		Name:     "Independente",
		CNPJ:     "1",
		ParentID: strPtr(""),
	})

	require.NoError(t, err)
	assert.Nil(t, st.ParentID)
}

func TestUpdateStore(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "s1", Name: "Antiga", CNPJ: "1", Phone: "11 0000-0000"})
	svc := newTestService(repo, nil)

	st, err := svc.Update(context.Background(), "s1", UpdateInput{
		Name:  strPtr("Nova"),
		Phone: strPtr("11 1111-1111"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Nova", st.Name)
	assert.Equal(t, "11 1111-1111", st.Phone)
	assert.Equal(t, "1", st.CNPJ)
}

func TestUpdateStoreCNPJDuplicado(t *testing.T) {
	repo := newFakeRepository(
		&Store{ID: "s1", Name: "Loja 1", CNPJ: "1"},
		&Store{ID: "s2", Name: "Loja 2", CNPJ: "2"},
	)
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), "s1", UpdateInput{CNPJ: strPtr("2")})

	assert.ErrorIs(t, err, ErrCNPJDuplicate)
}

func TestUpdateStoreMesmoCNPJ(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "s1", Name: "Loja", CNPJ: "1"})
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), "s1", UpdateInput{CNPJ: strPtr("1")})

	assert.NoError(t, err)
}

func TestUpdateStoreReparent(t *testing.T) {
	repo := newFakeRepository(
		&Store{ID: "matriz", Name: "Matriz", CNPJ: "1"},
		&Store{ID: "avulsa", Name: "Avulsa", CNPJ: "2"},
	)
	svc := newTestService(repo, nil)

	st, err := svc.Update(context.Background(), "avulsa", UpdateInput{ParentID: strPtr("matriz")})

	require.NoError(t, err)
	require.NotNil(t, st.ParentID)
	assert.Equal(t, "matriz", *st.ParentID)
}

func TestUpdateStoreReparentMatrizComFiliais(t *testing.T) {
	// Matriz que possui filiais não pode virar filial de outra loja
	repo := newFakeRepository(
		&Store{ID: "m1", Name: "Matriz 1", CNPJ: "1"},
		&Store{ID: "m2", Name: "Matriz 2", CNPJ: "2"},
		&Store{ID: "f1", Name: "Filial", CNPJ: "3", ParentID: strPtr("m1")},
	)
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), "m1", UpdateInput{ParentID: strPtr("m2")})

	assert.ErrorIs(t, err, ErrHasBranches)
}

func TestUpdateStoreMatrizDeSiMesma(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "s1", Name: "Loja", CNPJ: "1"})
	svc := newTestService(repo, nil)

	_, err := svc.Update(context.Background(), "s1", UpdateInput{ParentID: strPtr("s1")})

	assert.ErrorIs(t, err, ErrSelfParent)
}

func TestUpdateStoreRemoveMatriz(t *testing.T) {
	repo := newFakeRepository(
		&Store{ID: "matriz", Name: "Matriz", CNPJ: "1"},
		&Store{ID: "filial", Name: "Filial", CNPJ: "2", ParentID: strPtr("matriz")},
	)
	svc := newTestService(repo, nil)

	st, err := svc.Update(context.Background(), "filial", UpdateInput{ParentID: strPtr("")})

	require.NoError(t, err)
	assert.Nil(t, st.ParentID)
}

func TestUpdateStoreNaoEncontrada(t *testing.T) {
	svc := newTestService(newFakeRepository(), nil)

	_, err := svc.Update(context.Background(), "nao-existe", UpdateInput{Name: strPtr("x")})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStore(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "s1", Name: "Loja", CNPJ: "1"})
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), "s1")

	require.NoError(t, err)
	_, err = repo.FindByID(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteStoreComVeiculos(t *testing.T) {
	repo := newFakeRepository(&Store{ID: "s1", Name: "Loja", CNPJ: "1"})
	svc := newTestService(repo, map[string]int{"s1": 3})

	err := svc.Delete(context.Background(), "s1")

	assert.ErrorIs(t, err, ErrHasVehicles)
}

func TestDeleteStoreComFiliais(t *testing.T) {
	repo := newFakeRepository(
		&Store{ID: "matriz", Name: "Matriz", CNPJ: "1"},
		&Store{ID: "filial", Name: "Filial", CNPJ: "2", ParentID: strPtr("matriz")},
	)
	svc := newTestService(repo, nil)

	err := svc.Delete(context.Background(), "matriz")

	assert.ErrorIs(t, err, ErrHasBranches)
}
