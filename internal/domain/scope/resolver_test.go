package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
)

// fakeStoreDirectory implementa StoreDirectory em memória para os testes
type fakeStoreDirectory struct {
	stores map[string]*store.Store
}

func newFakeStoreDirectory(stores ...*store.Store) *fakeStoreDirectory {
	d := &fakeStoreDirectory{stores: make(map[string]*store.Store)}
	for _, s := range stores {
		d.stores[s.ID] = s
	}
	return d
}

func (d *fakeStoreDirectory) FindByID(ctx context.Context, id string) (*store.Store, error) {
	s, ok := d.stores[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (d *fakeStoreDirectory) FindChildren(ctx context.Context, parentID string) ([]*store.Store, error) {
	var children []*store.Store
	for _, s := range d.stores {
		if s.ParentID != nil && *s.ParentID == parentID {
			children = append(children, s)
		}
	}
	return children, nil
}

func strPtr(s string) *string { return &s }

// Hierarquia usada nos testes: matriz com duas filiais, mais uma loja
// independente sem relação com as demais.
func testDirectory() *fakeStoreDirectory {
	return newFakeStoreDirectory(
		&store.Store{ID: "matriz", Name: "Matriz"},
		&store.Store{ID: "filial-a", Name: "Filial A", ParentID: strPtr("matriz")},
		&store.Store{ID: "filial-b", Name: "Filial B", ParentID: strPtr("matriz")},
		&store.Store{ID: "avulsa", Name: "Loja Avulsa"},
	)
}

func TestAuthorizeStoreActionAdmin(t *testing.T) {
	r := NewResolver(testDirectory())
	caller := Caller{UserID: "u1", Role: RoleAdmin}

	// Admin age sobre qualquer loja; o alvo nem chega a ser consultado
	assert.NoError(t, r.AuthorizeStoreAction(context.Background(), caller, "avulsa"))
	assert.NoError(t, r.AuthorizeStoreAction(context.Background(), caller, "nao-existe"))
}

func TestAuthorizeStoreActionManagerSemLoja(t *testing.T) {
	r := NewResolver(testDirectory())
	caller := Caller{UserID: "u1", Role: RoleManager}

	err := r.AuthorizeStoreAction(context.Background(), caller, "matriz")

	assert.ErrorIs(t, err, ErrManagerWithoutStore)
}

func TestAuthorizeStoreActionAlvoInexistente(t *testing.T) {
	r := NewResolver(testDirectory())
	caller := Caller{UserID: "u1", Role: RoleManager, StoreID: "matriz"}

	err := r.AuthorizeStoreAction(context.Background(), caller, "nao-existe")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAuthorizeStoreActionManager(t *testing.T) {
	tests := []struct {
		name     string
		storeID  string
		targetID string
		wantErr  error
	}{
		{"própria loja", "matriz", "matriz", nil},
		{"matriz sobre filial direta", "matriz", "filial-a", nil},
		{"filial sobre a própria matriz", "filial-a", "matriz", nil},
		{"filial sobre filial irmã", "filial-a", "filial-b", ErrForbidden},
		{"loja sem relação", "avulsa", "matriz", ErrForbidden},
		{"matriz sobre loja avulsa", "matriz", "avulsa", ErrForbidden},
	}

	r := NewResolver(testDirectory())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caller := Caller{UserID: "u1", Role: RoleManager, StoreID: tt.storeID}

			err := r.AuthorizeStoreAction(context.Background(), caller, tt.targetID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListingScopeAdmin(t *testing.T) {
	r := NewResolver(testDirectory())

	sc, err := r.ListingScope(context.Background(), Caller{UserID: "u1", Role: RoleAdmin})

	require.NoError(t, err)
	assert.True(t, sc.All)
}

func TestListingScopeManagerDeMatriz(t *testing.T) {
	r := NewResolver(testDirectory())
	caller := Caller{UserID: "u1", Role: RoleManager, StoreID: "matriz"}

	sc, err := r.ListingScope(context.Background(), caller)

	require.NoError(t, err)
	assert.False(t, sc.All)
	assert.ElementsMatch(t, []string{"matriz", "filial-a", "filial-b"}, sc.StoreIDs)
}

func TestListingScopeManagerDeFilial(t *testing.T) {
	r := NewResolver(testDirectory())
	caller := Caller{UserID: "u1", Role: RoleManager, StoreID: "filial-a"}

	sc, err := r.ListingScope(context.Background(), caller)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"filial-a", "matriz"}, sc.StoreIDs)
}

func TestListingScopeManagerDeLojaAvulsa(t *testing.T) {
	r := NewResolver(testDirectory())
	caller := Caller{UserID: "u1", Role: RoleManager, StoreID: "avulsa"}

	sc, err := r.ListingScope(context.Background(), caller)

	require.NoError(t, err)
	assert.Equal(t, []string{"avulsa"}, sc.StoreIDs)
}

func TestListingScopeManagerSemLoja(t *testing.T) {
	r := NewResolver(testDirectory())

	_, err := r.ListingScope(context.Background(), Caller{UserID: "u1", Role: RoleManager})

	assert.ErrorIs(t, err, ErrManagerWithoutStore)
}

func TestScopeContains(t *testing.T) {
	assert.True(t, Unrestricted().Contains("qualquer"))
	assert.True(t, RestrictedTo("a", "b").Contains("b"))
	assert.False(t, RestrictedTo("a", "b").Contains("c"))
	assert.False(t, RestrictedTo().Contains("a"))
}
