package taxonomy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCategoryRepository implementa CategoryRepository em memória
type fakeCategoryRepository struct {
	categories map[string]*Category
}

func newFakeCategoryRepository(categories ...*Category) *fakeCategoryRepository {
	r := &fakeCategoryRepository{categories: make(map[string]*Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepository) Create(ctx context.Context, c *Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return ErrCategoryDuplicate
		}
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepository) FindByID(ctx context.Context, id string) (*Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (r *fakeCategoryRepository) FindByName(ctx context.Context, name string) (*Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (r *fakeCategoryRepository) FindAll(ctx context.Context) ([]*Category, error) {
	var all []*Category
	for _, c := range r.categories {
		all = append(all, c)
	}
	return all, nil
}

func (r *fakeCategoryRepository) FindActive(ctx context.Context) ([]*Category, error) {
	var active []*Category
	for _, c := range r.categories {
		if c.Active {
			active = append(active, c)
		}
	}
	return active, nil
}

func (r *fakeCategoryRepository) Update(ctx context.Context, c *Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepository) SoftDelete(ctx context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

// fakeBrandRepository implementa BrandRepository em memória. failCreates
// força as primeiras criações a falhar com ErrBrandDuplicate, simulando a
// corrida com a restrição de unicidade.
type fakeBrandRepository struct {
	brands      map[string]*Brand
	failCreates int
}

func newFakeBrandRepository(brands ...*Brand) *fakeBrandRepository {
	r := &fakeBrandRepository{brands: make(map[string]*Brand)}
	for _, b := range brands {
		r.brands[b.ID] = b
	}
	return r
}

func (r *fakeBrandRepository) Create(ctx context.Context, b *Brand) error {
	if r.failCreates > 0 {
		r.failCreates--
		return ErrBrandDuplicate
	}
	for _, existing := range r.brands {
		if existing.Name == b.Name {
			return ErrBrandDuplicate
		}
	}
	r.brands[b.ID] = b
	return nil
}

func (r *fakeBrandRepository) FindByID(ctx context.Context, id string) (*Brand, error) {
	b, ok := r.brands[id]
	if !ok {
		return nil, ErrBrandNotFound
	}
	return b, nil
}

func (r *fakeBrandRepository) FindByName(ctx context.Context, name string) (*Brand, error) {
	for _, b := range r.brands {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, ErrBrandNotFound
}

func (r *fakeBrandRepository) FindAll(ctx context.Context) ([]*Brand, error) {
	var all []*Brand
	for _, b := range r.brands {
		all = append(all, b)
	}
	return all, nil
}

func (r *fakeBrandRepository) Update(ctx context.Context, b *Brand) error {
	r.brands[b.ID] = b
	return nil
}

func (r *fakeBrandRepository) SoftDelete(ctx context.Context, id string) error {
	delete(r.brands, id)
	return nil
}

// fakeModelRepository implementa ModelRepository em memória
type fakeModelRepository struct {
	models map[string]*Model
}

func newFakeModelRepository(models ...*Model) *fakeModelRepository {
	r := &fakeModelRepository{models: make(map[string]*Model)}
	for _, m := range models {
		r.models[m.ID] = m
	}
	return r
}

func (r *fakeModelRepository) Create(ctx context.Context, m *Model) error {
	for _, existing := range r.models {
		if existing.BrandID == m.BrandID && existing.Name == m.Name {
			return ErrModelDuplicate
		}
	}
	r.models[m.ID] = m
	return nil
}

func (r *fakeModelRepository) FindByID(ctx context.Context, id string) (*Model, error) {
	m, ok := r.models[id]
	if !ok {
		return nil, ErrModelNotFound
	}
	return m, nil
}

func (r *fakeModelRepository) FindByBrandAndName(ctx context.Context, brandID, name string) (*Model, error) {
	for _, m := range r.models {
		if m.BrandID == brandID && m.Name == name {
			return m, nil
		}
	}
	return nil, ErrModelNotFound
}

func (r *fakeModelRepository) FindAll(ctx context.Context) ([]*Model, error) {
	var all []*Model
	for _, m := range r.models {
		all = append(all, m)
	}
	return all, nil
}

func (r *fakeModelRepository) FindByBrand(ctx context.Context, brandID string) ([]*Model, error) {
	var models []*Model
	for _, m := range r.models {
		if m.BrandID == brandID {
			models = append(models, m)
		}
	}
	return models, nil
}

func (r *fakeModelRepository) Update(ctx context.Context, m *Model) error {
	r.models[m.ID] = m
	return nil
}

func (r *fakeModelRepository) SoftDelete(ctx context.Context, id string) error {
	delete(r.models, id)
	return nil
}

// fakeVehicleCounter devolve contagens fixas por registro da taxonomia
type fakeVehicleCounter struct {
	counts map[string]int
}

func (f *fakeVehicleCounter) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	return f.counts[categoryID], nil
}

func (f *fakeVehicleCounter) CountByBrand(ctx context.Context, brandID string) (int, error) {
	return f.counts[brandID], nil
}

func (f *fakeVehicleCounter) CountByModel(ctx context.Context, modelID string) (int, error) {
	return f.counts[modelID], nil
}

type testRepos struct {
	categories *fakeCategoryRepository
	brands     *fakeBrandRepository
	models     *fakeModelRepository
}

func newTestService(repos testRepos, counts map[string]int) *Service {
	if repos.categories == nil {
		repos.categories = newFakeCategoryRepository()
	}
	if repos.brands == nil {
		repos.brands = newFakeBrandRepository()
	}
	if repos.models == nil {
		repos.models = newFakeModelRepository()
	}
	return NewService(repos.categories, repos.brands, repos.models, &fakeVehicleCounter{counts: counts})
}

func boolPtr(b bool) *bool { return &b }

func TestCreateCategory(t *testing.T) {
	svc := newTestService(testRepos{}, nil)

	c, err := svc.CreateCategory(context.Background(), "SUV", "suv-icon")

	require.NoError(t, err)
	assert.True(t, c.Active)
	assert.Equal(t, "SUV", c.Name)
}

func TestCreateCategoryNomeDuplicado(t *testing.T) {
	repo := newFakeCategoryRepository(NewCategory("SUV", ""))
	svc := newTestService(testRepos{categories: repo}, nil)

	_, err := svc.CreateCategory(context.Background(), "SUV", "")

	assert.ErrorIs(t, err, ErrCategoryDuplicate)
}

func TestUpdateCategoryDesativa(t *testing.T) {
	c := NewCategory("SUV", "")
	repo := newFakeCategoryRepository(c)
	svc := newTestService(testRepos{categories: repo}, nil)

	updated, err := svc.UpdateCategory(context.Background(), c.ID, "", "", boolPtr(false))

	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, "SUV", updated.Name)
}

func TestDeleteCategoryEmUso(t *testing.T) {
	c := NewCategory("SUV", "")
	repo := newFakeCategoryRepository(c)
	svc := newTestService(testRepos{categories: repo}, map[string]int{c.ID: 2})

	err := svc.DeleteCategory(context.Background(), c.ID)

	assert.ErrorIs(t, err, ErrCategoryInUse)
}

func TestListActiveCategories(t *testing.T) {
	active := NewCategory("SUV", "")
	inactive := NewCategory("Picape", "")
	inactive.Active = false
	repo := newFakeCategoryRepository(active, inactive)
	svc := newTestService(testRepos{categories: repo}, nil)

	list, err := svc.ListActiveCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "SUV", list[0].Name)
}

func TestCreateBrandNomeDuplicado(t *testing.T) {
	repo := newFakeBrandRepository(NewBrand("Honda", "25", ""))
	svc := newTestService(testRepos{brands: repo}, nil)

	_, err := svc.CreateBrand(context.Background(), "Honda", "25", "")

	assert.ErrorIs(t, err, ErrBrandDuplicate)
}

func TestDeleteBrandEmUso(t *testing.T) {
	b := NewBrand("Honda", "25", "")
	repo := newFakeBrandRepository(b)
	svc := newTestService(testRepos{brands: repo}, map[string]int{b.ID: 1})

	err := svc.DeleteBrand(context.Background(), b.ID)

	assert.ErrorIs(t, err, ErrBrandInUse)
}

func TestGetOrCreateBrandExistente(t *testing.T) {
	existing := NewBrand("Honda", "25", "")
	repo := newFakeBrandRepository(existing)
	svc := newTestService(testRepos{brands: repo}, nil)

	b, err := svc.GetOrCreateBrand(context.Background(), "Honda", "", "")

	require.NoError(t, err)
	assert.Equal(t, existing.ID, b.ID)
	assert.Len(t, repo.brands, 1)
}

func TestGetOrCreateBrandNova(t *testing.T) {
	repo := newFakeBrandRepository()
	svc := newTestService(testRepos{brands: repo}, nil)

	b, err := svc.GetOrCreateBrand(context.Background(), "Toyota", "26", "")

	require.NoError(t, err)
	assert.Equal(t, "Toyota", b.Name)
	assert.Len(t, repo.brands, 1)
}

func TestGetOrCreateBrandPerdeACorrida(t *testing.T) {
	// Outra requisição criou a marca entre a busca e a inserção; a
	// restrição de unicidade falha e a marca vencedora é retornada
	winner := NewBrand("Fiat", "21", "")
	repo := newFakeBrandRepository(winner)
	repo.failCreates = 1
	svc := newTestService(testRepos{brands: repo}, nil)

	b, err := svc.GetOrCreateBrand(context.Background(), "Fiat", "", "")

	require.NoError(t, err)
	assert.Equal(t, winner.ID, b.ID)
}

func TestCreateModelMarcaInexistente(t *testing.T) {
	svc := newTestService(testRepos{}, nil)

	_, err := svc.CreateModel(context.Background(), "nao-existe", "Civic", "")

	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestCreateModelNomeDuplicadoNaMarca(t *testing.T) {
	b := NewBrand("Honda", "25", "")
	brands := newFakeBrandRepository(b)
	models := newFakeModelRepository(NewModel(b.ID, "Civic", ""))
	svc := newTestService(testRepos{brands: brands, models: models}, nil)

	_, err := svc.CreateModel(context.Background(), b.ID, "Civic", "")

	assert.ErrorIs(t, err, ErrModelDuplicate)
}

func TestCreateModelMesmoNomeEmOutraMarca(t *testing.T) {
	// O nome do modelo é único por marca, não globalmente
	honda := NewBrand("Honda", "25", "")
	toyota := NewBrand("Toyota", "26", "")
	brands := newFakeBrandRepository(honda, toyota)
	models := newFakeModelRepository(NewModel(honda.ID, "City", ""))
	svc := newTestService(testRepos{brands: brands, models: models}, nil)

	m, err := svc.CreateModel(context.Background(), toyota.ID, "City", "")

	require.NoError(t, err)
	assert.Equal(t, toyota.ID, m.BrandID)
}

func TestListModelsByBrand(t *testing.T) {
	honda := NewBrand("Honda", "25", "")
	brands := newFakeBrandRepository(honda)
	models := newFakeModelRepository(
		NewModel(honda.ID, "Civic", ""),
		NewModel(honda.ID, "Fit", ""),
		NewModel("outra-marca", "Corolla", ""),
	)
	svc := newTestService(testRepos{brands: brands, models: models}, nil)

	list, err := svc.ListModelsByBrand(context.Background(), honda.ID)

	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListModelsByBrandMarcaInexistente(t *testing.T) {
	svc := newTestService(testRepos{}, nil)

	_, err := svc.ListModelsByBrand(context.Background(), "nao-existe")

	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestDeleteModelEmUso(t *testing.T) {
	m := NewModel("brand-1", "Civic", "")
	models := newFakeModelRepository(m)
	svc := newTestService(testRepos{models: models}, map[string]int{m.ID: 3})

	err := svc.DeleteModel(context.Background(), m.ID)

	assert.ErrorIs(t, err, ErrModelInUse)
}

func TestGetOrCreateModel(t *testing.T) {
	models := newFakeModelRepository()
	svc := newTestService(testRepos{models: models}, nil)

	m, err := svc.GetOrCreateModel(context.Background(), "brand-1", "Civic", "004")
	require.NoError(t, err)

	again, err := svc.GetOrCreateModel(context.Background(), "brand-1", "Civic", "")
	require.NoError(t, err)
	assert.Equal(t, m.ID, again.ID)
	assert.Len(t, models.models, 1)
}
