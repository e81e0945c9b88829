package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
)

// fakeVehicleRepository registra a última busca recebida e devolve uma
// página vazia
type fakeVehicleRepository struct {
	lastFilters vehicle.SearchFilters
	searches    int
}

func (r *fakeVehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error { return nil }

func (r *fakeVehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return nil, vehicle.ErrNotFound
}

func (r *fakeVehicleRepository) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	return nil, vehicle.ErrNotFound
}

func (r *fakeVehicleRepository) Search(ctx context.Context, filters vehicle.SearchFilters, sc scope.Scope) ([]*vehicle.Vehicle, int, error) {
	r.lastFilters = filters
	r.searches++
	return nil, 0, nil
}

func (r *fakeVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error { return nil }

func (r *fakeVehicleRepository) UpdateStatus(ctx context.Context, id string, status vehicle.Status) error {
	return nil
}

func (r *fakeVehicleRepository) SoftDelete(ctx context.Context, id string) error { return nil }

func (r *fakeVehicleRepository) CountByStore(ctx context.Context, storeID string) (int, error) {
	return 0, nil
}

func (r *fakeVehicleRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	return 0, nil
}

func (r *fakeVehicleRepository) CountByBrand(ctx context.Context, brandID string) (int, error) {
	return 0, nil
}

func (r *fakeVehicleRepository) CountByModel(ctx context.Context, modelID string) (int, error) {
	return 0, nil
}

func newPublicSearchRouter(repo *fakeVehicleRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewPublicController(repo, nil, nil)

	router := gin.New()
	router.GET("/public/vehicles", c.SearchVehicles)
	return router
}

func publicSearch(t *testing.T, router *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public/vehicles"+query, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestSearchVehiclesOrdenacaoInvalida(t *testing.T) {
	repo := &fakeVehicleRepository{}
	router := newPublicSearchRouter(repo)

	w := publicSearch(t, router, "?sort=plate")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = publicSearch(t, router, "?order=banana")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nenhuma busca chega ao repositório quando a entrada é rejeitada
	assert.Zero(t, repo.searches)
}

func TestSearchVehiclesDirecaoValida(t *testing.T) {
	repo := &fakeVehicleRepository{}
	router := newPublicSearchRouter(repo)

	for _, order := range []string{"asc", "desc", "ASC", "DESC"} {
		w := publicSearch(t, router, "?order="+order)
		assert.Equal(t, http.StatusOK, w.Code, "order=%s", order)
	}
	assert.Equal(t, 4, repo.searches)
}

func TestSearchVehiclesForcaStatusDisponivel(t *testing.T) {
	repo := &fakeVehicleRepository{}
	router := newPublicSearchRouter(repo)

	w := publicSearch(t, router, "?status=Sold&sort=price&order=asc")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, vehicle.StatusAvailable, repo.lastFilters.Status)
	assert.Equal(t, vehicle.SortPrice, repo.lastFilters.Sort)
}
