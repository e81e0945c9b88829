package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newVehicleListRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewVehicleController(nil)

	router := gin.New()
	router.GET("/vehicles", c.List)
	return router
}

func TestListRejeitaCampoDeOrdenacaoInvalido(t *testing.T) {
	router := newVehicleListRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles?sort=plate", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListRejeitaDirecaoDeOrdenacaoInvalida(t *testing.T) {
	router := newVehicleListRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/vehicles?order=banana", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
