package controller

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
)

func TestRespondStoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"loja não encontrada", store.ErrNotFound, http.StatusNotFound},
		{"matriz não encontrada", store.ErrParentNotFound, http.StatusNotFound},
		{"CNPJ duplicado", store.ErrCNPJDuplicate, http.StatusConflict},
		{"filial de filial", store.ErrParentIsBranch, http.StatusConflict},
		{"matriz de si mesma", store.ErrSelfParent, http.StatusConflict},
		{"possui filiais", store.ErrHasBranches, http.StatusConflict},
		{"possui veículos", store.ErrHasVehicles, http.StatusConflict},
		{"nome vazio", store.ErrEmptyName, http.StatusBadRequest},
		{"CNPJ vazio", store.ErrEmptyCNPJ, http.StatusBadRequest},
		{"erro inesperado", errors.New("falha de conexão"), http.StatusInternalServerError},
	}

	c := NewStoreController(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)

			c.respondStoreError(ctx, tt.err, "Erro ao processar loja")

			assert.Equal(t, tt.code, w.Code)
		})
	}
}
