package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
)

// StoreController gerencia as requisições relacionadas a lojas
type StoreController struct {
	storeService *store.Service
}

// NewStoreController cria uma nova instância de StoreController
func NewStoreController(storeService *store.Service) *StoreController {
	return &StoreController{storeService: storeService}
}

// List lista todas as lojas
// @Summary Lista as lojas
// @Description Lista todas as lojas com matriz e filiais
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.StoreResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [get]
func (c *StoreController) List(ctx *gin.Context) {
	stores, err := c.storeService.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar lojas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreListResponse(stores))
}

// GetByID busca uma loja pelo ID
// @Summary Busca uma loja pelo ID
// @Description Busca uma loja pelo seu ID, incluindo matriz e filiais
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.StoreResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id} [get]
func (c *StoreController) GetByID(ctx *gin.Context) {
	s, err := c.storeService.Get(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar loja", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreResponse(s))
}

// Create cria uma nova loja
// @Summary Cria uma nova loja
// @Description Cria uma nova loja, opcionalmente como filial de uma matriz
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param store body dto.StoreRequest true "Dados da loja"
// @Success 201 {object} dto.StoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores [post]
func (c *StoreController) Create(ctx *gin.Context) {
	var request dto.StoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := c.storeService.Create(ctx, store.CreateInput{
		Name:     request.Name,
		CNPJ:     request.CNPJ,
		Address:  request.Address,
		Phone:    request.Phone,
		ParentID: request.ParentID,
	})
	if err != nil {
		c.respondStoreError(ctx, err, "Erro ao criar loja")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToStoreResponse(s))
}

// Update atualiza uma loja
// @Summary Atualiza uma loja
// @Description Atualiza os dados de uma loja, incluindo seu vínculo com a matriz
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da loja"
// @Param store body dto.StoreRequest true "Dados da loja"
// @Success 200 {object} dto.StoreResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id} [put]
func (c *StoreController) Update(ctx *gin.Context) {
	var request dto.StoreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	s, err := c.storeService.Update(ctx, ctx.Param("id"), store.UpdateInput{
		Name:     &request.Name,
		CNPJ:     &request.CNPJ,
		Address:  &request.Address,
		Phone:    &request.Phone,
		ParentID: request.ParentID,
	})
	if err != nil {
		c.respondStoreError(ctx, err, "Erro ao atualizar loja")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStoreResponse(s))
}

// Delete remove uma loja
// @Summary Remove uma loja
// @Description Remove uma loja que não possui filiais nem veículos
// @Tags stores
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da loja"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /stores/{id} [delete]
func (c *StoreController) Delete(ctx *gin.Context) {
	if err := c.storeService.Delete(ctx, ctx.Param("id")); err != nil {
		c.respondStoreError(ctx, err, "Erro ao remover loja")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Loja removida com sucesso", nil))
}

// respondStoreError traduz os erros de domínio de lojas para HTTP
func (c *StoreController) respondStoreError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
	case errors.Is(err, store.ErrParentNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja matriz não encontrada", ""))
	case errors.Is(err, store.ErrCNPJDuplicate):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Loja com mesmo CNPJ já existe", ""))
	case errors.Is(err, store.ErrParentIsBranch):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Uma filial não pode ser matriz de outra loja", ""))
	case errors.Is(err, store.ErrSelfParent):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Uma loja não pode ser matriz de si mesma", ""))
	case errors.Is(err, store.ErrHasBranches):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "A loja possui filiais vinculadas", ""))
	case errors.Is(err, store.ErrHasVehicles):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "A loja possui veículos cadastrados", ""))
	case errors.Is(err, store.ErrEmptyName), errors.Is(err, store.ErrEmptyCNPJ):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
