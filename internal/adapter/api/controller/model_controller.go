package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
)

// ModelController gerencia as requisições relacionadas a modelos
type ModelController struct {
	taxonomyService *taxonomy.Service
}

// NewModelController cria uma nova instância de ModelController
func NewModelController(taxonomyService *taxonomy.Service) *ModelController {
	return &ModelController{taxonomyService: taxonomyService}
}

// List lista os modelos, opcionalmente filtrados por marca
// @Summary Lista os modelos
// @Description Lista todos os modelos, ou apenas os de uma marca
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param brand_id query string false "ID da marca"
// @Success 200 {array} dto.ModelResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /models [get]
func (c *ModelController) List(ctx *gin.Context) {
	var models []*taxonomy.Model
	var err error

	if brandID := ctx.Query("brand_id"); brandID != "" {
		models, err = c.taxonomyService.ListModelsByBrand(ctx, brandID)
	} else {
		models, err = c.taxonomyService.ListModels(ctx)
	}
	if err != nil {
		c.respondModelError(ctx, err, "Erro ao listar modelos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToModelListResponse(models))
}

// GetByID busca um modelo pelo ID
// @Summary Busca um modelo pelo ID
// @Description Busca um modelo pelo seu ID
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do modelo"
// @Success 200 {object} dto.ModelResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /models/{id} [get]
func (c *ModelController) GetByID(ctx *gin.Context) {
	m, err := c.taxonomyService.GetModel(ctx, ctx.Param("id"))
	if err != nil {
		c.respondModelError(ctx, err, "Erro ao buscar modelo")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToModelResponse(m))
}

// Create cria um novo modelo
// @Summary Cria um novo modelo
// @Description Cria um novo modelo com nome único por marca
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param model body dto.ModelRequest true "Dados do modelo"
// @Success 201 {object} dto.ModelResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /models [post]
func (c *ModelController) Create(ctx *gin.Context) {
	var request dto.ModelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	m, err := c.taxonomyService.CreateModel(ctx, request.BrandID, request.Name, request.ModelFipeID)
	if err != nil {
		c.respondModelError(ctx, err, "Erro ao criar modelo")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToModelResponse(m))
}

// Update atualiza um modelo
// @Summary Atualiza um modelo
// @Description Atualiza os dados de um modelo
// @Tags models
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do modelo"
// @Param model body dto.ModelRequest true "Dados do modelo"
// @Success 200 {object} dto.ModelResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /models/{id} [put]
func (c *ModelController) Update(ctx *gin.Context) {
	var request dto.ModelRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	m, err := c.taxonomyService.UpdateModel(ctx, ctx.Param("id"), request.Name, request.ModelFipeID)
	if err != nil {
		c.respondModelError(ctx, err, "Erro ao atualizar modelo")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToModelResponse(m))
}

// Delete remove um modelo
// @Summary Remove um modelo
// @Description Remove um modelo sem veículos vinculados
// @Tags models
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do modelo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /models/{id} [delete]
func (c *ModelController) Delete(ctx *gin.Context) {
	if err := c.taxonomyService.DeleteModel(ctx, ctx.Param("id")); err != nil {
		c.respondModelError(ctx, err, "Erro ao remover modelo")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Modelo removido com sucesso", nil))
}

// respondModelError traduz os erros de domínio de modelos para HTTP
func (c *ModelController) respondModelError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, taxonomy.ErrModelNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Modelo não encontrado", ""))
	case errors.Is(err, taxonomy.ErrBrandNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Marca não encontrada", ""))
	case errors.Is(err, taxonomy.ErrModelDuplicate):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Modelo com mesmo nome já existe para esta marca", ""))
	case errors.Is(err, taxonomy.ErrModelInUse):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Existem veículos usando este modelo", ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
