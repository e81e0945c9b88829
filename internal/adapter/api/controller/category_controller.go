package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
)

// CategoryController gerencia as requisições relacionadas a categorias
type CategoryController struct {
	taxonomyService *taxonomy.Service
}

// NewCategoryController cria uma nova instância de CategoryController
func NewCategoryController(taxonomyService *taxonomy.Service) *CategoryController {
	return &CategoryController{taxonomyService: taxonomyService}
}

// List lista todas as categorias
// @Summary Lista as categorias
// @Description Lista todas as categorias de veículos
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.taxonomyService.ListCategories(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// GetByID busca uma categoria pelo ID
// @Summary Busca uma categoria pelo ID
// @Description Busca uma categoria pelo seu ID
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [get]
func (c *CategoryController) GetByID(ctx *gin.Context) {
	cat, err := c.taxonomyService.GetCategory(ctx, ctx.Param("id"))
	if err != nil {
		c.respondCategoryError(ctx, err, "Erro ao buscar categoria")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Create cria uma nova categoria
// @Summary Cria uma nova categoria
// @Description Cria uma nova categoria com nome único
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cat, err := c.taxonomyService.CreateCategory(ctx, request.Name, request.Icon)
	if err != nil {
		c.respondCategoryError(ctx, err, "Erro ao criar categoria")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(cat))
}

// Update atualiza uma categoria
// @Summary Atualiza uma categoria
// @Description Atualiza os dados de uma categoria
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Param category body dto.CategoryRequest true "Dados da categoria"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [put]
func (c *CategoryController) Update(ctx *gin.Context) {
	var request dto.CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cat, err := c.taxonomyService.UpdateCategory(ctx, ctx.Param("id"), request.Name, request.Icon, request.Active)
	if err != nil {
		c.respondCategoryError(ctx, err, "Erro ao atualizar categoria")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(cat))
}

// Delete remove uma categoria
// @Summary Remove uma categoria
// @Description Remove uma categoria sem veículos vinculados
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da categoria"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.taxonomyService.DeleteCategory(ctx, ctx.Param("id")); err != nil {
		c.respondCategoryError(ctx, err, "Erro ao remover categoria")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Categoria removida com sucesso", nil))
}

// respondCategoryError traduz os erros de domínio de categorias para HTTP
func (c *CategoryController) respondCategoryError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, taxonomy.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Categoria não encontrada", ""))
	case errors.Is(err, taxonomy.ErrCategoryDuplicate):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Categoria com mesmo nome já existe", ""))
	case errors.Is(err, taxonomy.ErrCategoryInUse):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Existem veículos usando esta categoria", ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
