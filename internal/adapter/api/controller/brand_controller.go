package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
)

// BrandController gerencia as requisições relacionadas a marcas
type BrandController struct {
	taxonomyService *taxonomy.Service
}

// NewBrandController cria uma nova instância de BrandController
func NewBrandController(taxonomyService *taxonomy.Service) *BrandController {
	return &BrandController{taxonomyService: taxonomyService}
}

// List lista todas as marcas
// @Summary Lista as marcas
// @Description Lista todas as marcas de veículos
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BrandResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [get]
func (c *BrandController) List(ctx *gin.Context) {
	brands, err := c.taxonomyService.ListBrands(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar marcas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(brands))
}

// GetByID busca uma marca pelo ID
// @Summary Busca uma marca pelo ID
// @Description Busca uma marca pelo seu ID
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da marca"
// @Success 200 {object} dto.BrandResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [get]
func (c *BrandController) GetByID(ctx *gin.Context) {
	b, err := c.taxonomyService.GetBrand(ctx, ctx.Param("id"))
	if err != nil {
		c.respondBrandError(ctx, err, "Erro ao buscar marca")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(b))
}

// Create cria uma nova marca
// @Summary Cria uma nova marca
// @Description Cria uma nova marca com nome único
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param brand body dto.BrandRequest true "Dados da marca"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands [post]
func (c *BrandController) Create(ctx *gin.Context) {
	var request dto.BrandRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.taxonomyService.CreateBrand(ctx, request.Name, request.BrandFipeID, request.Logo)
	if err != nil {
		c.respondBrandError(ctx, err, "Erro ao criar marca")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBrandResponse(b))
}

// Update atualiza uma marca
// @Summary Atualiza uma marca
// @Description Atualiza os dados de uma marca
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da marca"
// @Param brand body dto.BrandRequest true "Dados da marca"
// @Success 200 {object} dto.BrandResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [put]
func (c *BrandController) Update(ctx *gin.Context) {
	var request dto.BrandRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	b, err := c.taxonomyService.UpdateBrand(ctx, ctx.Param("id"), request.Name, request.BrandFipeID, request.Logo)
	if err != nil {
		c.respondBrandError(ctx, err, "Erro ao atualizar marca")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandResponse(b))
}

// Delete remove uma marca
// @Summary Remove uma marca
// @Description Remove uma marca sem veículos vinculados
// @Tags brands
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID da marca"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /brands/{id} [delete]
func (c *BrandController) Delete(ctx *gin.Context) {
	if err := c.taxonomyService.DeleteBrand(ctx, ctx.Param("id")); err != nil {
		c.respondBrandError(ctx, err, "Erro ao remover marca")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Marca removida com sucesso", nil))
}

// respondBrandError traduz os erros de domínio de marcas para HTTP
func (c *BrandController) respondBrandError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, taxonomy.ErrBrandNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Marca não encontrada", ""))
	case errors.Is(err, taxonomy.ErrBrandDuplicate):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Marca com mesmo nome já existe", ""))
	case errors.Is(err, taxonomy.ErrBrandInUse):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Existem veículos usando esta marca", ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
