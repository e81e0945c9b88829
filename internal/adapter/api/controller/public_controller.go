package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
)

// PublicController gerencia a vitrine pública, sem autenticação. A busca
// pública só enxerga veículos disponíveis, independente dos filtros
// recebidos.
type PublicController struct {
	vehicles        vehicle.Repository
	taxonomyService *taxonomy.Service
	storeService    *store.Service
}

// NewPublicController cria uma nova instância de PublicController
func NewPublicController(vehicles vehicle.Repository, taxonomyService *taxonomy.Service, storeService *store.Service) *PublicController {
	return &PublicController{
		vehicles:        vehicles,
		taxonomyService: taxonomyService,
		storeService:    storeService,
	}
}

// SearchVehicles busca veículos disponíveis na vitrine
// @Summary Busca veículos na vitrine
// @Description Busca veículos disponíveis com filtros, ordenação e paginação
// @Tags public
// @Produce json
// @Param category_id query string false "ID da categoria"
// @Param brand_fipe_id query string false "Código FIPE da marca"
// @Param model_fipe_id query string false "Código FIPE do modelo"
// @Param store_id query string false "ID da loja"
// @Param min_price query number false "Preço mínimo"
// @Param max_price query number false "Preço máximo"
// @Param year_min query int false "Ano-modelo mínimo"
// @Param year_max query int false "Ano-modelo máximo"
// @Param home_highlight query bool false "Apenas destaques da home"
// @Param brand_highlight query bool false "Apenas destaques da marca"
// @Param search query string false "Busca em placa, marca, modelo e descrição"
// @Param sort query string false "Campo de ordenação (created_at, price, model_year, mileage)"
// @Param order query string false "Direção da ordenação (asc, desc)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.PublicVehicleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/vehicles [get]
func (c *PublicController) SearchVehicles(ctx *gin.Context) {
	var query dto.VehicleSearchQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Parâmetros de busca inválidos", err.Error()))
		return
	}

	if query.Sort != "" && !vehicle.ValidSort(query.Sort) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Campo de ordenação inválido", query.Sort))
		return
	}

	if query.Order != "" && !vehicle.ValidOrder(query.Order) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Direção de ordenação inválida", query.Order))
		return
	}

	filters := query.ToSearchFilters()
	// A vitrine só exibe veículos disponíveis
	filters.Status = vehicle.StatusAvailable
	filters.Normalize()

	vehicles, total, err := c.vehicles.Search(ctx, filters, scope.Unrestricted())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar veículos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPublicVehicleListResponse(vehicles, total, filters.Page, filters.PageSize))
}

// GetVehicle busca um veículo disponível pelo ID
// @Summary Busca um veículo na vitrine
// @Description Busca um veículo disponível com loja, taxonomia e fotos
// @Tags public
// @Produce json
// @Param id path string true "ID do veículo"
// @Success 200 {object} dto.PublicVehicleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/vehicles/{id} [get]
func (c *PublicController) GetVehicle(ctx *gin.Context) {
	v, err := c.vehicles.FindByID(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, vehicle.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Veículo não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar veículo", err.Error()))
		return
	}

	// Veículos reservados ou vendidos não aparecem na vitrine
	if v.Status != vehicle.StatusAvailable {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Veículo não encontrado", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPublicVehicleResponse(v))
}

// ListCategories lista as categorias ativas
// @Summary Lista as categorias da vitrine
// @Description Lista as categorias ativas de veículos
// @Tags public
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/categories [get]
func (c *PublicController) ListCategories(ctx *gin.Context) {
	categories, err := c.taxonomyService.ListActiveCategories(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar categorias", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(categories))
}

// ListBrands lista as marcas
// @Summary Lista as marcas da vitrine
// @Description Lista todas as marcas de veículos
// @Tags public
// @Produce json
// @Success 200 {array} dto.BrandResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/brands [get]
func (c *PublicController) ListBrands(ctx *gin.Context) {
	brands, err := c.taxonomyService.ListBrands(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar marcas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBrandListResponse(brands))
}

// ListModels lista os modelos de uma marca
// @Summary Lista os modelos de uma marca
// @Description Lista os modelos de uma marca da vitrine
// @Tags public
// @Produce json
// @Param brandId path string true "ID da marca"
// @Success 200 {array} dto.ModelResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/brands/{brandId}/models [get]
func (c *PublicController) ListModels(ctx *gin.Context) {
	models, err := c.taxonomyService.ListModelsByBrand(ctx, ctx.Param("brandId"))
	if err != nil {
		if errors.Is(err, taxonomy.ErrBrandNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Marca não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar modelos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToModelListResponse(models))
}

// ListStores lista as lojas
// @Summary Lista as lojas da vitrine
// @Description Lista as lojas com os dados públicos de contato
// @Tags public
// @Produce json
// @Success 200 {array} dto.PublicStoreResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /public/stores [get]
func (c *PublicController) ListStores(ctx *gin.Context) {
	stores, err := c.storeService.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar lojas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPublicStoreListResponse(stores))
}
