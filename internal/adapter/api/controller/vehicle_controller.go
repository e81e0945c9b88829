package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
	"github.com/renato-dev-nws/autoshop-api/pkg/auth"
)

// VehicleController gerencia as requisições relacionadas a veículos
type VehicleController struct {
	vehicleService *vehicle.Service
}

// NewVehicleController cria uma nova instância de VehicleController
func NewVehicleController(vehicleService *vehicle.Service) *VehicleController {
	return &VehicleController{vehicleService: vehicleService}
}

// List busca veículos com filtros, ordenação e paginação
// @Summary Lista os veículos
// @Description Busca veículos restrita às lojas visíveis ao usuário, com filtros, ordenação e paginação
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param category_id query string false "ID da categoria"
// @Param brand_fipe_id query string false "Código FIPE da marca"
// @Param model_fipe_id query string false "Código FIPE do modelo"
// @Param store_id query string false "ID da loja"
// @Param min_price query number false "Preço mínimo"
// @Param max_price query number false "Preço máximo"
// @Param year_min query int false "Ano-modelo mínimo"
// @Param year_max query int false "Ano-modelo máximo"
// @Param search query string false "Busca em placa, marca, modelo e descrição"
// @Param status query string false "Status do veículo"
// @Param sort query string false "Campo de ordenação (created_at, price, model_year, mileage)"
// @Param order query string false "Direção da ordenação (asc, desc)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.VehicleListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles [get]
func (c *VehicleController) List(ctx *gin.Context) {
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
	caller := auth.CallerFromContext(ctx)

	result, err := c.vehicleService.List(ctx, caller, filters)
	if err != nil {
		c.respondVehicleError(ctx, err, "Erro ao buscar veículos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleListResponse(result.Vehicles, result.Total, filters.Page, filters.PageSize))
}

// GetByID busca um veículo pelo ID
// @Summary Busca um veículo pelo ID
// @Description Busca um veículo com loja, taxonomia e fotos carregadas
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Success 200 {object} dto.VehicleResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id} [get]
func (c *VehicleController) GetByID(ctx *gin.Context) {
	caller := auth.CallerFromContext(ctx)

	v, err := c.vehicleService.Get(ctx, caller, ctx.Param("id"))
	if err != nil {
		c.respondVehicleError(ctx, err, "Erro ao buscar veículo")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(v))
}

// Create cria um novo veículo
// @Summary Cria um novo veículo
// @Description Cria um veículo em uma loja visível ao usuário; marca e modelo desconhecidos são cadastrados automaticamente
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body dto.VehicleRequest true "Dados do veículo"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles [post]
func (c *VehicleController) Create(ctx *gin.Context) {
	var request dto.VehicleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	caller := auth.CallerFromContext(ctx)

	v, err := c.vehicleService.Create(ctx, caller, request.ToCreateInput())
	if err != nil {
		c.respondVehicleError(ctx, err, "Erro ao criar veículo")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToVehicleResponse(v))
}

// Update atualiza um veículo
// @Summary Atualiza um veículo
// @Description Atualiza parcialmente os dados de um veículo; campos ausentes não são alterados
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Param vehicle body dto.VehicleUpdateRequest true "Dados do veículo"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id} [put]
func (c *VehicleController) Update(ctx *gin.Context) {
	var request dto.VehicleUpdateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	caller := auth.CallerFromContext(ctx)

	v, err := c.vehicleService.Update(ctx, caller, ctx.Param("id"), request.ToUpdateInput())
	if err != nil {
		c.respondVehicleError(ctx, err, "Erro ao atualizar veículo")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(v))
}

// UpdateStatus altera o status de um veículo
// @Summary Altera o status de um veículo
// @Description Altera o status comercial do veículo (Available, Reserved, Sold)
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Param status body dto.VehicleStatusRequest true "Novo status"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id}/status [patch]
func (c *VehicleController) UpdateStatus(ctx *gin.Context) {
	var request dto.VehicleStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	caller := auth.CallerFromContext(ctx)

	v, err := c.vehicleService.UpdateStatus(ctx, caller, ctx.Param("id"), vehicle.Status(request.Status))
	if err != nil {
		c.respondVehicleError(ctx, err, "Erro ao atualizar status do veículo")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToVehicleResponse(v))
}

// Delete remove um veículo
// @Summary Remove um veículo
// @Description Remove um veículo; a loja dona não é afetada
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id} [delete]
func (c *VehicleController) Delete(ctx *gin.Context) {
	caller := auth.CallerFromContext(ctx)

	if err := c.vehicleService.Delete(ctx, caller, ctx.Param("id")); err != nil {
		c.respondVehicleError(ctx, err, "Erro ao remover veículo")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Veículo removido com sucesso", nil))
}

// respondVehicleError traduz os erros de domínio de veículos para HTTP
func (c *VehicleController) respondVehicleError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, vehicle.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Veículo não encontrado", ""))
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
	case errors.Is(err, vehicle.ErrPlateDuplicate):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Veículo com mesma placa já existe", ""))
	case errors.Is(err, scope.ErrForbidden), errors.Is(err, scope.ErrManagerWithoutStore):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado à loja informada", ""))
	case errors.Is(err, vehicle.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Status inválido", ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
