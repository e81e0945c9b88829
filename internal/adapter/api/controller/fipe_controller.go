package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/fipe"
)

// FipeController expõe o proxy da tabela FIPE
type FipeController struct {
	fipeService *fipe.Service
}

// NewFipeController cria uma nova instância de FipeController
func NewFipeController(fipeService *fipe.Service) *FipeController {
	return &FipeController{fipeService: fipeService}
}

// Brands lista as marcas FIPE
// @Summary Lista as marcas FIPE
// @Description Lista as marcas FIPE de um tipo de veículo
// @Tags fipe
// @Produce json
// @Param tipo path string true "Tipo de veículo (carros, motos, caminhoes)"
// @Success 200 {object} object
// @Failure 500 {object} dto.ErrorResponse
// @Router /fipe/{tipo}/marcas [get]
func (c *FipeController) Brands(ctx *gin.Context) {
	body, err := c.fipeService.Brands(ctx, ctx.Param("tipo"))
	if err != nil {
		c.respondFipeError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

// Models lista os modelos FIPE de uma marca
// @Summary Lista os modelos FIPE
// @Description Lista os modelos FIPE de uma marca
// @Tags fipe
// @Produce json
// @Param tipo path string true "Tipo de veículo (carros, motos, caminhoes)"
// @Param marca path string true "Código FIPE da marca"
// @Success 200 {object} object
// @Failure 500 {object} dto.ErrorResponse
// @Router /fipe/{tipo}/marcas/{marca}/modelos [get]
func (c *FipeController) Models(ctx *gin.Context) {
	body, err := c.fipeService.Models(ctx, ctx.Param("tipo"), ctx.Param("marca"))
	if err != nil {
		c.respondFipeError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

// Years lista os anos disponíveis de um modelo FIPE
// @Summary Lista os anos FIPE
// @Description Lista os anos disponíveis de um modelo FIPE
// @Tags fipe
// @Produce json
// @Param tipo path string true "Tipo de veículo (carros, motos, caminhoes)"
// @Param marca path string true "Código FIPE da marca"
// @Param modelo path string true "Código FIPE do modelo"
// @Success 200 {object} object
// @Failure 500 {object} dto.ErrorResponse
// @Router /fipe/{tipo}/marcas/{marca}/modelos/{modelo}/anos [get]
func (c *FipeController) Years(ctx *gin.Context) {
	body, err := c.fipeService.Years(ctx, ctx.Param("tipo"), ctx.Param("marca"), ctx.Param("modelo"))
	if err != nil {
		c.respondFipeError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

// Value retorna os detalhes e o valor FIPE
// @Summary Consulta o valor FIPE
// @Description Retorna os detalhes e o valor FIPE de um modelo em um ano
// @Tags fipe
// @Produce json
// @Param tipo path string true "Tipo de veículo (carros, motos, caminhoes)"
// @Param marca path string true "Código FIPE da marca"
// @Param modelo path string true "Código FIPE do modelo"
// @Param ano path string true "Ano do veículo (ex: 2024-1)"
// @Success 200 {object} object
// @Failure 500 {object} dto.ErrorResponse
// @Router /fipe/{tipo}/marcas/{marca}/modelos/{modelo}/anos/{ano} [get]
func (c *FipeController) Value(ctx *gin.Context) {
	body, err := c.fipeService.Value(ctx, ctx.Param("tipo"), ctx.Param("marca"), ctx.Param("modelo"), ctx.Param("ano"))
	if err != nil {
		c.respondFipeError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "application/json", body)
}

// respondFipeError repassa o status da consulta FIPE quando disponível
func (c *FipeController) respondFipeError(ctx *gin.Context, err error) {
	var upstream *fipe.UpstreamError
	if errors.As(err, &upstream) && len(upstream.Body) > 0 {
		ctx.Data(upstream.StatusCode, "application/json", upstream.Body)
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao consultar dados FIPE", err.Error()))
}
