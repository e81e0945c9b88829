package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
	"github.com/renato-dev-nws/autoshop-api/pkg/auth"
)

// PhotoController gerencia as requisições relacionadas a fotos de veículos
type PhotoController struct {
	photoService *photo.Service
}

// NewPhotoController cria uma nova instância de PhotoController
func NewPhotoController(photoService *photo.Service) *PhotoController {
	return &PhotoController{photoService: photoService}
}

// Upload envia fotos para um veículo
// @Summary Envia fotos para um veículo
// @Description Envia até 10 fotos de uma vez; arquivos que não são imagem são ignorados
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Param photos formData file true "Arquivos de imagem"
// @Success 201 {object} dto.PhotoUploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id}/photos [post]
func (c *PhotoController) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Formulário inválido", err.Error()))
		return
	}

	var files []photo.UploadFile
	for _, header := range form.File["photos"] {
		f, err := header.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao ler arquivo", err.Error()))
			return
		}

		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Erro ao ler arquivo", err.Error()))
			return
		}

		files = append(files, photo.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	caller := auth.CallerFromContext(ctx)

	result, err := c.photoService.Upload(ctx, caller, ctx.Param("id"), files)
	if err != nil {
		c.respondPhotoError(ctx, err, "Erro ao enviar fotos")
		return
	}

	ctx.JSON(http.StatusCreated, dto.PhotoUploadResponse{
		Uploaded: result.Uploaded,
		Photos:   dto.ToPhotoListResponse(result.Photos),
	})
}

// List lista as fotos de um veículo
// @Summary Lista as fotos de um veículo
// @Description Lista as fotos do veículo ordenadas por exibição
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Success 200 {array} dto.PhotoResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id}/photos [get]
func (c *PhotoController) List(ctx *gin.Context) {
	caller := auth.CallerFromContext(ctx)

	photos, err := c.photoService.List(ctx, caller, ctx.Param("id"))
	if err != nil {
		c.respondPhotoError(ctx, err, "Erro ao listar fotos")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPhotoListResponse(photos))
}

// SetCover define a foto de capa de um veículo
// @Summary Define a foto de capa
// @Description Marca a foto como capa do veículo, desmarcando a capa anterior
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Param photoId path string true "ID da foto"
// @Success 200 {object} dto.PhotoResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id}/photos/{photoId}/cover [patch]
func (c *PhotoController) SetCover(ctx *gin.Context) {
	caller := auth.CallerFromContext(ctx)

	p, err := c.photoService.SetCover(ctx, caller, ctx.Param("id"), ctx.Param("photoId"))
	if err != nil {
		c.respondPhotoError(ctx, err, "Erro ao definir capa")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPhotoResponse(p))
}

// UpdateOrder altera a ordem de exibição de uma foto
// @Summary Altera a ordem de exibição
// @Description Altera a posição da foto na galeria do veículo
// @Tags photos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Param photoId path string true "ID da foto"
// @Param order body dto.PhotoOrderRequest true "Nova posição"
// @Success 200 {object} dto.PhotoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id}/photos/{photoId}/order [patch]
func (c *PhotoController) UpdateOrder(ctx *gin.Context) {
	var request dto.PhotoOrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	caller := auth.CallerFromContext(ctx)

	p, err := c.photoService.UpdateOrder(ctx, caller, ctx.Param("id"), ctx.Param("photoId"), *request.DisplayOrder)
	if err != nil {
		c.respondPhotoError(ctx, err, "Erro ao alterar ordem da foto")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPhotoResponse(p))
}

// Delete remove uma foto de um veículo
// @Summary Remove uma foto
// @Description Remove a foto e o arquivo correspondente; se era capa, promove a próxima
// @Tags photos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do veículo"
// @Param photoId path string true "ID da foto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /vehicles/{id}/photos/{photoId} [delete]
func (c *PhotoController) Delete(ctx *gin.Context) {
	caller := auth.CallerFromContext(ctx)

	if err := c.photoService.Remove(ctx, caller, ctx.Param("id"), ctx.Param("photoId")); err != nil {
		c.respondPhotoError(ctx, err, "Erro ao remover foto")
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Foto removida com sucesso", nil))
}

// respondPhotoError traduz os erros de domínio de fotos para HTTP
func (c *PhotoController) respondPhotoError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, photo.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Foto não encontrada", ""))
	case errors.Is(err, vehicle.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Veículo não encontrado", ""))
	case errors.Is(err, photo.ErrNoFiles), errors.Is(err, photo.ErrTooManyFiles):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
	case errors.Is(err, scope.ErrForbidden), errors.Is(err, scope.ErrManagerWithoutStore):
		ctx.JSON(http.StatusForbidden, dto.NewErrorResponse(http.StatusForbidden, "Acesso negado à loja dona do veículo", ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
