package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/user"
)

// UserController gerencia as requisições relacionadas a usuários
type UserController struct {
	userService *user.Service
}

// NewUserController cria uma nova instância de UserController
func NewUserController(userService *user.Service) *UserController {
	return &UserController{userService: userService}
}

// List lista todos os usuários
// @Summary Lista os usuários
// @Description Lista todos os usuários do sistema
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar usuários", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}

// GetByID busca um usuário pelo ID
// @Summary Busca um usuário pelo ID
// @Description Busca um usuário pelo seu ID
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	u, err := c.userService.Get(ctx, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Create cria um novo usuário
// @Summary Cria um novo usuário
// @Description Cria um novo usuário admin ou gestor de loja
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	var storeID *string
	if request.StoreID != "" {
		storeID = &request.StoreID
	}

	u, err := c.userService.Create(ctx, user.CreateInput{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
		Role:     user.Role(request.Role),
		StoreID:  storeID,
		Active:   request.Active,
	})
	if err != nil {
		c.respondUserError(ctx, err, "Erro ao criar usuário")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(u))
}

// Update atualiza um usuário
// @Summary Atualiza um usuário
// @Description Atualiza os dados de um usuário
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Param user body dto.UserRequest true "Dados do usuário"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	var request dto.UserRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	role := user.Role(request.Role)
	in := user.UpdateInput{
		Email:  &request.Email,
		Name:   &request.Name,
		Role:   &role,
		Active: request.Active,
	}
	if request.Password != "" {
		in.Password = &request.Password
	}
	if request.StoreID != "" {
		in.StoreID = &request.StoreID
	}

	u, err := c.userService.Update(ctx, ctx.Param("id"), in)
	if err != nil {
		c.respondUserError(ctx, err, "Erro ao atualizar usuário")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}

// Delete remove um usuário
// @Summary Remove um usuário
// @Description Remove um usuário do sistema
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do usuário"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	if err := c.userService.Delete(ctx, ctx.Param("id")); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Usuário removido com sucesso", nil))
}

// respondUserError traduz os erros de domínio de usuários para HTTP
func (c *UserController) respondUserError(ctx *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário não encontrado", ""))
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Loja não encontrada", ""))
	case errors.Is(err, user.ErrEmailDuplicate):
		ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Usuário com mesmo email já existe", ""))
	case errors.Is(err, user.ErrManagerNeedsStore),
		errors.Is(err, user.ErrAdminWithStore),
		errors.Is(err, user.ErrInvalidRole):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error(), ""))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, fallback, err.Error()))
	}
}
