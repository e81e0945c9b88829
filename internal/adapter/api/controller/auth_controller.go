package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/user"
	"github.com/renato-dev-nws/autoshop-api/pkg/auth"
	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userService *user.Service
	jwtService  *auth.JWTService
	log         logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userService *user.Service, jwtService *auth.JWTService, log logger.Logger) *AuthController {
	return &AuthController{
		userService: userService,
		jwtService:  jwtService,
		log:         log,
	}
}

// Login autentica um usuário
// @Summary Autentica um usuário
// @Description Autentica um usuário com email e senha e retorna o token de acesso
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	u, err := c.userService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Credenciais inválidas", ""))
			return
		}
		if errors.Is(err, user.ErrInactiveUser) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Usuário inativo", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao autenticar usuário", err.Error()))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.log.Error("falha ao gerar token", "error", err, "user_id", u.ID)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gerar token", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(c.jwtService.Expiration()),
	})
}

// Me retorna os dados do usuário autenticado
// @Summary Retorna o usuário autenticado
// @Description Retorna os dados do usuário dono do token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	caller := auth.CallerFromContext(ctx)

	u, err := c.userService.Get(ctx, caller.UserID)
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
