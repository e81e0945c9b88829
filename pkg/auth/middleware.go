package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/renato-dev-nws/autoshop-api/internal/adapter/api/dto"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
)

// Chaves usadas no contexto do gin para a identidade do usuário
const (
	ContextUserID  = "user_id"
	ContextEmail   = "user_email"
	ContextName    = "user_name"
	ContextRole    = "user_role"
	ContextStoreID = "user_store_id"
)

// JWTAuthMiddleware cria um middleware para autenticação JWT
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"O cabeçalho Authorization não foi fornecido",
			))
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Formato de token inválido",
				"Use o formato 'Bearer <token>'",
			))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if err == ErrExpiredToken {
				message = "Token expirado"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				message,
				err.Error(),
			))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextStoreID, claims.StoreID)

		c.Next()
	}
}

// RoleAuthMiddleware cria um middleware que restringe a rota aos papéis
// informados. Deve ser usado após JWTAuthMiddleware.
func RoleAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString(ContextRole)
		if userRole == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				http.StatusUnauthorized,
				"Autenticação requerida",
				"",
			))
			return
		}

		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
			http.StatusForbidden,
			"Acesso negado",
			"Seu papel não permite acessar este recurso",
		))
	}
}

// CallerFromContext monta a identidade de autorização a partir das claims
// colocadas no contexto pelo JWTAuthMiddleware
func CallerFromContext(c *gin.Context) scope.Caller {
	return scope.Caller{
		UserID:  c.GetString(ContextUserID),
		Role:    scope.Role(c.GetString(ContextRole)),
		StoreID: c.GetString(ContextStoreID),
	}
}
