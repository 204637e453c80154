package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// Authentication verifies the Bearer token on protected routes and
// stores the caller's identity in the gin context under "uid" and "role".
func Authentication(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(ctx, "Se requiere el encabezado Authorization")
			ctx.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(ctx, "Formato de autorización inválido, se espera Bearer {token}")
			ctx.Abort()
			return
		}

		claims, err := container.GetAuthService().ExtractClaims(parts[1])
		if err != nil {
			response.Unauthorized(ctx, "Token inválido o expirado")
			ctx.Abort()
			return
		}

		ctx.Set("uid", claims.UID)
		ctx.Set("role", claims.Role)
		ctx.Next()
	}
}
