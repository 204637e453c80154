package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// AuthController handles internal token issuance
type AuthController struct {
	BaseControllerImpl
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
	}
}

// HandleAuthFunc returns a gin handler for the given auth method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)
		switch method {
		case "generateInternalToken":
			controller.GenerateInternalToken()
		default:
			response.ServerError(ctx)
		}
	}
}

type internalTokenPayload struct {
	UID    string `json:"uid"`
	APIKey string `json:"api_key"`
}

// 1. GenerateInternalToken exchanges a service account's API key for a
// short-lived bearer token
// @Summary Generar token interno
// @Description Intercambia la API key de una cuenta de servicio por un token JWT de 24 horas
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body internalTokenPayload true "UID y API key"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/auth/internal/token [post]
func (c *AuthController) GenerateInternalToken() {
	var payload internalTokenPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.UID) == "" {
		response.Fail(c.Context, code.ErrUIDRequired)
		return
	}

	authService := c.Container.GetAuthService()
	if err := authService.VerifyAPIKey(payload.UID, payload.APIKey); err != nil {
		if errors.Is(err, services.ErrAPIKeyMismatch) {
			response.Fail(c.Context, code.ErrAPIKeyInvalid)
			return
		}
		handleServiceError(c.Context, err, "")
		return
	}

	token, err := authService.GenerateToken(payload.UID)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, gin.H{"token": token})
}
