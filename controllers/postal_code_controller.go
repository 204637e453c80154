package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// PostalCodeController resolves postal codes to locations
type PostalCodeController struct {
	BaseControllerImpl
}

// NewPostalCodeController creates a new postal code controller
func NewPostalCodeController(ctx *gin.Context, container *container.ServiceContainer) *PostalCodeController {
	return &PostalCodeController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
	}
}

// HandlePostalCodeFunc returns a gin handler for the given postal code method
func HandlePostalCodeFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPostalCodeController(ctx, container)
		switch method {
		case "getPostalCode":
			controller.GetPostalCode()
		default:
			response.ServerError(ctx)
		}
	}
}

// 1. GetPostalCode resolves a Mexican postal code to its state,
// municipality and colonies
// @Summary Consultar código postal
// @Description Devuelve estado, municipio y colonias de un código postal
// @Tags PostalCodes
// @Produce json
// @Param codigo_postal path string true "Código postal de 5 dígitos"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/postal-codes/{codigo_postal} [get]
func (c *PostalCodeController) GetPostalCode() {
	postalCode := strings.TrimSpace(c.Context.Param("codigo_postal"))
	if len(postalCode) != 5 {
		response.FailWithMessage(c.Context, code.ErrValidation, "El código postal debe tener 5 dígitos")
		return
	}

	info, err := c.Container.GetPostalCodeService().Lookup(c.Context.Request.Context(), postalCode)
	if err != nil {
		if errors.Is(err, services.ErrPostalCodeNotFound) {
			response.Fail(c.Context, code.ErrPostalCodeNotFound)
			return
		}
		config.Error("postal code lookup failed: %v", err)
		response.Fail(c.Context, code.ErrPostalCodeLookup)
		return
	}
	response.Success(c.Context, info)
}
