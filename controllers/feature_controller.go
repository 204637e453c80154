package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// FeatureController handles the property feature endpoints
type FeatureController struct {
	BaseControllerImpl
}

// NewFeatureController creates a new feature controller
func NewFeatureController(ctx *gin.Context, container *container.ServiceContainer) *FeatureController {
	return &FeatureController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
	}
}

// HandleFeatureFunc returns a gin handler for the given feature method
func HandleFeatureFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFeatureController(ctx, container)
		switch method {
		case "replaceFeatures":
			controller.ReplaceFeatures()
		case "getAllFeatures":
			controller.GetAllFeatures()
		case "getFeaturesByProperty":
			controller.GetFeaturesByProperty()
		case "updateFeature":
			controller.UpdateFeature()
		case "deleteFeature":
			controller.DeleteFeature()
		default:
			response.ServerError(ctx)
		}
	}
}

type featureSetPayload struct {
	PropertyID uint     `json:"property_id"`
	Features   []string `json:"features"`
}

type featurePayload struct {
	Feature string `json:"feature"`
}

// 1. ReplaceFeatures replaces the whole feature set of a property
// @Summary Reemplazar características
// @Description Sustituye el conjunto completo de características de una propiedad
// @Tags Features
// @Accept json
// @Produce json
// @Param features body featureSetPayload true "ID de propiedad y características"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/features [post]
func (c *FeatureController) ReplaceFeatures() {
	var payload featureSetPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || payload.PropertyID == 0 || payload.Features == nil {
		response.FailWithMessage(c.Context, code.ErrFeatureInvalidPayload, "Se requieren property_id y features")
		return
	}

	if err := c.Container.GetFeatureService().ReplaceSet(payload.PropertyID, payload.Features); err != nil {
		handleServiceError(c.Context, err, fmt.Sprintf("La propiedad con ID %d no existe", payload.PropertyID))
		return
	}
	response.Created(c.Context, "Características agregadas correctamente", nil)
}

// 2. GetAllFeatures lists every feature row
// @Summary Listar características
// @Tags Features
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/properties/features [get]
func (c *FeatureController) GetAllFeatures() {
	features, err := c.Container.GetFeatureService().GetAll()
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, features)
}

// 3. GetFeaturesByProperty lists the features of one property
// @Summary Listar características de una propiedad
// @Tags Features
// @Produce json
// @Param id path int true "ID de la propiedad"
// @Success 200 {object} response.Response
// @Router /api/properties/{id}/features [get]
func (c *FeatureController) GetFeaturesByProperty() {
	id, ok := c.paramID("ID de propiedad inválido")
	if !ok {
		return
	}
	features, err := c.Container.GetFeatureService().GetByPropertyID(id)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, features)
}

// 4. UpdateFeature changes the label of one feature row
// @Summary Actualizar característica
// @Tags Features
// @Accept json
// @Produce json
// @Param id path int true "ID de la característica"
// @Param feature body featurePayload true "Nueva etiqueta"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/features/{id} [put]
func (c *FeatureController) UpdateFeature() {
	id, ok := c.paramID("ID de característica inválido")
	if !ok {
		return
	}

	var payload featurePayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Feature) == "" {
		response.FailWithMessage(c.Context, code.ErrFeatureInvalidPayload, "El campo feature es obligatorio")
		return
	}

	if err := c.Container.GetFeatureService().Update(id, strings.TrimSpace(payload.Feature)); err != nil {
		handleServiceError(c.Context, err, "Característica no encontrada")
		return
	}
	response.SuccessWithMessage(c.Context, "Característica actualizada correctamente", nil)
}

// 5. DeleteFeature removes one feature row
// @Summary Eliminar característica
// @Tags Features
// @Produce json
// @Param id path int true "ID de la característica"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/features/{id} [delete]
func (c *FeatureController) DeleteFeature() {
	id, ok := c.paramID("ID de característica inválido")
	if !ok {
		return
	}
	if err := c.Container.GetFeatureService().Delete(id); err != nil {
		handleServiceError(c.Context, err, "Característica no encontrada")
		return
	}
	response.SuccessWithMessage(c.Context, "Característica eliminada correctamente", nil)
}

func (c *FeatureController) paramID(message string) (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrValidation, message)
		return 0, false
	}
	return uint(id), true
}
