package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// PropertyController handles the property CRUD endpoints
type PropertyController struct {
	BaseControllerImpl
}

// NewPropertyController creates a new property controller
func NewPropertyController(ctx *gin.Context, container *container.ServiceContainer) *PropertyController {
	return &PropertyController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
	}
}

// HandlePropertyFunc returns a gin handler for the given property method
func HandlePropertyFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewPropertyController(ctx, container)
		switch method {
		case "getProperties":
			controller.GetProperties()
		case "getProperty":
			controller.GetProperty()
		case "createProperty":
			controller.CreateProperty()
		case "updateProperty":
			controller.UpdateProperty()
		case "deleteProperty":
			controller.DeleteProperty()
		default:
			response.ServerError(ctx)
		}
	}
}

// 1. GetProperties lists properties with pagination
// @Summary Listar propiedades
// @Description Devuelve las propiedades paginadas, con catálogos y ubicación resueltos
// @Tags Properties
// @Produce json
// @Param page query int false "Número de página" default(1)
// @Param limit query int false "Elementos por página" default(10)
// @Success 200 {object} response.Response
// @Router /api/properties [get]
func (c *PropertyController) GetProperties() {
	page, _ := strconv.Atoi(c.Context.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Context.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	properties, pagination, err := c.Container.GetPropertyService().GetProperties(page, limit)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}

	if len(properties) == 0 {
		response.PaginatedWithMessage(c.Context, "No hay propiedades registradas", properties, pagination)
		return
	}
	response.Paginated(c.Context, properties, pagination)
}

// 2. GetProperty returns one property by id
// @Summary Obtener propiedad
// @Description Devuelve una propiedad por su ID con características e imágenes
// @Tags Properties
// @Produce json
// @Param id path int true "ID de la propiedad"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/properties/{id} [get]
func (c *PropertyController) GetProperty() {
	id, ok := c.paramID()
	if !ok {
		return
	}

	property, err := c.Container.GetPropertyService().GetPropertyByID(id)
	if err != nil {
		handleServiceError(c.Context, err, "Propiedad no encontrada")
		return
	}
	response.Success(c.Context, property)
}

// 3. CreateProperty validates the payload and persists a new property with
// its features and images
// @Summary Crear propiedad
// @Description Crea una propiedad con sus características e imágenes
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body map[string]interface{} true "Datos de la propiedad"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/properties [post]
func (c *PropertyController) CreateProperty() {
	body, ok := c.bindBody("No se recibieron datos para crear la propiedad")
	if !ok {
		return
	}

	fields, err := services.ValidatePropertyData(body)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}

	features, _ := extractStringList(body["features"])
	images, _ := extractStringList(body["images"])

	property, err := c.Container.GetPropertyService().CreateProperty(fields, features, images)
	if err != nil {
		if errors.Is(err, services.ErrImagesRequired) {
			response.Fail(c.Context, code.ErrPropertyNoImages)
			return
		}
		handleServiceError(c.Context, err, "")
		return
	}
	response.Created(c.Context, "Propiedad creada exitosamente", property)
}

// 4. UpdateProperty validates the payload and updates an existing property.
// Features and images are replaced only when the payload carries them.
// @Summary Actualizar propiedad
// @Description Actualiza una propiedad existente; características e imágenes se reemplazan solo si se envían
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "ID de la propiedad"
// @Param property body map[string]interface{} true "Datos de la propiedad"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/{id} [put]
func (c *PropertyController) UpdateProperty() {
	id, ok := c.paramID()
	if !ok {
		return
	}

	body, ok := c.bindBody("No se recibieron datos para actualizar la propiedad")
	if !ok {
		return
	}

	fields, err := services.ValidatePropertyData(body)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}

	var features, images *[]string
	if raw, present := body["features"]; present {
		if list, valid := extractStringList(raw); valid {
			features = &list
		}
	}
	if raw, present := body["images"]; present {
		if list, valid := extractStringList(raw); valid {
			images = &list
		}
	}

	property, err := c.Container.GetPropertyService().UpdateProperty(id, fields, features, images)
	if err != nil {
		handleServiceError(c.Context, err, "Propiedad no encontrada para actualizar")
		return
	}
	response.SuccessWithMessage(c.Context, "Propiedad actualizada exitosamente", property)
}

// 5. DeleteProperty removes a property with its features and images
// @Summary Eliminar propiedad
// @Description Elimina una propiedad junto con sus características e imágenes
// @Tags Properties
// @Produce json
// @Param id path int true "ID de la propiedad"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/{id} [delete]
func (c *PropertyController) DeleteProperty() {
	id, ok := c.paramID()
	if !ok {
		return
	}

	if err := c.Container.GetPropertyService().DeleteProperty(id); err != nil {
		handleServiceError(c.Context, err, "Propiedad no encontrada para eliminar")
		return
	}
	response.SuccessWithMessage(c.Context, "Propiedad eliminada exitosamente", nil)
}

// paramID parses the :id path parameter, answering 400 itself on failure
func (c *PropertyController) paramID() (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrValidation, "ID de propiedad inválido")
		return 0, false
	}
	return uint(id), true
}

// bindBody binds the JSON body, rejecting malformed and empty payloads
func (c *PropertyController) bindBody(emptyMessage string) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.Context.ShouldBindJSON(&body); err != nil {
		response.Fail(c.Context, code.ErrBind)
		return nil, false
	}
	if len(body) == 0 {
		response.FailWithMessage(c.Context, code.ErrPropertyEmptyBody, emptyMessage)
		return nil, false
	}
	return body, true
}

// extractStringList coerces a JSON array into []string; non-string
// members are skipped. The second return reports whether the value was
// an array at all.
func extractStringList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, isString := item.(string); isString {
				out = append(out, s)
			}
		}
		return out, true
	default:
		return nil, false
	}
}
