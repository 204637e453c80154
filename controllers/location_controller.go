package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// LocationController handles the state/municipality/colony endpoints
type LocationController struct {
	BaseControllerImpl
}

// NewLocationController creates a new location controller
func NewLocationController(ctx *gin.Context, container *container.ServiceContainer) *LocationController {
	return &LocationController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
	}
}

// HandleLocationFunc returns a gin handler for the given location method
func HandleLocationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLocationController(ctx, container)
		switch method {
		case "getStates":
			controller.GetStates()
		case "createState":
			controller.CreateState()
		case "updateState":
			controller.UpdateState()
		case "deleteState":
			controller.DeleteState()
		case "getMunicipalities":
			controller.GetMunicipalities()
		case "createMunicipality":
			controller.CreateMunicipality()
		case "updateMunicipality":
			controller.UpdateMunicipality()
		case "deleteMunicipality":
			controller.DeleteMunicipality()
		case "getColonies":
			controller.GetColonies()
		case "createColony":
			controller.CreateColony()
		case "updateColony":
			controller.UpdateColony()
		case "deleteColony":
			controller.DeleteColony()
		default:
			response.ServerError(ctx)
		}
	}
}

type locationPayload struct {
	Name           string `json:"name"`
	StateID        uint   `json:"state_id"`
	MunicipalityID uint   `json:"municipality_id"`
}

// 1. GetStates lists every state
// @Summary Listar estados
// @Tags Locations
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/properties/catalogs/states [get]
func (c *LocationController) GetStates() {
	states, err := c.Container.GetLocationService().GetStates()
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, states)
}

// 2. CreateState inserts a state
// @Summary Crear estado
// @Tags Locations
// @Accept json
// @Produce json
// @Param state body locationPayload true "Nombre del estado"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/states [post]
func (c *LocationController) CreateState() {
	payload, ok := c.bindName("El nombre del estado es obligatorio")
	if !ok {
		return
	}
	id, err := c.Container.GetLocationService().CreateState(payload.Name)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Created(c.Context, "Estado creado exitosamente", gin.H{"id": id})
}

// 3. UpdateState renames a state
// @Summary Actualizar estado
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path int true "ID del estado"
// @Param state body locationPayload true "Nombre del estado"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/states/{id} [put]
func (c *LocationController) UpdateState() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	payload, ok := c.bindName("El nombre del estado es obligatorio")
	if !ok {
		return
	}
	if err := c.Container.GetLocationService().UpdateState(id, payload.Name); err != nil {
		handleServiceError(c.Context, err, "Estado no encontrado")
		return
	}
	response.SuccessWithMessage(c.Context, "Estado actualizado exitosamente", nil)
}

// 4. DeleteState removes a state
// @Summary Eliminar estado
// @Tags Locations
// @Produce json
// @Param id path int true "ID del estado"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/states/{id} [delete]
func (c *LocationController) DeleteState() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	if err := c.Container.GetLocationService().DeleteState(id); err != nil {
		handleServiceError(c.Context, err, "Estado no encontrado")
		return
	}
	response.SuccessWithMessage(c.Context, "Estado eliminado exitosamente", nil)
}

// 5. GetMunicipalities lists the municipalities of one state. The
// state_id filter is mandatory; an unscoped listing is not offered.
// @Summary Listar municipios por estado
// @Tags Locations
// @Produce json
// @Param state_id query int true "ID del estado"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/properties/catalogs/municipalities [get]
func (c *LocationController) GetMunicipalities() {
	stateID, err := strconv.ParseUint(c.Context.Query("state_id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrLocationFilterRequired, "Se requiere el parámetro state_id")
		return
	}
	municipalities, err := c.Container.GetLocationService().GetMunicipalitiesByState(uint(stateID))
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, municipalities)
}

// 6. CreateMunicipality inserts a municipality under a state
// @Summary Crear municipio
// @Tags Locations
// @Accept json
// @Produce json
// @Param municipality body locationPayload true "Nombre y state_id"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/municipalities [post]
func (c *LocationController) CreateMunicipality() {
	var payload locationPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" || payload.StateID == 0 {
		response.FailWithMessage(c.Context, code.ErrLocationNameRequired, "El nombre y state_id son obligatorios")
		return
	}
	id, err := c.Container.GetLocationService().CreateMunicipality(strings.TrimSpace(payload.Name), payload.StateID)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Created(c.Context, "Municipio creado exitosamente", gin.H{"id": id})
}

// 7. UpdateMunicipality renames or re-parents a municipality
// @Summary Actualizar municipio
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path int true "ID del municipio"
// @Param municipality body locationPayload true "Nombre y state_id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/municipalities/{id} [put]
func (c *LocationController) UpdateMunicipality() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	var payload locationPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" || payload.StateID == 0 {
		response.FailWithMessage(c.Context, code.ErrLocationNameRequired, "El nombre y state_id son obligatorios")
		return
	}
	if err := c.Container.GetLocationService().UpdateMunicipality(id, strings.TrimSpace(payload.Name), payload.StateID); err != nil {
		handleServiceError(c.Context, err, "Municipio no encontrado")
		return
	}
	response.SuccessWithMessage(c.Context, "Municipio actualizado exitosamente", nil)
}

// 8. DeleteMunicipality removes a municipality
// @Summary Eliminar municipio
// @Tags Locations
// @Produce json
// @Param id path int true "ID del municipio"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/municipalities/{id} [delete]
func (c *LocationController) DeleteMunicipality() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	if err := c.Container.GetLocationService().DeleteMunicipality(id); err != nil {
		handleServiceError(c.Context, err, "Municipio no encontrado")
		return
	}
	response.SuccessWithMessage(c.Context, "Municipio eliminado exitosamente", nil)
}

// 9. GetColonies lists the colonies of one municipality
// @Summary Listar colonias por municipio
// @Tags Locations
// @Produce json
// @Param municipality_id query int true "ID del municipio"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/properties/catalogs/colonies [get]
func (c *LocationController) GetColonies() {
	municipalityID, err := strconv.ParseUint(c.Context.Query("municipality_id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrLocationFilterRequired, "Se requiere el parámetro municipality_id")
		return
	}
	colonies, err := c.Container.GetLocationService().GetColoniesByMunicipality(uint(municipalityID))
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, colonies)
}

// 10. CreateColony inserts a colony under a municipality
// @Summary Crear colonia
// @Tags Locations
// @Accept json
// @Produce json
// @Param colony body locationPayload true "Nombre y municipality_id"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/colonies [post]
func (c *LocationController) CreateColony() {
	var payload locationPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" || payload.MunicipalityID == 0 {
		response.FailWithMessage(c.Context, code.ErrLocationNameRequired, "El nombre y municipality_id son obligatorios")
		return
	}
	id, err := c.Container.GetLocationService().CreateColony(strings.TrimSpace(payload.Name), payload.MunicipalityID)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Created(c.Context, "Colonia creada exitosamente", gin.H{"id": id})
}

// 11. UpdateColony renames or re-parents a colony
// @Summary Actualizar colonia
// @Tags Locations
// @Accept json
// @Produce json
// @Param id path int true "ID de la colonia"
// @Param colony body locationPayload true "Nombre y municipality_id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/colonies/{id} [put]
func (c *LocationController) UpdateColony() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	var payload locationPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" || payload.MunicipalityID == 0 {
		response.FailWithMessage(c.Context, code.ErrLocationNameRequired, "El nombre y municipality_id son obligatorios")
		return
	}
	if err := c.Container.GetLocationService().UpdateColony(id, strings.TrimSpace(payload.Name), payload.MunicipalityID); err != nil {
		handleServiceError(c.Context, err, "Colonia no encontrada")
		return
	}
	response.SuccessWithMessage(c.Context, "Colonia actualizada exitosamente", nil)
}

// 12. DeleteColony removes a colony
// @Summary Eliminar colonia
// @Tags Locations
// @Produce json
// @Param id path int true "ID de la colonia"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/colonies/{id} [delete]
func (c *LocationController) DeleteColony() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	if err := c.Container.GetLocationService().DeleteColony(id); err != nil {
		handleServiceError(c.Context, err, "Colonia no encontrada")
		return
	}
	response.SuccessWithMessage(c.Context, "Colonia eliminada exitosamente", nil)
}

func (c *LocationController) paramID() (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrValidation, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

func (c *LocationController) bindName(message string) (*locationPayload, bool) {
	var payload locationPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Name) == "" {
		response.FailWithMessage(c.Context, code.ErrLocationNameRequired, message)
		return nil, false
	}
	payload.Name = strings.TrimSpace(payload.Name)
	return &payload, true
}
