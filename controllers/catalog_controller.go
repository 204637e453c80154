package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// CatalogController handles the reference catalog endpoints. One
// controller serves property types, sale types and legal statuses; the
// route wires in the table name.
type CatalogController struct {
	BaseControllerImpl
	Table string
}

// NewCatalogController creates a catalog controller bound to one table
func NewCatalogController(ctx *gin.Context, container *container.ServiceContainer, table string) *CatalogController {
	return &CatalogController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
		Table: table,
	}
}

// HandleCatalogFunc returns a gin handler for the given catalog table and method
func HandleCatalogFunc(container *container.ServiceContainer, table, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCatalogController(ctx, container, table)
		switch method {
		case "list":
			controller.List()
		case "get":
			controller.GetByID()
		case "create":
			controller.Create()
		case "update":
			controller.Update()
		case "delete":
			controller.Delete()
		default:
			response.ServerError(ctx)
		}
	}
}

type catalogPayload struct {
	Descripcion string `json:"descripcion"`
}

// 1. List returns every row of the catalog
// @Summary Listar catálogo
// @Description Devuelve todos los registros del catálogo
// @Tags Catalogs
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/properties/catalogs/property-types [get]
func (c *CatalogController) List() {
	rows, err := c.Container.GetCatalogService().List(c.Table)
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Success(c.Context, rows)
}

// 2. GetByID returns one catalog row
// @Summary Obtener registro de catálogo
// @Tags Catalogs
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/properties/catalogs/property-types/{id} [get]
func (c *CatalogController) GetByID() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	row, err := c.Container.GetCatalogService().GetByID(c.Table, id)
	if err != nil {
		handleServiceError(c.Context, err, c.notFoundMessage())
		return
	}
	response.Success(c.Context, row)
}

// 3. Create inserts a catalog row
// @Summary Crear registro de catálogo
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param catalog body catalogPayload true "Descripción"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/property-types [post]
func (c *CatalogController) Create() {
	var payload catalogPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Descripcion) == "" {
		response.Fail(c.Context, code.ErrCatalogDescriptionRequired)
		return
	}

	id, err := c.Container.GetCatalogService().Create(c.Table, strings.TrimSpace(payload.Descripcion))
	if err != nil {
		handleServiceError(c.Context, err, "")
		return
	}
	response.Created(c.Context, c.label()+" creado exitosamente", gin.H{"id": id})
}

// 4. Update changes the description of a catalog row
// @Summary Actualizar registro de catálogo
// @Tags Catalogs
// @Accept json
// @Produce json
// @Param id path int true "ID del registro"
// @Param catalog body catalogPayload true "Descripción"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/property-types/{id} [put]
func (c *CatalogController) Update() {
	id, ok := c.paramID()
	if !ok {
		return
	}

	var payload catalogPayload
	if err := c.Context.ShouldBindJSON(&payload); err != nil || strings.TrimSpace(payload.Descripcion) == "" {
		response.Fail(c.Context, code.ErrCatalogDescriptionRequired)
		return
	}

	if err := c.Container.GetCatalogService().Update(c.Table, id, strings.TrimSpace(payload.Descripcion)); err != nil {
		handleServiceError(c.Context, err, c.notFoundMessage())
		return
	}
	response.SuccessWithMessage(c.Context, c.label()+" actualizado exitosamente", nil)
}

// 5. Delete removes a catalog row
// @Summary Eliminar registro de catálogo
// @Tags Catalogs
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /api/properties/catalogs/property-types/{id} [delete]
func (c *CatalogController) Delete() {
	id, ok := c.paramID()
	if !ok {
		return
	}
	if err := c.Container.GetCatalogService().Delete(c.Table, id); err != nil {
		handleServiceError(c.Context, err, c.notFoundMessage())
		return
	}
	response.SuccessWithMessage(c.Context, c.label()+" eliminado exitosamente", nil)
}

func (c *CatalogController) paramID() (uint, bool) {
	id, err := strconv.ParseUint(c.Context.Param("id"), 10, 32)
	if err != nil {
		response.FailWithMessage(c.Context, code.ErrValidation, "ID inválido")
		return 0, false
	}
	return uint(id), true
}

// label capitalizes the catalog's Spanish label for messages
func (c *CatalogController) label() string {
	label := c.Container.GetCatalogService().Label(c.Table)
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + label[1:]
}

func (c *CatalogController) notFoundMessage() string {
	return c.label() + " no encontrado"
}
