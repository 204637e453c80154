package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// MediaController handles property image hosting endpoints
type MediaController struct {
	BaseControllerImpl
}

// NewMediaController creates a new media controller
func NewMediaController(ctx *gin.Context, container *container.ServiceContainer) *MediaController {
	return &MediaController{
		BaseControllerImpl: BaseControllerImpl{
			Container: container,
			Context:   ctx,
		},
	}
}

// HandleMediaFunc returns a gin handler for the given media method
func HandleMediaFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMediaController(ctx, container)
		switch method {
		case "uploadImage":
			controller.UploadImage()
		case "listImages":
			controller.ListImages()
		default:
			response.ServerError(ctx)
		}
	}
}

// 1. UploadImage stores a property image on object storage and returns
// its public URL
// @Summary Subir imagen
// @Description Sube una imagen de propiedad al almacenamiento de objetos
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Archivo de imagen (jpg, jpeg, png, webp)"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /api/media/upload [post]
func (c *MediaController) UploadImage() {
	mediaService := c.Container.GetMediaService()
	if !mediaService.IsConfigured() {
		response.FailWithMessage(c.Context, code.ErrMediaUploadFailed, "El almacenamiento de imágenes no está configurado")
		return
	}

	file, err := c.Context.FormFile("image")
	if err != nil {
		response.Fail(c.Context, code.ErrMediaFileRequired)
		return
	}

	result, err := mediaService.UploadImage(c.Context.Request.Context(), file)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImageFormat) {
			response.FailWithMessage(c.Context, code.ErrValidation, err.Error())
			return
		}
		config.Error("image upload failed: %v", err)
		response.Fail(c.Context, code.ErrMediaUploadFailed)
		return
	}
	response.Created(c.Context, "Imagen subida exitosamente", result)
}

// 2. ListImages lists hosted property images
// @Summary Listar imágenes
// @Tags Media
// @Produce json
// @Param max_results query int false "Máximo de resultados" default(100)
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /api/media/images [get]
func (c *MediaController) ListImages() {
	mediaService := c.Container.GetMediaService()
	if !mediaService.IsConfigured() {
		response.FailWithMessage(c.Context, code.ErrMediaUploadFailed, "El almacenamiento de imágenes no está configurado")
		return
	}

	maxResults, err := strconv.Atoi(c.Context.DefaultQuery("max_results", "100"))
	if err != nil || maxResults < 1 || maxResults > 1000 {
		maxResults = 100
	}

	images, err := mediaService.ListImages(c.Context.Request.Context(), int32(maxResults))
	if err != nil {
		config.Error("image listing failed: %v", err)
		response.Fail(c.Context, code.ErrMediaUploadFailed)
		return
	}
	response.Success(c.Context, images)
}
