package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Global-Manu-Man/cnk-ceneka/config"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/code"
	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// BaseController is the interface shared by every controller
type BaseController interface {
	GetContainer() *container.ServiceContainer
	GetContext() *gin.Context
}

// BaseControllerImpl is the common controller implementation
type BaseControllerImpl struct {
	Container *container.ServiceContainer
	Context   *gin.Context
}

// GetContainer implements BaseController
func (c *BaseControllerImpl) GetContainer() *container.ServiceContainer {
	return c.Container
}

// GetContext implements BaseController
func (c *BaseControllerImpl) GetContext() *gin.Context {
	return c.Context
}

// ControllerFactory builds controllers bound to one request
type ControllerFactory struct {
	Container *container.ServiceContainer
}

// NewControllerFactory creates a new controller factory
func NewControllerFactory(container *container.ServiceContainer) *ControllerFactory {
	return &ControllerFactory{
		Container: container,
	}
}

// handleServiceError normalizes service failures into the envelope.
// Validation problems answer 400 listing every field, missing rows answer
// 404 with the caller's message, and anything else is logged and answered
// with a generic 500. Internal detail never reaches the response.
func handleServiceError(ctx *gin.Context, err error, notFoundMessage string) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.FailWithMessage(ctx, code.ErrValidation, validationErr.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFound(ctx, notFoundMessage)
	default:
		config.Error("unexpected error: %v", err)
		response.ServerError(ctx)
	}
}
