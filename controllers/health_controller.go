package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Global-Manu-Man/cnk-ceneka/internal/error/response"
	"github.com/Global-Manu-Man/cnk-ceneka/services/container"
)

// HealthController answers liveness probes
type HealthController struct {
	BaseControllerImpl
}

// HandleHealthFunc returns the ping handler
func HandleHealthFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &HealthController{
			BaseControllerImpl: BaseControllerImpl{
				Container: container,
				Context:   ctx,
			},
		}
		controller.Ping()
	}
}

// Ping reports service liveness and cache reachability
// @Summary Ping
// @Description Comprobación de vida del servicio
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/ping [get]
func (c *HealthController) Ping() {
	response.SuccessWithMessage(c.Context, "pong", gin.H{
		"redis": c.Container.GetRedisService().Available(),
	})
}
