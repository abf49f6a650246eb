package http

import (
	"github.com/gin-gonic/gin"

	"hardware-inventory/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Reads are public; every mutation goes through the admin password gate.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	types := rg.Group("/hardware_types")
	{
		types.GET("", h.List)
		types.POST("", mw.AdminAuth(), h.Create)
		types.GET("/:id", h.Detail)
		types.PUT("/:id", mw.AdminAuth(), h.Update)
		types.DELETE("/:id", mw.AdminAuth(), h.Delete)
	}
}
