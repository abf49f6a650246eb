package http

import (
	"github.com/gin-gonic/gin"

	"hardware-inventory/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Reads are public; every mutation goes through the admin password gate.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	hw := rg.Group("/hardware")
	{
		hw.GET("", h.Index)
		hw.POST("", mw.AdminAuth(), h.Create)
		hw.GET("/options", h.Options)
		hw.GET("/:id", h.Detail)
		hw.PUT("/:id", mw.AdminAuth(), h.Update)
		hw.DELETE("/:id", mw.AdminAuth(), h.Delete)
	}

	nested := rg.Group("/hardware_types/:id/hardware")
	{
		nested.GET("", h.ListByCategory)
		nested.POST("", mw.AdminAuth(), h.Create)
	}
}
