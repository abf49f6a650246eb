package http

import (
	"github.com/gin-gonic/gin"

	"hardware-inventory/internal/image"
)

func (h *handler) releaseImage(c *gin.Context, up *image.Upload) {
	if up != nil {
		h.img.Release(c.Request.Context(), *up)
	}
}
