package http

import "github.com/gin-gonic/gin"

// RegisterRoutes serves locally stored images from root under publicPrefix.
func RegisterRoutes(r gin.IRoutes, publicPrefix, root string) {
	r.Static(publicPrefix, root)
}
