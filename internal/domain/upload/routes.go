package upload

import "github.com/gin-gonic/gin"

// RegisterRoutes registers upload routes under the /api group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	r.POST("/upload-image", h.Upload)
	r.GET("/uploads/:id", h.GetByID)
}
