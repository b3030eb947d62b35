package api

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the thumbnail API on r.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.Use(requestID(h.logger))
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.POST("/thumbnail", h.thumbnail)
	}
}
