package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/leave", h.Page)
	r.POST("/leave", h.Submit)
}
