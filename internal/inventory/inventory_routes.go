package inventory

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/inventory", h.Page)
	r.POST("/inventory", h.Submit)
}
