package attendance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/attendance", h.Page)
	r.POST("/attendance", h.Log)
}
