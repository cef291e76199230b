package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/employees", h.List)
	r.POST("/employees", h.Create)
	r.GET("/employees/:id", h.Detail)
}
