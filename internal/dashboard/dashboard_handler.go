package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jamesakeluru/IHRIS/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

// Page renders the dashboard counts.
func (h *Handler) Page(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		h.logger.Error("load dashboard stats failed", zap.Error(err))
		response.RenderError(c, "dashboard.html", gin.H{"Title": "Dashboard"}, err, nil)
		return
	}

	response.Render(c, http.StatusOK, "dashboard.html", gin.H{
		"Title": "Dashboard",
		"Stats": stats,
	})
}

func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.GET("/", h.Page)
}
