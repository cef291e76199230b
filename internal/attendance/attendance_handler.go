package attendance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
	"github.com/Jamesakeluru/IHRIS/internal/shared/response"
)

const pageTemplate = "attendance.html"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) pageData(c *gin.Context) gin.H {
	ctx := c.Request.Context()
	records, err := h.service.GetAll(ctx)
	if err != nil {
		h.logger.Error("load attendance records failed", zap.Error(err))
	}
	options, err := h.service.GetEmployeeOptions(ctx)
	if err != nil {
		h.logger.Error("load employee options failed", zap.Error(err))
	}
	return gin.H{
		"Title":     "Attendance",
		"Records":   records,
		"Employees": options,
	}
}

// Page renders the attendance listing with the log form.
func (h *Handler) Page(c *gin.Context) {
	response.Render(c, http.StatusOK, pageTemplate, h.pageData(c))
}

// Log handles the POST of the attendance form and redirects back.
func (h *Handler) Log(c *gin.Context) {
	var form LogAttendanceForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("log attendance validation failed", zap.Error(err))
		response.RenderError(c, pageTemplate, h.pageData(c),
			apperror.MapValidationError(err), response.PostedValues(c))
		return
	}

	if _, err := h.service.Log(c.Request.Context(), form); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("log attendance failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		response.RenderError(c, pageTemplate, h.pageData(c), err, response.PostedValues(c))
		return
	}

	c.Redirect(http.StatusSeeOther, "/attendance")
}
