package leave

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
	"github.com/Jamesakeluru/IHRIS/internal/shared/response"
)

const pageTemplate = "leave.html"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) pageData(c *gin.Context) gin.H {
	ctx := c.Request.Context()
	requests, err := h.service.GetAll(ctx)
	if err != nil {
		h.logger.Error("load leave requests failed", zap.Error(err))
	}
	options, err := h.service.GetEmployeeOptions(ctx)
	if err != nil {
		h.logger.Error("load employee options failed", zap.Error(err))
	}
	return gin.H{
		"Title":     "Leave Requests",
		"Requests":  requests,
		"Employees": options,
	}
}

// Page renders the leave listing with the apply and decide forms.
func (h *Handler) Page(c *gin.Context) {
	response.Render(c, http.StatusOK, pageTemplate, h.pageData(c))
}

// Submit dispatches the POST to either the apply flow or the decide flow.
// The two forms share the route; a posted leave_id marks a decision.
func (h *Handler) Submit(c *gin.Context) {
	if _, decided := c.GetPostForm("leave_id"); decided {
		h.decide(c)
		return
	}
	h.apply(c)
}

func (h *Handler) apply(c *gin.Context) {
	var form ApplyLeaveForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("apply leave validation failed", zap.Error(err))
		response.RenderError(c, pageTemplate, h.pageData(c),
			apperror.MapValidationError(err), response.PostedValues(c))
		return
	}

	if _, err := h.service.Apply(c.Request.Context(), form); err != nil {
		h.writeServiceError(c, "apply leave failed", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/leave")
}

func (h *Handler) decide(c *gin.Context) {
	var form DecideLeaveForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("decide leave validation failed", zap.Error(err))
		response.RenderError(c, pageTemplate, h.pageData(c),
			apperror.MapValidationError(err), response.PostedValues(c))
		return
	}

	if _, err := h.service.Decide(c.Request.Context(), form); err != nil {
		h.writeServiceError(c, "decide leave failed", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/leave")
}

func (h *Handler) writeServiceError(c *gin.Context, msg string, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn(msg,
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.RenderError(c, pageTemplate, h.pageData(c), err, response.PostedValues(c))
}
