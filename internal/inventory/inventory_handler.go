package inventory

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
	"github.com/Jamesakeluru/IHRIS/internal/shared/response"
)

const pageTemplate = "inventory.html"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("inventory.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inventory.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) pageData(c *gin.Context) gin.H {
	ctx := c.Request.Context()
	items, err := h.service.GetAll(ctx)
	if err != nil {
		h.logger.Error("load inventory items failed", zap.Error(err))
	}
	options, err := h.service.GetEmployeeOptions(ctx)
	if err != nil {
		h.logger.Error("load employee options failed", zap.Error(err))
	}
	return gin.H{
		"Title":     "Inventory",
		"Items":     items,
		"Employees": options,
	}
}

// Page renders the inventory listing with the add and assign forms.
func (h *Handler) Page(c *gin.Context) {
	response.Render(c, http.StatusOK, pageTemplate, h.pageData(c))
}

// Submit dispatches the POST to either the add flow or the assign flow.
// The two forms share the route; a posted item_id marks an assignment.
func (h *Handler) Submit(c *gin.Context) {
	if _, assigning := c.GetPostForm("item_id"); assigning {
		h.assign(c)
		return
	}
	h.add(c)
}

func (h *Handler) add(c *gin.Context) {
	var form AddItemForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("add item validation failed", zap.Error(err))
		response.RenderError(c, pageTemplate, h.pageData(c),
			apperror.MapValidationError(err), response.PostedValues(c))
		return
	}

	if _, err := h.service.Add(c.Request.Context(), form); err != nil {
		h.writeServiceError(c, "add item failed", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/inventory")
}

func (h *Handler) assign(c *gin.Context) {
	var form AssignItemForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("assign item validation failed", zap.Error(err))
		response.RenderError(c, pageTemplate, h.pageData(c),
			apperror.MapValidationError(err), response.PostedValues(c))
		return
	}

	if _, err := h.service.Assign(c.Request.Context(), form); err != nil {
		h.writeServiceError(c, "assign item failed", err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/inventory")
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
