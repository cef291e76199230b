package employee

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Jamesakeluru/IHRIS/internal/attendance"
	employeeerrors "github.com/Jamesakeluru/IHRIS/internal/employee/errors"
	"github.com/Jamesakeluru/IHRIS/internal/inventory"
	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
	"github.com/Jamesakeluru/IHRIS/internal/shared/response"
)

const (
	listTemplate     = "employees.html"
	detailTemplate   = "employee_detail.html"
	notFoundTemplate = "not_found.html"
)

type Handler struct {
	service    Service
	attendance attendance.Service
	inventory  inventory.Service
	logger     *zap.Logger
}

func NewHandler(
	service Service,
	attendanceService attendance.Service,
	inventoryService inventory.Service,
	logger ...*zap.Logger,
) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{
		service:    service,
		attendance: attendanceService,
		inventory:  inventoryService,
		logger:     l,
	}
}

func (h *Handler) pageData(c *gin.Context) gin.H {
	employees, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("load employees failed", zap.Error(err))
	}
	return gin.H{
		"Title":     "Employees",
		"Employees": employees,
	}
}

// List renders the employee roster with the registration form.
func (h *Handler) List(c *gin.Context) {
	response.Render(c, http.StatusOK, listTemplate, h.pageData(c))
}

// Create handles the registration POST and redirects back to the roster.
func (h *Handler) Create(c *gin.Context) {
	var form CreateEmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("create employee validation failed", zap.Error(err))
		response.RenderError(c, listTemplate, h.pageData(c),
			apperror.MapValidationError(err), response.PostedValues(c))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), form); err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("create employee failed",
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
			zap.String("message", httpErr.Message),
		)
		response.RenderError(c, listTemplate, h.pageData(c), err, response.PostedValues(c))
		return
	}

	c.Redirect(http.StatusSeeOther, "/employees")
}

// Detail renders one employee plus their assigned items and the most
// recent attendance history.
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.logger.Warn("employee detail invalid id", zap.String("id", c.Param("id")))
		response.RenderError(c, notFoundTemplate, gin.H{"Title": "Not Found"},
			employeeerrors.ErrInvalidEmployeeID, nil)
		return
	}
	employeeID := uint(id)

	empl, err := h.service.GetByID(ctx, employeeID)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("employee detail failed",
			zap.Uint("employee_id", employeeID),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.RenderError(c, notFoundTemplate, gin.H{"Title": "Not Found"}, err, nil)
		return
	}

	items, err := h.inventory.GetByAssignee(ctx, employeeID)
	if err != nil {
		h.logger.Error("load assigned items failed", zap.Uint("employee_id", employeeID), zap.Error(err))
	}
	history, err := h.attendance.GetRecentByEmployee(ctx, employeeID)
	if err != nil {
		h.logger.Error("load attendance history failed", zap.Uint("employee_id", employeeID), zap.Error(err))
	}

	response.Render(c, http.StatusOK, detailTemplate, gin.H{
		"Title":      empl.FullName,
		"Employee":   empl,
		"Items":      items,
		"Attendance": history,
	})
}
