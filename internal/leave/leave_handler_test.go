package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jamesakeluru/IHRIS/internal/leave"
	leaveerrors "github.com/Jamesakeluru/IHRIS/internal/leave/errors"
	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
)

type fakeService struct {
	applyFn  func(ctx context.Context, form leave.ApplyLeaveForm) (leave.LeaveResponse, error)
	decideFn func(ctx context.Context, form leave.DecideLeaveForm) (leave.LeaveResponse, error)
	requests []leave.LeaveResponse
}

func (f *fakeService) Apply(ctx context.Context, form leave.ApplyLeaveForm) (leave.LeaveResponse, error) {
	if f.applyFn == nil {
		return leave.LeaveResponse{}, nil
	}
	return f.applyFn(ctx, form)
}

func (f *fakeService) Decide(ctx context.Context, form leave.DecideLeaveForm) (leave.LeaveResponse, error) {
	if f.decideFn == nil {
		return leave.LeaveResponse{}, nil
	}
	return f.decideFn(ctx, form)
}

func (f *fakeService) GetAll(context.Context) ([]leave.LeaveResponse, error) {
	return f.requests, nil
}

func (f *fakeService) GetEmployeeOptions(context.Context) ([]leave.EmployeeOption, error) {
	return nil, nil
}

func setupRouter(svc leave.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	leave.RegisterRoutes(r, leave.NewHandler(svc))
	return r
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/leave", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLeaveHandler_Page(t *testing.T) {
	svc := &fakeService{
		requests: []leave.LeaveResponse{
			{ID: 1, EmployeeName: "Grace Okafor", LeaveType: "Annual", StartDate: "2024-04-01", EndDate: "2024-04-05", Status: "Pending"},
		},
	}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/leave", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Grace Okafor")
	assert.Contains(t, body, "Pending")
}

func TestLeaveHandler_Submit(t *testing.T) {
	t.Run("apply form routes to Apply", func(t *testing.T) {
		var got leave.ApplyLeaveForm
		svc := &fakeService{
			applyFn: func(ctx context.Context, form leave.ApplyLeaveForm) (leave.LeaveResponse, error) {
				got = form
				return leave.LeaveResponse{ID: 1}, nil
			},
			decideFn: func(ctx context.Context, form leave.DecideLeaveForm) (leave.LeaveResponse, error) {
				t.Fatal("decide must not be called for an apply form")
				return leave.LeaveResponse{}, nil
			},
		}
		r := setupRouter(svc)

		w := postForm(r, url.Values{
			"employee_id": {"2"},
			"leave_type":  {"Annual"},
			"start_date":  {"2024-04-01"},
			"end_date":    {"2024-04-05"},
			"reason":      {"family visit"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/leave", w.Header().Get("Location"))
		assert.Equal(t, uint(2), got.EmployeeID)
		assert.Equal(t, "Annual", got.LeaveType)
	})

	t.Run("decision form routes to Decide", func(t *testing.T) {
		var got leave.DecideLeaveForm
		svc := &fakeService{
			applyFn: func(ctx context.Context, form leave.ApplyLeaveForm) (leave.LeaveResponse, error) {
				t.Fatal("apply must not be called for a decision form")
				return leave.LeaveResponse{}, nil
			},
			decideFn: func(ctx context.Context, form leave.DecideLeaveForm) (leave.LeaveResponse, error) {
				got = form
				return leave.LeaveResponse{ID: 4, Status: "Approved"}, nil
			},
		}
		r := setupRouter(svc)

		w := postForm(r, url.Values{
			"leave_id": {"4"},
			"status":   {"Approved"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/leave", w.Header().Get("Location"))
		assert.Equal(t, uint(4), got.LeaveID)
		assert.Equal(t, "Approved", got.Status)
	})

	t.Run("invalid leave type re-renders", func(t *testing.T) {
		r := setupRouter(&fakeService{})

		w := postForm(r, url.Values{
			"employee_id": {"2"},
			"leave_type":  {"Sabbatical"},
			"start_date":  {"2024-04-01"},
			"end_date":    {"2024-04-05"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("already decided re-renders with message", func(t *testing.T) {
		svc := &fakeService{
			decideFn: func(ctx context.Context, form leave.DecideLeaveForm) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrAlreadyDecided
			},
		}
		r := setupRouter(svc)

		w := postForm(r, url.Values{
			"leave_id": {"4"},
			"status":   {"Rejected"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), leaveerrors.ErrAlreadyDecided.Message)
	})
}
