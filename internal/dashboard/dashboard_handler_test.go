package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jamesakeluru/IHRIS/internal/dashboard"
)

type fakeService struct {
	stats dashboard.Stats
	err   error
}

func (f *fakeService) GetStats(context.Context) (dashboard.Stats, error) {
	return f.stats, f.err
}

func setupRouter(svc dashboard.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	dashboard.RegisterRoutes(r, dashboard.NewHandler(svc))
	return r
}

func TestDashboardHandler_Page(t *testing.T) {
	t.Run("renders counts", func(t *testing.T) {
		r := setupRouter(&fakeService{stats: dashboard.Stats{TotalEmployees: 12, PendingLeaves: 3}})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "12")
		assert.Contains(t, body, "3")
	})

	t.Run("stats failure renders error banner", func(t *testing.T) {
		r := setupRouter(&fakeService{err: errors.New("redis down")})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "redis down")
	})
}
