package inventory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Jamesakeluru/IHRIS/internal/inventory"
	inventoryerrors "github.com/Jamesakeluru/IHRIS/internal/inventory/errors"
	"github.com/Jamesakeluru/IHRIS/internal/shared/apperror"
)

type fakeService struct {
	addFn    func(ctx context.Context, form inventory.AddItemForm) (inventory.ItemResponse, error)
	assignFn func(ctx context.Context, form inventory.AssignItemForm) (inventory.ItemResponse, error)
	items    []inventory.ItemResponse
}

func (f *fakeService) Add(ctx context.Context, form inventory.AddItemForm) (inventory.ItemResponse, error) {
	if f.addFn == nil {
		return inventory.ItemResponse{}, nil
	}
	return f.addFn(ctx, form)
}

func (f *fakeService) Assign(ctx context.Context, form inventory.AssignItemForm) (inventory.ItemResponse, error) {
	if f.assignFn == nil {
		return inventory.ItemResponse{}, nil
	}
	return f.assignFn(ctx, form)
}

func (f *fakeService) GetAll(context.Context) ([]inventory.ItemResponse, error) {
	return f.items, nil
}

func (f *fakeService) GetByAssignee(context.Context, uint) ([]inventory.ItemResponse, error) {
	return nil, nil
}

func (f *fakeService) GetEmployeeOptions(context.Context) ([]inventory.EmployeeOption, error) {
	return nil, nil
}

func setupRouter(svc inventory.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	apperror.Init()

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	inventory.RegisterRoutes(r, inventory.NewHandler(svc))
	return r
}

func postForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/inventory", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInventoryHandler_Page(t *testing.T) {
	svc := &fakeService{
		items: []inventory.ItemResponse{
			{ID: 1, ItemName: "Radio Set", ItemType: "Radio", SerialNumber: "RADIO001", Condition: "New"},
		},
	}
	r := setupRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/inventory", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "RADIO001")
}

func TestInventoryHandler_Submit(t *testing.T) {
	t.Run("add form routes to Add", func(t *testing.T) {
		var got inventory.AddItemForm
		svc := &fakeService{
			addFn: func(ctx context.Context, form inventory.AddItemForm) (inventory.ItemResponse, error) {
				got = form
				return inventory.ItemResponse{ID: 1}, nil
			},
			assignFn: func(ctx context.Context, form inventory.AssignItemForm) (inventory.ItemResponse, error) {
				t.Fatal("assign must not be called for an add form")
				return inventory.ItemResponse{}, nil
			},
		}
		r := setupRouter(svc)

		w := postForm(r, url.Values{
			"item_name":     {"Radio Set"},
			"item_type":     {"Radio"},
			"serial_number": {"RADIO001"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/inventory", w.Header().Get("Location"))
		assert.Equal(t, "RADIO001", got.SerialNumber)
	})

	t.Run("assign form routes to Assign", func(t *testing.T) {
		var got inventory.AssignItemForm
		svc := &fakeService{
			addFn: func(ctx context.Context, form inventory.AddItemForm) (inventory.ItemResponse, error) {
				t.Fatal("add must not be called for an assign form")
				return inventory.ItemResponse{}, nil
			},
			assignFn: func(ctx context.Context, form inventory.AssignItemForm) (inventory.ItemResponse, error) {
				got = form
				return inventory.ItemResponse{ID: 7}, nil
			},
		}
		r := setupRouter(svc)

		w := postForm(r, url.Values{
			"item_id":       {"7"},
			"assigned_to":   {"3"},
			"date_assigned": {"2024-03-01"},
		})

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/inventory", w.Header().Get("Location"))
		assert.Equal(t, uint(7), got.ItemID)
		assert.Equal(t, uint(3), got.AssignedTo)
	})

	t.Run("missing serial number re-renders", func(t *testing.T) {
		r := setupRouter(&fakeService{})

		w := postForm(r, url.Values{
			"item_name": {"Radio Set"},
			"item_type": {"Radio"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Radio Set")
	})

	t.Run("duplicate serial re-renders with message", func(t *testing.T) {
		svc := &fakeService{
			addFn: func(ctx context.Context, form inventory.AddItemForm) (inventory.ItemResponse, error) {
				return inventory.ItemResponse{}, inventoryerrors.ErrSerialNumberTaken
			},
		}
		r := setupRouter(svc)

		w := postForm(r, url.Values{
			"item_name":     {"Radio Set"},
			"item_type":     {"Radio"},
			"serial_number": {"RADIO001"},
		})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), inventoryerrors.ErrSerialNumberTaken.Message)
	})
}
