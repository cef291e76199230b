package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/Jamesakeluru/IHRIS/internal/employee"
	employeeerrors "github.com/Jamesakeluru/IHRIS/internal/employee/errors"
	employeeMock "github.com/Jamesakeluru/IHRIS/internal/employee/mock"
	counterMock "github.com/Jamesakeluru/IHRIS/internal/shared/counter/mock"
)

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(context.Context) {
	f.calls++
}

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *employeeMock.MockRepository
	counter *counterMock.MockRepository
	cache   *fakeInvalidator
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	cache := &fakeInvalidator{}

	svc := employee.NewService(db, repo, counterRepo, cache)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
		cache:   cache,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success - generates padded code from counter", func(t *testing.T) {
		form := employee.CreateEmployeeForm{
			FirstName:  "Grace",
			LastName:   "Okafor",
			Department: "Operations",
			Position:   "Guard",
			HireDate:   "2024-03-01",
			Contact:    "0803" + "1234567",
			Status:     "Active",
		}

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.counter.EXPECT().
			GetNextValue(ctx, employee.CodeCounterType).
			Return(int64(7), nil)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP007", e.Code)
				assert.Equal(t, form.FirstName, e.FirstName)
				assert.Equal(t, form.LastName, e.LastName)
				assert.Equal(t, "Active", e.Status)
				assert.NotNil(t, e.HireDate)
				assert.Equal(t, "2024-03-01", e.HireDate.Format("2006-01-02"))
				e.ID = 1
				return nil
			})

		resp, err := deps.service.Create(ctx, form)
		assert.NoError(t, err)
		assert.Equal(t, "EMP007", resp.Code)
		assert.Equal(t, "Grace Okafor", resp.FullName)
		assert.Equal(t, 1, deps.cache.calls, "dashboard cache must be dropped after a create")
	})

	t.Run("sequence of creations yields sequential padded codes", func(t *testing.T) {
		for n := int64(1); n <= 3; n++ {
			expectTx(t, deps.sqlMock, true)

			deps.repo.EXPECT().
				WithTx(gomock.Any()).
				Return(deps.repo)
			deps.counter.EXPECT().
				GetNextValue(ctx, employee.CodeCounterType).
				Return(n, nil)
			deps.repo.EXPECT().
				Create(ctx, gomock.Any()).
				DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
					return nil
				})

			resp, err := deps.service.Create(ctx, employee.CreateEmployeeForm{
				FirstName: "Emp",
				LastName:  fmt.Sprintf("Number%d", n),
			})
			assert.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("EMP%03d", n), resp.Code)
		}
	})

	t.Run("defaults status to Active when omitted", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.counter.EXPECT().
			GetNextValue(ctx, employee.CodeCounterType).
			Return(int64(11), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.Nil(t, e.HireDate)
				return nil
			})

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeForm{
			FirstName: "No",
			LastName:  "Status",
		})
		assert.NoError(t, err)
		assert.Equal(t, employee.StatusActive, resp.Status)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		_, err := deps.service.Create(ctx, employee.CreateEmployeeForm{
			FirstName: "Bad",
			LastName:  "Date",
			HireDate:  "01-03-2024",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
	})

	t.Run("counter sequence exhausted", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.counter.EXPECT().
			GetNextValue(ctx, employee.CodeCounterType).
			Return(int64(1000), nil)

		_, err := deps.service.Create(ctx, employee.CreateEmployeeForm{
			FirstName: "Too",
			LastName:  "Many",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrCodeSequenceExhausted)
	})

	t.Run("duplicate code maps to conflict", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.counter.EXPECT().
			GetNextValue(ctx, employee.CodeCounterType).
			Return(int64(12), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"})

		before := deps.cache.calls
		_, err := deps.service.Create(ctx, employee.CreateEmployeeForm{
			FirstName: "Dup",
			LastName:  "Code",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeConflict)
		assert.Equal(t, before, deps.cache.calls, "a failed create must not touch the cache")
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAll(ctx).
			Return([]employee.Employee{
				{ID: 1, Code: "EMP001", FirstName: "Grace", LastName: "Okafor"},
				{ID: 2, Code: "EMP002", FirstName: "Musa", LastName: "Bello"},
			}, nil)

		resp, err := deps.service.GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "EMP001", resp[0].Code)
		assert.Equal(t, "Musa Bello", resp[1].FullName)
	})

	t.Run("repo failure", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAll(ctx).
			Return(nil, errors.New("db down"))

		_, err := deps.service.GetAll(ctx)
		assert.Error(t, err)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByID(ctx, uint(3)).
			Return(&employee.Employee{ID: 3, Code: "EMP003", FirstName: "Ada", LastName: "Eze"}, nil)

		resp, err := deps.service.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, uint(3), resp.ID)
		assert.Equal(t, "Ada Eze", resp.FullName)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByID(ctx, uint(99)).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, 99)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
