package attendance_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Jamesakeluru/IHRIS/internal/attendance"
	attendanceerrors "github.com/Jamesakeluru/IHRIS/internal/attendance/errors"
	attendanceMock "github.com/Jamesakeluru/IHRIS/internal/attendance/mock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *attendanceMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := attendanceMock.NewMockRepository(ctrl)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: attendance.NewService(db, repo),
		repo:    repo,
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

func TestAttendanceService_Log(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("full shift computes hours", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.Equal(t, uint(1), a.EmployeeID)
				assert.Equal(t, "2024-03-01", a.Date.Format("2006-01-02"))
				if assert.NotNil(t, a.HoursWorked) {
					assert.Equal(t, 8.5, *a.HoursWorked)
				}
				a.ID = 10
				return nil
			})

		resp, err := deps.service.Log(ctx, attendance.LogAttendanceForm{
			EmployeeID: 1,
			Date:       "2024-03-01",
			CheckIn:    "09:00",
			CheckOut:   "17:30",
			LoggedBy:   "supervisor",
		})
		assert.NoError(t, err)
		assert.Equal(t, "09:00", resp.CheckIn)
		assert.Equal(t, "17:30", resp.CheckOut)
		assert.Equal(t, "8.50", resp.HoursWorked)
	})

	t.Run("check-in only leaves hours empty", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.NotNil(t, a.CheckIn)
				assert.Nil(t, a.CheckOut)
				assert.Nil(t, a.HoursWorked)
				return nil
			})

		resp, err := deps.service.Log(ctx, attendance.LogAttendanceForm{
			EmployeeID: 1,
			Date:       "2024-03-01",
			CheckIn:    "09:00",
		})
		assert.NoError(t, err)
		assert.Empty(t, resp.CheckOut)
		assert.Empty(t, resp.HoursWorked)
	})

	t.Run("overnight pair stores nil hours", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *attendance.Attendance) error {
				assert.Nil(t, a.HoursWorked)
				return nil
			})

		resp, err := deps.service.Log(ctx, attendance.LogAttendanceForm{
			EmployeeID: 1,
			Date:       "2024-03-01",
			CheckIn:    "22:00",
			CheckOut:   "06:00",
		})
		assert.NoError(t, err)
		assert.Empty(t, resp.HoursWorked)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := deps.service.Log(ctx, attendance.LogAttendanceForm{
			EmployeeID: 1,
			Date:       "01/03/2024",
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDateFormat)
	})

	t.Run("invalid check-in time", func(t *testing.T) {
		_, err := deps.service.Log(ctx, attendance.LogAttendanceForm{
			EmployeeID: 1,
			Date:       "2024-03-01",
			CheckIn:    "9am",
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimeFormat)
	})

	t.Run("unknown employee maps foreign key violation", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23503"})

		_, err := deps.service.Log(ctx, attendance.LogAttendanceForm{
			EmployeeID: 999,
			Date:       "2024-03-01",
			CheckIn:    "09:00",
		})
		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})
}

func TestAttendanceService_GetRecentByEmployee(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("maps rows with employee names", func(t *testing.T) {
		rows := []attendance.Attendance{
			{
				ID:         1,
				EmployeeID: 2,
				Date:       mustDate(t, "2024-03-02"),
				Employee:   &attendance.EmployeeRef{ID: 2, Code: "EMP002", FirstName: "Musa", LastName: "Bello"},
			},
			{
				ID:         2,
				EmployeeID: 2,
				Date:       mustDate(t, "2024-03-01"),
				Employee:   &attendance.EmployeeRef{ID: 2, Code: "EMP002", FirstName: "Musa", LastName: "Bello"},
			},
		}
		deps.repo.EXPECT().
			FindRecentByEmployee(ctx, uint(2), 10).
			Return(rows, nil)

		resp, err := deps.service.GetRecentByEmployee(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Musa Bello", resp[0].EmployeeName)
		assert.Equal(t, "2024-03-02", resp[0].Date)
	})

	t.Run("repo failure", func(t *testing.T) {
		deps.repo.EXPECT().
			FindRecentByEmployee(ctx, uint(2), 10).
			Return(nil, errors.New("db down"))

		_, err := deps.service.GetRecentByEmployee(ctx, 2)
		assert.Error(t, err)
	})
}

func TestAttendanceService_GetEmployeeOptions(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	deps.repo.EXPECT().
		FindEmployeeOptions(ctx).
		Return([]attendance.EmployeeRef{
			{ID: 1, Code: "EMP001", FirstName: "Grace", LastName: "Okafor"},
		}, nil)

	opts, err := deps.service.GetEmployeeOptions(ctx)
	assert.NoError(t, err)
	assert.Len(t, opts, 1)
	assert.Equal(t, "Grace Okafor", opts[0].Name)
	assert.Equal(t, "EMP001", opts[0].Code)
}

func mustDate(t *testing.T, v string) (d time.Time) {
	t.Helper()
	d, err := time.Parse("2006-01-02", v)
	assert.NoError(t, err)
	return d
}
