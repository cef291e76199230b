package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	attendanceerrors "github.com/Jamesakeluru/IHRIS/internal/attendance/errors"
	"github.com/Jamesakeluru/IHRIS/internal/shared/contextutil"
)

const recentHistoryLimit = 10

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Log(ctx context.Context, form LogAttendanceForm) (AttendanceResponse, error)
	GetAll(ctx context.Context) ([]AttendanceResponse, error)
	GetRecentByEmployee(ctx context.Context, employeeID uint) ([]AttendanceResponse, error)
	GetEmployeeOptions(ctx context.Context) ([]EmployeeOption, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Log(ctx context.Context, form LogAttendanceForm) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("log attendance requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", form.EmployeeID),
		zap.String("date", form.Date),
	)

	date, err := time.Parse("2006-01-02", form.Date)
	if err != nil {
		s.logger.Warn("log attendance invalid date", zap.String("date", form.Date), zap.Error(err))
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}

	checkIn, err := parseClock(date, form.CheckIn)
	if err != nil {
		s.logger.Warn("log attendance invalid check_in", zap.String("check_in", form.CheckIn))
		return AttendanceResponse{}, err
	}
	checkOut, err := parseClock(date, form.CheckOut)
	if err != nil {
		s.logger.Warn("log attendance invalid check_out", zap.String("check_out", form.CheckOut))
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("log attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Attendance{
		EmployeeID:  form.EmployeeID,
		Date:        date,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		HoursWorked: ComputeHours(checkIn, checkOut),
		LoggedBy:    form.LoggedBy,
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("log attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("log attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("log attendance success",
		zap.String("request_id", rid),
		zap.Uint("attendance_id", row.ID),
		zap.Uint("employee_id", row.EmployeeID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all attendances failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetRecentByEmployee(ctx context.Context, employeeID uint) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindRecentByEmployee(ctx, employeeID, recentHistoryLimit)
	if err != nil {
		s.logger.Error("get recent attendances failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetEmployeeOptions(ctx context.Context) ([]EmployeeOption, error) {
	refs, err := s.repo.FindEmployeeOptions(ctx)
	if err != nil {
		s.logger.Error("get employee options failed", zap.Error(err))
		return nil, err
	}
	opts := make([]EmployeeOption, len(refs))
	for i, ref := range refs {
		opts[i] = EmployeeOption{ID: ref.ID, Code: ref.Code, Name: ref.FullName()}
	}
	return opts, nil
}

// parseClock turns an optional HH:MM form value into an instant on date.
func parseClock(date time.Time, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	clock, err := time.Parse("15:04", v)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidTimeFormat
	}
	t := CombineDateTime(date, clock)
	return &t, nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		LoggedBy:   a.LoggedBy,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName()
	}
	if a.CheckIn != nil {
		resp.CheckIn = a.CheckIn.Format("15:04")
	}
	if a.CheckOut != nil {
		resp.CheckOut = a.CheckOut.Format("15:04")
	}
	if a.HoursWorked != nil {
		resp.HoursWorked = fmt.Sprintf("%.2f", *a.HoursWorked)
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
