package leave

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	leaveerrors "github.com/Jamesakeluru/IHRIS/internal/leave/errors"
	"github.com/Jamesakeluru/IHRIS/internal/shared/contextutil"
	"github.com/Jamesakeluru/IHRIS/internal/shared/statscache"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, form ApplyLeaveForm) (LeaveResponse, error)
	Decide(ctx context.Context, form DecideLeaveForm) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetEmployeeOptions(ctx context.Context) ([]EmployeeOption, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	cache  statscache.Invalidator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cache statscache.Invalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, cache: cache, logger: l}
}

func (s *service) Apply(ctx context.Context, form ApplyLeaveForm) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply leave requested",
		zap.String("request_id", rid),
		zap.Uint("employee_id", form.EmployeeID),
		zap.String("leave_type", form.LeaveType),
		zap.String("start_date", form.StartDate),
		zap.String("end_date", form.EndDate),
	)

	startDate, err := parseDate(form.StartDate)
	if err != nil {
		s.logger.Warn("apply leave invalid start_date", zap.String("start_date", form.StartDate))
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(form.EndDate)
	if err != nil {
		s.logger.Warn("apply leave invalid end_date", zap.String("end_date", form.EndDate))
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		s.logger.Warn("apply leave start after end",
			zap.String("start_date", form.StartDate),
			zap.String("end_date", form.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l := &LeaveRequest{
		EmployeeID: form.EmployeeID,
		LeaveType:  form.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     form.Reason,
		Status:     StatusPending,
		AppliedOn:  time.Now().UTC(),
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info("apply leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", l.ID),
		zap.Uint("employee_id", l.EmployeeID),
	)
	return mapToResponse(*l), nil
}

// Decide moves a pending request to Approved or Rejected. A request that
// has already left Pending cannot be re-decided.
func (s *service) Decide(ctx context.Context, form DecideLeaveForm) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide leave requested",
		zap.String("request_id", rid),
		zap.Uint("leave_id", form.LeaveID),
		zap.String("target_status", form.Status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, form.LeaveID)
	if err != nil {
		s.logger.Warn("decide leave fetch failed", zap.Uint("leave_id", form.LeaveID), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if l.Status != StatusPending {
		s.logger.Warn("decide leave already decided",
			zap.Uint("leave_id", form.LeaveID),
			zap.String("current_status", l.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if err := qtx.UpdateStatus(ctx, form.LeaveID, form.Status); err != nil {
		s.logger.Error("decide leave persist failed", zap.Uint("leave_id", form.LeaveID), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	l.Status = form.Status
	s.logger.Info("decide leave success",
		zap.String("request_id", rid),
		zap.Uint("leave_id", l.ID),
		zap.String("status", l.Status),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all leaves failed", zap.Error(err))
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

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveType:  l.LeaveType,
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Reason:     l.Reason,
		Status:     l.Status,
		AppliedOn:  l.AppliedOn.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.FullName()
	}
	return resp
}

func mapToListResponse(rows []LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
