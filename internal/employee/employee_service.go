package employee

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	employeeerrors "github.com/Jamesakeluru/IHRIS/internal/employee/errors"
	"github.com/Jamesakeluru/IHRIS/internal/shared/contextutil"
	"github.com/Jamesakeluru/IHRIS/internal/shared/counter"
	"github.com/Jamesakeluru/IHRIS/internal/shared/statscache"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, form CreateEmployeeForm) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint) (EmployeeResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	cache   statscache.Invalidator
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	cache statscache.Invalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		cache:   cache,
		logger:  l,
	}
}

func (s *service) Create(ctx context.Context, form CreateEmployeeForm) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("first_name", form.FirstName),
		zap.String("last_name", form.LastName),
	)

	var hireDate *time.Time
	if form.HireDate != "" {
		t, err := time.Parse("2006-01-02", form.HireDate)
		if err != nil {
			s.logger.Warn("create employee invalid hire_date",
				zap.String("hire_date", form.HireDate),
				zap.Error(err),
			)
			return EmployeeResponse{}, employeeerrors.ErrInvalidHireDate
		}
		hireDate = &t
	}

	status := form.Status
	if status == "" {
		status = StatusActive
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	nextVal, err := s.counter.GetNextValue(ctx, CodeCounterType)
	if err != nil {
		s.logger.Error("create employee generate code failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	code, err := FormatCode(nextVal)
	if err != nil {
		s.logger.Error("create employee code out of range",
			zap.Int64("sequence", nextVal),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		Code:       code,
		FirstName:  form.FirstName,
		LastName:   form.LastName,
		Department: form.Department,
		Position:   form.Position,
		HireDate:   hireDate,
		Contact:    form.Contact,
		Status:     status,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Uint("employee_id", empl.ID),
		zap.String("code", empl.Code),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Uint("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Uint("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         empl.ID,
		Code:       empl.Code,
		FirstName:  empl.FirstName,
		LastName:   empl.LastName,
		FullName:   empl.FirstName + " " + empl.LastName,
		Department: empl.Department,
		Position:   empl.Position,
		Contact:    empl.Contact,
		Status:     empl.Status,
	}
	if empl.HireDate != nil {
		resp.HireDate = empl.HireDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
