package inventory

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	inventoryerrors "github.com/Jamesakeluru/IHRIS/internal/inventory/errors"
	"github.com/Jamesakeluru/IHRIS/internal/shared/contextutil"
)

//go:generate mockgen -source=inventory_service.go -destination=mock/inventory_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, form AddItemForm) (ItemResponse, error)
	Assign(ctx context.Context, form AssignItemForm) (ItemResponse, error)
	GetAll(ctx context.Context) ([]ItemResponse, error)
	GetByAssignee(ctx context.Context, employeeID uint) ([]ItemResponse, error)
	GetEmployeeOptions(ctx context.Context) ([]EmployeeOption, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inventory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inventory.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Add(ctx context.Context, form AddItemForm) (ItemResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("add item requested",
		zap.String("request_id", rid),
		zap.String("item_name", form.ItemName),
		zap.String("serial_number", form.SerialNumber),
	)

	condition := form.Condition
	if condition == "" {
		condition = ConditionNew
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("add item begin tx failed", zap.Error(err))
		return ItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item := &Item{
		ItemName:     form.ItemName,
		ItemType:     form.ItemType,
		SerialNumber: form.SerialNumber,
		Condition:    condition,
	}

	if err := qtx.Create(ctx, item); err != nil {
		s.logger.Error("add item persist failed", zap.Error(err))
		return ItemResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("add item commit failed", zap.Error(err))
		return ItemResponse{}, err
	}

	s.logger.Info("add item success",
		zap.String("request_id", rid),
		zap.Uint("item_id", item.ID),
		zap.String("serial_number", item.SerialNumber),
	)
	return mapToResponse(*item), nil
}

// Assign hands an item to an employee. A previous holder is overwritten
// silently, matching the paper process this replaced; no history is kept.
func (s *service) Assign(ctx context.Context, form AssignItemForm) (ItemResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign item requested",
		zap.String("request_id", rid),
		zap.Uint("item_id", form.ItemID),
		zap.Uint("assigned_to", form.AssignedTo),
	)

	var dateAssigned *time.Time
	if form.DateAssigned != "" {
		t, err := time.Parse("2006-01-02", form.DateAssigned)
		if err != nil {
			s.logger.Warn("assign item invalid date_assigned", zap.String("date_assigned", form.DateAssigned))
			return ItemResponse{}, inventoryerrors.ErrInvalidDateFormat
		}
		dateAssigned = &t
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign item begin tx failed", zap.Error(err))
		return ItemResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	item, err := qtx.FindByID(ctx, form.ItemID)
	if err != nil {
		s.logger.Warn("assign item fetch failed", zap.Uint("item_id", form.ItemID), zap.Error(err))
		return ItemResponse{}, mapRepositoryError(err)
	}

	assignee := form.AssignedTo
	item.AssignedTo = &assignee
	item.DateAssigned = dateAssigned

	if err := qtx.Update(ctx, item); err != nil {
		s.logger.Error("assign item persist failed", zap.Uint("item_id", form.ItemID), zap.Error(err))
		return ItemResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("assign item commit failed", zap.Error(err))
		return ItemResponse{}, err
	}

	s.logger.Info("assign item success",
		zap.String("request_id", rid),
		zap.Uint("item_id", item.ID),
		zap.Uint("assigned_to", assignee),
	)
	return mapToResponse(*item), nil
}

func (s *service) GetAll(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all items failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByAssignee(ctx context.Context, employeeID uint) ([]ItemResponse, error) {
	items, err := s.repo.FindByAssignee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get items by assignee failed",
			zap.Uint("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}
	return mapToListResponse(items), nil
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

func mapToResponse(item Item) ItemResponse {
	resp := ItemResponse{
		ID:           item.ID,
		ItemName:     item.ItemName,
		ItemType:     item.ItemType,
		SerialNumber: item.SerialNumber,
		Condition:    item.Condition,
	}
	if item.AssignedTo != nil {
		resp.AssignedTo = *item.AssignedTo
	}
	if item.Employee != nil {
		resp.AssignedName = item.Employee.FullName()
	}
	if item.DateAssigned != nil {
		resp.DateAssigned = item.DateAssigned.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(items []Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, it := range items {
		res[i] = mapToResponse(it)
	}
	return res
}
