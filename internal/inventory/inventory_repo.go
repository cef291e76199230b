package inventory

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_repo.go -destination=mock/inventory_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, item *Item) error
	FindAll(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id uint) (*Item, error)
	FindByAssignee(ctx context.Context, employeeID uint) ([]Item, error)
	Update(ctx context.Context, item *Item) error
	FindEmployeeOptions(ctx context.Context) ([]EmployeeRef, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, item *Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*Item, error) {
	var item Item
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *repository) FindByAssignee(ctx context.Context, employeeID uint) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Where("assigned_to = ?", employeeID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) Update(ctx context.Context, item *Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *repository) FindEmployeeOptions(ctx context.Context) ([]EmployeeRef, error) {
	var refs []EmployeeRef
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&refs).Error
	return refs, err
}
