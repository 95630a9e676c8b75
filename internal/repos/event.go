package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type EventRepo interface {
	Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error)
	List(ctx context.Context, tx *gorm.DB, upcomingOnly bool) ([]*types.Event, error)
	Save(ctx context.Context, tx *gorm.DB, event *types.Event) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type eventRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRepo(db *gorm.DB, baseLog *logger.Logger) EventRepo {
	repoLog := baseLog.With("repo", "EventRepo")
	return &eventRepo{db: db, log: repoLog}
}

func (er *eventRepo) Create(ctx context.Context, tx *gorm.DB, event *types.Event) (*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if err := transaction.WithContext(ctx).Omit(clause.Associations).Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (er *eventRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var result types.Event
	err := transaction.WithContext(ctx).
		Preload("Registrations").
		Where("id = ?", id).
		First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (er *eventRepo) List(ctx context.Context, tx *gorm.DB, upcomingOnly bool) ([]*types.Event, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	q := transaction.WithContext(ctx).
		Preload("Registrations").
		Order("starts_at ASC")
	if upcomingOnly {
		q = q.Where("starts_at >= CURRENT_TIMESTAMP")
	}
	var results []*types.Event
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *eventRepo) Save(ctx context.Context, tx *gorm.DB, event *types.Event) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(event).Error
}

func (er *eventRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Event{}).Error
}
