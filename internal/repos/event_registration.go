package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type EventRegistrationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, registration *types.EventRegistration) (*types.EventRegistration, error)
	CountByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (int64, error)
	ExistsByEventAndEmail(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, email string) (bool, error)
	DeleteByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error
}

type eventRegistrationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEventRegistrationRepo(db *gorm.DB, baseLog *logger.Logger) EventRegistrationRepo {
	repoLog := baseLog.With("repo", "EventRegistrationRepo")
	return &eventRegistrationRepo{db: db, log: repoLog}
}

func (rr *eventRegistrationRepo) Create(ctx context.Context, tx *gorm.DB, registration *types.EventRegistration) (*types.EventRegistration, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if err := transaction.WithContext(ctx).Create(registration).Error; err != nil {
		return nil, err
	}
	return registration, nil
}

func (rr *eventRegistrationRepo) CountByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	err := transaction.WithContext(ctx).
		Model(&types.EventRegistration{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (rr *eventRegistrationRepo) ExistsByEventAndEmail(ctx context.Context, tx *gorm.DB, eventID uuid.UUID, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var count int64
	err := transaction.WithContext(ctx).
		Model(&types.EventRegistration{}).
		Where("event_id = ? AND email = ?", eventID, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (rr *eventRegistrationRepo) DeleteByEventID(ctx context.Context, tx *gorm.DB, eventID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Where("event_id = ?", eventID).Delete(&types.EventRegistration{}).Error
}
