package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type UpdateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, update *types.Update) (*types.Update, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Update, error)
	List(ctx context.Context, tx *gorm.DB, category string) ([]*types.Update, error)
	Save(ctx context.Context, tx *gorm.DB, update *types.Update) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type updateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUpdateRepo(db *gorm.DB, baseLog *logger.Logger) UpdateRepo {
	repoLog := baseLog.With("repo", "UpdateRepo")
	return &updateRepo{db: db, log: repoLog}
}

func (ur *updateRepo) Create(ctx context.Context, tx *gorm.DB, update *types.Update) (*types.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if err := transaction.WithContext(ctx).Create(update).Error; err != nil {
		return nil, err
	}
	return update, nil
}

func (ur *updateRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var result types.Update
	err := transaction.WithContext(ctx).
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

func (ur *updateRepo) List(ctx context.Context, tx *gorm.DB, category string) ([]*types.Update, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	q := transaction.WithContext(ctx).Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var results []*types.Update
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *updateRepo) Save(ctx context.Context, tx *gorm.DB, update *types.Update) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).Save(update).Error
}

func (ur *updateRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Update{}).Error
}
