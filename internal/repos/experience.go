package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type ExperienceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, experience *types.Experience) (*types.Experience, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Experience, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Experience, error)
	Save(ctx context.Context, tx *gorm.DB, experience *types.Experience) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type experienceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewExperienceRepo(db *gorm.DB, baseLog *logger.Logger) ExperienceRepo {
	repoLog := baseLog.With("repo", "ExperienceRepo")
	return &experienceRepo{db: db, log: repoLog}
}

func (er *experienceRepo) Create(ctx context.Context, tx *gorm.DB, experience *types.Experience) (*types.Experience, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	if err := transaction.WithContext(ctx).Create(experience).Error; err != nil {
		return nil, err
	}
	return experience, nil
}

func (er *experienceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Experience, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var result types.Experience
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

func (er *experienceRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Experience, error) {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	var results []*types.Experience
	if err := transaction.WithContext(ctx).Order("happened_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *experienceRepo) Save(ctx context.Context, tx *gorm.DB, experience *types.Experience) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).Save(experience).Error
}

func (er *experienceRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = er.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Experience{}).Error
}
