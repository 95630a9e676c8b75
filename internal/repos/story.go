package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type StoryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, story *types.Story) (*types.Story, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Story, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Story, error)
	Save(ctx context.Context, tx *gorm.DB, story *types.Story) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type storyRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStoryRepo(db *gorm.DB, baseLog *logger.Logger) StoryRepo {
	repoLog := baseLog.With("repo", "StoryRepo")
	return &storyRepo{db: db, log: repoLog}
}

func (sr *storyRepo) Create(ctx context.Context, tx *gorm.DB, story *types.Story) (*types.Story, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	if err := transaction.WithContext(ctx).Create(story).Error; err != nil {
		return nil, err
	}
	return story, nil
}

func (sr *storyRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Story, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var result types.Story
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

func (sr *storyRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Story, error) {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	var results []*types.Story
	if err := transaction.WithContext(ctx).Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (sr *storyRepo) Save(ctx context.Context, tx *gorm.DB, story *types.Story) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Save(story).Error
}

func (sr *storyRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = sr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Story{}).Error
}
