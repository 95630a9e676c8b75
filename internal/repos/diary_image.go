package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type DiaryImageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, images []*types.DiaryImage) ([]*types.DiaryImage, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DiaryImage, error)
	GetByDiaryID(ctx context.Context, tx *gorm.DB, diaryID uuid.UUID) ([]*types.DiaryImage, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByDiaryID(ctx context.Context, tx *gorm.DB, diaryID uuid.UUID) error
}

type diaryImageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDiaryImageRepo(db *gorm.DB, baseLog *logger.Logger) DiaryImageRepo {
	repoLog := baseLog.With("repo", "DiaryImageRepo")
	return &diaryImageRepo{db: db, log: repoLog}
}

func (ir *diaryImageRepo) Create(ctx context.Context, tx *gorm.DB, images []*types.DiaryImage) ([]*types.DiaryImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	if len(images) == 0 {
		return []*types.DiaryImage{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (ir *diaryImageRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.DiaryImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var result types.DiaryImage
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

func (ir *diaryImageRepo) GetByDiaryID(ctx context.Context, tx *gorm.DB, diaryID uuid.UUID) ([]*types.DiaryImage, error) {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	var results []*types.DiaryImage
	err := transaction.WithContext(ctx).
		Where("diary_id = ?", diaryID).
		Order("created_at ASC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (ir *diaryImageRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.DiaryImage{}).Error
}

func (ir *diaryImageRepo) DeleteByDiaryID(ctx context.Context, tx *gorm.DB, diaryID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ir.db
	}
	return transaction.WithContext(ctx).Where("diary_id = ?", diaryID).Delete(&types.DiaryImage{}).Error
}
