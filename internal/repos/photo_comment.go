package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type PhotoCommentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, comment *types.PhotoComment) (*types.PhotoComment, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PhotoComment, error)
	Save(ctx context.Context, tx *gorm.DB, comment *types.PhotoComment) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByPhotoID(ctx context.Context, tx *gorm.DB, photoID uuid.UUID) error
}

type photoCommentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhotoCommentRepo(db *gorm.DB, baseLog *logger.Logger) PhotoCommentRepo {
	repoLog := baseLog.With("repo", "PhotoCommentRepo")
	return &photoCommentRepo{db: db, log: repoLog}
}

func (cr *photoCommentRepo) Create(ctx context.Context, tx *gorm.DB, comment *types.PhotoComment) (*types.PhotoComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	if err := transaction.WithContext(ctx).Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (cr *photoCommentRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PhotoComment, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var result types.PhotoComment
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

func (cr *photoCommentRepo) Save(ctx context.Context, tx *gorm.DB, comment *types.PhotoComment) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Save(comment).Error
}

func (cr *photoCommentRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.PhotoComment{}).Error
}

func (cr *photoCommentRepo) DeleteByPhotoID(ctx context.Context, tx *gorm.DB, photoID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	return transaction.WithContext(ctx).Where("photo_id = ?", photoID).Delete(&types.PhotoComment{}).Error
}
