package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type PhotoVoteRepo interface {
	Create(ctx context.Context, tx *gorm.DB, vote *types.PhotoVote) (*types.PhotoVote, error)
	GetByPhotoAndUser(ctx context.Context, tx *gorm.DB, photoID, userID uuid.UUID) (*types.PhotoVote, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByPhotoID(ctx context.Context, tx *gorm.DB, photoID uuid.UUID) error
}

type photoVoteRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhotoVoteRepo(db *gorm.DB, baseLog *logger.Logger) PhotoVoteRepo {
	repoLog := baseLog.With("repo", "PhotoVoteRepo")
	return &photoVoteRepo{db: db, log: repoLog}
}

func (vr *photoVoteRepo) Create(ctx context.Context, tx *gorm.DB, vote *types.PhotoVote) (*types.PhotoVote, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	if err := transaction.WithContext(ctx).Create(vote).Error; err != nil {
		return nil, err
	}
	return vote, nil
}

func (vr *photoVoteRepo) GetByPhotoAndUser(ctx context.Context, tx *gorm.DB, photoID, userID uuid.UUID) (*types.PhotoVote, error) {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	var result types.PhotoVote
	err := transaction.WithContext(ctx).
		Where("photo_id = ? AND user_id = ?", photoID, userID).
		First(&result).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (vr *photoVoteRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.PhotoVote{}).Error
}

func (vr *photoVoteRepo) DeleteByPhotoID(ctx context.Context, tx *gorm.DB, photoID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = vr.db
	}
	return transaction.WithContext(ctx).Where("photo_id = ?", photoID).Delete(&types.PhotoVote{}).Error
}
