package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type PhotoFilter struct {
	Category string
	Search   string
}

type PhotoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, photo *types.Photo) (*types.Photo, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Photo, error)
	List(ctx context.Context, tx *gorm.DB, filter PhotoFilter) ([]*types.Photo, error)
	Save(ctx context.Context, tx *gorm.DB, photo *types.Photo) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type photoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPhotoRepo(db *gorm.DB, baseLog *logger.Logger) PhotoRepo {
	repoLog := baseLog.With("repo", "PhotoRepo")
	return &photoRepo{db: db, log: repoLog}
}

func (pr *photoRepo) Create(ctx context.Context, tx *gorm.DB, photo *types.Photo) (*types.Photo, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Omit(clause.Associations).Create(photo).Error; err != nil {
		return nil, err
	}
	return photo, nil
}

func (pr *photoRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Photo, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.Photo
	err := transaction.WithContext(ctx).
		Preload("Votes").
		Preload("Comments").
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

func (pr *photoRepo) List(ctx context.Context, tx *gorm.DB, filter PhotoFilter) ([]*types.Photo, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	q := transaction.WithContext(ctx).
		Preload("Votes").
		Preload("Comments").
		Order("created_at DESC")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}
	var results []*types.Photo
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (pr *photoRepo) Save(ctx context.Context, tx *gorm.DB, photo *types.Photo) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(photo).Error
}

func (pr *photoRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Photo{}).Error
}
