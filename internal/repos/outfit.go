package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type OutfitRepo interface {
	Create(ctx context.Context, tx *gorm.DB, outfit *types.Outfit) (*types.Outfit, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Outfit, error)
	List(ctx context.Context, tx *gorm.DB, occasion string) ([]*types.Outfit, error)
	Save(ctx context.Context, tx *gorm.DB, outfit *types.Outfit) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type outfitRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOutfitRepo(db *gorm.DB, baseLog *logger.Logger) OutfitRepo {
	repoLog := baseLog.With("repo", "OutfitRepo")
	return &outfitRepo{db: db, log: repoLog}
}

func (or *outfitRepo) Create(ctx context.Context, tx *gorm.DB, outfit *types.Outfit) (*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	if err := transaction.WithContext(ctx).Create(outfit).Error; err != nil {
		return nil, err
	}
	return outfit, nil
}

func (or *outfitRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	var result types.Outfit
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

func (or *outfitRepo) List(ctx context.Context, tx *gorm.DB, occasion string) ([]*types.Outfit, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	q := transaction.WithContext(ctx).Order("created_at DESC")
	if occasion != "" {
		q = q.Where("occasion = ?", occasion)
	}
	var results []*types.Outfit
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (or *outfitRepo) Save(ctx context.Context, tx *gorm.DB, outfit *types.Outfit) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Save(outfit).Error
}

func (or *outfitRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Outfit{}).Error
}
