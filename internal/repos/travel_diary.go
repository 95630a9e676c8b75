package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type TravelDiaryRepo interface {
	Create(ctx context.Context, tx *gorm.DB, diary *types.TravelDiary) (*types.TravelDiary, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TravelDiary, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.TravelDiary, error)
	Save(ctx context.Context, tx *gorm.DB, diary *types.TravelDiary) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type travelDiaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTravelDiaryRepo(db *gorm.DB, baseLog *logger.Logger) TravelDiaryRepo {
	repoLog := baseLog.With("repo", "TravelDiaryRepo")
	return &travelDiaryRepo{db: db, log: repoLog}
}

func (tr *travelDiaryRepo) Create(ctx context.Context, tx *gorm.DB, diary *types.TravelDiary) (*types.TravelDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	if err := transaction.WithContext(ctx).Omit(clause.Associations).Create(diary).Error; err != nil {
		return nil, err
	}
	return diary, nil
}

func (tr *travelDiaryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.TravelDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var result types.TravelDiary
	err := transaction.WithContext(ctx).
		Preload("Images").
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

func (tr *travelDiaryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.TravelDiary, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var results []*types.TravelDiary
	err := transaction.WithContext(ctx).
		Preload("Images").
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *travelDiaryRepo) Save(ctx context.Context, tx *gorm.DB, diary *types.TravelDiary) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Omit(clause.Associations).Save(diary).Error
}

func (tr *travelDiaryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.TravelDiary{}).Error
}
