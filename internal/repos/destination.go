package repos

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type DestinationFilter struct {
	Region string
	Search string
}

type DestinationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, destination *types.Destination) (*types.Destination, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Destination, error)
	List(ctx context.Context, tx *gorm.DB, filter DestinationFilter) ([]*types.Destination, error)
	Save(ctx context.Context, tx *gorm.DB, destination *types.Destination) error
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type destinationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDestinationRepo(db *gorm.DB, baseLog *logger.Logger) DestinationRepo {
	repoLog := baseLog.With("repo", "DestinationRepo")
	return &destinationRepo{db: db, log: repoLog}
}

func (dr *destinationRepo) Create(ctx context.Context, tx *gorm.DB, destination *types.Destination) (*types.Destination, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	if err := transaction.WithContext(ctx).Create(destination).Error; err != nil {
		return nil, err
	}
	return destination, nil
}

func (dr *destinationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Destination, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	var result types.Destination
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

func (dr *destinationRepo) List(ctx context.Context, tx *gorm.DB, filter DestinationFilter) ([]*types.Destination, error) {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	q := transaction.WithContext(ctx).Order("created_at DESC")
	if filter.Region != "" {
		q = q.Where("region = ?", filter.Region)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", needle, needle)
	}
	var results []*types.Destination
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *destinationRepo) Save(ctx context.Context, tx *gorm.DB, destination *types.Destination) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return transaction.WithContext(ctx).Save(destination).Error
}

func (dr *destinationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = dr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Destination{}).Error
}
