package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type UpdateInput struct {
	Title       string
	Body        string
	Category    string
	File        io.Reader
	ContentType string
}

type UpdateService interface {
	Create(ctx context.Context, in UpdateInput) (*types.Update, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Update, error)
	List(ctx context.Context, category string) ([]*types.Update, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*types.Update, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type updateService struct {
	db         *gorm.DB
	log        *logger.Logger
	updateRepo repos.UpdateRepo
	media      MediaService
}

func NewUpdateService(db *gorm.DB, log *logger.Logger, updateRepo repos.UpdateRepo, media MediaService) UpdateService {
	serviceLog := log.With("service", "UpdateService")
	return &updateService{db: db, log: serviceLog, updateRepo: updateRepo, media: media}
}

func (us *updateService) Create(ctx context.Context, in UpdateInput) (*types.Update, error) {
	if in.Title == "" || in.Body == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	update := &types.Update{
		ID:       uuid.New(),
		Title:    in.Title,
		Body:     in.Body,
		Category: in.Category,
	}
	if in.File != nil {
		ref, err := us.media.Upload(ctx, in.File, in.ContentType, "updates")
		if err != nil {
			return nil, err
		}
		update.Image = *ref
	}
	if _, err := us.updateRepo.Create(ctx, nil, update); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create update: %w", err))
	}
	return update, nil
}

func (us *updateService) GetByID(ctx context.Context, id uuid.UUID) (*types.Update, error) {
	update, err := us.updateRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if update == nil {
		return nil, apierr.NotFound("update")
	}
	return update, nil
}

func (us *updateService) List(ctx context.Context, category string) ([]*types.Update, error) {
	updates, err := us.updateRepo.List(ctx, nil, category)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return updates, nil
}

func (us *updateService) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*types.Update, error) {
	update, err := us.updateRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if update == nil {
		return nil, apierr.NotFound("update")
	}
	if in.File != nil {
		ref, upErr := us.media.Replace(ctx, update.Image.PublicID, in.File, in.ContentType, "updates")
		if upErr != nil {
			return nil, upErr
		}
		update.Image = *ref
	}
	if in.Title != "" {
		update.Title = in.Title
	}
	if in.Body != "" {
		update.Body = in.Body
	}
	if in.Category != "" {
		update.Category = in.Category
	}
	update.UpdatedAt = time.Now()
	if err := us.updateRepo.Save(ctx, nil, update); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update update: %w", err))
	}
	return update, nil
}

func (us *updateService) Delete(ctx context.Context, id uuid.UUID) error {
	update, err := us.updateRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if update == nil {
		return apierr.NotFound("update")
	}
	us.media.Delete(ctx, update.Image.PublicID)
	if err := us.updateRepo.Delete(ctx, nil, id); err != nil {
		return apierr.Persistence(fmt.Errorf("failed to delete update: %w", err))
	}
	return nil
}
