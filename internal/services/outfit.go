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

type OutfitInput struct {
	Title       string
	Description string
	Occasion    string
	File        io.Reader
	ContentType string
}

type OutfitService interface {
	Create(ctx context.Context, in OutfitInput) (*types.Outfit, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Outfit, error)
	List(ctx context.Context, occasion string) ([]*types.Outfit, error)
	Update(ctx context.Context, id uuid.UUID, in OutfitInput) (*types.Outfit, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type outfitService struct {
	db         *gorm.DB
	log        *logger.Logger
	outfitRepo repos.OutfitRepo
	media      MediaService
}

func NewOutfitService(db *gorm.DB, log *logger.Logger, outfitRepo repos.OutfitRepo, media MediaService) OutfitService {
	serviceLog := log.With("service", "OutfitService")
	return &outfitService{db: db, log: serviceLog, outfitRepo: outfitRepo, media: media}
}

func (os *outfitService) Create(ctx context.Context, in OutfitInput) (*types.Outfit, error) {
	if in.Title == "" || in.Description == "" || in.Occasion == "" || in.File == nil {
		return nil, apierr.Validation("Missing required fields")
	}
	ref, err := os.media.Upload(ctx, in.File, in.ContentType, "outfits")
	if err != nil {
		return nil, err
	}
	outfit := &types.Outfit{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Occasion:    in.Occasion,
		Image:       *ref,
	}
	if _, err := os.outfitRepo.Create(ctx, nil, outfit); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create outfit: %w", err))
	}
	return outfit, nil
}

func (os *outfitService) GetByID(ctx context.Context, id uuid.UUID) (*types.Outfit, error) {
	outfit, err := os.outfitRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if outfit == nil {
		return nil, apierr.NotFound("outfit")
	}
	return outfit, nil
}

func (os *outfitService) List(ctx context.Context, occasion string) ([]*types.Outfit, error) {
	outfits, err := os.outfitRepo.List(ctx, nil, occasion)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return outfits, nil
}

func (os *outfitService) Update(ctx context.Context, id uuid.UUID, in OutfitInput) (*types.Outfit, error) {
	outfit, err := os.outfitRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if outfit == nil {
		return nil, apierr.NotFound("outfit")
	}
	if in.File != nil {
		ref, upErr := os.media.Replace(ctx, outfit.Image.PublicID, in.File, in.ContentType, "outfits")
		if upErr != nil {
			return nil, upErr
		}
		outfit.Image = *ref
	}
	if in.Title != "" {
		outfit.Title = in.Title
	}
	if in.Description != "" {
		outfit.Description = in.Description
	}
	if in.Occasion != "" {
		outfit.Occasion = in.Occasion
	}
	outfit.UpdatedAt = time.Now()
	if err := os.outfitRepo.Save(ctx, nil, outfit); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update outfit: %w", err))
	}
	return outfit, nil
}

func (os *outfitService) Delete(ctx context.Context, id uuid.UUID) error {
	outfit, err := os.outfitRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if outfit == nil {
		return apierr.NotFound("outfit")
	}
	os.media.Delete(ctx, outfit.Image.PublicID)
	if err := os.outfitRepo.Delete(ctx, nil, id); err != nil {
		return apierr.Persistence(fmt.Errorf("failed to delete outfit: %w", err))
	}
	return nil
}
