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

type DestinationInput struct {
	Name        string
	Region      string
	Description string
	Tips        string
	File        io.Reader
	ContentType string
}

type DestinationService interface {
	Create(ctx context.Context, in DestinationInput) (*types.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Destination, error)
	List(ctx context.Context, filter repos.DestinationFilter) ([]*types.Destination, error)
	Update(ctx context.Context, id uuid.UUID, in DestinationInput) (*types.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type destinationService struct {
	db              *gorm.DB
	log             *logger.Logger
	destinationRepo repos.DestinationRepo
	media           MediaService
}

func NewDestinationService(db *gorm.DB, log *logger.Logger, destinationRepo repos.DestinationRepo, media MediaService) DestinationService {
	serviceLog := log.With("service", "DestinationService")
	return &destinationService{db: db, log: serviceLog, destinationRepo: destinationRepo, media: media}
}

func (ds *destinationService) Create(ctx context.Context, in DestinationInput) (*types.Destination, error) {
	if in.Name == "" || in.Region == "" || in.Description == "" || in.File == nil {
		return nil, apierr.Validation("Missing required fields")
	}
	ref, err := ds.media.Upload(ctx, in.File, in.ContentType, "destinations")
	if err != nil {
		return nil, err
	}
	destination := &types.Destination{
		ID:          uuid.New(),
		Name:        in.Name,
		Region:      in.Region,
		Description: in.Description,
		Tips:        in.Tips,
		Image:       *ref,
	}
	if _, err := ds.destinationRepo.Create(ctx, nil, destination); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create destination: %w", err))
	}
	return destination, nil
}

func (ds *destinationService) GetByID(ctx context.Context, id uuid.UUID) (*types.Destination, error) {
	destination, err := ds.destinationRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if destination == nil {
		return nil, apierr.NotFound("destination")
	}
	return destination, nil
}

func (ds *destinationService) List(ctx context.Context, filter repos.DestinationFilter) ([]*types.Destination, error) {
	destinations, err := ds.destinationRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return destinations, nil
}

func (ds *destinationService) Update(ctx context.Context, id uuid.UUID, in DestinationInput) (*types.Destination, error) {
	destination, err := ds.destinationRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if destination == nil {
		return nil, apierr.NotFound("destination")
	}
	if in.File != nil {
		ref, upErr := ds.media.Replace(ctx, destination.Image.PublicID, in.File, in.ContentType, "destinations")
		if upErr != nil {
			return nil, upErr
		}
		destination.Image = *ref
	}
	if in.Name != "" {
		destination.Name = in.Name
	}
	if in.Region != "" {
		destination.Region = in.Region
	}
	if in.Description != "" {
		destination.Description = in.Description
	}
	if in.Tips != "" {
		destination.Tips = in.Tips
	}
	destination.UpdatedAt = time.Now()
	if err := ds.destinationRepo.Save(ctx, nil, destination); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update destination: %w", err))
	}
	return destination, nil
}

func (ds *destinationService) Delete(ctx context.Context, id uuid.UUID) error {
	destination, err := ds.destinationRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if destination == nil {
		return apierr.NotFound("destination")
	}
	ds.media.Delete(ctx, destination.Image.PublicID)
	if err := ds.destinationRepo.Delete(ctx, nil, id); err != nil {
		return apierr.Persistence(fmt.Errorf("failed to delete destination: %w", err))
	}
	return nil
}
