package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type ExperienceInput struct {
	Title       string
	Description string
	Location    string
	HappenedAt  time.Time
}

type ExperienceService interface {
	Create(ctx context.Context, in ExperienceInput) (*types.Experience, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Experience, error)
	List(ctx context.Context) ([]*types.Experience, error)
	Update(ctx context.Context, id uuid.UUID, in ExperienceInput) (*types.Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type experienceService struct {
	db             *gorm.DB
	log            *logger.Logger
	experienceRepo repos.ExperienceRepo
}

func NewExperienceService(db *gorm.DB, log *logger.Logger, experienceRepo repos.ExperienceRepo) ExperienceService {
	serviceLog := log.With("service", "ExperienceService")
	return &experienceService{db: db, log: serviceLog, experienceRepo: experienceRepo}
}

func (es *experienceService) Create(ctx context.Context, in ExperienceInput) (*types.Experience, error) {
	if in.Title == "" || in.Description == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	experience := &types.Experience{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		HappenedAt:  in.HappenedAt,
	}
	if _, err := es.experienceRepo.Create(ctx, nil, experience); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create experience: %w", err))
	}
	return experience, nil
}

func (es *experienceService) GetByID(ctx context.Context, id uuid.UUID) (*types.Experience, error) {
	experience, err := es.experienceRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if experience == nil {
		return nil, apierr.NotFound("experience")
	}
	return experience, nil
}

func (es *experienceService) List(ctx context.Context) ([]*types.Experience, error) {
	experiences, err := es.experienceRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return experiences, nil
}

func (es *experienceService) Update(ctx context.Context, id uuid.UUID, in ExperienceInput) (*types.Experience, error) {
	experience, err := es.experienceRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if experience == nil {
		return nil, apierr.NotFound("experience")
	}
	if in.Title != "" {
		experience.Title = in.Title
	}
	if in.Description != "" {
		experience.Description = in.Description
	}
	if in.Location != "" {
		experience.Location = in.Location
	}
	if !in.HappenedAt.IsZero() {
		experience.HappenedAt = in.HappenedAt
	}
	experience.UpdatedAt = time.Now()
	if err := es.experienceRepo.Save(ctx, nil, experience); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update experience: %w", err))
	}
	return experience, nil
}

func (es *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	experience, err := es.experienceRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if experience == nil {
		return apierr.NotFound("experience")
	}
	if err := es.experienceRepo.Delete(ctx, nil, id); err != nil {
		return apierr.Persistence(fmt.Errorf("failed to delete experience: %w", err))
	}
	return nil
}
