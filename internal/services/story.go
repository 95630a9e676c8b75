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

type StoryInput struct {
	Title       string
	Body        string
	File        io.Reader
	ContentType string
}

type StoryService interface {
	Create(ctx context.Context, in StoryInput) (*types.Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Story, error)
	List(ctx context.Context) ([]*types.Story, error)
	Update(ctx context.Context, id uuid.UUID, in StoryInput) (*types.Story, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type storyService struct {
	db        *gorm.DB
	log       *logger.Logger
	storyRepo repos.StoryRepo
	media     MediaService
}

func NewStoryService(db *gorm.DB, log *logger.Logger, storyRepo repos.StoryRepo, media MediaService) StoryService {
	serviceLog := log.With("service", "StoryService")
	return &storyService{db: db, log: serviceLog, storyRepo: storyRepo, media: media}
}

func (ss *storyService) Create(ctx context.Context, in StoryInput) (*types.Story, error) {
	if in.Title == "" || in.Body == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	story := &types.Story{
		ID:    uuid.New(),
		Title: in.Title,
		Body:  in.Body,
	}
	if in.File != nil {
		ref, err := ss.media.Upload(ctx, in.File, in.ContentType, "stories")
		if err != nil {
			return nil, err
		}
		story.Audio = *ref
	}
	if _, err := ss.storyRepo.Create(ctx, nil, story); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create story: %w", err))
	}
	return story, nil
}

func (ss *storyService) GetByID(ctx context.Context, id uuid.UUID) (*types.Story, error) {
	story, err := ss.storyRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if story == nil {
		return nil, apierr.NotFound("story")
	}
	return story, nil
}

func (ss *storyService) List(ctx context.Context) ([]*types.Story, error) {
	stories, err := ss.storyRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return stories, nil
}

func (ss *storyService) Update(ctx context.Context, id uuid.UUID, in StoryInput) (*types.Story, error) {
	story, err := ss.storyRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if story == nil {
		return nil, apierr.NotFound("story")
	}
	if in.File != nil {
		ref, upErr := ss.media.Replace(ctx, story.Audio.PublicID, in.File, in.ContentType, "stories")
		if upErr != nil {
			return nil, upErr
		}
		story.Audio = *ref
	}
	if in.Title != "" {
		story.Title = in.Title
	}
	if in.Body != "" {
		story.Body = in.Body
	}
	story.UpdatedAt = time.Now()
	if err := ss.storyRepo.Save(ctx, nil, story); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update story: %w", err))
	}
	return story, nil
}

func (ss *storyService) Delete(ctx context.Context, id uuid.UUID) error {
	story, err := ss.storyRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if story == nil {
		return apierr.NotFound("story")
	}
	// Narration audio may live under any resource type; MediaService walks
	// the candidates and never fails the delete.
	ss.media.Delete(ctx, story.Audio.PublicID)
	if err := ss.storyRepo.Delete(ctx, nil, id); err != nil {
		return apierr.Persistence(fmt.Errorf("failed to delete story: %w", err))
	}
	return nil
}
