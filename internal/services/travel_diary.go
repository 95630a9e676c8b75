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

type DiaryFileInput struct {
	File        io.Reader
	ContentType string
	Caption     string
}

type TravelDiaryInput struct {
	Title    string
	Body     string
	Location string
	Files    []DiaryFileInput
}

type TravelDiaryService interface {
	Create(ctx context.Context, in TravelDiaryInput) (*types.TravelDiary, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.TravelDiary, error)
	List(ctx context.Context) ([]*types.TravelDiary, error)
	Update(ctx context.Context, id uuid.UUID, in TravelDiaryInput) (*types.TravelDiary, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddImages(ctx context.Context, id uuid.UUID, files []DiaryFileInput) (*types.TravelDiary, error)
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
}

type travelDiaryService struct {
	db        *gorm.DB
	log       *logger.Logger
	diaryRepo repos.TravelDiaryRepo
	imageRepo repos.DiaryImageRepo
	media     MediaService
}

func NewTravelDiaryService(
	db *gorm.DB,
	log *logger.Logger,
	diaryRepo repos.TravelDiaryRepo,
	imageRepo repos.DiaryImageRepo,
	media MediaService,
) TravelDiaryService {
	serviceLog := log.With("service", "TravelDiaryService")
	return &travelDiaryService{
		db:        db,
		log:       serviceLog,
		diaryRepo: diaryRepo,
		imageRepo: imageRepo,
		media:     media,
	}
}

func (ts *travelDiaryService) Create(ctx context.Context, in TravelDiaryInput) (*types.TravelDiary, error) {
	if in.Title == "" || in.Body == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	diary := &types.TravelDiary{
		ID:       uuid.New(),
		Title:    in.Title,
		Body:     in.Body,
		Location: in.Location,
		Images:   []types.DiaryImage{},
	}
	// All uploads complete before any row is written, so a failed upload
	// never leaves a diary row behind.
	images, err := ts.uploadImages(ctx, diary.ID, in.Files)
	if err != nil {
		return nil, err
	}
	err = ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ts.diaryRepo.Create(ctx, tx, diary); err != nil {
			return fmt.Errorf("failed to create travel diary: %w", err)
		}
		if _, err := ts.imageRepo.Create(ctx, tx, images); err != nil {
			return fmt.Errorf("failed to create diary images: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	for _, img := range images {
		diary.Images = append(diary.Images, *img)
	}
	return diary, nil
}

func (ts *travelDiaryService) GetByID(ctx context.Context, id uuid.UUID) (*types.TravelDiary, error) {
	diary, err := ts.diaryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if diary == nil {
		return nil, apierr.NotFound("travel diary")
	}
	return diary, nil
}

func (ts *travelDiaryService) List(ctx context.Context) ([]*types.TravelDiary, error) {
	diaries, err := ts.diaryRepo.List(ctx, nil)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return diaries, nil
}

func (ts *travelDiaryService) Update(ctx context.Context, id uuid.UUID, in TravelDiaryInput) (*types.TravelDiary, error) {
	diary, err := ts.diaryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if diary == nil {
		return nil, apierr.NotFound("travel diary")
	}
	if in.Title != "" {
		diary.Title = in.Title
	}
	if in.Body != "" {
		diary.Body = in.Body
	}
	if in.Location != "" {
		diary.Location = in.Location
	}
	diary.UpdatedAt = time.Now()
	if err := ts.diaryRepo.Save(ctx, nil, diary); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update travel diary: %w", err))
	}
	if len(in.Files) > 0 {
		return ts.AddImages(ctx, id, in.Files)
	}
	return ts.GetByID(ctx, id)
}

func (ts *travelDiaryService) Delete(ctx context.Context, id uuid.UUID) error {
	diary, err := ts.diaryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if diary == nil {
		return apierr.NotFound("travel diary")
	}
	for _, img := range diary.Images {
		ts.media.Delete(ctx, img.Image.PublicID)
	}
	err = ts.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ts.imageRepo.DeleteByDiaryID(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete diary images: %w", err)
		}
		if err := ts.diaryRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete travel diary: %w", err)
		}
		return nil
	})
	if err != nil {
		return apierr.Persistence(err)
	}
	return nil
}

func (ts *travelDiaryService) AddImages(ctx context.Context, id uuid.UUID, files []DiaryFileInput) (*types.TravelDiary, error) {
	diary, err := ts.diaryRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if diary == nil {
		return nil, apierr.NotFound("travel diary")
	}
	images, err := ts.uploadImages(ctx, id, files)
	if err != nil {
		return nil, err
	}
	if _, err := ts.imageRepo.Create(ctx, nil, images); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create diary images: %w", err))
	}
	return ts.GetByID(ctx, id)
}

func (ts *travelDiaryService) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	image, err := ts.imageRepo.GetByID(ctx, nil, imageID)
	if err != nil {
		return apierr.Persistence(err)
	}
	if image == nil {
		return apierr.NotFound("diary image")
	}
	ts.media.Delete(ctx, image.Image.PublicID)
	if err := ts.imageRepo.DeleteByID(ctx, nil, imageID); err != nil {
		return apierr.Persistence(fmt.Errorf("failed to delete diary image: %w", err))
	}
	return nil
}

func (ts *travelDiaryService) uploadImages(ctx context.Context, diaryID uuid.UUID, files []DiaryFileInput) ([]*types.DiaryImage, error) {
	images := make([]*types.DiaryImage, 0, len(files))
	for _, f := range files {
		if f.File == nil {
			continue
		}
		ref, err := ts.media.Upload(ctx, f.File, f.ContentType, "diaries")
		if err != nil {
			return nil, err
		}
		images = append(images, &types.DiaryImage{
			ID:      uuid.New(),
			DiaryID: diaryID,
			Image:   *ref,
			Caption: f.Caption,
		})
	}
	return images, nil
}
