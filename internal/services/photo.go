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
	"github.com/veraroam/ambassador-backend/internal/normalization"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/requestdata"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type PhotoCreateInput struct {
	Title       string
	Description string
	Category    string
	File        io.Reader
	ContentType string
}

type PhotoUpdateInput struct {
	Title       string
	Description string
	Category    string
	File        io.Reader
	ContentType string
}

type PhotoService interface {
	Create(ctx context.Context, in PhotoCreateInput) (*types.Photo, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Photo, error)
	List(ctx context.Context, filter repos.PhotoFilter) ([]*types.Photo, error)
	Update(ctx context.Context, id uuid.UUID, in PhotoUpdateInput) (*types.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ToggleVote(ctx context.Context, photoID uuid.UUID, principal *requestdata.Principal) (bool, error)
	AddComment(ctx context.Context, photoID uuid.UUID, principal *requestdata.Principal, body string) (*types.PhotoComment, error)
	UpdateComment(ctx context.Context, commentID uuid.UUID, principal *requestdata.Principal, body string) (*types.PhotoComment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID, principal *requestdata.Principal) error
}

type photoService struct {
	db          *gorm.DB
	log         *logger.Logger
	photoRepo   repos.PhotoRepo
	voteRepo    repos.PhotoVoteRepo
	commentRepo repos.PhotoCommentRepo
	media       MediaService
}

func NewPhotoService(
	db *gorm.DB,
	log *logger.Logger,
	photoRepo repos.PhotoRepo,
	voteRepo repos.PhotoVoteRepo,
	commentRepo repos.PhotoCommentRepo,
	media MediaService,
) PhotoService {
	serviceLog := log.With("service", "PhotoService")
	return &photoService{
		db:          db,
		log:         serviceLog,
		photoRepo:   photoRepo,
		voteRepo:    voteRepo,
		commentRepo: commentRepo,
		media:       media,
	}
}

func (ps *photoService) Create(ctx context.Context, in PhotoCreateInput) (*types.Photo, error) {
	// Required fields are checked before touching the object store so a
	// rejected request leaves no uploaded bytes behind.
	if in.Title == "" || in.Description == "" || in.Category == "" || in.File == nil {
		return nil, apierr.Validation("Missing required fields")
	}
	ref, err := ps.media.Upload(ctx, in.File, in.ContentType, "photos")
	if err != nil {
		return nil, err
	}
	photo := &types.Photo{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Image:       *ref,
		Votes:       []types.PhotoVote{},
		Comments:    []types.PhotoComment{},
	}
	if _, err := ps.photoRepo.Create(ctx, nil, photo); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create photo: %w", err))
	}
	return photo, nil
}

func (ps *photoService) GetByID(ctx context.Context, id uuid.UUID) (*types.Photo, error) {
	photo, err := ps.photoRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if photo == nil {
		return nil, apierr.NotFound("photo")
	}
	return photo, nil
}

func (ps *photoService) List(ctx context.Context, filter repos.PhotoFilter) ([]*types.Photo, error) {
	photos, err := ps.photoRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return photos, nil
}

func (ps *photoService) Update(ctx context.Context, id uuid.UUID, in PhotoUpdateInput) (*types.Photo, error) {
	photo, err := ps.photoRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if photo == nil {
		return nil, apierr.NotFound("photo")
	}
	if in.File != nil {
		ref, upErr := ps.media.Replace(ctx, photo.Image.PublicID, in.File, in.ContentType, "photos")
		if upErr != nil {
			return nil, upErr
		}
		photo.Image = *ref
	}
	if in.Title != "" {
		photo.Title = in.Title
	}
	if in.Description != "" {
		photo.Description = in.Description
	}
	if in.Category != "" {
		photo.Category = in.Category
	}
	photo.UpdatedAt = time.Now()
	if err := ps.photoRepo.Save(ctx, nil, photo); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update photo: %w", err))
	}
	return photo, nil
}

func (ps *photoService) Delete(ctx context.Context, id uuid.UUID) error {
	photo, err := ps.photoRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if photo == nil {
		return apierr.NotFound("photo")
	}
	// Asset deletion is non-fatal; the row delete proceeds regardless.
	ps.media.Delete(ctx, photo.Image.PublicID)
	err = ps.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ps.voteRepo.DeleteByPhotoID(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete photo votes: %w", err)
		}
		if err := ps.commentRepo.DeleteByPhotoID(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete photo comments: %w", err)
		}
		if err := ps.photoRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete photo: %w", err)
		}
		return nil
	})
	if err != nil {
		return apierr.Persistence(err)
	}
	return nil
}

func (ps *photoService) ToggleVote(ctx context.Context, photoID uuid.UUID, principal *requestdata.Principal) (bool, error) {
	photo, err := ps.photoRepo.GetByID(ctx, nil, photoID)
	if err != nil {
		return false, apierr.Persistence(err)
	}
	if photo == nil {
		return false, apierr.NotFound("photo")
	}
	existing, err := ps.voteRepo.GetByPhotoAndUser(ctx, nil, photoID, principal.UserID)
	if err != nil {
		return false, apierr.Persistence(err)
	}
	if existing != nil {
		if err := ps.voteRepo.DeleteByID(ctx, nil, existing.ID); err != nil {
			return false, apierr.Persistence(err)
		}
		return false, nil
	}
	vote := &types.PhotoVote{
		ID:      uuid.New(),
		PhotoID: photoID,
		UserID:  principal.UserID,
	}
	if _, err := ps.voteRepo.Create(ctx, nil, vote); err != nil {
		return false, apierr.Persistence(err)
	}
	return true, nil
}

func (ps *photoService) AddComment(ctx context.Context, photoID uuid.UUID, principal *requestdata.Principal, body string) (*types.PhotoComment, error) {
	body = normalization.TrimInputString(body)
	if body == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	photo, err := ps.photoRepo.GetByID(ctx, nil, photoID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if photo == nil {
		return nil, apierr.NotFound("photo")
	}
	comment := &types.PhotoComment{
		ID:         uuid.New(),
		PhotoID:    photoID,
		UserID:     principal.UserID,
		AuthorName: principal.Name,
		Body:       body,
	}
	if _, err := ps.commentRepo.Create(ctx, nil, comment); err != nil {
		return nil, apierr.Persistence(err)
	}
	return comment, nil
}

func (ps *photoService) UpdateComment(ctx context.Context, commentID uuid.UUID, principal *requestdata.Principal, body string) (*types.PhotoComment, error) {
	body = normalization.TrimInputString(body)
	if body == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	comment, err := ps.commentRepo.GetByID(ctx, nil, commentID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if comment == nil {
		return nil, apierr.NotFound("comment")
	}
	if comment.UserID != principal.UserID && !principal.IsAdmin {
		return nil, apierr.Forbidden()
	}
	comment.Body = body
	comment.UpdatedAt = time.Now()
	if err := ps.commentRepo.Save(ctx, nil, comment); err != nil {
		return nil, apierr.Persistence(err)
	}
	return comment, nil
}

func (ps *photoService) DeleteComment(ctx context.Context, commentID uuid.UUID, principal *requestdata.Principal) error {
	comment, err := ps.commentRepo.GetByID(ctx, nil, commentID)
	if err != nil {
		return apierr.Persistence(err)
	}
	if comment == nil {
		return apierr.NotFound("comment")
	}
	if comment.UserID != principal.UserID && !principal.IsAdmin {
		return apierr.Forbidden()
	}
	if err := ps.commentRepo.DeleteByID(ctx, nil, commentID); err != nil {
		return apierr.Persistence(err)
	}
	return nil
}
