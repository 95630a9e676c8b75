package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/types"
)

// Object keys are laid out as <resourceType>/<publicID>, where publicID is
// <folder>/<uuid>. Rows persist only the publicID, so the resource type an
// asset was uploaded under is not recoverable at delete time; Delete walks
// the candidate types instead.
var resourceTypes = []string{"image", "video", "raw"}

type MediaService interface {
	Upload(ctx context.Context, file io.Reader, contentType, folder string) (*types.AssetRef, error)
	// Delete is best-effort: it never surfaces an error to the caller.
	Delete(ctx context.Context, publicID string)
	Replace(ctx context.Context, oldPublicID string, file io.Reader, contentType, folder string) (*types.AssetRef, error)
}

type mediaService struct {
	log    *logger.Logger
	bucket BucketService
}

func NewMediaService(log *logger.Logger, bucket BucketService) MediaService {
	serviceLog := log.With("service", "MediaService")
	return &mediaService{log: serviceLog, bucket: bucket}
}

func (ms *mediaService) Upload(ctx context.Context, file io.Reader, contentType, folder string) (*types.AssetRef, error) {
	if folder == "" {
		folder = "misc"
	}
	publicID := fmt.Sprintf("%s/%s", folder, uuid.New().String())
	key := objectKey(resourceTypeFor(contentType), publicID)
	if err := ms.bucket.UploadFile(ctx, key, contentType, file); err != nil {
		return nil, apierr.Upload(err)
	}
	return &types.AssetRef{
		PublicID:  publicID,
		SecureURL: ms.bucket.GetPublicURL(key),
	}, nil
}

func (ms *mediaService) Delete(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	for _, rt := range resourceTypes {
		if err := ms.bucket.DeleteFile(ctx, objectKey(rt, publicID)); err == nil {
			return
		}
	}
	ms.log.Warn("failed to delete media asset under any resource type (ignored)", "public_id", publicID)
}

func (ms *mediaService) Replace(ctx context.Context, oldPublicID string, file io.Reader, contentType, folder string) (*types.AssetRef, error) {
	// Old asset goes first. If the upload below fails the owning entity is
	// left without an asset until the caller retries; there is no
	// compensating re-upload.
	ms.Delete(ctx, oldPublicID)
	return ms.Upload(ctx, file, contentType, folder)
}

func resourceTypeFor(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case strings.HasPrefix(contentType, "audio/"), strings.HasPrefix(contentType, "video/"):
		return "video"
	default:
		return "raw"
	}
}

func objectKey(resourceType, publicID string) string {
	return resourceType + "/" + publicID
}
