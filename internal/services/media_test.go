package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/veraroam/ambassador-backend/internal/logger"
)

type fakeBucket struct {
	uploads    map[string]string
	deleted    []string
	failUpload bool
	// keys that DeleteFile should accept; everything else errors.
	deletable map[string]bool
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		uploads:   map[string]string{},
		deletable: map[string]bool{},
	}
}

func (fb *fakeBucket) UploadFile(ctx context.Context, key, contentType string, file io.Reader) error {
	if fb.failUpload {
		return errors.New("upload blew up")
	}
	fb.uploads[key] = contentType
	return nil
}

func (fb *fakeBucket) DeleteFile(ctx context.Context, key string) error {
	fb.deleted = append(fb.deleted, key)
	if fb.deletable[key] {
		return nil
	}
	return errors.New("no such object")
}

func (fb *fakeBucket) GetPublicURL(key string) string {
	return "https://cdn.test/" + key
}

func TestMediaUpload_KeyCarriesResourceTypeButPublicIDDoesNot(t *testing.T) {
	bucket := newFakeBucket()
	media := NewMediaService(logger.NewNop(), bucket)

	ref, err := media.Upload(context.Background(), strings.NewReader("png"), "image/png", "photos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ref.PublicID, "photos/") {
		t.Fatalf("public id should start with folder, got %q", ref.PublicID)
	}
	if strings.HasPrefix(ref.PublicID, "image/") {
		t.Fatalf("public id must not carry the resource type, got %q", ref.PublicID)
	}
	wantKey := "image/" + ref.PublicID
	if _, ok := bucket.uploads[wantKey]; !ok {
		t.Fatalf("expected object stored under %q, uploads: %v", wantKey, bucket.uploads)
	}
	if ref.SecureURL != "https://cdn.test/"+wantKey {
		t.Fatalf("unexpected secure url %q", ref.SecureURL)
	}
}

func TestMediaUpload_ResourceTypeFromContentType(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", "image"},
		{"audio/mpeg", "video"},
		{"video/mp4", "video"},
		{"application/pdf", "raw"},
		{"", "raw"},
	}
	for _, tc := range cases {
		if got := resourceTypeFor(tc.contentType); got != tc.want {
			t.Fatalf("resourceTypeFor(%q) = %q, want %q", tc.contentType, got, tc.want)
		}
	}
}

func TestMediaUpload_EmptyFolderDefaultsToMisc(t *testing.T) {
	bucket := newFakeBucket()
	media := NewMediaService(logger.NewNop(), bucket)

	ref, err := media.Upload(context.Background(), strings.NewReader("x"), "image/png", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(ref.PublicID, "misc/") {
		t.Fatalf("expected misc folder, got %q", ref.PublicID)
	}
}

func TestMediaDelete_WalksResourceTypesUntilOneSucceeds(t *testing.T) {
	bucket := newFakeBucket()
	bucket.deletable["video/stories/abc"] = true
	media := NewMediaService(logger.NewNop(), bucket)

	media.Delete(context.Background(), "stories/abc")

	want := []string{"image/stories/abc", "video/stories/abc"}
	if len(bucket.deleted) != len(want) {
		t.Fatalf("expected attempts %v, got %v", want, bucket.deleted)
	}
	for i := range want {
		if bucket.deleted[i] != want[i] {
			t.Fatalf("attempt %d: got %q, want %q", i, bucket.deleted[i], want[i])
		}
	}
}

func TestMediaDelete_SwallowsTotalFailure(t *testing.T) {
	bucket := newFakeBucket()
	media := NewMediaService(logger.NewNop(), bucket)

	// Nothing deletable; must not panic or surface an error.
	media.Delete(context.Background(), "photos/gone")

	if len(bucket.deleted) != 3 {
		t.Fatalf("expected all three resource types attempted, got %v", bucket.deleted)
	}
}

func TestMediaDelete_EmptyPublicIDIsNoop(t *testing.T) {
	bucket := newFakeBucket()
	media := NewMediaService(logger.NewNop(), bucket)

	media.Delete(context.Background(), "")

	if len(bucket.deleted) != 0 {
		t.Fatalf("expected no delete attempts, got %v", bucket.deleted)
	}
}

func TestMediaReplace_DeletesOldEvenWhenUploadFails(t *testing.T) {
	bucket := newFakeBucket()
	bucket.deletable["image/photos/old"] = true
	bucket.failUpload = true
	media := NewMediaService(logger.NewNop(), bucket)

	_, err := media.Replace(context.Background(), "photos/old", strings.NewReader("new"), "image/png", "photos")
	if err == nil {
		t.Fatalf("expected upload error")
	}
	if len(bucket.deleted) == 0 || bucket.deleted[0] != "image/photos/old" {
		t.Fatalf("old asset should have been deleted first, attempts: %v", bucket.deleted)
	}
}

func TestMediaReplace_UploadsNewAssetAfterDelete(t *testing.T) {
	bucket := newFakeBucket()
	bucket.deletable["image/photos/old"] = true
	media := NewMediaService(logger.NewNop(), bucket)

	ref, err := media.Replace(context.Background(), "photos/old", strings.NewReader("new"), "image/png", "photos")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.PublicID == "photos/old" {
		t.Fatalf("replacement must mint a fresh public id")
	}
	if len(bucket.uploads) != 1 {
		t.Fatalf("expected one upload, got %v", bucket.uploads)
	}
}
