package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type fakeDestinationRepo struct {
	destinations map[uuid.UUID]*types.Destination
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{destinations: map[uuid.UUID]*types.Destination{}}
}

func (fr *fakeDestinationRepo) Create(ctx context.Context, tx *gorm.DB, destination *types.Destination) (*types.Destination, error) {
	fr.destinations[destination.ID] = destination
	return destination, nil
}

func (fr *fakeDestinationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Destination, error) {
	return fr.destinations[id], nil
}

func (fr *fakeDestinationRepo) List(ctx context.Context, tx *gorm.DB, filter repos.DestinationFilter) ([]*types.Destination, error) {
	out := make([]*types.Destination, 0, len(fr.destinations))
	for _, d := range fr.destinations {
		if filter.Region == "" || d.Region == filter.Region {
			out = append(out, d)
		}
	}
	return out, nil
}

func (fr *fakeDestinationRepo) Save(ctx context.Context, tx *gorm.DB, destination *types.Destination) error {
	fr.destinations[destination.ID] = destination
	return nil
}

func (fr *fakeDestinationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	delete(fr.destinations, id)
	return nil
}

func validDestinationInput() DestinationInput {
	return DestinationInput{
		Name:        "Azure Cove",
		Region:      "south coast",
		Description: "Sheltered bay with morning markets",
		File:        strings.NewReader("jpeg"),
		ContentType: "image/jpeg",
	}
}

func TestDestinationCreate_RequiresRegion(t *testing.T) {
	media := &fakeMedia{}
	service := NewDestinationService(testDB(t), logger.NewNop(), newFakeDestinationRepo(), media)

	in := validDestinationInput()
	in.Region = ""
	_, err := service.Create(context.Background(), in)
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != "missing_fields" {
		t.Fatalf("expected missing_fields, got %v", err)
	}
	if len(media.uploads) != 0 {
		t.Fatalf("rejected destination must not upload, got %v", media.uploads)
	}
}

func TestDestinationCreate_TipsAreOptional(t *testing.T) {
	media := &fakeMedia{}
	repo := newFakeDestinationRepo()
	service := NewDestinationService(testDB(t), logger.NewNop(), repo, media)

	destination, err := service.Create(context.Background(), validDestinationInput())
	if err != nil {
		t.Fatalf("create without tips: %v", err)
	}
	if destination.Tips != "" {
		t.Fatalf("tips should stay empty, got %q", destination.Tips)
	}
	if destination.Image.PublicID == "" {
		t.Fatalf("destination missing asset ref")
	}
	if len(repo.destinations) != 1 {
		t.Fatalf("destination row not persisted")
	}
}
