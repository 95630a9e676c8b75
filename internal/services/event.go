package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veraroam/ambassador-backend/internal/apierr"
	"github.com/veraroam/ambassador-backend/internal/logger"
	"github.com/veraroam/ambassador-backend/internal/normalization"
	"github.com/veraroam/ambassador-backend/internal/repos"
	"github.com/veraroam/ambassador-backend/internal/types"
)

type EventInput struct {
	Title       string
	Description string
	Location    string
	StartsAt    time.Time
	// Capacity nil means "not supplied"; an explicit 0 writes through and
	// makes the event unlimited again.
	Capacity    *int
	File        io.Reader
	ContentType string
}

type EventService interface {
	Create(ctx context.Context, in EventInput) (*types.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*types.Event, error)
	List(ctx context.Context, upcomingOnly bool) ([]*types.Event, error)
	Update(ctx context.Context, id uuid.UUID, in EventInput) (*types.Event, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Register(ctx context.Context, eventID uuid.UUID, name, email string) (*types.EventRegistration, error)
}

type eventService struct {
	db               *gorm.DB
	log              *logger.Logger
	eventRepo        repos.EventRepo
	registrationRepo repos.EventRegistrationRepo
	media            MediaService
}

func NewEventService(
	db *gorm.DB,
	log *logger.Logger,
	eventRepo repos.EventRepo,
	registrationRepo repos.EventRegistrationRepo,
	media MediaService,
) EventService {
	serviceLog := log.With("service", "EventService")
	return &eventService{
		db:               db,
		log:              serviceLog,
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		media:            media,
	}
}

func (es *eventService) Create(ctx context.Context, in EventInput) (*types.Event, error) {
	if in.Title == "" || in.Description == "" || in.Location == "" || in.StartsAt.IsZero() {
		return nil, apierr.Validation("Missing required fields")
	}
	event := &types.Event{
		ID:            uuid.New(),
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		StartsAt:      in.StartsAt,
		Registrations: []types.EventRegistration{},
	}
	if in.Capacity != nil {
		event.Capacity = *in.Capacity
	}
	if in.File != nil {
		ref, err := es.media.Upload(ctx, in.File, in.ContentType, "events")
		if err != nil {
			return nil, err
		}
		event.Image = *ref
	}
	if _, err := es.eventRepo.Create(ctx, nil, event); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to create event: %w", err))
	}
	return event, nil
}

func (es *eventService) GetByID(ctx context.Context, id uuid.UUID) (*types.Event, error) {
	event, err := es.eventRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if event == nil {
		return nil, apierr.NotFound("event")
	}
	return event, nil
}

func (es *eventService) List(ctx context.Context, upcomingOnly bool) ([]*types.Event, error) {
	events, err := es.eventRepo.List(ctx, nil, upcomingOnly)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	return events, nil
}

func (es *eventService) Update(ctx context.Context, id uuid.UUID, in EventInput) (*types.Event, error) {
	event, err := es.eventRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if event == nil {
		return nil, apierr.NotFound("event")
	}
	if in.File != nil {
		ref, upErr := es.media.Replace(ctx, event.Image.PublicID, in.File, in.ContentType, "events")
		if upErr != nil {
			return nil, upErr
		}
		event.Image = *ref
	}
	if in.Title != "" {
		event.Title = in.Title
	}
	if in.Description != "" {
		event.Description = in.Description
	}
	if in.Location != "" {
		event.Location = in.Location
	}
	if !in.StartsAt.IsZero() {
		event.StartsAt = in.StartsAt
	}
	if in.Capacity != nil {
		event.Capacity = *in.Capacity
	}
	event.UpdatedAt = time.Now()
	if err := es.eventRepo.Save(ctx, nil, event); err != nil {
		return nil, apierr.Persistence(fmt.Errorf("failed to update event: %w", err))
	}
	return event, nil
}

func (es *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	event, err := es.eventRepo.GetByID(ctx, nil, id)
	if err != nil {
		return apierr.Persistence(err)
	}
	if event == nil {
		return apierr.NotFound("event")
	}
	es.media.Delete(ctx, event.Image.PublicID)
	err = es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := es.registrationRepo.DeleteByEventID(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete event registrations: %w", err)
		}
		if err := es.eventRepo.Delete(ctx, tx, id); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		return apierr.Persistence(err)
	}
	return nil
}

func (es *eventService) Register(ctx context.Context, eventID uuid.UUID, name, email string) (*types.EventRegistration, error) {
	name = normalization.TrimInputString(name)
	email = normalization.ParseInputString(email)
	if name == "" || email == "" {
		return nil, apierr.Validation("Missing required fields")
	}
	event, err := es.eventRepo.GetByID(ctx, nil, eventID)
	if err != nil {
		return nil, apierr.Persistence(err)
	}
	if event == nil {
		return nil, apierr.NotFound("event")
	}
	var registration *types.EventRegistration
	err = es.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := es.registrationRepo.ExistsByEventAndEmail(ctx, tx, eventID, email)
		if err != nil {
			return err
		}
		if exists {
			return apierr.New(http.StatusBadRequest, "already_registered", fmt.Errorf("email already registered for this event"))
		}
		if event.Capacity > 0 {
			count, err := es.registrationRepo.CountByEventID(ctx, tx, eventID)
			if err != nil {
				return err
			}
			if count >= int64(event.Capacity) {
				return apierr.New(http.StatusBadRequest, "event_full", fmt.Errorf("event is at capacity"))
			}
		}
		registration = &types.EventRegistration{
			ID:      uuid.New(),
			EventID: eventID,
			Name:    name,
			Email:   email,
		}
		_, err = es.registrationRepo.Create(ctx, tx, registration)
		return err
	})
	if err != nil {
		return nil, apierr.From(err)
	}
	return registration, nil
}
