package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brinto-swe/event-management-system/internal/access"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

var eventEditors = []domain.Role{domain.RoleOrganizer, domain.RoleAdmin}

type EventService struct {
	repo         ports.EventRepo
	categoryRepo ports.CategoryRepo
	rsvpRepo     ports.RSVPRepo
	logger       logger.Logger
	loc          *time.Location
	now          func() time.Time
}

func NewEventService(
	repo ports.EventRepo,
	categoryRepo ports.CategoryRepo,
	rsvpRepo ports.RSVPRepo,
	loc *time.Location,
	logger logger.Logger,
) *EventService {
	return &EventService{
		repo:         repo,
		categoryRepo: categoryRepo,
		rsvpRepo:     rsvpRepo,
		logger:       logger,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fieldError("to", "End date must not be before start date.")
	}
	if filter.CategoryID != "" {
		if _, err := uuid.Parse(filter.CategoryID); err != nil {
			return nil, fieldError("category", "Select a valid choice.")
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attendees, err := s.rsvpRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	return &domain.EventDetails{Event: *event, Attendees: attendees}, nil
}

// FormOptions returns the categories an event form offers.
func (s *EventService) FormOptions(ctx context.Context, actor *domain.Principal) ([]*domain.Category, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}
	return s.categoryRepo.List(ctx)
}

func (s *EventService) Create(ctx context.Context, actor *domain.Principal, in domain.EventInput) (*domain.Event, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}

	event := &domain.Event{ID: uuid.New().String(), OrganizerID: actor.UserID}
	if err := s.apply(ctx, event, in); err != nil {
		return nil, err
	}
	event.CreatedAt = event.UpdatedAt

	if err := s.repo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fieldError("category", "Select a valid choice.")
		}
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("organizer_id", actor.UserID),
	)

	return event, nil
}

// GetForEdit returns the event for prefilling an edit form.
func (s *EventService) GetForEdit(ctx context.Context, actor *domain.Principal, id string) (*domain.Event, error) {
	return s.loadManaged(ctx, actor, id)
}

func (s *EventService) Update(ctx context.Context, actor *domain.Principal, id string, in domain.EventInput) (*domain.Event, error) {
	event, err := s.loadManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	updated := *event
	if err = s.apply(ctx, &updated, in); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, fieldError("category", "Select a valid choice.")
		}
		return nil, fmt.Errorf("update event: %w", err)
	}

	s.logger.Info("event updated",
		logger.String("event_id", id),
		logger.String("by", actor.UserID),
	)

	return &updated, nil
}

func (s *EventService) DeletePreview(ctx context.Context, actor *domain.Principal, id string) (*domain.DeletionImpact, error) {
	event, err := s.loadManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	return &domain.DeletionImpact{
		Type:  "Event",
		ID:    event.ID,
		Name:  event.Name,
		RSVPs: event.AttendeeCount,
	}, nil
}

func (s *EventService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	if _, err := s.loadManaged(ctx, actor, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted",
		logger.String("event_id", id),
		logger.String("by", actor.UserID),
	)

	return nil
}

func (s *EventService) loadManaged(ctx context.Context, actor *domain.Principal, id string) (*domain.Event, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if d := access.CanManageEvent(actor, event); !d.Allowed {
		return nil, d.Err()
	}

	return event, nil
}

// apply validates in and copies it onto e. On failure e is left untouched.
func (s *EventService) apply(ctx context.Context, e *domain.Event, in domain.EventInput) error {
	v := domain.NewValidationError()
	today := dateOf(s.now().In(s.loc))

	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		v.Add("name", "This field is required.")
	case len(name) > 200:
		v.Add("name", "Ensure this value has at most 200 characters.")
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		v.Add("description", "This field is required.")
	}

	var date time.Time
	if in.Date == "" {
		v.Add("date", "This field is required.")
	} else if d, err := time.Parse(domain.DateLayout, in.Date); err != nil {
		v.Add("date", "Enter a valid date.")
	} else if d.Before(today) {
		v.Add("date", "Event date cannot be in the past.")
	} else {
		date = d
	}

	var clock string
	if in.Time == "" {
		v.Add("time", "This field is required.")
	} else if t, ok := parseClock(in.Time); !ok {
		v.Add("time", "Enter a valid time.")
	} else {
		clock = t
	}

	location := strings.TrimSpace(in.Location)
	switch {
	case location == "":
		v.Add("location", "This field is required.")
	case len(location) > 200:
		v.Add("location", "Ensure this value has at most 200 characters.")
	}

	var category *domain.Category
	if in.CategoryID == "" {
		v.Add("category", "This field is required.")
	} else if _, err := uuid.Parse(in.CategoryID); err != nil {
		v.Add("category", "Select a valid choice.")
	} else {
		c, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
		switch {
		case errors.Is(err, domain.ErrCategoryNotFound):
			v.Add("category", "Select a valid choice.")
		case err != nil:
			return fmt.Errorf("get category: %w", err)
		default:
			category = c
		}
	}

	if err := v.OrNil(); err != nil {
		return err
	}

	e.Name = name
	e.Description = description
	e.Date = date
	e.Time = clock
	e.Location = location
	e.CategoryID = category.ID
	e.CategoryName = category.Name
	if img := strings.TrimSpace(in.Image); img != "" {
		e.Image = img
	} else if e.Image == "" {
		e.Image = domain.DefaultEventImage
	}
	e.UpdatedAt = s.now().UTC()

	return nil
}

func parseClock(s string) (string, bool) {
	for _, layout := range []string{domain.TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(domain.TimeLayout), true
		}
	}
	return "", false
}
