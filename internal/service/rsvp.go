package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/brinto-swe/event-management-system/internal/access"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RSVPService struct {
	rsvpRepo  ports.RSVPRepo
	eventRepo ports.EventRepo
	userRepo  ports.UserRepo
	notifier  ports.RSVPNotifier
	logger    logger.Logger
	now       func() time.Time
}

func NewRSVPService(
	rsvpRepo ports.RSVPRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.RSVPNotifier,
	logger logger.Logger,
) *RSVPService {
	return &RSVPService{
		rsvpRepo:  rsvpRepo,
		eventRepo: eventRepo,
		userRepo:  userRepo,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// Register records that actor attends the event, at most once per pair.
// A repeat is reported as RSVPAlreadyRegistered rather than an error. The
// confirmation is sent in the background and never affects the outcome.
func (s *RSVPService) Register(ctx context.Context, actor *domain.Principal, eventID string) (*domain.RSVPOutcome, error) {
	if d := access.Authorize(actor); !d.Allowed {
		return nil, d.Err()
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	rsvp := &domain.RSVP{
		ID:        uuid.New().String(),
		UserID:    actor.UserID,
		EventID:   eventID,
		CreatedAt: s.now().UTC(),
	}
	if err = s.rsvpRepo.Create(ctx, rsvp); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			s.logger.Info("rsvp already exists",
				logger.String("event_id", eventID),
				logger.String("user_id", actor.UserID),
			)
			return &domain.RSVPOutcome{Status: domain.RSVPAlreadyRegistered, Event: event}, nil
		}
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	s.logger.Info("rsvp created",
		logger.String("rsvp_id", rsvp.ID),
		logger.String("event_id", eventID),
		logger.String("user_id", actor.UserID),
	)
	event.AttendeeCount++

	user, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("failed to get user for rsvp notification",
			logger.String("user_id", actor.UserID),
			logger.String("error", err.Error()),
		)
	} else {
		go s.notifier.NotifyRSVPCreated(context.WithoutCancel(ctx), user, event)
	}

	return &domain.RSVPOutcome{Status: domain.RSVPRegistered, RSVP: rsvp, Event: event}, nil
}

func (s *RSVPService) ListMine(ctx context.Context, actor *domain.Principal) ([]*domain.UserRSVP, error) {
	if d := access.Authorize(actor); !d.Allowed {
		return nil, d.Err()
	}
	return s.rsvpRepo.ListByUser(ctx, actor.UserID)
}
