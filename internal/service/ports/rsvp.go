package ports

import (
	"context"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

type RSVPRepo interface {
	Create(ctx context.Context, r *domain.RSVP) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Attendee, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.UserRSVP, error)
}

// StatsRepo backs the dashboards. An empty organizerID means all events.
type StatsRepo interface {
	EventCounts(ctx context.Context, organizerID string, today time.Time) (domain.EventCounts, error)
	UserCounts(ctx context.Context) (domain.UserCounts, error)
	CountRSVPs(ctx context.Context, organizerID string) (int, error)
	EventsOn(ctx context.Context, day time.Time, organizerID string) ([]*domain.Event, error)
}
