package notification

import (
	"context"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
)

// Fanout delivers an RSVP confirmation through every configured channel in turn.
type Fanout []ports.RSVPNotifier

func (f Fanout) NotifyRSVPCreated(ctx context.Context, user *domain.User, event *domain.Event) {
	for _, n := range f {
		n.NotifyRSVPCreated(ctx, user, event)
	}
}
