package ports

import (
	"context"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

type ActivationSender interface {
	SendActivation(ctx context.Context, user *domain.User, link string) error
}

// RSVPNotifier delivers best-effort confirmations; implementations log their own failures.
type RSVPNotifier interface {
	NotifyRSVPCreated(ctx context.Context, user *domain.User, event *domain.Event)
}
