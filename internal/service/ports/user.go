package ports

import (
	"context"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Activate(ctx context.Context, id string) error
	UpdateProfile(ctx context.Context, user *domain.User) error
	SetRoles(ctx context.Context, id string, roles []domain.Role) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	DeletePendingBefore(ctx context.Context, before time.Time) (int64, error)
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetUser(ctx context.Context, tokenHash string) (*domain.User, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
