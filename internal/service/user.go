package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/brinto-swe/event-management-system/internal/access"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type UserService struct {
	repo   ports.UserRepo
	logger logger.Logger
}

func NewUserService(repo ports.UserRepo, logger logger.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) GetProfile(ctx context.Context, actor *domain.Principal) (*domain.User, error) {
	if d := access.Authorize(actor); !d.Allowed {
		return nil, d.Err()
	}
	return s.repo.GetByID(ctx, actor.UserID)
}

func (s *UserService) UpdateProfile(ctx context.Context, actor *domain.Principal, in domain.ProfileInput) (*domain.User, error) {
	if d := access.Authorize(actor); !d.Allowed {
		return nil, d.Err()
	}

	user, err := s.repo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	v := domain.NewValidationError()
	if in.Email == "" {
		v.Add("email", "This field is required.")
	} else if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		v.Add("email", "Enter a valid email address.")
	}
	if len(in.PhoneNumber) > 15 {
		v.Add("phone_number", "Ensure this value has at most 15 characters.")
	}
	if err = v.OrNil(); err != nil {
		return nil, err
	}

	user.Email = in.Email
	user.FirstName = strings.TrimSpace(in.FirstName)
	user.LastName = strings.TrimSpace(in.LastName)
	user.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	user.TelegramChatID = in.TelegramChatID
	if in.ProfilePicture != "" {
		user.ProfilePicture = in.ProfilePicture
	}

	if err = s.repo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, fieldError("email", "A user with that email already exists.")
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

func (s *UserService) List(ctx context.Context, actor *domain.Principal) ([]*domain.User, error) {
	if d := access.Authorize(actor, domain.RoleAdmin); !d.Allowed {
		return nil, d.Err()
	}
	return s.repo.List(ctx)
}

// SetRole replaces the user's role set with the single given role.
func (s *UserService) SetRole(ctx context.Context, actor *domain.Principal, userID string, role domain.Role) (*domain.User, error) {
	if d := access.Authorize(actor, domain.RoleAdmin); !d.Allowed {
		return nil, d.Err()
	}
	if !role.Valid() {
		return nil, fieldError("role", "Select a valid choice.")
	}

	if err := s.repo.SetRoles(ctx, userID, []domain.Role{role}); err != nil {
		return nil, fmt.Errorf("set roles: %w", err)
	}

	s.logger.Info("user role changed",
		logger.String("user_id", userID),
		logger.String("role", string(role)),
		logger.String("by", actor.UserID),
	)

	return s.repo.GetByID(ctx, userID)
}
