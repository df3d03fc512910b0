package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/brinto-swe/event-management-system/internal/auth"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const minPasswordLength = 8

type AccountService struct {
	users      ports.UserRepo
	sessions   ports.SessionRepo
	tokens     *auth.ActivationTokens
	hasher     *auth.PasswordHasher
	sender     ports.ActivationSender
	siteURL    string
	sessionTTL time.Duration
	logger     logger.Logger
	now        func() time.Time
}

func NewAccountService(
	users ports.UserRepo,
	sessions ports.SessionRepo,
	tokens *auth.ActivationTokens,
	hasher *auth.PasswordHasher,
	sender ports.ActivationSender,
	siteURL string,
	sessionTTL time.Duration,
	logger logger.Logger,
) *AccountService {
	return &AccountService{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		hasher:     hasher,
		sender:     sender,
		siteURL:    strings.TrimRight(siteURL, "/"),
		sessionTTL: sessionTTL,
		logger:     logger,
		now:        time.Now,
	}
}

// Signup creates a pending account with the default role and mails its
// activation link. A failed mail is logged; the account stays pending.
func (s *AccountService) Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateSignup(in); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password1)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Username:       in.Username,
		Email:          in.Email,
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		PasswordHash:   hash,
		ProfilePicture: domain.DefaultProfilePicture,
		IsActive:       false,
		Roles:          []domain.Role{domain.DefaultRole},
		CreatedAt:      s.now().UTC(),
	}

	if err = s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			return nil, fieldError("username", "A user with that username already exists.")
		case errors.Is(err, domain.ErrEmailTaken):
			return nil, fieldError("email", "A user with that email already exists.")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("account created",
		logger.String("user_id", user.ID),
		logger.String("username", user.Username),
	)

	if err = s.sender.SendActivation(ctx, user, s.ActivationLink(user)); err != nil {
		s.logger.Error("failed to send activation email",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
	}

	return user, nil
}

func validateSignup(in domain.SignupInput) error {
	v := domain.NewValidationError()

	if in.Username == "" {
		v.Add("username", "This field is required.")
	} else if len(in.Username) > 150 {
		v.Add("username", "Ensure this value has at most 150 characters.")
	}
	if in.Email == "" {
		v.Add("email", "This field is required.")
	} else if addr, err := mail.ParseAddress(in.Email); err != nil || addr.Address != in.Email {
		v.Add("email", "Enter a valid email address.")
	}
	if in.Password1 == "" {
		v.Add("password1", "This field is required.")
	} else if len(in.Password1) < minPasswordLength {
		v.Add("password1", fmt.Sprintf("This password is too short. It must contain at least %d characters.", minPasswordLength))
	}
	if in.Password2 == "" {
		v.Add("password2", "This field is required.")
	} else if in.Password1 != in.Password2 {
		v.Add("password2", "Passwords do not match.")
	}

	return v.OrNil()
}

func (s *AccountService) ActivationLink(u *domain.User) string {
	return fmt.Sprintf("%s/activate/%s/%s/", s.siteURL, auth.EncodeUID(u.ID), s.tokens.Make(u))
}

// Activate moves the account referenced by uid from pending to active when
// token verifies against that exact account.
func (s *AccountService) Activate(ctx context.Context, uid, token string) (*domain.User, error) {
	id, err := auth.DecodeUID(uid)
	if err != nil {
		return nil, domain.ErrInvalidActivationToken
	}
	if _, err = uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidActivationToken
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidActivationToken
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.IsActive || !s.tokens.Check(user, token) {
		return nil, domain.ErrInvalidActivationToken
	}

	if err = s.users.Activate(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("activate: %w", err)
	}
	user.IsActive = true

	s.logger.Info("account activated", logger.String("user_id", user.ID))

	return user, nil
}

func (s *AccountService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	token, hash, err := auth.NewSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := &domain.Session{
		TokenHash: hash,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if err = s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("failed to record last login",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
	} else {
		user.LastLogin = &now
	}

	s.logger.Info("user logged in", logger.String("user_id", user.ID))

	return &domain.LoginResult{User: user, Token: token, ExpiresAt: session.ExpiresAt}, nil
}

func (s *AccountService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, auth.HashSessionToken(token))
}

// Authenticate resolves a session cookie to a principal. Roles are read from
// the store on every call.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.sessions.GetUser(ctx, auth.HashSessionToken(token))
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrSessionNotFound
	}

	return user.Principal(), nil
}

// Cleanup drops pending accounts whose activation window has passed, freeing
// their username and email for a fresh signup, and expired sessions.
func (s *AccountService) Cleanup(ctx context.Context) (domain.CleanupResult, error) {
	var res domain.CleanupResult

	cutoff := s.now().UTC().Add(-s.tokens.TTL())
	n, err := s.users.DeletePendingBefore(ctx, cutoff)
	if err != nil {
		return res, fmt.Errorf("delete pending accounts: %w", err)
	}
	res.PendingAccounts = n

	n, err = s.sessions.DeleteExpired(ctx)
	if err != nil {
		return res, fmt.Errorf("delete expired sessions: %w", err)
	}
	res.Sessions = n

	return res, nil
}
