package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/brinto-swe/event-management-system/internal/auth"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type accountFixture struct {
	users    *mocks.MockUserRepo
	sessions *mocks.MockSessionRepo
	sender   *mocks.MockActivationSender
	tokens   *auth.ActivationTokens
	hasher   *auth.PasswordHasher
	svc      *AccountService
}

func newAccountFixture(t *testing.T) *accountFixture {
	f := &accountFixture{
		users:    mocks.NewMockUserRepo(t),
		sessions: mocks.NewMockSessionRepo(t),
		sender:   mocks.NewMockActivationSender(t),
		tokens:   auth.NewActivationTokens("test-secret-key-123", 72*time.Hour),
		hasher:   auth.NewPasswordHasher(bcrypt.MinCost),
	}
	f.svc = NewAccountService(
		f.users, f.sessions, f.tokens, f.hasher, f.sender,
		"http://localhost:8080/", 24*time.Hour, newTestLogger(t),
	)
	f.svc.now = fixedClock
	return f
}

func validSignup() domain.SignupInput {
	return domain.SignupInput{
		Username:  "alice",
		Email:     "Alice@Example.com",
		FirstName: "Alice",
		Password1: "s3cret-pass",
		Password2: "s3cret-pass",
	}
}

func TestAccountService_Signup_CreatesPendingParticipant(t *testing.T) {
	f := newAccountFixture(t)

	var stored *domain.User
	f.users.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User) { stored = u }).
		Return(nil)
	f.sender.EXPECT().SendActivation(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, u *domain.User, link string) {
			assert.True(t, strings.HasPrefix(link, "http://localhost:8080/activate/"+auth.EncodeUID(u.ID)+"/"))
			assert.True(t, strings.HasSuffix(link, "/"))
		}).
		Return(nil)

	user, err := f.svc.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Same(t, stored, user)
	assert.False(t, user.IsActive)
	assert.Equal(t, []domain.Role{domain.RoleParticipant}, user.Roles)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, f.hasher.Compare(user.PasswordHash, "s3cret-pass"))
}

func TestAccountService_Signup_MailFailureDoesNotFail(t *testing.T) {
	f := newAccountFixture(t)

	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.sender.EXPECT().SendActivation(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	user, err := f.svc.Signup(context.Background(), validSignup())

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestAccountService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*domain.SignupInput)
		field string
	}{
		{"missing username", func(in *domain.SignupInput) { in.Username = " " }, "username"},
		{"bad email", func(in *domain.SignupInput) { in.Email = "not-an-email" }, "email"},
		{"short password", func(in *domain.SignupInput) { in.Password1, in.Password2 = "short", "short" }, "password1"},
		{"mismatch", func(in *domain.SignupInput) { in.Password2 = "different-pass" }, "password2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			in := validSignup()
			tt.edit(&in)

			_, err := f.svc.Signup(context.Background(), in)

			requireFieldError(t, err, tt.field)
		})
	}
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	f := newAccountFixture(t)

	f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := f.svc.Signup(context.Background(), validSignup())

	requireFieldError(t, err, "email")
}

func pendingUser(t *testing.T, hasher *auth.PasswordHasher) *domain.User {
	t.Helper()
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	return &domain.User{
		ID:           "55555555-5555-5555-5555-555555555555",
		Username:     "alice",
		PasswordHash: hash,
		Roles:        []domain.Role{domain.RoleParticipant},
	}
}

func TestAccountService_Activate_Success(t *testing.T) {
	f := newAccountFixture(t)
	user := pendingUser(t, f.hasher)
	token := f.tokens.Make(user)

	f.users.EXPECT().GetByID(mock.Anything, user.ID).Return(user, nil)
	f.users.EXPECT().Activate(mock.Anything, user.ID).Return(nil)

	got, err := f.svc.Activate(context.Background(), auth.EncodeUID(user.ID), token)

	require.NoError(t, err)
	assert.True(t, got.IsActive)
}

func TestAccountService_Activate_TokenForAnotherAccount(t *testing.T) {
	f := newAccountFixture(t)
	alice := pendingUser(t, f.hasher)
	bob := pendingUser(t, f.hasher)
	bob.ID = "66666666-6666-6666-6666-666666666666"

	f.users.EXPECT().GetByID(mock.Anything, bob.ID).Return(bob, nil)

	_, err := f.svc.Activate(context.Background(), auth.EncodeUID(bob.ID), f.tokens.Make(alice))

	assert.ErrorIs(t, err, domain.ErrInvalidActivationToken)
}

func TestAccountService_Activate_AlreadyActive(t *testing.T) {
	f := newAccountFixture(t)
	user := pendingUser(t, f.hasher)
	token := f.tokens.Make(user)
	user.IsActive = true

	f.users.EXPECT().GetByID(mock.Anything, user.ID).Return(user, nil)

	_, err := f.svc.Activate(context.Background(), auth.EncodeUID(user.ID), token)

	assert.ErrorIs(t, err, domain.ErrInvalidActivationToken)
}

func TestAccountService_Activate_MalformedUID(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.svc.Activate(context.Background(), auth.EncodeUID("not-a-uuid"), "x-y")

	assert.ErrorIs(t, err, domain.ErrInvalidActivationToken)
}

func TestAccountService_Activate_UnknownUser(t *testing.T) {
	f := newAccountFixture(t)
	id := "77777777-7777-7777-7777-777777777777"

	f.users.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.Activate(context.Background(), auth.EncodeUID(id), "x-y")

	assert.ErrorIs(t, err, domain.ErrInvalidActivationToken)
}

func TestAccountService_Login_PendingAccountRefused(t *testing.T) {
	f := newAccountFixture(t)
	user := pendingUser(t, f.hasher)

	f.users.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)

	_, err := f.svc.Login(context.Background(), "alice", "s3cret-pass")

	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	f := newAccountFixture(t)
	user := pendingUser(t, f.hasher)
	user.IsActive = true

	f.users.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)

	_, err := f.svc.Login(context.Background(), "alice", "wrong-pass")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	f := newAccountFixture(t)

	f.users.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := f.svc.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAccountService_Login_Success(t *testing.T) {
	f := newAccountFixture(t)
	user := pendingUser(t, f.hasher)
	user.IsActive = true

	var session *domain.Session
	f.users.EXPECT().GetByUsername(mock.Anything, "alice").Return(user, nil)
	f.sessions.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s *domain.Session) { session = s }).
		Return(nil)
	f.users.EXPECT().TouchLastLogin(mock.Anything, user.ID, testNow).Return(nil)

	res, err := f.svc.Login(context.Background(), "alice", "s3cret-pass")

	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, auth.HashSessionToken(res.Token), session.TokenHash)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, testNow.Add(24*time.Hour), res.ExpiresAt)
	require.NotNil(t, res.User.LastLogin)
}

func TestAccountService_Authenticate(t *testing.T) {
	f := newAccountFixture(t)
	user := &domain.User{ID: "u1", Username: "alice", IsActive: true, Roles: []domain.Role{domain.RoleOrganizer}}

	f.sessions.EXPECT().GetUser(mock.Anything, auth.HashSessionToken("tok")).Return(user, nil)

	p, err := f.svc.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.True(t, p.HasRole(domain.RoleOrganizer))
}

func TestAccountService_Authenticate_EmptyToken(t *testing.T) {
	f := newAccountFixture(t)

	_, err := f.svc.Authenticate(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAccountService_Logout(t *testing.T) {
	f := newAccountFixture(t)

	f.sessions.EXPECT().Delete(mock.Anything, auth.HashSessionToken("tok")).Return(nil)

	require.NoError(t, f.svc.Logout(context.Background(), "tok"))
	require.NoError(t, f.svc.Logout(context.Background(), ""))
}

func TestAccountService_Cleanup(t *testing.T) {
	f := newAccountFixture(t)

	f.users.EXPECT().DeletePendingBefore(mock.Anything, testNow.Add(-72*time.Hour)).Return(int64(3), nil)
	f.sessions.EXPECT().DeleteExpired(mock.Anything).Return(int64(5), nil)

	res, err := f.svc.Cleanup(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CleanupResult{PendingAccounts: 3, Sessions: 5}, res)
}
