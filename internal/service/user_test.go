package service

import (
	"context"
	"testing"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_UpdateProfile(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))
	actor := participant()
	chatID := int64(42)

	repo.EXPECT().GetByID(mock.Anything, actor.UserID).
		Return(&domain.User{ID: actor.UserID, ProfilePicture: domain.DefaultProfilePicture}, nil)
	repo.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.UpdateProfile(context.Background(), actor, domain.ProfileInput{
		Email:          " Pat@Example.com ",
		FirstName:      "Pat",
		PhoneNumber:    "+8801700000000",
		TelegramChatID: &chatID,
	})

	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", user.Email)
	assert.Equal(t, "Pat", user.FirstName)
	assert.Equal(t, domain.DefaultProfilePicture, user.ProfilePicture)
	require.NotNil(t, user.TelegramChatID)
	assert.Equal(t, int64(42), *user.TelegramChatID)
}

func TestUserService_UpdateProfile_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))
	actor := participant()

	repo.EXPECT().GetByID(mock.Anything, actor.UserID).Return(&domain.User{ID: actor.UserID}, nil)

	_, err := svc.UpdateProfile(context.Background(), actor, domain.ProfileInput{
		Email:       "bad",
		PhoneNumber: "1234567890123456",
	})

	requireFieldError(t, err, "email")
	requireFieldError(t, err, "phone_number")
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))
	actor := participant()

	repo.EXPECT().GetByID(mock.Anything, actor.UserID).Return(&domain.User{ID: actor.UserID}, nil)
	repo.EXPECT().UpdateProfile(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.UpdateProfile(context.Background(), actor, domain.ProfileInput{Email: "taken@example.com"})

	requireFieldError(t, err, "email")
}

func TestUserService_SetRole(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo, newTestLogger(t))
	target := &domain.User{ID: "u9", Roles: []domain.Role{domain.RoleOrganizer}}

	repo.EXPECT().SetRoles(mock.Anything, "u9", []domain.Role{domain.RoleOrganizer}).Return(nil)
	repo.EXPECT().GetByID(mock.Anything, "u9").Return(target, nil)

	got, err := svc.SetRole(context.Background(), admin(), "u9", domain.RoleOrganizer)

	require.NoError(t, err)
	assert.Equal(t, target, got)
}

func TestUserService_SetRole_Guards(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t), newTestLogger(t))
	ctx := context.Background()

	_, err := svc.SetRole(ctx, organizer(), "u9", domain.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.SetRole(ctx, admin(), "u9", domain.Role("Janitor"))
	requireFieldError(t, err, "role")

	_, err = svc.List(ctx, participant())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}
