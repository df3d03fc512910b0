package service

import (
	"context"
	"errors"
	"testing"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.Create(context.Background(), organizer(), domain.CategoryInput{Name: "  Music ", Description: "Live"})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Music", c.Name)
	assert.Equal(t, "Live", c.Description)
}

func TestCategoryService_Create_DuplicateName(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCategoryNameTaken)

	_, err := svc.Create(context.Background(), admin(), domain.CategoryInput{Name: "Music"})

	requireFieldError(t, err, "name")
}

func TestCategoryService_Create_EmptyName(t *testing.T) {
	svc := NewCategoryService(mocks.NewMockCategoryRepo(t), newTestLogger(t))

	_, err := svc.Create(context.Background(), admin(), domain.CategoryInput{Name: " "})

	requireFieldError(t, err, "name")
}

func TestCategoryService_ParticipantDenied(t *testing.T) {
	svc := NewCategoryService(mocks.NewMockCategoryRepo(t), newTestLogger(t))
	ctx := context.Background()

	_, err := svc.List(ctx, participant())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.Create(ctx, participant(), domain.CategoryInput{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	err = svc.Delete(ctx, nil, "c1")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestCategoryService_Update(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo, newTestLogger(t))
	existing := &domain.Category{ID: "c1", Name: "Music", EventCount: 2}

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(c *domain.Category) bool {
		return c.ID == "c1" && c.Name == "Concerts"
	})).Return(nil)

	got, err := svc.Update(context.Background(), organizer(), "c1", domain.CategoryInput{Name: "Concerts"})

	require.NoError(t, err)
	assert.Equal(t, "Concerts", got.Name)
	assert.Equal(t, 2, got.EventCount)
}

func TestCategoryService_DeletePreview(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo, newTestLogger(t))

	repo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1", Name: "Music", EventCount: 3}, nil)
	repo.EXPECT().CountRSVPs(mock.Anything, "c1").Return(11, nil)

	impact, err := svc.DeletePreview(context.Background(), organizer(), "c1")

	require.NoError(t, err)
	assert.Equal(t, &domain.DeletionImpact{Type: "Category", ID: "c1", Name: "Music", Events: 3, RSVPs: 11}, impact)
}

func TestCategoryService_Delete(t *testing.T) {
	repo := mocks.NewMockCategoryRepo(t)
	svc := NewCategoryService(repo, newTestLogger(t))

	repo.EXPECT().Delete(mock.Anything, "c1").Return(nil)
	repo.EXPECT().Delete(mock.Anything, "c2").Return(domain.ErrCategoryNotFound)
	repo.EXPECT().Delete(mock.Anything, "c3").Return(errors.New("db down"))

	require.NoError(t, svc.Delete(context.Background(), organizer(), "c1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), organizer(), "c2"), domain.ErrCategoryNotFound)
	assert.ErrorContains(t, svc.Delete(context.Background(), organizer(), "c3"), "db down")
}
