package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCategoryRepo(t *testing.T) (*CategoryRepository, sqlmock.Sqlmock) {
	db, mock, strategy := newMockDB(t)
	repo := NewCategoryRepo(db)
	repo.strategy = strategy
	return repo, mock
}

func TestCategoryRepository_Delete_IsSingleCascadingStatement(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c1"))
}

func TestCategoryRepository_Delete_Missing(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "c1"), domain.ErrCategoryNotFound)
}

func TestCategoryRepository_CountRSVPs_CoversAllEventsInCategory(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"FROM rsvps a JOIN events e ON e.id = a.event_id WHERE e.category_id = $1",
	)).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountRSVPs(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestCategoryRepository_Create_DuplicateName(t *testing.T) {
	repo, mock := newTestCategoryRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO categories")).
		WithArgs("c1", "Tech", "").
		WillReturnError(&pq.Error{Code: codeUniqueViolation, Constraint: "categories_name_key"})

	err := repo.Create(context.Background(), &domain.Category{ID: "c1", Name: "Tech"})

	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}
