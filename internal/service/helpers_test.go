package service

import (
	"testing"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

var testNow = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func organizer() *domain.Principal {
	return &domain.Principal{UserID: "11111111-1111-1111-1111-111111111111", Username: "org", Roles: []domain.Role{domain.RoleOrganizer}}
}

func participant() *domain.Principal {
	return &domain.Principal{UserID: "22222222-2222-2222-2222-222222222222", Username: "pat", Roles: []domain.Role{domain.RoleParticipant}}
}

func admin() *domain.Principal {
	return &domain.Principal{UserID: "33333333-3333-3333-3333-333333333333", Username: "adm", Roles: []domain.Role{domain.RoleAdmin}}
}

func superuser() *domain.Principal {
	return &domain.Principal{UserID: "44444444-4444-4444-4444-444444444444", Username: "root", IsSuperuser: true}
}

// requireFieldError asserts err is a validation error naming field.
func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	require.ErrorIs(t, err, domain.ErrValidation)
	var v *domain.ValidationError
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Fields, field)
}
