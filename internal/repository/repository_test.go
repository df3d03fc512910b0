package repository

import (
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// newMockDB returns a dbpg.DB backed by sqlmock. Retries are disabled so
// failing statements surface on the first attempt.
func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock, retry.Strategy) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return &dbpg.DB{Master: conn}, mock, retry.Strategy{Attempts: 1}
}

var eventRowColumns = []string{
	"id", "name", "description", "event_date", "event_time",
	"location", "category_id", "category_name", "organizer_id", "image",
	"attendee_count", "created_at", "updated_at",
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMigration_CascadesFromCategoryToRSVPs(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/00001_init.sql")
	require.NoError(t, err)
	schema := string(raw)

	assert.Regexp(t,
		regexp.MustCompile(`category_id\s+UUID\s+NOT NULL REFERENCES categories \(id\) ON DELETE CASCADE`),
		schema, "events must go with their category")
	assert.Regexp(t,
		regexp.MustCompile(`event_id\s+UUID\s+NOT NULL REFERENCES events \(id\) ON DELETE CASCADE`),
		schema, "rsvps must go with their event")
	assert.Regexp(t,
		regexp.MustCompile(`CONSTRAINT rsvps_user_event_key UNIQUE \(user_id, event_id\)`),
		schema)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%go\_meetup 100\%%`, containsPattern(`go_meetup 100%`))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
}
