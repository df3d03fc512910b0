package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// StatsRepository serves dashboard aggregates. organizerID == "" means every event.
type StatsRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewStatsRepo(db *dbpg.DB) *StatsRepository {
	return &StatsRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *StatsRepository) EventCounts(ctx context.Context, organizerID string, today time.Time) (domain.EventCounts, error) {
	query := `SELECT COUNT(*),
			         COUNT(*) FILTER (WHERE event_date > $1),
			         COUNT(*) FILTER (WHERE event_date < $1)
			  FROM events
			  WHERE ($2::text = '' OR organizer_id::text = $2)`

	var c domain.EventCounts
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, today, organizerID)
	if err != nil {
		return c, fmt.Errorf("event counts: %w", err)
	}
	if err = row.Scan(&c.Total, &c.Upcoming, &c.Past); err != nil {
		return c, fmt.Errorf("scan event counts: %w", err)
	}

	return c, nil
}

func (r *StatsRepository) UserCounts(ctx context.Context) (domain.UserCounts, error) {
	query := `SELECT COUNT(*),
			         COUNT(*) FILTER (WHERE is_active),
			         (SELECT COUNT(*) FROM user_roles WHERE role = $1),
			         (SELECT COUNT(*) FROM user_roles WHERE role = $2),
			         (SELECT COUNT(*) FROM user_roles WHERE role = $3)
			  FROM users`

	var c domain.UserCounts
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		domain.RoleParticipant, domain.RoleOrganizer, domain.RoleAdmin,
	)
	if err != nil {
		return c, fmt.Errorf("user counts: %w", err)
	}
	if err = row.Scan(&c.Total, &c.Active, &c.Participants, &c.Organizers, &c.Admins); err != nil {
		return c, fmt.Errorf("scan user counts: %w", err)
	}

	return c, nil
}

func (r *StatsRepository) CountRSVPs(ctx context.Context, organizerID string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM rsvps a
			  JOIN events e ON e.id = a.event_id
			  WHERE ($1::text = '' OR e.organizer_id::text = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, organizerID)
	if err != nil {
		return 0, fmt.Errorf("count rsvps: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan rsvp count: %w", err)
	}

	return n, nil
}

func (r *StatsRepository) EventsOn(ctx context.Context, day time.Time, organizerID string) ([]*domain.Event, error) {
	query := `SELECT` + eventColumns + eventFrom + `
		WHERE e.event_date = $1 AND ($2::text = '' OR e.organizer_id::text = $2)
		ORDER BY e.event_time, e.name`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, day, organizerID)
	if err != nil {
		return nil, fmt.Errorf("events on day: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}
