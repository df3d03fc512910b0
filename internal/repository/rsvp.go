package repository

import (
	"context"
	"fmt"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RSVPRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRSVPRepo(db *dbpg.DB) *RSVPRepository {
	return &RSVPRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create relies on the (user_id, event_id) unique constraint: of two racing
// inserts for the same pair, the loser gets ErrAlreadyRegistered. Inserts go
// straight to the primary without retry since a constraint violation is final.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `INSERT INTO rsvps (id, user_id, event_id, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Master.ExecContext(ctx, query, rsvp.ID, rsvp.UserID, rsvp.EventID, rsvp.CreatedAt)
	if err != nil {
		code, constraint := pgViolation(err)
		switch {
		case code == codeUniqueViolation:
			return domain.ErrAlreadyRegistered
		case code == codeForeignKeyViolation && constraint == "rsvps_event_id_fkey":
			return domain.ErrEventNotFound
		case code == codeForeignKeyViolation:
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert rsvp: %w", err)
	}

	return nil
}

func (r *RSVPRepository) ListByEvent(ctx context.Context, eventID string) ([]domain.Attendee, error) {
	query := `SELECT u.id, u.username, u.first_name, u.last_name, a.created_at
			  FROM rsvps a
			  JOIN users u ON u.id = a.user_id
			  WHERE a.event_id = $1
			  ORDER BY a.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	res := make([]domain.Attendee, 0)
	for rows.Next() {
		var a domain.Attendee
		if err = rows.Scan(&a.UserID, &a.Username, &a.FirstName, &a.LastName, &a.RSVPAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}

func (r *RSVPRepository) ListByUser(ctx context.Context, userID string) ([]*domain.UserRSVP, error) {
	query := `SELECT a.id, a.user_id, a.event_id, a.created_at,` + eventColumns + eventFrom + `
		JOIN rsvps a ON a.event_id = e.id
		WHERE a.user_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list rsvps by user: %w", err)
	}
	defer rows.Close()

	var res []*domain.UserRSVP
	for rows.Next() {
		var ur domain.UserRSVP
		e := &ur.Event
		if err = rows.Scan(
			&ur.RSVP.ID, &ur.RSVP.UserID, &ur.RSVP.EventID, &ur.RSVP.CreatedAt,
			&e.ID, &e.Name, &e.Description, &e.Date, &e.Time,
			&e.Location, &e.CategoryID, &e.CategoryName, &e.OrganizerID, &e.Image,
			&e.AttendeeCount,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		res = append(res, &ur)
	}

	return res, rows.Err()
}
