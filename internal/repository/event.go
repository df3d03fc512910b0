package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `
	e.id, e.name, e.description, e.event_date, to_char(e.event_time, 'HH24:MI'),
	e.location, e.category_id, c.name, e.organizer_id, e.image,
	(SELECT COUNT(*) FROM rsvps a WHERE a.event_id = e.id) AS attendee_count,
	e.created_at, e.updated_at`

const eventFrom = `
	FROM events e
	JOIN categories c ON c.id = e.category_id`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanEvent(s scanner) (*domain.Event, error) {
	var e domain.Event
	if err := s.Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Time,
		&e.Location, &e.CategoryID, &e.CategoryName, &e.OrganizerID, &e.Image,
		&e.AttendeeCount,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, name, description, event_date, event_time, location,
			  	category_id, organizer_id, image, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5::time, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Master.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Description, e.Date, e.Time, e.Location,
		e.CategoryID, e.OrganizerID, e.Image, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return eventConstraintErr(err, "insert event")
	}

	return nil
}

func eventConstraintErr(err error, op string) error {
	code, constraint := pgViolation(err)
	if code == codeForeignKeyViolation {
		switch constraint {
		case "events_category_id_fkey":
			return domain.ErrCategoryNotFound
		case "events_organizer_id_fkey":
			return domain.ErrUserNotFound
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT` + eventColumns + eventFrom + `
		WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

// List applies the filter and orders by date then time.
func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		p := arg(containsPattern(q))
		conds = append(conds, "(e.name ILIKE "+p+" OR e.location ILIKE "+p+")")
	}
	if f.CategoryID != "" {
		conds = append(conds, "e.category_id = "+arg(f.CategoryID))
	}
	if f.From != nil {
		conds = append(conds, "e.event_date >= "+arg(*f.From))
	}
	if f.To != nil {
		conds = append(conds, "e.event_date <= "+arg(*f.To))
	}

	query := `SELECT` + eventColumns + eventFrom
	if len(conds) > 0 {
		query += "\n\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\tORDER BY e.event_date, e.event_time, e.name"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name = $2, description = $3, event_date = $4, event_time = $5::time,
			      location = $6, category_id = $7, image = $8, updated_at = $9
			  WHERE id = $1`

	res, err := r.db.Master.ExecContext(
		ctx, query,
		e.ID, e.Name, e.Description, e.Date, e.Time,
		e.Location, e.CategoryID, e.Image, e.UpdatedAt,
	)
	if err != nil {
		return eventConstraintErr(err, "update event")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// Delete removes the event; its RSVPs go with it through ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
