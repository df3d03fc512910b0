package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (token_hash, user_id, expires_at, created_at)
			  VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.TokenHash, s.UserID, s.ExpiresAt, s.CreatedAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetUser resolves an unexpired session to its user, roles included.
func (r *SessionRepository) GetUser(ctx context.Context, tokenHash string) (*domain.User, error) {
	query := `SELECT` + userColumns + userFrom + `
		JOIN sessions s ON s.user_id = u.id
		WHERE s.token_hash = $1 AND s.expires_at > now()
		GROUP BY u.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tokenHash)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session user: %w", err)
	}

	return u, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}
