package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `
	u.id, u.username, u.email, u.first_name, u.last_name, u.password_hash,
	u.phone_number, u.profile_picture, u.telegram_chat_id,
	u.is_active, u.is_superuser, u.last_login, u.created_at,
	COALESCE(array_agg(r.role ORDER BY r.role) FILTER (WHERE r.role IS NOT NULL), '{}') AS roles`

const userFrom = `
	FROM users u
	LEFT JOIN user_roles r ON r.user_id = u.id`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanUser(s scanner) (*domain.User, error) {
	var (
		u         domain.User
		lastLogin sql.NullTime
		roles     pq.StringArray
	)
	if err := s.Scan(
		&u.ID, &u.Username, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash,
		&u.PhoneNumber, &u.ProfilePicture, &u.TelegramChatID,
		&u.IsActive, &u.IsSuperuser, &lastLogin, &u.CreatedAt,
		&roles,
	); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	u.Roles = make([]domain.Role, 0, len(roles))
	for _, r := range roles {
		u.Roles = append(u.Roles, domain.Role(r))
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO users (id, username, email, first_name, last_name, password_hash,
			  	phone_number, profile_picture, telegram_chat_id, is_active, is_superuser, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	if _, err = tx.ExecContext(
		ctx, query,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash,
		user.PhoneNumber, user.ProfilePicture, user.TelegramChatID,
		user.IsActive, user.IsSuperuser, user.CreatedAt,
	); err != nil {
		return userConstraintErr(err, "insert user")
	}

	if err = insertRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return err
	}

	return tx.Commit()
}

func userConstraintErr(err error, op string) error {
	code, constraint := pgViolation(err)
	if code == codeUniqueViolation {
		switch constraint {
		case "users_username_key":
			return domain.ErrUsernameTaken
		case "users_email_key":
			return domain.ErrEmailTaken
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func insertRoles(ctx context.Context, tx *sql.Tx, userID string, roles []domain.Role) error {
	query := `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, role := range roles {
		if _, err := tx.ExecContext(ctx, query, userID, role); err != nil {
			return fmt.Errorf("insert role %s: %w", role, err)
		}
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE u.id = $1`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE u.username = $1`, username)
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	query := `SELECT` + userColumns + userFrom + `
		` + where + `
		GROUP BY u.id`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT` + userColumns + userFrom + `
		GROUP BY u.id
		ORDER BY u.username`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

// Activate flips a pending account to active. It fails with
// ErrInvalidActivationToken when the account is already active, so two
// racing activations succeed at most once.
func (r *UserRepository) Activate(ctx context.Context, id string) error {
	query := `UPDATE users SET is_active = TRUE WHERE id = $1 AND is_active = FALSE`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("activate user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activate rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrInvalidActivationToken
	}

	return nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
			  SET email = $2, first_name = $3, last_name = $4,
			      phone_number = $5, profile_picture = $6, telegram_chat_id = $7
			  WHERE id = $1`

	res, err := r.db.Master.ExecContext(
		ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.PhoneNumber, user.ProfilePicture, user.TelegramChatID,
	)
	if err != nil {
		return userConstraintErr(err, "update profile")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("profile rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) SetRoles(ctx context.Context, id string, roles []domain.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var locked string
	if err = tx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("lock user: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM user_roles WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("clear roles: %w", err)
	}

	if err = insertRoles(ctx, tx, id, roles); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE users SET last_login = $2 WHERE id = $1`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at); err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// DeletePendingBefore removes never-activated accounts created before the cutoff.
func (r *UserRepository) DeletePendingBefore(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM users
			  WHERE is_active = FALSE AND is_superuser = FALSE AND last_login IS NULL AND created_at < $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, before)
	if err != nil {
		return 0, fmt.Errorf("delete pending users: %w", err)
	}

	return res.RowsAffected()
}
