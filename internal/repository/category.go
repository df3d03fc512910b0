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

const categorySelect = `SELECT c.id, c.name, c.description,
		(SELECT COUNT(*) FROM events e WHERE e.category_id = c.id) AS event_count
	FROM categories c`

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepo(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	query := `INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`

	if _, err := r.db.Master.ExecContext(ctx, query, c.ID, c.Name, c.Description); err != nil {
		if code, _ := pgViolation(err); code == codeUniqueViolation {
			return domain.ErrCategoryNameTaken
		}
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, categorySelect+` WHERE c.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	var c domain.Category
	if err = row.Scan(&c.ID, &c.Name, &c.Description, &c.EventCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("scan category: %w", err)
	}

	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, categorySelect+` ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Description, &c.EventCount); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	query := `UPDATE categories SET name = $2, description = $3 WHERE id = $1`

	res, err := r.db.Master.ExecContext(ctx, query, c.ID, c.Name, c.Description)
	if err != nil {
		if code, _ := pgViolation(err); code == codeUniqueViolation {
			return domain.ErrCategoryNameTaken
		}
		return fmt.Errorf("update category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("category rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category together with its events and their RSVPs (FK cascade).
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("category rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}

	return nil
}

func (r *CategoryRepository) CountRSVPs(ctx context.Context, id string) (int, error) {
	query := `SELECT COUNT(*)
			  FROM rsvps a
			  JOIN events e ON e.id = a.event_id
			  WHERE e.category_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return 0, fmt.Errorf("count category rsvps: %w", err)
	}

	var n int
	if err = row.Scan(&n); err != nil {
		return 0, fmt.Errorf("scan category rsvps: %w", err)
	}

	return n, nil
}
