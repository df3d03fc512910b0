package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/brinto-swe/event-management-system/internal/access"
	"github.com/brinto-swe/event-management-system/internal/domain"
	"github.com/brinto-swe/event-management-system/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// Every category operation requires Organizer or Admin.
type CategoryService struct {
	repo   ports.CategoryRepo
	logger logger.Logger
}

func NewCategoryService(repo ports.CategoryRepo, logger logger.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

func (s *CategoryService) List(ctx context.Context, actor *domain.Principal) ([]*domain.Category, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}
	return s.repo.List(ctx)
}

func (s *CategoryService) Get(ctx context.Context, actor *domain.Principal, id string) (*domain.Category, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, actor *domain.Principal, in domain.CategoryInput) (*domain.Category, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}

	c := &domain.Category{ID: uuid.New().String()}
	if err := applyCategory(c, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrCategoryNameTaken) {
			return nil, fieldError("name", "Category with this Name already exists.")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.logger.Info("category created",
		logger.String("category_id", c.ID),
		logger.String("by", actor.UserID),
	)

	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, actor *domain.Principal, id string, in domain.CategoryInput) (*domain.Category, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *c
	if err = applyCategory(&updated, in); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, &updated); err != nil {
		if errors.Is(err, domain.ErrCategoryNameTaken) {
			return nil, fieldError("name", "Category with this Name already exists.")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	return &updated, nil
}

func (s *CategoryService) DeletePreview(ctx context.Context, actor *domain.Principal, id string) (*domain.DeletionImpact, error) {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return nil, d.Err()
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rsvps, err := s.repo.CountRSVPs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count rsvps: %w", err)
	}

	return &domain.DeletionImpact{
		Type:   "Category",
		ID:     c.ID,
		Name:   c.Name,
		Events: c.EventCount,
		RSVPs:  rsvps,
	}, nil
}

// Delete removes the category and, by cascade, its events and their RSVPs.
func (s *CategoryService) Delete(ctx context.Context, actor *domain.Principal, id string) error {
	if d := access.Authorize(actor, eventEditors...); !d.Allowed {
		return d.Err()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("delete category: %w", err)
	}

	s.logger.Info("category deleted",
		logger.String("category_id", id),
		logger.String("by", actor.UserID),
	)

	return nil
}

func applyCategory(c *domain.Category, in domain.CategoryInput) error {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return fieldError("name", "This field is required.")
	case len(name) > 100:
		return fieldError("name", "Ensure this value has at most 100 characters.")
	}

	c.Name = name
	c.Description = strings.TrimSpace(in.Description)
	return nil
}
