package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
	"github.com/safwannuddin/Schedule-tracker/internal/repo"

	"github.com/jackc/pgx/v5"
)

type ItemService struct {
	weeks repo.WeekRepo
	items repo.ItemRepo
	cache GridCache
}

// NewItemService creates an ItemService. If c is nil, grid cache
// invalidation is skipped.
func NewItemService(w repo.WeekRepo, i repo.ItemRepo, c GridCache) *ItemService {
	return &ItemService{weeks: w, items: i, cache: c}
}

// Create adds a row to a week. An omitted orderIndex appends: it becomes the
// current count of items in the week. Indices are never recompacted after
// deletes, so duplicates can occur; display order breaks ties on id.
func (s *ItemService) Create(ctx context.Context, weekID int64, name, category string, orderIndex *int) (dom.WeeklyItem, error) {
	if _, err := s.weeks.GetByID(ctx, weekID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.WeeklyItem{}, ErrNotFound
		}
		return dom.WeeklyItem{}, err
	}

	idx := 0
	if orderIndex != nil {
		idx = *orderIndex
	} else {
		n, err := s.items.CountByWeek(ctx, weekID)
		if err != nil {
			return dom.WeeklyItem{}, err
		}
		idx = n
	}

	item, err := s.items.Create(ctx, dom.WeeklyItem{
		WeekID:     weekID,
		Name:       strings.TrimSpace(name),
		Category:   strings.TrimSpace(category),
		OrderIndex: idx,
	})
	if err != nil {
		return dom.WeeklyItem{}, err
	}
	s.invalidate(ctx, weekID)
	return item, nil
}

// Update patches an item: only fields explicitly provided change, the rest
// keep their prior value.
func (s *ItemService) Update(ctx context.Context, id int64, name *string, category *string, orderIndex *int) (dom.WeeklyItem, error) {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.WeeklyItem{}, ErrNotFound
		}
		return dom.WeeklyItem{}, err
	}
	patch := existing
	if name != nil {
		patch.Name = strings.TrimSpace(*name)
	}
	if category != nil {
		patch.Category = strings.TrimSpace(*category)
	}
	if orderIndex != nil {
		patch.OrderIndex = *orderIndex
	}
	item, err := s.items.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.WeeklyItem{}, ErrNotFound
		}
		return dom.WeeklyItem{}, err
	}
	s.invalidate(ctx, item.WeekID)
	return item, nil
}

// Delete removes an item and, through the store cascade, all its checks.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	existing, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx, existing.WeekID)
	return nil
}

func (s *ItemService) invalidate(ctx context.Context, weekID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, weekID)
	}
}
