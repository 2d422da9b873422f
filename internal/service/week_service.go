package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
	"github.com/safwannuddin/Schedule-tracker/internal/repo"
	"github.com/safwannuddin/Schedule-tracker/internal/utils"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// GridCache holds assembled week grids between reads. A Get miss is
// (nil, nil). The Redis-backed implementation lives in internal/cache.
type GridCache interface {
	Get(ctx context.Context, weekID int64) (*dom.WeekGrid, error)
	Set(ctx context.Context, weekID int64, grid dom.WeekGrid) error
	Invalidate(ctx context.Context, weekID int64) error
}

type WeekService struct {
	weeks  repo.WeekRepo
	items  repo.ItemRepo
	checks repo.CheckRepo
	cache  GridCache
	sf     singleflight.Group
}

// NewWeekService creates a WeekService. If c is nil, grid caching is disabled.
func NewWeekService(w repo.WeekRepo, i repo.ItemRepo, ch repo.CheckRepo, c GridCache) *WeekService {
	return &WeekService{weeks: w, items: i, checks: ch, cache: c}
}

// Create starts a new week. The start date must be a Monday and not already
// tracked; the unique constraint on week_start_date is the final word on the
// latter, so a racing duplicate surfaces as ErrWeekExists, not a dirty row.
func (s *WeekService) Create(ctx context.Context, startDate time.Time) (dom.Week, error) {
	startDate = utils.DateUTC(startDate)
	if startDate.Weekday() != time.Monday {
		return dom.Week{}, ErrNotMonday
	}
	w, err := s.weeks.Create(ctx, startDate)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.Week{}, ErrWeekExists
		}
		return dom.Week{}, err
	}
	return w, nil
}

// List returns all weeks, newest first. With a date it instead looks up the
// single week containing that date (via its Monday); no match is an empty
// result, not an error.
func (s *WeekService) List(ctx context.Context, date *time.Time) ([]dom.Week, error) {
	if date == nil {
		return s.weeks.List(ctx)
	}
	monday := utils.MondayOf(*date)
	w, err := s.weeks.GetByStartDate(ctx, monday)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []dom.Week{}, nil
		}
		return nil, err
	}
	return []dom.Week{w}, nil
}

func (s *WeekService) GetByID(ctx context.Context, id int64) (dom.Week, error) {
	w, err := s.weeks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Week{}, ErrNotFound
		}
		return dom.Week{}, err
	}
	return w, nil
}

// Grid assembles the full 7-column grid for a week.
func (s *WeekService) Grid(ctx context.Context, id int64) (dom.WeekGrid, error) {
	if s.cache != nil {
		key := "grid:" + strconv.FormatInt(id, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if grid, err := s.cache.Get(ctx, id); err == nil && grid != nil {
				return *grid, nil
			}
			grid, err := s.loadGrid(ctx, id)
			if err != nil {
				return nil, err
			}
			_ = s.cache.Set(ctx, id, grid)
			return grid, nil
		})
		if err != nil {
			return dom.WeekGrid{}, err
		}
		return v.(dom.WeekGrid), nil
	}
	return s.loadGrid(ctx, id)
}

func (s *WeekService) loadGrid(ctx context.Context, id int64) (dom.WeekGrid, error) {
	week, err := s.GetByID(ctx, id)
	if err != nil {
		return dom.WeekGrid{}, err
	}
	items, err := s.items.ListByWeek(ctx, id)
	if err != nil {
		return dom.WeekGrid{}, err
	}
	from := week.WeekStartDate
	to := week.WeekStartDate.AddDate(0, 0, 6)
	checks, err := s.checks.ListForWeek(ctx, id, from, to)
	if err != nil {
		return dom.WeekGrid{}, err
	}
	return dom.AssembleGrid(week, items, checks), nil
}
