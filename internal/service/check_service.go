package service

import (
	"context"
	"errors"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
	"github.com/safwannuddin/Schedule-tracker/internal/repo"
	"github.com/safwannuddin/Schedule-tracker/internal/utils"

	"github.com/jackc/pgx/v5"
)

type CheckService struct {
	items  repo.ItemRepo
	checks repo.CheckRepo
	cache  GridCache
}

// NewCheckService creates a CheckService. If c is nil, grid cache
// invalidation is skipped.
func NewCheckService(i repo.ItemRepo, ch repo.CheckRepo, c GridCache) *CheckService {
	return &CheckService{items: i, checks: ch, cache: c}
}

// Upsert records a check for (itemID, date). The first write for a pair
// creates the check; any later write overwrites status, minutes and note
// wholesale — this is a full cell replace, not a merge. Calling it twice
// with the same input is idempotent.
func (s *CheckService) Upsert(ctx context.Context, itemID int64, date time.Time, status int, minutes *int, note *string) (dom.DailyCheck, error) {
	if status < dom.StatusNotDone || status > dom.StatusPartial {
		return dom.DailyCheck{}, ErrInvalidStatus
	}
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.DailyCheck{}, ErrNotFound
		}
		return dom.DailyCheck{}, err
	}

	check, err := s.checks.Upsert(ctx, dom.DailyCheck{
		WeeklyItemID: itemID,
		Date:         utils.DateUTC(date),
		Status:       status,
		Minutes:      minutes,
		Note:         note,
	})
	if err != nil {
		return dom.DailyCheck{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, item.WeekID)
	}
	return check, nil
}
