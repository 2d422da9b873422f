package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MemStore is an in-memory stand-in for Postgres used in tests. It mirrors
// the store-level behavior the services depend on: pgx.ErrNoRows on missing
// rows, a 23505 PgError on duplicate week start dates, the (weekly_item_id,
// date) upsert key, and cascade delete from item to checks.
type MemStore struct {
	mu     sync.Mutex
	weeks  map[int64]dom.Week
	items  map[int64]dom.WeeklyItem
	checks map[int64]dom.DailyCheck
	nextID int64
}

func NewMemStore() *MemStore {
	return &MemStore{
		weeks:  make(map[int64]dom.Week),
		items:  make(map[int64]dom.WeeklyItem),
		checks: make(map[int64]dom.DailyCheck),
	}
}

func (s *MemStore) id() int64 {
	s.nextID++
	return s.nextID
}

func sameDay(a, b time.Time) bool {
	return a.Format("2006-01-02") == b.Format("2006-01-02")
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type MemWeekRepo struct{ s *MemStore }

func NewMemWeekRepo(s *MemStore) *MemWeekRepo { return &MemWeekRepo{s: s} }

func (r *MemWeekRepo) Create(ctx context.Context, startDate time.Time) (dom.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range r.s.weeks {
		if sameDay(w.WeekStartDate, startDate) {
			return dom.Week{}, uniqueViolation("weeks_week_start_date_key")
		}
	}
	now := time.Now().UTC()
	w := dom.Week{ID: r.s.id(), WeekStartDate: startDate, CreatedAt: now, UpdatedAt: now}
	r.s.weeks[w.ID] = w
	return w, nil
}

func (r *MemWeekRepo) GetByID(ctx context.Context, id int64) (dom.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.weeks[id]
	if !ok {
		return dom.Week{}, pgx.ErrNoRows
	}
	return w, nil
}

func (r *MemWeekRepo) GetByStartDate(ctx context.Context, startDate time.Time) (dom.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range r.s.weeks {
		if sameDay(w.WeekStartDate, startDate) {
			return w, nil
		}
	}
	return dom.Week{}, pgx.ErrNoRows
}

func (r *MemWeekRepo) List(ctx context.Context) ([]dom.Week, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]dom.Week, 0, len(r.s.weeks))
	for _, w := range r.s.weeks {
		list = append(list, w)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].WeekStartDate.After(list[j].WeekStartDate)
	})
	return list, nil
}

type MemItemRepo struct{ s *MemStore }

func NewMemItemRepo(s *MemStore) *MemItemRepo { return &MemItemRepo{s: s} }

func (r *MemItemRepo) Create(ctx context.Context, item dom.WeeklyItem) (dom.WeeklyItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now().UTC()
	item.ID = r.s.id()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.s.items[item.ID] = item
	return item, nil
}

func (r *MemItemRepo) GetByID(ctx context.Context, id int64) (dom.WeeklyItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return dom.WeeklyItem{}, pgx.ErrNoRows
	}
	return item, nil
}

func (r *MemItemRepo) ListByWeek(ctx context.Context, weekID int64) ([]dom.WeeklyItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.WeeklyItem
	for _, item := range r.s.items {
		if item.WeekID == weekID {
			list = append(list, item)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].OrderIndex != list[j].OrderIndex {
			return list[i].OrderIndex < list[j].OrderIndex
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *MemItemRepo) CountByWeek(ctx context.Context, weekID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	n := 0
	for _, item := range r.s.items {
		if item.WeekID == weekID {
			n++
		}
	}
	return n, nil
}

func (r *MemItemRepo) Update(ctx context.Context, id int64, patch dom.WeeklyItem) (dom.WeeklyItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.items[id]
	if !ok {
		return dom.WeeklyItem{}, pgx.ErrNoRows
	}
	item.Name = patch.Name
	item.Category = patch.Category
	item.OrderIndex = patch.OrderIndex
	item.UpdatedAt = time.Now().UTC()
	r.s.items[id] = item
	return item, nil
}

func (r *MemItemRepo) Delete(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.s.items, id)
	// ON DELETE CASCADE
	for cid, c := range r.s.checks {
		if c.WeeklyItemID == id {
			delete(r.s.checks, cid)
		}
	}
	return nil
}

type MemCheckRepo struct{ s *MemStore }

func NewMemCheckRepo(s *MemStore) *MemCheckRepo { return &MemCheckRepo{s: s} }

func (r *MemCheckRepo) Upsert(ctx context.Context, check dom.DailyCheck) (dom.DailyCheck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now().UTC()
	for id, existing := range r.s.checks {
		if existing.WeeklyItemID == check.WeeklyItemID && sameDay(existing.Date, check.Date) {
			existing.Status = check.Status
			existing.Minutes = check.Minutes
			existing.Note = check.Note
			existing.UpdatedAt = now
			r.s.checks[id] = existing
			return existing, nil
		}
	}
	check.ID = r.s.id()
	check.CreatedAt = now
	check.UpdatedAt = now
	r.s.checks[check.ID] = check
	return check, nil
}

func (r *MemCheckRepo) ListForWeek(ctx context.Context, weekID int64, from, to time.Time) ([]dom.DailyCheck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.DailyCheck
	for _, c := range r.s.checks {
		item, ok := r.s.items[c.WeeklyItemID]
		if !ok || item.WeekID != weekID {
			continue
		}
		if c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		list = append(list, c)
	}
	return list, nil
}

func (r *MemCheckRepo) ListByItem(ctx context.Context, itemID int64) ([]dom.DailyCheck, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []dom.DailyCheck
	for _, c := range r.s.checks {
		if c.WeeklyItemID == itemID {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}
