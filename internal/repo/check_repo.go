package repo

import (
	"context"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckRepo interface {
	Upsert(ctx context.Context, check dom.DailyCheck) (dom.DailyCheck, error)
	ListForWeek(ctx context.Context, weekID int64, from, to time.Time) ([]dom.DailyCheck, error)
	ListByItem(ctx context.Context, itemID int64) ([]dom.DailyCheck, error)
}

type PGCheckRepo struct {
	db *pgxpool.Pool
}

func NewPGCheckRepo(db *pgxpool.Pool) *PGCheckRepo {
	return &PGCheckRepo{db: db}
}

// Upsert creates or overwrites the check for (weekly_item_id, date) in a
// single statement. The unique constraint is the authority: two concurrent
// upserts for the same pair can never produce a duplicate row — the loser
// of the insert race becomes the update.
func (r *PGCheckRepo) Upsert(ctx context.Context, check dom.DailyCheck) (dom.DailyCheck, error) {
	query := `
		INSERT INTO daily_checks (weekly_item_id, date, status, minutes, note)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (weekly_item_id, date)
		DO UPDATE SET status = EXCLUDED.status, minutes = EXCLUDED.minutes,
			note = EXCLUDED.note, updated_at = NOW()
		RETURNING id, weekly_item_id, date, status, minutes, note, created_at, updated_at`
	var out dom.DailyCheck
	err := r.db.QueryRow(ctx, query,
		check.WeeklyItemID, check.Date, check.Status, check.Minutes, check.Note,
	).Scan(
		&out.ID, &out.WeeklyItemID, &out.Date, &out.Status, &out.Minutes, &out.Note,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

// ListForWeek returns all checks of a week's items dated within [from, to].
func (r *PGCheckRepo) ListForWeek(ctx context.Context, weekID int64, from, to time.Time) ([]dom.DailyCheck, error) {
	query := `
		SELECT c.id, c.weekly_item_id, c.date, c.status, c.minutes, c.note, c.created_at, c.updated_at
		FROM daily_checks c
		JOIN weekly_items i ON i.id = c.weekly_item_id
		WHERE i.week_id = $1 AND c.date BETWEEN $2 AND $3`
	rows, err := r.db.Query(ctx, query, weekID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.DailyCheck
	for rows.Next() {
		var c dom.DailyCheck
		if err := rows.Scan(&c.ID, &c.WeeklyItemID, &c.Date, &c.Status, &c.Minutes, &c.Note,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *PGCheckRepo) ListByItem(ctx context.Context, itemID int64) ([]dom.DailyCheck, error) {
	query := `
		SELECT id, weekly_item_id, date, status, minutes, note, created_at, updated_at
		FROM daily_checks WHERE weekly_item_id = $1 ORDER BY date ASC`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.DailyCheck
	for rows.Next() {
		var c dom.DailyCheck
		if err := rows.Scan(&c.ID, &c.WeeklyItemID, &c.Date, &c.Status, &c.Minutes, &c.Note,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
