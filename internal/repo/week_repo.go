package repo

import (
	"context"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WeekRepo interface {
	Create(ctx context.Context, startDate time.Time) (dom.Week, error)
	GetByID(ctx context.Context, id int64) (dom.Week, error)
	GetByStartDate(ctx context.Context, startDate time.Time) (dom.Week, error)
	List(ctx context.Context) ([]dom.Week, error)
}

type PGWeekRepo struct {
	db *pgxpool.Pool
}

func NewPGWeekRepo(db *pgxpool.Pool) *PGWeekRepo {
	return &PGWeekRepo{db: db}
}

func (r *PGWeekRepo) Create(ctx context.Context, startDate time.Time) (dom.Week, error) {
	query := `
		INSERT INTO weeks (week_start_date)
		VALUES ($1)
		RETURNING id, week_start_date, created_at, updated_at`
	var w dom.Week
	err := r.db.QueryRow(ctx, query, startDate).Scan(
		&w.ID, &w.WeekStartDate, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func (r *PGWeekRepo) GetByID(ctx context.Context, id int64) (dom.Week, error) {
	query := `
		SELECT id, week_start_date, created_at, updated_at
		FROM weeks WHERE id = $1`
	var w dom.Week
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.WeekStartDate, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func (r *PGWeekRepo) GetByStartDate(ctx context.Context, startDate time.Time) (dom.Week, error) {
	query := `
		SELECT id, week_start_date, created_at, updated_at
		FROM weeks WHERE week_start_date = $1`
	var w dom.Week
	err := r.db.QueryRow(ctx, query, startDate).Scan(
		&w.ID, &w.WeekStartDate, &w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

func (r *PGWeekRepo) List(ctx context.Context) ([]dom.Week, error) {
	query := `
		SELECT id, week_start_date, created_at, updated_at
		FROM weeks ORDER BY week_start_date DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Week
	for rows.Next() {
		var w dom.Week
		if err := rows.Scan(&w.ID, &w.WeekStartDate, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
