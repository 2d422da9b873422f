package repo

import (
	"context"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepo interface {
	Create(ctx context.Context, item dom.WeeklyItem) (dom.WeeklyItem, error)
	GetByID(ctx context.Context, id int64) (dom.WeeklyItem, error)
	ListByWeek(ctx context.Context, weekID int64) ([]dom.WeeklyItem, error)
	CountByWeek(ctx context.Context, weekID int64) (int, error)
	Update(ctx context.Context, id int64, patch dom.WeeklyItem) (dom.WeeklyItem, error)
	Delete(ctx context.Context, id int64) error
}

type PGItemRepo struct {
	db *pgxpool.Pool
}

func NewPGItemRepo(db *pgxpool.Pool) *PGItemRepo {
	return &PGItemRepo{db: db}
}

func (r *PGItemRepo) Create(ctx context.Context, item dom.WeeklyItem) (dom.WeeklyItem, error) {
	query := `
		INSERT INTO weekly_items (week_id, name, category, order_index)
		VALUES ($1, $2, $3, $4)
		RETURNING id, week_id, name, category, order_index, created_at, updated_at`
	var out dom.WeeklyItem
	err := r.db.QueryRow(ctx, query, item.WeekID, item.Name, item.Category, item.OrderIndex).Scan(
		&out.ID, &out.WeekID, &out.Name, &out.Category, &out.OrderIndex,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGItemRepo) GetByID(ctx context.Context, id int64) (dom.WeeklyItem, error) {
	query := `
		SELECT id, week_id, name, category, order_index, created_at, updated_at
		FROM weekly_items WHERE id = $1`
	var item dom.WeeklyItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.WeekID, &item.Name, &item.Category, &item.OrderIndex,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// ListByWeek returns the week's items in display order; equal order_index
// falls back to id so the order is deterministic.
func (r *PGItemRepo) ListByWeek(ctx context.Context, weekID int64) ([]dom.WeeklyItem, error) {
	query := `
		SELECT id, week_id, name, category, order_index, created_at, updated_at
		FROM weekly_items WHERE week_id = $1 ORDER BY order_index ASC, id ASC`
	rows, err := r.db.Query(ctx, query, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.WeeklyItem
	for rows.Next() {
		var item dom.WeeklyItem
		if err := rows.Scan(&item.ID, &item.WeekID, &item.Name, &item.Category, &item.OrderIndex,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

func (r *PGItemRepo) CountByWeek(ctx context.Context, weekID int64) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM weekly_items WHERE week_id = $1`, weekID).Scan(&n)
	return n, err
}

func (r *PGItemRepo) Update(ctx context.Context, id int64, patch dom.WeeklyItem) (dom.WeeklyItem, error) {
	query := `
		UPDATE weekly_items SET name = $2, category = $3, order_index = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, week_id, name, category, order_index, created_at, updated_at`
	var item dom.WeeklyItem
	err := r.db.QueryRow(ctx, query, id, patch.Name, patch.Category, patch.OrderIndex).Scan(
		&item.ID, &item.WeekID, &item.Name, &item.Category, &item.OrderIndex,
		&item.CreatedAt, &item.UpdatedAt,
	)
	return item, err
}

// Delete removes the item; its checks go with it via the FK cascade.
// Returns pgx.ErrNoRows if no such item existed.
func (r *PGItemRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM weekly_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
