package service

import (
	"errors"
	"testing"
	"time"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
)

func TestWeekService_Create(t *testing.T) {
	env := newTestEnv()

	w, err := env.weeks.Create(ctx, day(2024, 1, 1)) // a Monday
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if w.ID == 0 {
		t.Error("expected generated id")
	}
	if !w.WeekStartDate.Equal(day(2024, 1, 1)) {
		t.Errorf("start date = %v", w.WeekStartDate)
	}
}

func TestWeekService_Create_RejectsNonMonday(t *testing.T) {
	env := newTestEnv()

	_, err := env.weeks.Create(ctx, day(2024, 1, 3)) // a Wednesday
	if !errors.Is(err, ErrNotMonday) {
		t.Fatalf("err = %v, want ErrNotMonday", err)
	}
}

func TestWeekService_Create_DuplicateStartDate(t *testing.T) {
	env := newTestEnv()

	if _, err := env.weeks.Create(ctx, day(2024, 1, 1)); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if !errors.Is(err, ErrWeekExists) {
		t.Fatalf("err = %v, want ErrWeekExists", err)
	}
}

func TestWeekService_List_NewestFirst(t *testing.T) {
	env := newTestEnv()

	if _, err := env.weeks.Create(ctx, day(2024, 1, 1)); err != nil {
		t.Fatal(err)
	}
	if _, err := env.weeks.Create(ctx, day(2024, 1, 8)); err != nil {
		t.Fatal(err)
	}

	list, err := env.weeks.List(ctx, nil)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if !list[0].WeekStartDate.Equal(day(2024, 1, 8)) {
		t.Errorf("first week = %v, want 2024-01-08", list[0].WeekStartDate)
	}
}

func TestWeekService_List_ByDateFindsContainingWeek(t *testing.T) {
	env := newTestEnv()

	created, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	// Any day of the week resolves to the same Monday, Sunday included.
	for _, d := range []time.Time{day(2024, 1, 1), day(2024, 1, 3), day(2024, 1, 7)} {
		list, err := env.weeks.List(ctx, &d)
		if err != nil {
			t.Fatalf("list(%v): %v", d, err)
		}
		if len(list) != 1 || list[0].ID != created.ID {
			t.Errorf("list(%v) = %v, want the created week", d, list)
		}
	}
}

func TestWeekService_List_ByDateMissReturnsEmpty(t *testing.T) {
	env := newTestEnv()

	if _, err := env.weeks.Create(ctx, day(2024, 1, 1)); err != nil {
		t.Fatal(err)
	}

	d := day(2024, 1, 10) // Wednesday of an untracked week
	list, err := env.weeks.List(ctx, &d)
	if err != nil {
		t.Fatalf("a date query miss is not an error, got %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("len = %d, want 0", len(list))
	}
}

func TestWeekService_GetByID_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.weeks.GetByID(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestWeekService_Grid_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.weeks.Grid(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// The walk-through scenario: week of 2024-01-01, items appended without
// order_index, one check upserted mid-week, grid reflects exactly that.
func TestWeekService_Grid_EndToEnd(t *testing.T) {
	env := newTestEnv()

	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	run, err := env.items.Create(ctx, week.ID, "Run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	read, err := env.items.Create(ctx, week.ID, "Read", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if run.OrderIndex != 0 || read.OrderIndex != 1 {
		t.Fatalf("order indices = %d, %d; want 0, 1", run.OrderIndex, read.OrderIndex)
	}

	minutes := 30
	if _, err := env.checks.Upsert(ctx, run.ID, day(2024, 1, 3), dom.StatusDone, &minutes, nil); err != nil {
		t.Fatal(err)
	}

	grid, err := env.weeks.Grid(ctx, week.ID)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	if len(grid.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(grid.Rows))
	}
	if grid.Rows[0].Item.ID != run.ID || grid.Rows[1].Item.ID != read.ID {
		t.Fatalf("row order wrong: %d, %d", grid.Rows[0].Item.ID, grid.Rows[1].Item.ID)
	}

	wed := grid.Rows[0].Cells[2]
	if wed.ID == nil || wed.Status != dom.StatusDone || wed.Minutes == nil || *wed.Minutes != 30 {
		t.Errorf("wednesday cell = %+v, want done/30min", wed)
	}
	for j, cell := range grid.Rows[0].Cells {
		if j == 2 {
			continue
		}
		if cell.ID != nil || cell.Status != dom.StatusNotDone {
			t.Errorf("cell %d should be synthesized empty", j)
		}
	}
	for j, cell := range grid.Rows[1].Cells {
		if cell.ID != nil {
			t.Errorf("read row cell %d should be empty", j)
		}
	}
}

func TestWeekService_Grid_ExcludesStaleChecks(t *testing.T) {
	env := newTestEnv()

	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	item, err := env.items.Create(ctx, week.ID, "Run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	// A check dated outside the week's window, e.g. left over after the item
	// was reused, must not surface in the grid.
	if _, err := env.checks.Upsert(ctx, item.ID, day(2024, 2, 14), dom.StatusDone, nil, nil); err != nil {
		t.Fatal(err)
	}

	grid, err := env.weeks.Grid(ctx, week.ID)
	if err != nil {
		t.Fatal(err)
	}
	for j, cell := range grid.Rows[0].Cells {
		if cell.ID != nil {
			t.Errorf("cell %d leaked an out-of-window check", j)
		}
	}
}
