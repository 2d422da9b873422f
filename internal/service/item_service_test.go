package service

import (
	"errors"
	"testing"

	dom "github.com/safwannuddin/Schedule-tracker/internal/domain"
)

func TestItemService_Create_WeekNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.items.Create(ctx, 42, "Run", "", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestItemService_Create_AppendsOrderIndex(t *testing.T) {
	env := newTestEnv()
	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	first, err := env.items.Create(ctx, week.ID, "Run", "health", nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := env.items.Create(ctx, week.ID, "Read", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if first.OrderIndex != 0 {
		t.Errorf("first order_index = %d, want 0", first.OrderIndex)
	}
	if second.OrderIndex != 1 {
		t.Errorf("second order_index = %d, want 1", second.OrderIndex)
	}
	if first.Category != "health" || second.Category != "" {
		t.Errorf("categories = %q, %q", first.Category, second.Category)
	}
}

func TestItemService_Create_ExplicitOrderIndex(t *testing.T) {
	env := newTestEnv()
	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}

	idx := 5
	item, err := env.items.Create(ctx, week.ID, "Run", "", &idx)
	if err != nil {
		t.Fatal(err)
	}
	if item.OrderIndex != 5 {
		t.Errorf("order_index = %d, want 5", item.OrderIndex)
	}
}

func TestItemService_Update_SparsePatch(t *testing.T) {
	env := newTestEnv()
	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	item, err := env.items.Create(ctx, week.ID, "Run", "health", nil)
	if err != nil {
		t.Fatal(err)
	}

	name := "Jog"
	updated, err := env.items.Update(ctx, item.ID, &name, nil, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Jog" {
		t.Errorf("name = %q, want Jog", updated.Name)
	}
	// omitted fields keep their prior values
	if updated.Category != "health" || updated.OrderIndex != item.OrderIndex {
		t.Errorf("untouched fields changed: %+v", updated)
	}
}

func TestItemService_Update_NotFound(t *testing.T) {
	env := newTestEnv()

	name := "Jog"
	_, err := env.items.Update(ctx, 42, &name, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestItemService_Delete_CascadesChecks(t *testing.T) {
	env := newTestEnv()
	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	item, err := env.items.Create(ctx, week.ID, "Run", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := env.checks.Upsert(ctx, item.ID, day(2024, 1, 2), dom.StatusDone, nil, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := env.checks.Upsert(ctx, item.ID, day(2024, 1, 4), dom.StatusPartial, nil, nil); err != nil {
		t.Fatal(err)
	}

	if err := env.items.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	remaining, err := env.checkRepo.ListByItem(ctx, item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 0 {
		t.Fatalf("%d checks survived the cascade", len(remaining))
	}
}

func TestItemService_Delete_NotFound(t *testing.T) {
	env := newTestEnv()

	if err := env.items.Delete(ctx, 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestItemService_Delete_DoesNotRecompactIndices(t *testing.T) {
	env := newTestEnv()
	week, err := env.weeks.Create(ctx, day(2024, 1, 1))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := env.items.Create(ctx, week.ID, "A", "", nil)
	b, _ := env.items.Create(ctx, week.ID, "B", "", nil)
	if err := env.items.Delete(ctx, a.ID); err != nil {
		t.Fatal(err)
	}

	// B keeps index 1; the next append counts one existing item and also
	// gets 1. Duplicates are expected drift, resolved by id order.
	c, err := env.items.Create(ctx, week.ID, "C", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if b.OrderIndex != 1 || c.OrderIndex != 1 {
		t.Errorf("indices = %d, %d; want 1, 1", b.OrderIndex, c.OrderIndex)
	}

	grid, err := env.weeks.Grid(ctx, week.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(grid.Rows) != 2 || grid.Rows[0].Item.ID != b.ID || grid.Rows[1].Item.ID != c.ID {
		t.Errorf("tie on order_index should resolve by id: %+v", grid.Rows)
	}
}
