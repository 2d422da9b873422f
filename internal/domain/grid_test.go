package domain

import (
	"testing"
	"time"
)

func monday() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) // a Monday
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestAssembleGrid_ShapeAndOrder(t *testing.T) {
	week := Week{ID: 1, WeekStartDate: monday()}
	items := []WeeklyItem{
		{ID: 10, WeekID: 1, Name: "Run", OrderIndex: 0},
		{ID: 11, WeekID: 1, Name: "Read", OrderIndex: 1},
		{ID: 12, WeekID: 1, Name: "Write", OrderIndex: 2},
	}

	grid := AssembleGrid(week, items, nil)

	if len(grid.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(grid.Rows))
	}
	for i, row := range grid.Rows {
		if row.Item.ID != items[i].ID {
			t.Errorf("row %d item = %d, want %d", i, row.Item.ID, items[i].ID)
		}
		if len(row.Cells) != 7 {
			t.Fatalf("row %d has %d cells, want 7", i, len(row.Cells))
		}
		for j, cell := range row.Cells {
			want := monday().AddDate(0, 0, j)
			if !cell.Date.Equal(want) {
				t.Errorf("row %d cell %d date = %v, want %v", i, j, cell.Date, want)
			}
		}
	}
}

func TestAssembleGrid_SynthesizedCellsAreEmpty(t *testing.T) {
	week := Week{ID: 1, WeekStartDate: monday()}
	items := []WeeklyItem{{ID: 10, WeekID: 1, Name: "Run"}}

	grid := AssembleGrid(week, items, nil)

	for j, cell := range grid.Rows[0].Cells {
		if cell.ID != nil {
			t.Errorf("cell %d id = %v, want nil", j, *cell.ID)
		}
		if cell.Status != StatusNotDone {
			t.Errorf("cell %d status = %d, want %d", j, cell.Status, StatusNotDone)
		}
		if cell.Minutes != nil || cell.Note != nil {
			t.Errorf("cell %d minutes/note not nil", j)
		}
	}
}

func TestAssembleGrid_PersistedCheckFillsItsCell(t *testing.T) {
	week := Week{ID: 1, WeekStartDate: monday()}
	items := []WeeklyItem{{ID: 10, WeekID: 1, Name: "Run"}}
	wednesday := monday().AddDate(0, 0, 2)
	checks := []DailyCheck{{
		ID:           77,
		WeeklyItemID: 10,
		Date:         wednesday,
		Status:       StatusDone,
		Minutes:      intPtr(30),
		Note:         strPtr("5k"),
	}}

	grid := AssembleGrid(week, items, checks)

	cell := grid.Rows[0].Cells[2]
	if cell.ID == nil || *cell.ID != 77 {
		t.Fatalf("cell id = %v, want 77", cell.ID)
	}
	if cell.Status != StatusDone {
		t.Errorf("status = %d, want %d", cell.Status, StatusDone)
	}
	if cell.Minutes == nil || *cell.Minutes != 30 {
		t.Errorf("minutes = %v, want 30", cell.Minutes)
	}
	if cell.Note == nil || *cell.Note != "5k" {
		t.Errorf("note = %v, want 5k", cell.Note)
	}

	// remaining six cells stay synthesized
	for j, other := range grid.Rows[0].Cells {
		if j == 2 {
			continue
		}
		if other.ID != nil || other.Status != StatusNotDone {
			t.Errorf("cell %d should be empty, got id=%v status=%d", j, other.ID, other.Status)
		}
	}
}

func TestAssembleGrid_ExcludesChecksOutsideWindow(t *testing.T) {
	week := Week{ID: 1, WeekStartDate: monday()}
	items := []WeeklyItem{{ID: 10, WeekID: 1, Name: "Run"}}
	checks := []DailyCheck{
		{ID: 1, WeeklyItemID: 10, Date: monday().AddDate(0, 0, -1), Status: StatusDone}, // previous Sunday
		{ID: 2, WeeklyItemID: 10, Date: monday().AddDate(0, 0, 7), Status: StatusDone},  // next Monday
	}

	grid := AssembleGrid(week, items, checks)

	for j, cell := range grid.Rows[0].Cells {
		if cell.ID != nil {
			t.Errorf("cell %d picked up an out-of-window check (id %d)", j, *cell.ID)
		}
	}
}

func TestAssembleGrid_IgnoresChecksForUnknownItems(t *testing.T) {
	week := Week{ID: 1, WeekStartDate: monday()}
	items := []WeeklyItem{{ID: 10, WeekID: 1, Name: "Run"}}
	checks := []DailyCheck{{ID: 1, WeeklyItemID: 999, Date: monday(), Status: StatusDone}}

	grid := AssembleGrid(week, items, checks)

	if cell := grid.Rows[0].Cells[0]; cell.ID != nil {
		t.Errorf("cell took a stranger's check: %v", *cell.ID)
	}
}

func TestAssembleGrid_NoItems(t *testing.T) {
	week := Week{ID: 1, WeekStartDate: monday()}

	grid := AssembleGrid(week, nil, nil)

	if len(grid.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(grid.Rows))
	}
	if grid.Week.ID != 1 {
		t.Errorf("week id = %d, want 1", grid.Week.ID)
	}
}
