package domain

import "time"

// GridCell is one day of one item in the assembled grid. A cell backed by a
// persisted DailyCheck carries its id; a synthesized cell (no check recorded
// for that day) has a nil ID, status 0 and nil minutes/note, and exists only
// in the response.
type GridCell struct {
	ID      *int64
	Date    time.Time
	Status  int
	Minutes *int
	Note    *string
}

// GridRow is one item with exactly seven cells, Monday through Sunday.
type GridRow struct {
	Item  WeeklyItem
	Cells [7]GridCell
}

// WeekGrid is the denormalized read model for a whole week.
type WeekGrid struct {
	Week Week
	Rows []GridRow
}

type cellKey struct {
	itemID int64
	day    string
}

const dayLayout = "2006-01-02"

// AssembleGrid builds the complete week grid from a sparse set of checks.
// Rows follow the given item order; each row gets one cell per date from
// the week's start through start+6, ascending. Checks dated outside that
// window are ignored, as are checks for items not in the list.
//
// Two passes: one over checks to build the (item, day) index, one over
// items × days to emit cells.
func AssembleGrid(week Week, items []WeeklyItem, checks []DailyCheck) WeekGrid {
	days := week.Dates()

	inWindow := make(map[string]bool, len(days))
	for _, d := range days {
		inWindow[d.Format(dayLayout)] = true
	}

	index := make(map[cellKey]DailyCheck, len(checks))
	for _, c := range checks {
		day := c.Date.Format(dayLayout)
		if !inWindow[day] {
			continue
		}
		index[cellKey{itemID: c.WeeklyItemID, day: day}] = c
	}

	rows := make([]GridRow, len(items))
	for i, item := range items {
		row := GridRow{Item: item}
		for j, d := range days {
			if c, ok := index[cellKey{itemID: item.ID, day: d.Format(dayLayout)}]; ok {
				id := c.ID
				row.Cells[j] = GridCell{
					ID:      &id,
					Date:    d,
					Status:  c.Status,
					Minutes: c.Minutes,
					Note:    c.Note,
				}
			} else {
				row.Cells[j] = GridCell{Date: d, Status: StatusNotDone}
			}
		}
		rows[i] = row
	}

	return WeekGrid{Week: week, Rows: rows}
}
