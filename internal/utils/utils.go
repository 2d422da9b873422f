package utils

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// DateUTC truncates t to its calendar date at midnight UTC.
func DateUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MondayOf returns the Monday of the week containing d, at midnight UTC.
// Go's Weekday puts Sunday at 0; here Sunday belongs to the week that
// started six days earlier.
func MondayOf(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	d = d.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// IsPGUniqueViolation reports whether error is PostgreSQL unique constraint violation (code 23505).
func IsPGUniqueViolation(err error) bool {
	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		return pge.Code == "23505"
	}
	return false
}
