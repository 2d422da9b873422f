package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DateOnly carries a calendar date ("2006-01-02") across the JSON boundary.
// It stores midnight UTC of that day.
type DateOnly struct{ t time.Time }

// NewDateOnly wraps t for a response body.
func NewDateOnly(t time.Time) DateOnly { return DateOnly{t: t} }

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = time.Time{}
		return nil
	}
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(*raw))
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	d.t = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.t.Format(dateLayout))
}

// Time returns the underlying time (midnight UTC).
func (d DateOnly) Time() time.Time { return d.t }

// IsZero reports whether the field was absent or empty in the request.
func (d DateOnly) IsZero() bool { return d.t.IsZero() }
