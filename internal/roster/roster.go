// Package roster assigns staff to open shifts.
package roster

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/vendex/internal/domain"
)

// ErrInvalidRoster is returned when dates or times in a roster input cannot be parsed.
var ErrInvalidRoster = errors.New("invalid roster input")

// Provider produces an assignment plan for a day's shifts.
type Provider interface {
	Generate(ctx context.Context, input domain.RosterInput) (domain.RosterDecision, error)
}

const (
	// maxWeeklyHours is the overtime threshold a single assignment may not cross.
	maxWeeklyHours = 40.0
	minutesPerDay  = 24 * 60
)

// window is a time range in minutes from midnight; end may exceed a day for overnight ranges.
type window struct {
	start, end int
}

func (w window) hours() float64 {
	return float64(w.end-w.start) / 60
}

func (w window) contains(other window) bool {
	return w.start <= other.start && other.end <= w.end
}

func (w window) overlaps(other window) bool {
	return w.start < other.end && other.start < w.end
}

func parseWindow(start, end string) (window, error) {
	s, err := parseClock(start)
	if err != nil {
		return window{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return window{}, err
	}
	if e <= s {
		e += minutesPerDay
	}
	return window{start: s, end: e}, nil
}

func parseClock(v string) (int, error) {
	v = strings.TrimSpace(v)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("%w: bad time %q", ErrInvalidRoster, v)
}

func parseDay(date string) (time.Weekday, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return 0, fmt.Errorf("%w: bad date %q", ErrInvalidRoster, date)
	}
	return d.Weekday(), nil
}

// Validate checks that every date and time in input parses.
func Validate(input domain.RosterInput) error {
	if _, err := parseDay(input.Date); err != nil {
		return err
	}
	for _, s := range input.Shifts {
		if _, err := parseWindow(s.StartTime, s.EndTime); err != nil {
			return fmt.Errorf("shift %d: %w", s.ShiftID, err)
		}
	}
	for _, st := range input.Staff {
		for _, slot := range st.Availability {
			if _, err := parseWindow(slot.StartTime, slot.EndTime); err != nil {
				return fmt.Errorf("staff %d availability: %w", st.StaffID, err)
			}
		}
	}
	return nil
}

// Coverage is the percentage of shifts that received an assignment.
// A day with no shifts is fully covered.
func Coverage(assigned, shifts int) float64 {
	if shifts == 0 {
		return 100.0
	}
	return float64(assigned) / float64(shifts) * 100
}
