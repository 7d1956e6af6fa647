package model

import (
	"strings"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/types"
)

// DateFormat is the calendar date layout used across all report surfaces
const DateFormat = "2006-01-02"

// TimeEntry represents a single ticket time entry fetched from the upstream
// API. It is immutable once fetched; aggregation never mutates entries.
//
// HoursRounded (upstream TimeRoundedHrs, rounded to billing increments) is the
// canonical hours value for all aggregate reporting. HoursActual carries the
// raw duration and is kept for per-entry display only.
type TimeEntry struct {
	ID            string         `json:"id"`
	StartTime     time.Time      `json:"startTime"`
	TicketID      types.TicketID `json:"ticketId"`
	TicketNumber  string         `json:"ticketNumber"`
	CustomerName  string         `json:"customerName"`
	UserFirstName string         `json:"userFirstName"`
	UserLastName  string         `json:"userLastName"`
	UserID        types.UserID   `json:"userId"`
	HoursActual   float64        `json:"hoursActual"`
	HoursRounded  float64        `json:"hoursRounded"`
	Rate          float64        `json:"rate"`
	Description   string         `json:"description"`
}

// TechnicianName returns the technician display name, or "" when the entry
// carries no user at all.
func (e *TimeEntry) TechnicianName() types.TechnicianName {
	name := strings.TrimSpace(e.UserFirstName + " " + e.UserLastName)
	return types.TechnicianName(name)
}

// Day returns the entry's calendar day, discarding time of day.
func (e *TimeEntry) Day() time.Time {
	return truncateToDay(e.StartTime)
}

// FilterEntriesByRange keeps entries whose start time falls within
// [start, end], inclusive on both ends at day granularity. Entries without a
// usable timestamp are dropped. The filter is pure and idempotent.
func FilterEntriesByRange(entries []TimeEntry, start, end time.Time) []TimeEntry {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var out []TimeEntry
	for _, e := range entries {
		if e.StartTime.IsZero() {
			continue
		}
		day := e.Day()
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DatesInRange returns every calendar day in [start, end] inclusive.
func DatesInRange(start, end time.Time) []time.Time {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var days []time.Time
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
