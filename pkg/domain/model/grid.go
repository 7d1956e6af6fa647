package model

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/shopspring/decimal"
)

// TechnicianDayHours is one grid row: hours per date plus the row total and
// entry count. Every date of the requested range is present as a key, zero
// when no work was logged.
type TechnicianDayHours struct {
	Total   float64
	Entries int
	Days    map[string]float64
}

// MarshalJSON flattens the row into a single object with "total", "entries"
// and one key per date, matching the table consumer's expectations.
func (h TechnicianDayHours) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(h.Days)+2)
	flat["total"] = h.Total
	flat["entries"] = h.Entries
	for day, hours := range h.Days {
		flat[day] = hours
	}
	return json.Marshal(flat)
}

// HoursGrid is the hours-by-technician-by-date table. Technicians come from
// the whole unfiltered dataset so a technician with no hours in the window
// still shows an all-zero row.
type HoursGrid struct {
	Technicians []string                      `json:"technicians"`
	Dates       []string                      `json:"dates"`
	Hours       map[string]TechnicianDayHours `json:"hoursByTechnician"`
}

type gridAccum struct {
	total   decimal.Decimal
	entries int
	days    map[string]decimal.Decimal
}

// BuildHoursGrid assembles the grid. The technician universe is discovered
// from allEntries (not the windowed subset), minus the configured denylist and
// entries without a technician name. Cells are seeded to zero for every
// surviving technician and every date of [start, end] before windowed entries
// are folded in, so all grid cells exist regardless of data. Hours use the
// canonical HoursRounded field with decimal accumulation.
func BuildHoursGrid(allEntries, windowed []TimeEntry, start, end time.Time, denylist []types.TechnicianName) HoursGrid {
	if len(allEntries) == 0 {
		return HoursGrid{
			Technicians: []string{},
			Dates:       []string{},
			Hours:       map[string]TechnicianDayHours{},
		}
	}

	excluded := make(map[types.TechnicianName]bool, len(denylist))
	for _, name := range denylist {
		excluded[name] = true
	}

	universe := make(map[types.TechnicianName]bool)
	for _, e := range allEntries {
		name := e.TechnicianName()
		if name == "" || excluded[name] {
			continue
		}
		universe[name] = true
	}

	dates := make([]string, 0)
	for _, d := range DatesInRange(start, end) {
		dates = append(dates, d.Format(DateFormat))
	}

	accums := make(map[string]*gridAccum, len(universe))
	for name := range universe {
		acc := &gridAccum{days: make(map[string]decimal.Decimal, len(dates))}
		for _, day := range dates {
			acc.days[day] = decimal.Zero
		}
		accums[name.String()] = acc
	}

	for _, e := range windowed {
		acc, ok := accums[e.TechnicianName().String()]
		if !ok {
			continue
		}
		day := e.Day().Format(DateFormat)
		if _, ok := acc.days[day]; !ok {
			continue
		}
		hours := decimal.NewFromFloat(e.HoursRounded)
		acc.days[day] = acc.days[day].Add(hours)
		acc.total = acc.total.Add(hours)
		acc.entries++
	}

	technicians := make([]string, 0, len(universe))
	for name := range universe {
		technicians = append(technicians, name.String())
	}
	sort.Strings(technicians)

	hours := make(map[string]TechnicianDayHours, len(accums))
	for name, acc := range accums {
		row := TechnicianDayHours{
			Total:   acc.total.InexactFloat64(),
			Entries: acc.entries,
			Days:    make(map[string]float64, len(acc.days)),
		}
		for day, sum := range acc.days {
			row.Days[day] = sum.InexactFloat64()
		}
		hours[name] = row
	}

	return HoursGrid{
		Technicians: technicians,
		Dates:       dates,
		Hours:       hours,
	}
}
