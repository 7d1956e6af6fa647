package model_test

import (
	"testing"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func entryOn(day time.Time, name string, hours float64) model.TimeEntry {
	return model.TimeEntry{
		StartTime:     day,
		UserFirstName: name,
		UserID:        types.UserID(name),
		HoursRounded:  hours,
	}
}

func TestTechnicianName(t *testing.T) {
	e := model.TimeEntry{UserFirstName: "Jordan", UserLastName: "Reyes"}
	gt.Equal(t, e.TechnicianName(), types.TechnicianName("Jordan Reyes"))

	e = model.TimeEntry{UserFirstName: "Jordan"}
	gt.Equal(t, e.TechnicianName(), types.TechnicianName("Jordan"))

	e = model.TimeEntry{UserLastName: "Reyes"}
	gt.Equal(t, e.TechnicianName(), types.TechnicianName("Reyes"))

	e = model.TimeEntry{}
	gt.Equal(t, e.TechnicianName(), types.TechnicianName(""))
}

func TestFilterEntriesByRange(t *testing.T) {
	start := date(2024, time.June, 16)
	end := date(2024, time.July, 15)

	entries := []model.TimeEntry{
		entryOn(date(2024, time.June, 15), "before", 1),
		entryOn(date(2024, time.June, 16), "first", 1),
		entryOn(time.Date(2024, time.July, 15, 23, 45, 0, 0, time.UTC), "last", 1),
		entryOn(date(2024, time.July, 16), "after", 1),
		entryOn(time.Time{}, "unparseable", 1),
	}

	t.Run("Inclusive on both ends at day granularity", func(t *testing.T) {
		got := model.FilterEntriesByRange(entries, start, end)
		gt.A(t, got).Length(2)
		gt.Equal(t, got[0].UserFirstName, "first")
		gt.Equal(t, got[1].UserFirstName, "last")
	})

	t.Run("Entries without a timestamp are dropped", func(t *testing.T) {
		got := model.FilterEntriesByRange(entries, time.Time{}, date(2099, time.January, 1))
		for _, e := range got {
			gt.False(t, e.StartTime.IsZero())
		}
	})

	t.Run("Filtering is idempotent", func(t *testing.T) {
		once := model.FilterEntriesByRange(entries, start, end)
		twice := model.FilterEntriesByRange(once, start, end)
		gt.Equal(t, twice, once)
	})

	t.Run("Empty input yields empty output", func(t *testing.T) {
		got := model.FilterEntriesByRange(nil, start, end)
		gt.A(t, got).Length(0)
	})
}

func TestDatesInRange(t *testing.T) {
	days := model.DatesInRange(date(2024, time.June, 16), date(2024, time.July, 15))
	gt.A(t, days).Length(30)
	gt.Equal(t, days[0], date(2024, time.June, 16))
	gt.Equal(t, days[len(days)-1], date(2024, time.July, 15))

	days = model.DatesInRange(date(2024, time.June, 16), date(2024, time.June, 16))
	gt.A(t, days).Length(1)
}
