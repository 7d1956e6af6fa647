package model_test

import (
	"testing"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculatePeriod(t *testing.T) {
	t.Run("Reference after the 16th stays in the same month", func(t *testing.T) {
		p := model.CalculatePeriod(date(2024, time.June, 20), 0)
		gt.Equal(t, p.StartDate, date(2024, time.June, 16))
		gt.Equal(t, p.EndDate, date(2024, time.July, 15))
		gt.Equal(t, p.Label, "16/06/2024 - 15/07/2024")
		gt.Equal(t, p.MonthLabel, "June 2024")
		gt.True(t, p.IsCurrent)
	})

	t.Run("Reference before the 16th falls back a month", func(t *testing.T) {
		p := model.CalculatePeriod(date(2024, time.June, 10), 0)
		gt.Equal(t, p.StartDate, date(2024, time.May, 16))
		gt.Equal(t, p.EndDate, date(2024, time.June, 15))
	})

	t.Run("The 16th itself starts a new period", func(t *testing.T) {
		p := model.CalculatePeriod(date(2024, time.June, 16), 0)
		gt.Equal(t, p.StartDate, date(2024, time.June, 16))

		p = model.CalculatePeriod(date(2024, time.June, 15), 0)
		gt.Equal(t, p.StartDate, date(2024, time.May, 16))
		gt.Equal(t, p.EndDate, date(2024, time.June, 15))
	})

	t.Run("Negative offset steps back whole months", func(t *testing.T) {
		p := model.CalculatePeriod(date(2024, time.June, 20), -2)
		gt.Equal(t, p.StartDate, date(2024, time.April, 16))
		gt.Equal(t, p.EndDate, date(2024, time.May, 15))
		gt.Equal(t, p.Offset, -2)
		gt.False(t, p.IsCurrent)
	})

	t.Run("Year boundary rolls over", func(t *testing.T) {
		p := model.CalculatePeriod(date(2025, time.January, 5), 0)
		gt.Equal(t, p.StartDate, date(2024, time.December, 16))
		gt.Equal(t, p.EndDate, date(2025, time.January, 15))
		gt.Equal(t, p.MonthLabel, "December 2024")

		p = model.CalculatePeriod(date(2025, time.January, 20), -1)
		gt.Equal(t, p.StartDate, date(2024, time.December, 16))
	})

	t.Run("Adjacent periods tile without gap or overlap", func(t *testing.T) {
		ref := date(2024, time.June, 20)
		for offset := -6; offset < 0; offset++ {
			older := model.CalculatePeriod(ref, offset)
			newer := model.CalculatePeriod(ref, offset+1)
			gt.Equal(t, older.EndDate.AddDate(0, 0, 1), newer.StartDate)
		}
	})

	t.Run("Every day of a year maps into a period containing it", func(t *testing.T) {
		for d := date(2024, time.January, 1); d.Year() == 2024; d = d.AddDate(0, 0, 1) {
			p := model.CalculatePeriod(d, 0)
			gt.False(t, d.Before(p.StartDate))
			gt.False(t, d.After(p.EndDate))
		}
	})
}

func TestCurrentWeekRange(t *testing.T) {
	t.Run("Midweek reference snaps to Monday", func(t *testing.T) {
		rng := model.CurrentWeekRange(date(2024, time.June, 19)) // Wednesday
		gt.Equal(t, rng.StartDate, date(2024, time.June, 17))
		gt.Equal(t, rng.EndDate, date(2024, time.June, 23))
	})

	t.Run("Sunday belongs to the week that started the previous Monday", func(t *testing.T) {
		rng := model.CurrentWeekRange(date(2024, time.June, 23))
		gt.Equal(t, rng.StartDate, date(2024, time.June, 17))
	})

	t.Run("Monday is its own week start", func(t *testing.T) {
		rng := model.CurrentWeekRange(date(2024, time.June, 17))
		gt.Equal(t, rng.StartDate, date(2024, time.June, 17))
	})
}

func TestRangeForPeriod(t *testing.T) {
	ref := date(2024, time.June, 19)

	rng := model.RangeForPeriod("month", ref)
	gt.Equal(t, rng.StartDate, date(2024, time.May, 20))
	gt.Equal(t, rng.EndDate, date(2024, time.June, 19))

	rng = model.RangeForPeriod("week", ref)
	gt.Equal(t, rng.StartDate, date(2024, time.June, 17))

	// unknown presets fall back to the week view
	rng = model.RangeForPeriod("quarter", ref)
	gt.Equal(t, rng.StartDate, date(2024, time.June, 17))
}
