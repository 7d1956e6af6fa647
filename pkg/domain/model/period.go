package model

import (
	"fmt"
	"time"
)

// payPeriodStartDay is the day of month on which every pay period begins.
// Periods run from the 16th of a month through the 15th of the next one.
const payPeriodStartDay = 16

// PayPeriod is a single payroll window. Offset 0 is the period containing the
// reference date; negative offsets step backward in whole months.
type PayPeriod struct {
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Label      string    `json:"label"`
	MonthLabel string    `json:"monthLabel"`
	Offset     int       `json:"offset"`
	IsCurrent  bool      `json:"isCurrent"`
}

// CalculatePeriod derives the pay period for a reference date and month
// offset. When the reference day is on or after the 16th, the base month is
// the reference month itself; otherwise it is the previous month. Year
// boundaries roll over naturally.
func CalculatePeriod(ref time.Time, offset int) PayPeriod {
	year, month, day := ref.Date()
	if day < payPeriodStartDay {
		month--
	}

	start := time.Date(year, month+time.Month(offset), payPeriodStartDay, 0, 0, 0, 0, time.UTC)
	end := time.Date(start.Year(), start.Month()+1, payPeriodStartDay-1, 0, 0, 0, 0, time.UTC)

	return PayPeriod{
		StartDate:  start,
		EndDate:    end,
		Label:      fmt.Sprintf("%s - %s", start.Format("02/01/2006"), end.Format("02/01/2006")),
		MonthLabel: start.Format("January 2006"),
		Offset:     offset,
		IsCurrent:  offset == 0,
	}
}

// ReportRange is a plain date window used by the dashboard and ticket views.
type ReportRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Label     string    `json:"label"`
}

// CurrentWeekRange returns Monday through Sunday of the week containing ref.
func CurrentWeekRange(ref time.Time) ReportRange {
	day := truncateToDay(ref)
	back := int(day.Weekday()) - int(time.Monday)
	if back < 0 {
		back += 7
	}
	start := day.AddDate(0, 0, -back)
	return ReportRange{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
		Label:     "This Week",
	}
}

// TrailingMonthRange returns the 30 days up to and including ref.
func TrailingMonthRange(ref time.Time) ReportRange {
	day := truncateToDay(ref)
	return ReportRange{
		StartDate: day.AddDate(0, 0, -30),
		EndDate:   day,
		Label:     "Last 30 Days",
	}
}

// RangeForPeriod resolves the named preset ("week" or "month") to a concrete
// range. Unknown presets fall back to the current week.
func RangeForPeriod(period string, ref time.Time) ReportRange {
	if period == "month" {
		return TrailingMonthRange(ref)
	}
	return CurrentWeekRange(ref)
}
