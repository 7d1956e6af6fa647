package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/interfaces"
	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// topClientsLimit caps the top-clients breakdown
const topClientsLimit = 8

// Dashboard aggregates the headline stats, activity chart and top-clients
// breakdown. Independent upstream queries of one request fan out concurrently
// and join before assembly.
type Dashboard struct {
	source interfaces.DataSource
}

// NewDashboard creates the dashboard use case.
func NewDashboard(source interfaces.DataSource) *Dashboard {
	return &Dashboard{source: source}
}

// Stats computes the dashboard headline figures for a range. The ticket,
// closed-ticket and time-entry queries run in parallel. On upstream failure
// the error propagates; no placeholder figures are ever fabricated.
func (uc *Dashboard) Stats(ctx context.Context, rng model.ReportRange) (*model.DashboardStats, error) {
	var (
		tickets []model.Ticket
		closed  []model.Ticket
		entries []model.TimeEntry
	)

	err := async.Parallel(ctx,
		func(ctx context.Context) error {
			var err error
			tickets, err = uc.source.FetchTicketsCreatedBetween(ctx, rng.StartDate, rng.EndDate)
			return err
		},
		func(ctx context.Context) error {
			var err error
			closed, err = uc.source.FetchClosedTicketsBetween(ctx, rng.StartDate, rng.EndDate)
			return err
		},
		func(ctx context.Context) error {
			var err error
			entries, err = uc.source.FetchAllTimeEntries(ctx)
			return err
		},
	)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "dashboard stats fetch failed",
			goerr.V("cause", err.Error()))
	}

	open := 0
	clients := make(map[string]bool)
	for _, t := range tickets {
		if !t.IsClosed() {
			open++
		}
		if t.ClientName != "" && t.ClientName != "Unknown" {
			clients[t.ClientName] = true
		}
	}

	windowed := model.FilterEntriesByRange(entries, rng.StartDate, rng.EndDate)
	total := decimal.Zero
	for _, e := range windowed {
		total = total.Add(decimal.NewFromFloat(e.HoursRounded))
	}

	return &model.DashboardStats{
		OpenTickets:   open,
		ClosedTickets: len(closed),
		TotalHours:    total.Round(2).InexactFloat64(),
		ActiveClients: len(clients),
		Period:        rng,
	}, nil
}

// WeeklyActivity buckets ticket counts and rounded hours per day of the last
// seven days, or per week of the trailing month when period is "month".
func (uc *Dashboard) WeeklyActivity(ctx context.Context, period string, ref time.Time) ([]model.ActivityBucket, error) {
	rng := model.RangeForPeriod(period, ref)

	var (
		tickets []model.Ticket
		entries []model.TimeEntry
	)
	err := async.Parallel(ctx,
		func(ctx context.Context) error {
			var err error
			tickets, err = uc.source.FetchTicketsCreatedBetween(ctx, rng.StartDate, rng.EndDate)
			return err
		},
		func(ctx context.Context) error {
			var err error
			entries, err = uc.source.FetchAllTimeEntries(ctx)
			return err
		},
	)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "activity fetch failed",
			goerr.V("cause", err.Error()))
	}

	if period == "month" {
		return monthlyBuckets(tickets, entries, ref), nil
	}
	return dailyBuckets(tickets, entries, ref), nil
}

func dailyBuckets(tickets []model.Ticket, entries []model.TimeEntry, ref time.Time) []model.ActivityBucket {
	buckets := make([]model.ActivityBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		buckets = append(buckets, bucketFor(day.Format("Mon"), tickets, entries, start, start))
	}
	return buckets
}

func monthlyBuckets(tickets []model.Ticket, entries []model.TimeEntry, ref time.Time) []model.ActivityBucket {
	buckets := make([]model.ActivityBucket, 0, 5)
	for i := 0; i < 4; i++ {
		start := ref.AddDate(0, 0, -(29 - i*7))
		end := start.AddDate(0, 0, 6)
		label := fmt.Sprintf("Week %d", i+1)
		buckets = append(buckets, bucketFor(label, tickets, entries, start, end))
	}

	week := model.CurrentWeekRange(ref)
	buckets = append(buckets, bucketFor("This Week", tickets, entries, week.StartDate, week.EndDate))
	return buckets
}

func bucketFor(label string, tickets []model.Ticket, entries []model.TimeEntry, start, end time.Time) model.ActivityBucket {
	count := len(model.FilterTicketsByCreatedRange(tickets, start, end))

	hours := decimal.Zero
	for _, e := range model.FilterEntriesByRange(entries, start, end) {
		hours = hours.Add(decimal.NewFromFloat(e.HoursRounded))
	}

	return model.ActivityBucket{
		Label:   label,
		Tickets: count,
		Hours:   int(math.Round(hours.InexactFloat64())),
	}
}

// TopClients ranks clients by ticket count within the range and returns the
// top entries with their share of all tickets in the range.
func (uc *Dashboard) TopClients(ctx context.Context, rng model.ReportRange) ([]model.ClientShare, int, error) {
	tickets, err := uc.source.FetchTicketsCreatedBetween(ctx, rng.StartDate, rng.EndDate)
	if err != nil {
		return nil, 0, goerr.Wrap(model.ErrUpstreamUnavailable, "top clients fetch failed",
			goerr.V("cause", err.Error()))
	}

	counts := make(map[string]int)
	for _, t := range tickets {
		counts[t.ClientName]++
	}

	shares := make([]model.ClientShare, 0, len(counts))
	for name, count := range counts {
		shares = append(shares, model.ClientShare{Name: name, Count: count})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Name < shares[j].Name
	})

	if len(shares) > topClientsLimit {
		shares = shares[:topClientsLimit]
	}

	total := len(tickets)
	for i := range shares {
		if total > 0 {
			shares[i].Percent = int(math.Round(float64(shares[i].Count) / float64(total) * 100))
		}
		shares[i].Rank = i + 1
	}
	return shares, total, nil
}
