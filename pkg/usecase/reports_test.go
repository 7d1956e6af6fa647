package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/interfaces/mocks"
	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/halcyon-ops/hourglass/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(day time.Time, userID, first, last string, rate, hours float64) model.TimeEntry {
	return model.TimeEntry{
		StartTime:     day,
		UserID:        types.UserID(userID),
		UserFirstName: first,
		UserLastName:  last,
		Rate:          rate,
		HoursRounded:  hours,
	}
}

func TestBuildOvertimeSummary(t *testing.T) {
	start := date(2024, time.June, 16)
	end := date(2024, time.July, 15)

	t.Run("Windows and aggregates upstream entries", func(t *testing.T) {
		source := &mocks.DataSourceMock{
			FetchAllTimeEntriesFunc: func(ctx context.Context) ([]model.TimeEntry, error) {
				return []model.TimeEntry{
					entry(date(2024, time.June, 20), "u1", "Ada", "Okafor", 1.5, 2.0),
					entry(date(2024, time.June, 21), "u1", "Ada", "Okafor", 1.0, 8.0),
					entry(date(2024, time.June, 10), "u1", "Ada", "Okafor", 1.5, 5.0), // before window
					entry(date(2024, time.June, 22), "u2", "Ben", "Silva", 7.7, 1.0),  // unknown rate
				}, nil
			},
		}

		uc := usecase.NewReports(source, nil)
		summary, err := uc.BuildOvertimeSummary(context.Background(), start, end)
		gt.NoError(t, err)

		gt.Equal(t, summary.Anomalies, 1)
		gt.A(t, summary.Totals).Length(1)
		gt.Equal(t, summary.Totals[0].UserName, "Ada Okafor")
		gt.Equal(t, summary.Totals[0].TotalHours(), 2.0)
	})

	t.Run("Upstream failure surfaces as unavailable, never as empty data", func(t *testing.T) {
		source := &mocks.DataSourceMock{
			FetchAllTimeEntriesFunc: func(ctx context.Context) ([]model.TimeEntry, error) {
				return nil, errors.New("connection refused")
			},
		}

		uc := usecase.NewReports(source, nil)
		summary, err := uc.BuildOvertimeSummary(context.Background(), start, end)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUpstreamUnavailable))
		gt.V(t, summary).Nil()
	})
}

func TestCurrentOvertime(t *testing.T) {
	source := &mocks.DataSourceMock{
		FetchAllTimeEntriesFunc: func(ctx context.Context) ([]model.TimeEntry, error) {
			return []model.TimeEntry{
				entry(date(2024, time.June, 20), "u1", "Ada", "Okafor", 1.5, 2.0),
			}, nil
		},
	}

	uc := usecase.NewReports(source, nil)
	period, summary, err := uc.CurrentOvertime(context.Background(), date(2024, time.June, 20))
	gt.NoError(t, err)

	gt.Equal(t, period.StartDate, date(2024, time.June, 16))
	gt.Equal(t, period.EndDate, date(2024, time.July, 15))
	gt.True(t, period.IsCurrent)
	gt.A(t, summary.Totals).Length(1)
}

func TestReportsBuildHoursGrid(t *testing.T) {
	start := date(2024, time.June, 16)
	end := date(2024, time.June, 18)

	source := &mocks.DataSourceMock{
		FetchAllTimeEntriesFunc: func(ctx context.Context) ([]model.TimeEntry, error) {
			return []model.TimeEntry{
				entry(date(2024, time.June, 17), "u1", "Ada", "Okafor", 1.0, 2.5),
				entry(date(2024, time.May, 1), "u2", "Ben", "Silva", 1.0, 4.0),
				entry(date(2024, time.June, 17), "u3", "Eve", "Moss", 1.0, 3.0),
			}, nil
		},
	}

	uc := usecase.NewReports(source, []types.TechnicianName{"Eve Moss"})
	grid, err := uc.BuildHoursGrid(context.Background(), start, end)
	gt.NoError(t, err)

	// Ben logged nothing in the window but is part of the dataset; Eve is
	// denylisted and must not render.
	gt.Equal(t, grid.Technicians, []string{"Ada Okafor", "Ben Silva"})
	gt.Equal(t, grid.Hours["Ada Okafor"].Days["2024-06-17"], 2.5)
	gt.Equal(t, grid.Hours["Ben Silva"].Total, 0.0)
}
