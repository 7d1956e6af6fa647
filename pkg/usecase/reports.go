package usecase

import (
	"context"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/interfaces"
	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Reports assembles the overtime and hours-grid report shapes. Every call
// fetches fresh upstream data, pipes it through the pure model pipeline and
// discards it; there is no cache and no state shared between requests.
type Reports struct {
	source   interfaces.DataSource
	denylist []types.TechnicianName
}

// NewReports creates the report use case. The denylist removes terminated or
// duplicate technician accounts from the hours grid after universe discovery.
func NewReports(source interfaces.DataSource, denylist []types.TechnicianName) *Reports {
	return &Reports{
		source:   source,
		denylist: denylist,
	}
}

// OvertimeSummary is the overtime report for one date window.
type OvertimeSummary struct {
	Totals    []model.TechnicianOvertimeTotal `json:"overtimeData"`
	Anomalies int                             `json:"anomalies"`
}

// BuildOvertimeSummary computes per-technician overtime totals for the
// inclusive date window. Entries with rates outside the known set are
// excluded from totals but counted so operators can spot new pay-rate codes.
func (uc *Reports) BuildOvertimeSummary(ctx context.Context, start, end time.Time) (*OvertimeSummary, error) {
	entries, err := uc.fetchEntries(ctx)
	if err != nil {
		return nil, err
	}

	windowed := model.FilterEntriesByRange(entries, start, end)
	totals, anomalies := model.AggregateOvertime(windowed)

	if anomalies > 0 {
		ctxlog.From(ctx).Warn("time entries with unknown pay rate excluded from overtime totals",
			"anomalies", anomalies,
			"windowed", len(windowed),
		)
	}

	return &OvertimeSummary{
		Totals:    totals,
		Anomalies: anomalies,
	}, nil
}

// CurrentOvertime computes the overtime summary for the automatic pay period
// containing the reference date.
func (uc *Reports) CurrentOvertime(ctx context.Context, ref time.Time) (model.PayPeriod, *OvertimeSummary, error) {
	period := model.CalculatePeriod(ref, 0)
	summary, err := uc.BuildOvertimeSummary(ctx, period.StartDate, period.EndDate)
	if err != nil {
		return model.PayPeriod{}, nil, err
	}
	return period, summary, nil
}

// BuildHoursGrid computes the hours-by-technician-by-date table. The
// technician universe comes from the whole dataset so technicians without
// hours in the window still appear as zero rows.
func (uc *Reports) BuildHoursGrid(ctx context.Context, start, end time.Time) (model.HoursGrid, error) {
	entries, err := uc.fetchEntries(ctx)
	if err != nil {
		return model.HoursGrid{}, err
	}

	windowed := model.FilterEntriesByRange(entries, start, end)
	return model.BuildHoursGrid(entries, windowed, start, end, uc.denylist), nil
}

func (uc *Reports) fetchEntries(ctx context.Context) ([]model.TimeEntry, error) {
	entries, err := uc.source.FetchAllTimeEntries(ctx)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "time entry fetch failed",
			goerr.V("cause", err.Error()))
	}
	return entries, nil
}
