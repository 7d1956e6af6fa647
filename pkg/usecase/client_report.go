package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/interfaces"
	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"
)

// ClientReports builds per-client hour reports. Client attribution uses the
// CustomerName carried on each time entry, resolved against the upstream
// client list; the time-entry fetch itself stays unfiltered (see DataSource).
type ClientReports struct {
	source interfaces.DataSource
}

// NewClientReports creates the client report use case.
func NewClientReports(source interfaces.DataSource) *ClientReports {
	return &ClientReports{source: source}
}

// ListClients returns the selectable clients.
func (uc *ClientReports) ListClients(ctx context.Context) ([]model.Client, error) {
	clients, err := uc.source.FetchClients(ctx)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "client fetch failed",
			goerr.V("cause", err.Error()))
	}
	return clients, nil
}

// BuildClientHours assembles the hours report for one client and window.
func (uc *ClientReports) BuildClientHours(ctx context.Context, clientID types.ClientID, start, end time.Time) (*model.ClientHoursReport, error) {
	clients, err := uc.source.FetchClients(ctx)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "client fetch failed",
			goerr.V("cause", err.Error()))
	}

	var client *model.Client
	for i := range clients {
		if clients[i].ID == clientID {
			client = &clients[i]
			break
		}
	}
	if client == nil {
		return nil, goerr.Wrap(model.ErrClientNotFound, "unknown client",
			goerr.V("clientId", clientID))
	}

	entries, err := uc.source.FetchAllTimeEntries(ctx)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "time entry fetch failed",
			goerr.V("cause", err.Error()))
	}

	windowed := model.FilterEntriesByRange(entries, start, end)
	matched := make([]model.TimeEntry, 0)
	total := decimal.Zero
	for _, e := range windowed {
		if e.CustomerName != client.Name {
			continue
		}
		matched = append(matched, e)
		total = total.Add(decimal.NewFromFloat(e.HoursRounded))
	}

	reportID, err := types.NewReportID()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate report ID")
	}

	return &model.ClientHoursReport{
		ReportID: reportID,
		ClientID: clientID,
		Period: model.ReportRange{
			StartDate: start,
			EndDate:   end,
			Label:     start.Format(model.DateFormat) + " - " + end.Format(model.DateFormat),
		},
		TotalHours:  total.Round(2).InexactFloat64(),
		Entries:     matched,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// WriteCSV renders the report rows as CSV.
func (uc *ClientReports) WriteCSV(w io.Writer, report *model.ClientHoursReport) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Date", "Ticket", "Description", "Hours", "Technician"}); err != nil {
		return goerr.Wrap(err, "failed to write CSV header")
	}
	for _, e := range report.Entries {
		row := []string{
			e.StartTime.Format(model.DateFormat),
			e.TicketNumber,
			e.Description,
			strconv.FormatFloat(e.HoursRounded, 'f', -1, 64),
			e.TechnicianName().String(),
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write CSV row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush CSV")
	}
	return nil
}
