package mspmanager

import (
	"context"
	"encoding/json"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// timeEntriesEntity has unreliable server-side $filter support, so the fetch
// is unfiltered and ordered newest-first; all date windowing is client-side.
const timeEntriesEntity = "tickettimeentriesview"

const timeEntrySelect = "TicketTimeEntryId,timeActualHrs,TimeRoundedHrs,StartTime,TicketId," +
	"TicketNumber,CustomerName,UserFirstName,UserLastName,UserId,Rate,Description"

// rawTimeEntry mirrors the upstream field names. It never leaves this
// package; everything downstream sees model.TimeEntry.
type rawTimeEntry struct {
	TicketTimeEntryID json.Number `json:"TicketTimeEntryId"`
	TimeActualHrs     float64     `json:"timeActualHrs"`
	TimeRoundedHrs    float64     `json:"TimeRoundedHrs"`
	StartTime         string      `json:"StartTime"`
	TicketID          int64       `json:"TicketId"`
	TicketNumber      string      `json:"TicketNumber"`
	CustomerName      string      `json:"CustomerName"`
	UserFirstName     string      `json:"UserFirstName"`
	UserLastName      string      `json:"UserLastName"`
	UserID            string      `json:"UserId"`
	Rate              float64     `json:"Rate"`
	Description       string      `json:"Description"`
}

// FetchAllTimeEntries implements interfaces.DataSource.
func (c *Client) FetchAllTimeEntries(ctx context.Context) ([]model.TimeEntry, error) {
	records, err := c.fetchEntities(ctx, timeEntriesEntity, query{
		top:     c.fetchTop,
		sel:     timeEntrySelect,
		orderBy: "StartTime desc",
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch time entries")
	}

	entries := make([]model.TimeEntry, 0, len(records))
	skipped := 0
	for _, rec := range records {
		var raw rawTimeEntry
		if err := json.Unmarshal(rec, &raw); err != nil {
			skipped++
			continue
		}
		entries = append(entries, model.TimeEntry{
			ID:            raw.TicketTimeEntryID.String(),
			StartTime:     parseUpstreamTime(raw.StartTime),
			TicketID:      types.TicketID(raw.TicketID),
			TicketNumber:  raw.TicketNumber,
			CustomerName:  raw.CustomerName,
			UserFirstName: raw.UserFirstName,
			UserLastName:  raw.UserLastName,
			UserID:        types.UserID(raw.UserID),
			HoursActual:   raw.TimeActualHrs,
			HoursRounded:  raw.TimeRoundedHrs,
			Rate:          raw.Rate,
			Description:   raw.Description,
		})
	}

	if skipped > 0 {
		ctxlog.From(ctx).Warn("skipped undecodable time entry records",
			"skipped", skipped,
			"total", len(records),
		)
	}
	return entries, nil
}
