package usecase

import (
	"context"

	"github.com/halcyon-ops/hourglass/pkg/domain/interfaces"
	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Tickets serves the open/closed ticket report views.
type Tickets struct {
	source interfaces.DataSource
}

// NewTickets creates the ticket use case.
func NewTickets(source interfaces.DataSource) *Tickets {
	return &Tickets{source: source}
}

// CreatedInRange returns every ticket created within the range, matching the
// upstream report view which lists all tickets of the period regardless of
// status. The range filter is re-applied locally so upstream quirks around
// date comparison cannot leak out-of-range records into the report.
func (uc *Tickets) CreatedInRange(ctx context.Context, rng model.ReportRange) ([]model.Ticket, error) {
	tickets, err := uc.source.FetchTicketsCreatedBetween(ctx, rng.StartDate, rng.EndDate)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "ticket fetch failed",
			goerr.V("cause", err.Error()))
	}
	return model.FilterTicketsByCreatedRange(tickets, rng.StartDate, rng.EndDate), nil
}

// ClosedInRange returns tickets completed within the range.
func (uc *Tickets) ClosedInRange(ctx context.Context, rng model.ReportRange) ([]model.Ticket, error) {
	tickets, err := uc.source.FetchClosedTicketsBetween(ctx, rng.StartDate, rng.EndDate)
	if err != nil {
		return nil, goerr.Wrap(model.ErrUpstreamUnavailable, "closed ticket fetch failed",
			goerr.V("cause", err.Error()))
	}
	return tickets, nil
}
