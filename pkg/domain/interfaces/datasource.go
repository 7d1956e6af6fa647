package interfaces

import (
	"context"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
)

// DataSource is the read-only boundary to the upstream MSP platform. All
// report pipelines consume it; the HTTP OData client in service/mspmanager is
// the production implementation.
type DataSource interface {
	// FetchAllTimeEntries returns the newest time entries without any date
	// filter, capped at the configured top-N. The upstream entity's
	// server-side date filtering is unreliable, so windowing always happens
	// client-side.
	FetchAllTimeEntries(ctx context.Context) ([]model.TimeEntry, error)

	// FetchTicketsCreatedBetween returns tickets created within the range.
	FetchTicketsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Ticket, error)

	// FetchClosedTicketsBetween returns tickets completed within the range,
	// restricted to terminal statuses.
	FetchClosedTicketsBetween(ctx context.Context, start, end time.Time) ([]model.Ticket, error)

	// FetchClients returns the customer list.
	FetchClients(ctx context.Context) ([]model.Client, error)
}
