package mocks

import (
	"context"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
)

// DataSourceMock is a hand-rolled mock of interfaces.DataSource for tests.
// Unset functions return empty results.
type DataSourceMock struct {
	FetchAllTimeEntriesFunc        func(ctx context.Context) ([]model.TimeEntry, error)
	FetchTicketsCreatedBetweenFunc func(ctx context.Context, start, end time.Time) ([]model.Ticket, error)
	FetchClosedTicketsBetweenFunc  func(ctx context.Context, start, end time.Time) ([]model.Ticket, error)
	FetchClientsFunc               func(ctx context.Context) ([]model.Client, error)
}

// FetchAllTimeEntries implements interfaces.DataSource
func (m *DataSourceMock) FetchAllTimeEntries(ctx context.Context) ([]model.TimeEntry, error) {
	if m.FetchAllTimeEntriesFunc == nil {
		return nil, nil
	}
	return m.FetchAllTimeEntriesFunc(ctx)
}

// FetchTicketsCreatedBetween implements interfaces.DataSource
func (m *DataSourceMock) FetchTicketsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Ticket, error) {
	if m.FetchTicketsCreatedBetweenFunc == nil {
		return nil, nil
	}
	return m.FetchTicketsCreatedBetweenFunc(ctx, start, end)
}

// FetchClosedTicketsBetween implements interfaces.DataSource
func (m *DataSourceMock) FetchClosedTicketsBetween(ctx context.Context, start, end time.Time) ([]model.Ticket, error) {
	if m.FetchClosedTicketsBetweenFunc == nil {
		return nil, nil
	}
	return m.FetchClosedTicketsBetweenFunc(ctx, start, end)
}

// FetchClients implements interfaces.DataSource
func (m *DataSourceMock) FetchClients(ctx context.Context) ([]model.Client, error) {
	if m.FetchClientsFunc == nil {
		return nil, nil
	}
	return m.FetchClientsFunc(ctx)
}
