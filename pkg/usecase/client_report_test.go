package usecase_test

import (
	"bytes"
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

func clientSource() *mocks.DataSourceMock {
	return &mocks.DataSourceMock{
		FetchClientsFunc: func(ctx context.Context) ([]model.Client, error) {
			return []model.Client{
				{ID: "10", Name: "Acme"},
				{ID: "20", Name: "Globex"},
			}, nil
		},
		FetchAllTimeEntriesFunc: func(ctx context.Context) ([]model.TimeEntry, error) {
			acme := entry(date(2024, time.June, 17), "u1", "Ada", "Okafor", 1.0, 2.5)
			acme.CustomerName = "Acme"
			acme.TicketNumber = "T-100"
			acme.Description = "patching"

			globex := entry(date(2024, time.June, 17), "u2", "Ben", "Silva", 1.0, 4.0)
			globex.CustomerName = "Globex"

			late := entry(date(2024, time.July, 20), "u1", "Ada", "Okafor", 1.0, 8.0)
			late.CustomerName = "Acme"

			return []model.TimeEntry{acme, globex, late}, nil
		},
	}
}

func TestListClients(t *testing.T) {
	uc := usecase.NewClientReports(clientSource())
	clients, err := uc.ListClients(context.Background())
	gt.NoError(t, err)
	gt.A(t, clients).Length(2)

	failing := &mocks.DataSourceMock{
		FetchClientsFunc: func(ctx context.Context) ([]model.Client, error) {
			return nil, errors.New("boom")
		},
	}
	_, err = usecase.NewClientReports(failing).ListClients(context.Background())
	gt.True(t, errors.Is(err, model.ErrUpstreamUnavailable))
}

func TestBuildClientHours(t *testing.T) {
	start := date(2024, time.June, 16)
	end := date(2024, time.June, 30)

	t.Run("Collects only the client's entries inside the window", func(t *testing.T) {
		uc := usecase.NewClientReports(clientSource())
		report, err := uc.BuildClientHours(context.Background(), types.ClientID("10"), start, end)
		gt.NoError(t, err)

		gt.Equal(t, report.ClientID, types.ClientID("10"))
		gt.A(t, report.Entries).Length(1)
		gt.Equal(t, report.Entries[0].TicketNumber, "T-100")
		gt.Equal(t, report.TotalHours, 2.5)
		gt.NotEqual(t, report.ReportID, types.ReportID(""))
		gt.False(t, report.GeneratedAt.IsZero())
	})

	t.Run("Unknown client is a not-found error", func(t *testing.T) {
		uc := usecase.NewClientReports(clientSource())
		report, err := uc.BuildClientHours(context.Background(), types.ClientID("99"), start, end)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrClientNotFound))
		gt.V(t, report).Nil()
	})
}

func TestWriteCSV(t *testing.T) {
	uc := usecase.NewClientReports(clientSource())
	report, err := uc.BuildClientHours(context.Background(), types.ClientID("10"),
		date(2024, time.June, 16), date(2024, time.June, 30))
	gt.NoError(t, err)

	var buf bytes.Buffer
	gt.NoError(t, uc.WriteCSV(&buf, report))

	out := buf.String()
	gt.S(t, out).Contains("Date,Ticket,Description,Hours,Technician")
	gt.S(t, out).Contains("2024-06-17,T-100,patching,2.5,Ada Okafor")
}
