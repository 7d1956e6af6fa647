package mspmanager

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const ticketsEntity = "TicketsView"

const ticketSelect = "TicketId,TicketNumber,TicketTitle,CreatedDate,TicketStatusCode," +
	"TicketStatusName,TicketPriorityCode,TicketPriorityName,CustomerName,LocationName," +
	"CreatedByFirstName,CreatedByLastName,TicketDescription,DueDate,ServiceItemName," +
	"ContactName,IsBillable,CompletedDate,UpdatedDate"

// ticketsFetchTop caps ticket range queries; ranges are at most a pay period
const ticketsFetchTop = 1000

type rawTicket struct {
	TicketID           int64  `json:"TicketId"`
	TicketNumber       string `json:"TicketNumber"`
	TicketTitle        string `json:"TicketTitle"`
	CreatedDate        string `json:"CreatedDate"`
	TicketStatusCode   string `json:"TicketStatusCode"`
	TicketStatusName   string `json:"TicketStatusName"`
	TicketPriorityCode string `json:"TicketPriorityCode"`
	TicketPriorityName string `json:"TicketPriorityName"`
	CustomerName       string `json:"CustomerName"`
	LocationName       string `json:"LocationName"`
	CreatedByFirstName string `json:"CreatedByFirstName"`
	CreatedByLastName  string `json:"CreatedByLastName"`
	TicketDescription  string `json:"TicketDescription"`
	DueDate            string `json:"DueDate"`
	ServiceItemName    string `json:"ServiceItemName"`
	ContactName        string `json:"ContactName"`
	IsBillable         bool   `json:"IsBillable"`
	CompletedDate      string `json:"CompletedDate"`
	UpdatedDate        string `json:"UpdatedDate"`
}

func (raw *rawTicket) toModel() model.Ticket {
	technician := ""
	if raw.CreatedByFirstName != "" && raw.CreatedByLastName != "" {
		technician = raw.CreatedByFirstName + " " + raw.CreatedByLastName
	}

	return model.Ticket{
		ID:              types.TicketID(raw.TicketID),
		Number:          raw.TicketNumber,
		Title:           raw.TicketTitle,
		Status:          orUnknown(raw.TicketStatusName),
		StatusCode:      raw.TicketStatusCode,
		Priority:        orUnknown(raw.TicketPriorityName),
		PriorityCode:    raw.TicketPriorityCode,
		ClientName:      orUnknown(raw.CustomerName),
		LocationName:    raw.LocationName,
		TechnicianName:  orUnknown(technician),
		CreatedDate:     parseUpstreamTime(raw.CreatedDate),
		UpdatedDate:     parseUpstreamTime(raw.UpdatedDate),
		CompletedDate:   parseUpstreamTime(raw.CompletedDate),
		DueDate:         parseUpstreamTime(raw.DueDate),
		Description:     raw.TicketDescription,
		ServiceItemName: raw.ServiceItemName,
		ContactName:     raw.ContactName,
		IsBillable:      raw.IsBillable,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// FetchTicketsCreatedBetween implements interfaces.DataSource.
func (c *Client) FetchTicketsCreatedBetween(ctx context.Context, start, end time.Time) ([]model.Ticket, error) {
	filter := fmt.Sprintf("CreatedDate ge %s and CreatedDate le %s",
		start.Format(model.DateFormat), end.Format(model.DateFormat))

	return c.fetchTickets(ctx, query{
		top:     ticketsFetchTop,
		sel:     ticketSelect,
		orderBy: "CreatedDate desc",
		filter:  filter,
	})
}

// FetchClosedTicketsBetween implements interfaces.DataSource.
func (c *Client) FetchClosedTicketsBetween(ctx context.Context, start, end time.Time) ([]model.Ticket, error) {
	filter := fmt.Sprintf("(TicketStatusName eq 'Complete' or TicketStatusName eq 'Closed'"+
		" or TicketStatusName eq 'Resolved' or TicketStatusName eq 'Cancelled')"+
		" and (CompletedDate ge %s and CompletedDate le %s)",
		start.Format(model.DateFormat), end.Format(model.DateFormat))

	return c.fetchTickets(ctx, query{
		top:     ticketsFetchTop,
		sel:     ticketSelect,
		orderBy: "CompletedDate desc",
		filter:  filter,
	})
}

func (c *Client) fetchTickets(ctx context.Context, q query) ([]model.Ticket, error) {
	records, err := c.fetchEntities(ctx, ticketsEntity, q)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch tickets")
	}

	tickets := make([]model.Ticket, 0, len(records))
	for _, rec := range records {
		var raw rawTicket
		if err := json.Unmarshal(rec, &raw); err != nil {
			continue
		}
		tickets = append(tickets, raw.toModel())
	}
	return tickets, nil
}
