package model

import (
	"math"
	"strings"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/types"
)

// Ticket is the normalized view of an upstream ticket record.
type Ticket struct {
	ID              types.TicketID `json:"id"`
	Number          string         `json:"number"`
	Title           string         `json:"title"`
	Status          string         `json:"status"`
	StatusCode      string         `json:"statusCode,omitempty"`
	Priority        string         `json:"priority"`
	PriorityCode    string         `json:"priorityCode,omitempty"`
	ClientName      string         `json:"clientName"`
	LocationName    string         `json:"locationName"`
	TechnicianName  string         `json:"technicianName"`
	CreatedDate     time.Time      `json:"createdDate"`
	UpdatedDate     time.Time      `json:"lastModifiedDate,omitempty"`
	CompletedDate   time.Time      `json:"completedDate,omitempty"`
	DueDate         time.Time      `json:"dueDate,omitempty"`
	Description     string         `json:"description"`
	ServiceItemName string         `json:"serviceItemName,omitempty"`
	ContactName     string         `json:"contactName,omitempty"`
	IsBillable      bool           `json:"isBillable"`
}

// closedStatuses are the upstream status names that mean a ticket is done
var closedStatuses = []string{"complete", "closed", "resolved", "cancelled"}

// IsClosed reports whether the ticket's status names a terminal state.
func (t *Ticket) IsClosed() bool {
	status := strings.ToLower(t.Status)
	for _, s := range closedStatuses {
		if strings.Contains(status, s) {
			return true
		}
	}
	return false
}

// ResolutionHours returns the whole hours between creation and completion,
// zero when either timestamp is missing.
func (t *Ticket) ResolutionHours() int {
	if t.CreatedDate.IsZero() || t.CompletedDate.IsZero() {
		return 0
	}
	return int(math.Round(t.CompletedDate.Sub(t.CreatedDate).Hours()))
}

// FilterTicketsByCreatedRange keeps tickets created within [start, end] at day
// granularity. Tickets without a creation date are dropped.
func FilterTicketsByCreatedRange(tickets []Ticket, start, end time.Time) []Ticket {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	var out []Ticket
	for _, t := range tickets {
		if t.CreatedDate.IsZero() {
			continue
		}
		day := truncateToDay(t.CreatedDate)
		if day.Before(startDay) || day.After(endDay) {
			continue
		}
		out = append(out, t)
	}
	return out
}
