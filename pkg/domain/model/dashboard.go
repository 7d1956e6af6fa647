package model

import (
	"time"

	"github.com/halcyon-ops/hourglass/pkg/domain/types"
)

// DashboardStats is the headline figures card for a date range.
type DashboardStats struct {
	OpenTickets   int         `json:"openTickets"`
	ClosedTickets int         `json:"closedTickets"`
	TotalHours    float64     `json:"totalHours"`
	ActiveClients int         `json:"activeClients"`
	Period        ReportRange `json:"period"`
}

// ActivityBucket is one bar of the activity chart: ticket count and rounded
// hours for a day (weekly view) or a week (monthly view).
type ActivityBucket struct {
	Label   string `json:"day"`
	Tickets int    `json:"tickets"`
	Hours   int    `json:"hours"`
}

// ClientShare is one slice of the top-clients breakdown.
type ClientShare struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Percent int    `json:"value"`
	Rank    int    `json:"rank"`
}

// ClientHoursReport is the per-client hours report, optionally exported as CSV.
type ClientHoursReport struct {
	ReportID    types.ReportID `json:"reportId"`
	ClientID    types.ClientID `json:"clientId"`
	Period      ReportRange    `json:"period"`
	TotalHours  float64        `json:"totalHours"`
	Entries     []TimeEntry    `json:"entries"`
	GeneratedAt time.Time      `json:"generatedAt"`
}
