package types

import (
	"fmt"

	"github.com/google/uuid"
)

// UserID represents an MSP Manager user (technician) identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// TicketID represents an upstream ticket identifier
type TicketID int64

// String returns the string representation
func (id TicketID) String() string {
	return fmt.Sprintf("%d", id)
}

// Int64 returns the int64 representation
func (id TicketID) Int64() int64 {
	return int64(id)
}

// ClientID represents an upstream client (customer) identifier
type ClientID string

// String returns the string representation
func (id ClientID) String() string {
	return string(id)
}

// TechnicianName represents a technician display name ("First Last")
type TechnicianName string

// String returns the string representation
func (n TechnicianName) String() string {
	return string(n)
}

// ReportID represents a generated report identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID using UUID v7
func NewReportID() (ReportID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return ReportID(id.String()), nil
}
