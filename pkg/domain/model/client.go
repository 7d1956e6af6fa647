package model

import "github.com/halcyon-ops/hourglass/pkg/domain/types"

// Client is an upstream customer record.
type Client struct {
	ID   types.ClientID `json:"id"`
	Name string         `json:"name"`
}
