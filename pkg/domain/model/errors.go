package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for report operations
var (
	ErrUpstreamUnavailable = goerr.New("upstream data source unavailable")
	ErrInvalidDateRange    = goerr.New("invalid date range")
	ErrClientNotFound      = goerr.New("client not found")
)
