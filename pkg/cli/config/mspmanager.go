package config

import (
	"log/slog"
	"time"

	"github.com/halcyon-ops/hourglass/pkg/service/mspmanager"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// MSPManager holds upstream API configuration
type MSPManager struct {
	BaseURL  string
	APIKey   string
	FetchTop int64
	Timeout  time.Duration
}

// Flags returns CLI flags for MSPManager configuration
func (m *MSPManager) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "msp-base-url",
			Usage:       "MSP Manager OData API base URL",
			Category:    "MSP Manager",
			Value:       mspmanager.DefaultBaseURL,
			Sources:     cli.EnvVars("HOURGLASS_MSP_BASE_URL"),
			Destination: &m.BaseURL,
		},
		&cli.StringFlag{
			Name:        "msp-api-key",
			Usage:       "MSP Manager API key",
			Category:    "MSP Manager",
			Sources:     cli.EnvVars("HOURGLASS_MSP_API_KEY"),
			Destination: &m.APIKey,
		},
		&cli.Int64Flag{
			Name:        "msp-fetch-top",
			Usage:       "Cap on the unfiltered time-entry fetch",
			Category:    "MSP Manager",
			Value:       mspmanager.DefaultFetchTop,
			Sources:     cli.EnvVars("HOURGLASS_MSP_FETCH_TOP"),
			Destination: &m.FetchTop,
		},
		&cli.DurationFlag{
			Name:        "msp-timeout",
			Usage:       "Timeout for a single upstream API call",
			Category:    "MSP Manager",
			Value:       mspmanager.DefaultTimeout,
			Sources:     cli.EnvVars("HOURGLASS_MSP_TIMEOUT"),
			Destination: &m.Timeout,
		},
	}
}

// Configure creates the upstream API client
func (m *MSPManager) Configure() (*mspmanager.Client, error) {
	if m.APIKey == "" {
		return nil, goerr.New("MSP Manager API key is required. Please provide HOURGLASS_MSP_API_KEY")
	}

	return mspmanager.New(m.BaseURL, m.APIKey,
		mspmanager.WithFetchTop(int(m.FetchTop)),
		mspmanager.WithTimeout(m.Timeout),
	), nil
}

// LogValue returns structured log value
func (m MSPManager) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", m.BaseURL),
		slog.Bool("has_api_key", m.APIKey != ""),
		slog.Int64("fetch_top", m.FetchTop),
		slog.Duration("timeout", m.Timeout),
	)
}
