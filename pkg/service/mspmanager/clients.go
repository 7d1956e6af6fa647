package mspmanager

import (
	"context"
	"encoding/json"

	"github.com/halcyon-ops/hourglass/pkg/domain/model"
	"github.com/halcyon-ops/hourglass/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const clientsEntity = "Clients"

type rawClient struct {
	ClientID   json.Number `json:"ClientId"`
	ClientName string      `json:"ClientName"`
}

// FetchClients implements interfaces.DataSource.
func (c *Client) FetchClients(ctx context.Context) ([]model.Client, error) {
	records, err := c.fetchEntities(ctx, clientsEntity, query{
		sel:     "ClientId,ClientName",
		orderBy: "ClientName asc",
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch clients")
	}

	clients := make([]model.Client, 0, len(records))
	for _, rec := range records {
		var raw rawClient
		if err := json.Unmarshal(rec, &raw); err != nil {
			continue
		}
		clients = append(clients, model.Client{
			ID:   types.ClientID(raw.ClientID.String()),
			Name: raw.ClientName,
		})
	}
	return clients, nil
}
