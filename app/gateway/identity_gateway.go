package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"signup-service/app/port"
)

// IdentityGateway implements port.IdentityGateway over the Kratos admin
// client, translating provider identities into domain ids.
type IdentityGateway struct {
	client port.KratosClient
	logger *slog.Logger
}

// NewIdentityGateway creates a new identity gateway.
func NewIdentityGateway(client port.KratosClient, logger *slog.Logger) port.IdentityGateway {
	return &IdentityGateway{
		client: client,
		logger: logger.With("component", "identity_gateway"),
	}
}

// CreateConfirmedIdentity creates a pre-confirmed identity and returns its id.
func (g *IdentityGateway) CreateConfirmedIdentity(ctx context.Context, email, password, name string) (uuid.UUID, error) {
	g.logger.Info("creating confirmed identity", "email", email)

	rawID, err := g.client.CreateConfirmedIdentity(ctx, email, password, name)
	if err != nil {
		g.logger.Error("identity creation failed", "email", email, "error", err)
		return uuid.Nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("identity provider returned malformed id %q: %w", rawID, err)
	}

	g.logger.Info("identity created", "user_id", id)
	return id, nil
}
