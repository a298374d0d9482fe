package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	kratosclient "github.com/ory/kratos-client-go"

	"signup-service/app/domain"
	"signup-service/app/port"
)

// identitySchemaID is the Kratos identity schema used for signup identities.
const identitySchemaID = "default"

// ClientAdapter adapts the Kratos client to implement port.KratosClient
type ClientAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewClientAdapter creates a new adapter
func NewClientAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &ClientAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// CreateConfirmedIdentity creates an identity through the admin API with its
// email address already verified, so no confirmation email is ever sent. The
// admin API bypasses registration flows entirely; that is what lets signup
// provision rows before the user has authenticated once.
func (a *ClientAdapter) CreateConfirmedIdentity(ctx context.Context, email, password, name string) (string, error) {
	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": email,
			"name":  name,
		},
		Credentials: &kratosclient.IdentityWithCredentials{
			Password: &kratosclient.IdentityWithCredentialsPassword{
				Config: &kratosclient.IdentityWithCredentialsPasswordConfig{
					Password: &password,
				},
			},
		},
		VerifiableAddresses: []kratosclient.VerifiableIdentityAddress{
			{
				Value:    email,
				Verified: true,
				Via:      "email",
				Status:   "completed",
			},
		},
	}

	identity, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()

	if err != nil {
		status := getHTTPStatus(httpResp)
		a.logger.Error("kratos identity creation failed",
			"email", email,
			"http_status", status,
			"error", err)

		if status == http.StatusConflict {
			return "", domain.ErrEmailTaken
		}
		return "", fmt.Errorf("kratos identity creation failed: %w", err)
	}

	a.logger.Info("kratos identity created",
		"identity_id", identity.Id,
		"schema_id", identitySchemaID)

	return identity.Id, nil
}

// Health reports whether Kratos is reachable
func (a *ClientAdapter) Health(ctx context.Context) error {
	return a.client.HealthCheck(ctx)
}

func getHTTPStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
