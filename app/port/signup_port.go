package port

//go:generate mockgen -source=signup_port.go -destination=../mocks/mock_signup_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"signup-service/app/domain"
)

// SignupUsecase runs the rate-limited tenant provisioning flow.
type SignupUsecase interface {
	// Signup validates the request, checks the rate limit for clientID and
	// provisions identity, profile, tenant and admin membership in order.
	Signup(ctx context.Context, req *domain.SignupRequest, clientID string) (*domain.SignupResult, error)
}

// IdentityGateway creates identities in the external identity provider
// through its privileged admin API.
type IdentityGateway interface {
	// CreateConfirmedIdentity creates an identity with a verified email so
	// the flow never depends on an outbound confirmation email. Returns the
	// provider-assigned identity id. A duplicate email is reported as
	// domain.ErrEmailTaken.
	CreateConfirmedIdentity(ctx context.Context, email, password, name string) (uuid.UUID, error)
}

// ProvisionRepository persists the application-side rows of a signup. All
// writes run on the privileged connection, so they succeed before the new
// user has ever authenticated.
type ProvisionRepository interface {
	// UpsertProfile creates or replaces the profile keyed by identity id.
	UpsertProfile(ctx context.Context, profile *domain.UserProfile) error

	// CreateTenant inserts the tenant and fills in its generated id.
	CreateTenant(ctx context.Context, tenant *domain.Tenant) error

	// CreateMembership links the identity to the tenant.
	CreateMembership(ctx context.Context, membership *domain.TenantMembership) error
}

// KratosClient is the driver-level surface of the identity provider's admin
// API. The gateway translates its results into domain terms.
type KratosClient interface {
	// CreateConfirmedIdentity creates a password identity whose email address
	// is already verified. Returns the raw provider identity id.
	CreateConfirmedIdentity(ctx context.Context, email, password, name string) (string, error)

	// Health reports whether the provider is reachable.
	Health(ctx context.Context) error
}

// AttemptCounter is the persisted fixed-window counter behind the signup
// rate limiter. Implementations decide whether the admit decision is atomic;
// the postgres one is not, the redis one is.
type AttemptCounter interface {
	// AdmitAndIncrement records one attempt for (keyHash, windowStart) and
	// reports whether it is within max. Persistence failures are returned as
	// errors and must fail the request; the limiter never fails open.
	AdmitAndIncrement(ctx context.Context, keyHash string, windowStart int64, max int) (bool, error)
}
