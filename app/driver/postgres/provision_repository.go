package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"signup-service/app/domain"
	"signup-service/app/port"
)

// ProvisionRepository implements port.ProvisionRepository over the
// bookkeeping schema's profile, tenant and membership tables.
type ProvisionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProvisionRepository creates a new PostgreSQL provision repository
func NewProvisionRepository(db DatabaseIface, logger *slog.Logger) port.ProvisionRepository {
	return &ProvisionRepository{
		db:     db,
		logger: logger.With("component", "provision_repository"),
	}
}

// UpsertProfile creates or replaces the profile row keyed by identity id, so
// repeated provisioning attempts for the same identity do not duplicate it.
func (r *ProvisionRepository) UpsertProfile(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO gestao_marcenaria__usuarios (user_id, email, nome, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			nome = EXCLUDED.nome,
			updated_at = EXCLUDED.updated_at`

	r.logger.Info("upserting user profile", "user_id", profile.UserID)

	_, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Email,
		profile.Nome,
		profile.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("failed to upsert profile", "user_id", profile.UserID, "error", err)
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}

// CreateTenant inserts the tenant and reads back its generated id.
func (r *ProvisionRepository) CreateTenant(ctx context.Context, tenant *domain.Tenant) error {
	query := `
		INSERT INTO gestao_marcenaria__tenants (nome, created_at)
		VALUES ($1, $2)
		RETURNING id`

	r.logger.Info("creating tenant", "nome", tenant.Nome)

	err := r.db.QueryRow(ctx, query, tenant.Nome, tenant.CreatedAt).Scan(&tenant.ID)
	if err != nil {
		r.logger.Error("failed to create tenant", "nome", tenant.Nome, "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	r.logger.Info("tenant created", "tenant_id", tenant.ID)
	return nil
}

// CreateMembership links the identity to the tenant.
func (r *ProvisionRepository) CreateMembership(ctx context.Context, membership *domain.TenantMembership) error {
	query := `
		INSERT INTO gestao_marcenaria__tenant_membros (tenant_id, user_id, papel, created_at)
		VALUES ($1, $2, $3, $4)`

	r.logger.Info("creating membership",
		"tenant_id", membership.TenantID,
		"user_id", membership.UserID,
		"papel", membership.Papel)

	_, err := r.db.Exec(ctx, query,
		membership.TenantID,
		membership.UserID,
		membership.Papel,
		membership.CreatedAt,
	)
	if err != nil {
		r.logger.Error("failed to create membership",
			"tenant_id", membership.TenantID,
			"user_id", membership.UserID,
			"error", err)
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}
