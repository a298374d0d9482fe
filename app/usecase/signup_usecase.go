package usecase

import (
	"context"
	"errors"
	"log/slog"

	"signup-service/app/domain"
	"signup-service/app/port"
	"signup-service/app/utils/validator"
)

// SignupUsecase implements the tenant provisioning flow: identity, profile,
// tenant and admin membership, in that order. Each step commits on its own;
// a failure aborts the remaining steps without rolling back completed ones,
// so a mid-sequence failure can leave orphaned rows.
type SignupUsecase struct {
	identity  port.IdentityGateway
	repo      port.ProvisionRepository
	limiter   *RateLimiter
	validator *validator.Validator
	disabled  bool
	logger    *slog.Logger
}

// NewSignupUsecase creates a new SignupUsecase instance.
func NewSignupUsecase(identity port.IdentityGateway, repo port.ProvisionRepository, limiter *RateLimiter, disabled bool, logger *slog.Logger) *SignupUsecase {
	return &SignupUsecase{
		identity:  identity,
		repo:      repo,
		limiter:   limiter,
		validator: validator.New(),
		disabled:  disabled,
		logger:    logger.With("component", "signup_usecase"),
	}
}

// Signup runs the full flow for one signup request. clientID is the caller's
// network identifier used for rate limiting.
func (uc *SignupUsecase) Signup(ctx context.Context, req *domain.SignupRequest, clientID string) (*domain.SignupResult, error) {
	// Kill switch short-circuits everything, including validation and the
	// rate limit counter.
	if uc.disabled {
		return nil, domain.ErrSignupDisabled
	}

	req.Normalize()
	if err := uc.validator.Validate(req); err != nil {
		return nil, err
	}

	if err := uc.limiter.Allow(ctx, clientID); err != nil {
		return nil, err
	}

	// Step 1: create the identity pre-confirmed so the flow never depends on
	// an outbound confirmation email.
	userID, err := uc.identity.CreateConfirmedIdentity(ctx, req.Email, req.Senha, req.NomeUsuario)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, err
		}
		return nil, domain.NewProvisionError(domain.StepIdentity, domain.MsgIdentityFailed, err)
	}

	// Step 2: upsert the profile keyed by the new identity id. Failure here
	// leaves a confirmed identity with no profile.
	profile, err := domain.NewUserProfile(userID, req.Email, req.NomeUsuario)
	if err != nil {
		return nil, domain.NewProvisionError(domain.StepProfile, domain.MsgProfileFailed, err)
	}
	if err := uc.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, domain.NewProvisionError(domain.StepProfile, domain.MsgProfileFailed, err)
	}

	// Step 3: create the tenant, reading back its generated id.
	tenant, err := domain.NewTenant(req.NomeTenant)
	if err != nil {
		return nil, domain.NewProvisionError(domain.StepTenant, domain.MsgTenantFailed, err)
	}
	if err := uc.repo.CreateTenant(ctx, tenant); err != nil {
		return nil, domain.NewProvisionError(domain.StepTenant, domain.MsgTenantFailed, err)
	}

	// Step 4: link the creator to the new tenant as its admin.
	membership, err := domain.NewAdminMembership(tenant.ID, userID)
	if err != nil {
		return nil, domain.NewProvisionError(domain.StepMembership, domain.MsgMembershipFailed, err)
	}
	if err := uc.repo.CreateMembership(ctx, membership); err != nil {
		return nil, domain.NewProvisionError(domain.StepMembership, domain.MsgMembershipFailed, err)
	}

	uc.logger.Info("signup provisioned",
		"user_id", userID,
		"tenant_id", tenant.ID)

	return &domain.SignupResult{
		UserID:   userID,
		TenantID: tenant.ID,
	}, nil
}
