package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"signup-service/app/domain"
	"signup-service/app/mocks"
	"signup-service/app/utils/logger"
	"signup-service/app/utils/validator"
)

type signupFixture struct {
	usecase  *SignupUsecase
	identity *mocks.MockIdentityGateway
	repo     *mocks.MockProvisionRepository
	counter  *mocks.MockAttemptCounter
}

func newSignupFixture(t *testing.T, disabled bool) *signupFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	identity := mocks.NewMockIdentityGateway(ctrl)
	repo := mocks.NewMockProvisionRepository(ctrl)
	counter := mocks.NewMockAttemptCounter(ctrl)

	testLogger, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)

	limiter := NewRateLimiter(counter, 600, 10, "test-salt", testLogger)

	return &signupFixture{
		usecase:  NewSignupUsecase(identity, repo, limiter, disabled, testLogger),
		identity: identity,
		repo:     repo,
		counter:  counter,
	}
}

func signupRequest() *domain.SignupRequest {
	return &domain.SignupRequest{
		NomeTenant:  "Marcenaria Silva",
		NomeUsuario: "João Silva",
		Email:       "joao@example.com",
		Senha:       "segredo123",
	}
}

func (f *signupFixture) expectAdmitted() {
	f.counter.EXPECT().
		AdmitAndIncrement(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(true, nil)
}

func TestSignupUsecase_Signup_Success(t *testing.T) {
	f := newSignupFixture(t, false)
	userID := uuid.New()
	tenantID := uuid.New()

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), "joao@example.com", "segredo123", "João Silva").
		Return(userID, nil)
	f.repo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, profile *domain.UserProfile) error {
			assert.Equal(t, userID, profile.UserID)
			assert.Equal(t, "joao@example.com", profile.Email)
			assert.Equal(t, "João Silva", profile.Nome)
			return nil
		})
	f.repo.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
			assert.Equal(t, "Marcenaria Silva", tenant.Nome)
			tenant.ID = tenantID
			return nil
		})
	f.repo.EXPECT().
		CreateMembership(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, membership *domain.TenantMembership) error {
			assert.Equal(t, tenantID, membership.TenantID)
			assert.Equal(t, userID, membership.UserID)
			assert.Equal(t, domain.RoleAdmin, membership.Papel)
			return nil
		})

	result, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	require.NoError(t, err)
	assert.Equal(t, userID, result.UserID)
	assert.Equal(t, tenantID, result.TenantID)
}

func TestSignupUsecase_Signup_TrimsInputBeforeProvisioning(t *testing.T) {
	f := newSignupFixture(t, false)
	userID := uuid.New()

	req := signupRequest()
	req.NomeTenant = "  Marcenaria Silva  "
	req.NomeUsuario = " João Silva "
	req.Email = " joao@example.com "

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), "joao@example.com", "segredo123", "João Silva").
		Return(userID, nil)
	f.repo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
			assert.Equal(t, "Marcenaria Silva", tenant.Nome)
			tenant.ID = uuid.New()
			return nil
		})
	f.repo.EXPECT().CreateMembership(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.usecase.Signup(context.Background(), req, "203.0.113.7")
	require.NoError(t, err)
}

func TestSignupUsecase_Signup_KillSwitch(t *testing.T) {
	f := newSignupFixture(t, true)

	// No expectations on any mock: the kill switch fires before validation
	// and before the rate limit counter is touched.
	result, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSignupDisabled)
}

func TestSignupUsecase_Signup_KillSwitchBeatsInvalidInput(t *testing.T) {
	f := newSignupFixture(t, true)

	req := signupRequest()
	req.Senha = ""

	_, err := f.usecase.Signup(context.Background(), req, "203.0.113.7")
	assert.ErrorIs(t, err, domain.ErrSignupDisabled)
}

func TestSignupUsecase_Signup_Validation(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*domain.SignupRequest)
		wantMessage string
	}{
		{
			name:        "empty tenant name",
			mutate:      func(r *domain.SignupRequest) { r.NomeTenant = "   " },
			wantMessage: "informe o nome da empresa/ambiente",
		},
		{
			name:        "empty user name",
			mutate:      func(r *domain.SignupRequest) { r.NomeUsuario = "" },
			wantMessage: "informe seu nome",
		},
		{
			name:        "empty email",
			mutate:      func(r *domain.SignupRequest) { r.Email = "  " },
			wantMessage: "informe o e-mail",
		},
		{
			name:        "five character password",
			mutate:      func(r *domain.SignupRequest) { r.Senha = "12345" },
			wantMessage: "senha deve ter pelo menos 6 caracteres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No side effects expected: validation fails before the rate
			// limiter and the identity provider are reached.
			f := newSignupFixture(t, false)

			req := signupRequest()
			tt.mutate(req)

			result, err := f.usecase.Signup(context.Background(), req, "203.0.113.7")
			assert.Nil(t, result)

			var vErr *validator.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantMessage, vErr.Message)
		})
	}
}

func TestSignupUsecase_Signup_RateLimited(t *testing.T) {
	f := newSignupFixture(t, false)

	f.counter.EXPECT().
		AdmitAndIncrement(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(false, nil)

	result, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestSignupUsecase_Signup_CounterFailureIsInternal(t *testing.T) {
	f := newSignupFixture(t, false)

	f.counter.EXPECT().
		AdmitAndIncrement(gomock.Any(), gomock.Any(), gomock.Any(), 10).
		Return(false, errors.New("connection refused"))

	_, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrRateLimited)
}

func TestSignupUsecase_Signup_DuplicateEmail(t *testing.T) {
	f := newSignupFixture(t, false)

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, domain.ErrEmailTaken)

	_, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignupUsecase_Signup_IdentityFailure(t *testing.T) {
	f := newSignupFixture(t, false)
	upstream := errors.New("kratos unavailable")

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, upstream)

	_, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	var pErr *domain.ProvisionError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, domain.StepIdentity, pErr.Step)
	assert.ErrorIs(t, err, upstream)
}

func TestSignupUsecase_Signup_ProfileFailureLeavesIdentity(t *testing.T) {
	f := newSignupFixture(t, false)
	userID := uuid.New()

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(userID, nil)
	f.repo.EXPECT().
		UpsertProfile(gomock.Any(), gomock.Any()).
		Return(errors.New("pool exhausted"))

	// No CreateTenant/CreateMembership expectations: the sequence stops at
	// the failing step. The identity already exists and is not deleted.
	_, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	var pErr *domain.ProvisionError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, domain.StepProfile, pErr.Step)
}

func TestSignupUsecase_Signup_TenantFailureLeavesIdentityAndProfile(t *testing.T) {
	// Regression test for current non-transactional behavior: a tenant
	// insert failure leaves the already-created identity and profile behind.
	f := newSignupFixture(t, false)
	userID := uuid.New()

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(userID, nil)
	f.repo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		Return(errors.New("relation does not exist"))

	_, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	var pErr *domain.ProvisionError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, domain.StepTenant, pErr.Step)
}

func TestSignupUsecase_Signup_MembershipFailure(t *testing.T) {
	f := newSignupFixture(t, false)
	userID := uuid.New()

	f.expectAdmitted()
	f.identity.EXPECT().
		CreateConfirmedIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(userID, nil)
	f.repo.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().
		CreateTenant(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenant *domain.Tenant) error {
			tenant.ID = uuid.New()
			return nil
		})
	f.repo.EXPECT().
		CreateMembership(gomock.Any(), gomock.Any()).
		Return(errors.New("foreign key violation"))

	_, err := f.usecase.Signup(context.Background(), signupRequest(), "203.0.113.7")

	var pErr *domain.ProvisionError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, domain.StepMembership, pErr.Step)
}
