package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"signup-service/app/domain"
	apperrors "signup-service/app/utils/errors"
	"signup-service/app/utils/validator"
)

func TestFromError(t *testing.T) {
	upstream := stderrors.New("pq: duplicate key value violates unique constraint")

	tests := []struct {
		name        string
		err         error
		wantCode    apperrors.ErrorCode
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         &validator.ValidationError{Field: "senha", Message: "senha deve ter pelo menos 6 caracteres"},
			wantCode:    apperrors.ErrCodeValidationFailed,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "senha deve ter pelo menos 6 caracteres",
		},
		{
			name:       "kill switch",
			err:        domain.ErrSignupDisabled,
			wantCode:   apperrors.ErrCodeSignupDisabled,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "rate limited",
			err:        domain.ErrRateLimited,
			wantCode:   apperrors.ErrCodeRateLimited,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "wrapped rate limited",
			err:        fmt.Errorf("signup rejected: %w", domain.ErrRateLimited),
			wantCode:   apperrors.ErrCodeRateLimited,
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "duplicate email",
			err:        domain.ErrEmailTaken,
			wantCode:   apperrors.ErrCodeEmailTaken,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "identity step failure is a client error",
			err:         domain.NewProvisionError(domain.StepIdentity, domain.MsgIdentityFailed, upstream),
			wantCode:    apperrors.ErrCodeIdentityError,
			wantStatus:  http.StatusBadRequest,
			wantMessage: domain.MsgIdentityFailed,
		},
		{
			name:        "tenant step failure is an internal error",
			err:         domain.NewProvisionError(domain.StepTenant, domain.MsgTenantFailed, upstream),
			wantCode:    apperrors.ErrCodeProvisionError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: domain.MsgTenantFailed,
		},
		{
			name:        "membership step failure is an internal error",
			err:         domain.NewProvisionError(domain.StepMembership, domain.MsgMembershipFailed, upstream),
			wantCode:    apperrors.ErrCodeProvisionError,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: domain.MsgMembershipFailed,
		},
		{
			name:       "unclassified error",
			err:        stderrors.New("connection reset by peer"),
			wantCode:   apperrors.ErrCodeInternalError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperrors.FromError(tt.err)

			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.StatusCode)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, appErr.Message)
			}
		})
	}
}

func TestFromError_UpstreamTextStaysOutOfMessage(t *testing.T) {
	upstream := stderrors.New("pq: relation \"gestao_marcenaria__tenants\" does not exist")
	appErr := apperrors.FromError(domain.NewProvisionError(domain.StepTenant, domain.MsgTenantFailed, upstream))

	assert.NotContains(t, appErr.Message, "pq:")
	assert.ErrorIs(t, appErr, upstream)
}
