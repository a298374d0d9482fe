package domain

import "errors"

// Signup flow errors. Messages are client-facing and match the wording the
// frontend expects, so they stay in Portuguese.
var (
	// Kill switch
	ErrSignupDisabled = errors.New("cadastro temporariamente desabilitado")

	// Rate limiting
	ErrRateLimited = errors.New("muitas tentativas de cadastro, tente novamente mais tarde")

	// Identity provider
	ErrEmailTaken = errors.New("e-mail já cadastrado")

	// General errors
	ErrInternal = errors.New("erro interno")
)

// ProvisionStep identifies which step of the provisioning sequence failed.
type ProvisionStep string

const (
	StepIdentity   ProvisionStep = "identity"
	StepProfile    ProvisionStep = "profile"
	StepTenant     ProvisionStep = "tenant"
	StepMembership ProvisionStep = "membership"
)

// ProvisionError wraps a failure in one provisioning step. Steps after the
// failing one are never executed and completed steps are not rolled back, so
// a ProvisionError can imply orphaned rows.
type ProvisionError struct {
	Step    ProvisionStep
	Message string
	Cause   error
}

func (e *ProvisionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ProvisionError) Unwrap() error {
	return e.Cause
}

// NewProvisionError creates a provisioning step error with a client-safe message.
func NewProvisionError(step ProvisionStep, message string, cause error) *ProvisionError {
	return &ProvisionError{
		Step:    step,
		Message: message,
		Cause:   cause,
	}
}

// Client-facing messages per failing step.
const (
	MsgIdentityFailed   = "falha ao criar usuário"
	MsgProfileFailed    = "falha ao salvar o perfil do usuário"
	MsgTenantFailed     = "falha ao criar a empresa/ambiente"
	MsgMembershipFailed = "falha ao vincular o usuário à empresa"
)
