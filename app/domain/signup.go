package domain

import (
	"strings"

	"github.com/google/uuid"
)

// SignupRequest carries the signup form fields. Field names on the wire are
// the ones the frontend has always sent.
type SignupRequest struct {
	NomeTenant  string `json:"nomeTenant" validate:"required"`
	NomeUsuario string `json:"nomeUsuario" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Senha       string `json:"senha" validate:"required,min=6"`
}

// Normalize trims the name and email fields in place. The password is left
// untouched: leading and trailing spaces are part of it.
func (r *SignupRequest) Normalize() {
	r.NomeTenant = strings.TrimSpace(r.NomeTenant)
	r.NomeUsuario = strings.TrimSpace(r.NomeUsuario)
	r.Email = strings.TrimSpace(r.Email)
}

// SignupResult is returned to the caller after a fully provisioned signup.
type SignupResult struct {
	UserID   uuid.UUID `json:"userId"`
	TenantID uuid.UUID `json:"tenantId"`
}
