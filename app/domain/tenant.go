package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Tenant represents an isolated customer namespace. Every business row in the
// bookkeeping schema belongs to exactly one tenant.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTenant creates a new tenant with validation. The ID is assigned by the
// database on insert.
func NewTenant(nome string) (*Tenant, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, fmt.Errorf("tenant name is required")
	}

	return &Tenant{
		Nome:      nome,
		CreatedAt: time.Now(),
	}, nil
}

// MembershipRole is the role a user holds inside a tenant.
type MembershipRole string

const (
	// RoleAdmin is the role given to the user who creates the tenant.
	RoleAdmin MembershipRole = "admin"

	// RoleMembro is a regular member added later through invitations.
	RoleMembro MembershipRole = "membro"
)

// TenantMembership links a user identity to a tenant. The schema is
// many-to-many in general, but signup always creates the first membership
// with the admin role.
type TenantMembership struct {
	TenantID  uuid.UUID      `json:"tenant_id"`
	UserID    uuid.UUID      `json:"user_id"`
	Papel     MembershipRole `json:"papel"`
	CreatedAt time.Time      `json:"created_at"`
}

// NewAdminMembership creates the creator's membership for a new tenant.
func NewAdminMembership(tenantID, userID uuid.UUID) (*TenantMembership, error) {
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID is required")
	}
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}

	return &TenantMembership{
		TenantID:  tenantID,
		UserID:    userID,
		Papel:     RoleAdmin,
		CreatedAt: time.Now(),
	}, nil
}
