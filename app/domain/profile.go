package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// UserProfile is the application-side profile for an identity owned by the
// identity provider. One-to-one with the identity, keyed by its id, and
// upserted so that repeated provisioning attempts do not duplicate it.
type UserProfile struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Nome      string    `json:"nome"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserProfile creates a profile with validation.
func NewUserProfile(userID uuid.UUID, email, nome string) (*UserProfile, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}

	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email format: %w", err)
	}

	if nome == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &UserProfile{
		UserID:    userID,
		Email:     email,
		Nome:      nome,
		UpdatedAt: time.Now(),
	}, nil
}
