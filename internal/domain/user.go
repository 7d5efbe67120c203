package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UserSession struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	RefreshTokenHash string     `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        time.Time  `json:"expires_at"`
	RevokedAt        *time.Time `json:"revoked_at,omitempty"`
	RevokedReason    *string    `json:"revoked_reason,omitempty"`
}

const (
	RoleJobSeeker = "jobseeker"
	RoleEmployer  = "employer"
)

// ComplementaryRole returns the role a user of the given role may converse
// with: job seekers talk to employers and vice versa.
func ComplementaryRole(role string) string {
	if role == RoleJobSeeker {
		return RoleEmployer
	}
	return RoleJobSeeker
}

func ValidRole(role string) bool {
	return role == RoleJobSeeker || role == RoleEmployer
}
