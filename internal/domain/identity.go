package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleGuard      Role = "guard"
)

type Identity struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Role         Role       `json:"role"`
	AreaID       string     `json:"area_id,omitempty"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty"`
	Active       bool       `json:"active"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CreateIdentityRequest struct {
	Email        string     `json:"email" validate:"required,email"`
	Name         string     `json:"name" validate:"required,max=128"`
	Password     string     `json:"password" validate:"required,min=8,max=72"`
	Role         Role       `json:"role" validate:"required,oneof=supervisor guard"`
	AreaID       string     `json:"area_id" validate:"required_if=Role supervisor,max=64"`
	SupervisorID *uuid.UUID `json:"supervisor_id,omitempty" validate:"required_if=Role guard"`
}

// CreateGuardRequest is what a supervisor sends; the guard joins the
// supervisor's team and area.
type CreateGuardRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// IdentityFilter narrows identity listings; zero values mean "any".
type IdentityFilter struct {
	Role         Role
	SupervisorID uuid.UUID
	AreaID       string
	Active       *bool
	Page         int
	Limit        int
}

type ListIdentitiesResponse struct {
	Identities []*Identity `json:"identities"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	Role        Role      `json:"role"`
}

// Principal is the authenticated caller extracted from an access token.
type Principal struct {
	ID     uuid.UUID
	Email  string
	Role   Role
	AreaID string
}
