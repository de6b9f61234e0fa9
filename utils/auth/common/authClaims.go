package common

import (
	"github.com/exiby/exiby_admin/entities"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the model for the claims in the session JWT
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// User returns the session user described by the claims
func (c SessionClaims) User() entities.SessionUser {
	return entities.SessionUser{
		ID:    c.Subject,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}
}
