// Package auth issues and checks the HS256 JWTs that guard the admin API.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"os"
)

// ErrInvalidCredentials is returned for any username/password mismatch.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials is the login body.
type Credentials struct {
	Username string
	Password string
}

// Provider authenticates credentials and returns the granted role.
type Provider interface {
	Authenticate(ctx context.Context, creds Credentials) (role string, err error)
}

// EnvProvider authenticates the single admin account configured through
// ADMIN_USER and ADMIN_USER_PASSWORD.
type EnvProvider struct {
	User     string
	Password string
}

// NewEnvProvider reads the admin account from the environment.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{
		User:     os.Getenv("ADMIN_USER"),
		Password: os.Getenv("ADMIN_USER_PASSWORD"),
	}
}

// Authenticate compares in constant time. Both comparisons always run.
func (p *EnvProvider) Authenticate(_ context.Context, creds Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" || p.User == "" || p.Password == "" {
		return "", ErrInvalidCredentials
	}
	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(p.User))
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(p.Password))
	if userMatch&passMatch != 1 {
		return "", ErrInvalidCredentials
	}
	return RoleAdmin, nil
}
