package service

import (
	"context"

	"github.com/codexa/backend/internal/model"
)

// AuthService authenticates back-office accounts.
type AuthService interface {
	// Login verifies the credentials and that the account holds the admin
	// role. Returns ErrInvalidCredentials on a bad email/password pair and
	// ErrAccessDenied for a valid non-admin account.
	Login(ctx context.Context, email, password string) (*model.Profile, error)

	// ProfileByID loads a profile for an authenticated session.
	ProfileByID(ctx context.Context, id string) (*model.Profile, error)
}
