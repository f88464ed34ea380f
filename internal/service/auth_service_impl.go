package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// authServiceImpl is the production implementation of AuthService.
type authServiceImpl struct {
	profiles repository.ProfileRepository
}

// NewAuthService creates an AuthService backed by the given profile repository.
func NewAuthService(profiles repository.ProfileRepository) AuthService {
	return &authServiceImpl{profiles: profiles}
}

// Login compares the password against the stored bcrypt hash and checks the
// admin role. There is no lockout and no rate limiting.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*model.Profile, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, storeErr(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		slog.Debug("password mismatch", "email", email)
		return nil, ErrInvalidCredentials
	}

	if !profile.IsAdmin() {
		slog.Warn("non-admin login rejected", "email", email, "role", profile.Role)
		return nil, ErrAccessDenied
	}

	return profile, nil
}

// ProfileByID loads the profile behind a session token subject.
func (s *authServiceImpl) ProfileByID(ctx context.Context, id string) (*model.Profile, error) {
	profile, err := s.profiles.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return profile, nil
}
