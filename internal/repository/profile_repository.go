package repository

import (
	"context"

	"github.com/codexa/backend/internal/model"
)

// ProfileRepository handles persistence for back-office accounts.
type ProfileRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	Create(ctx context.Context, p *model.Profile) error
}
