package repository

import (
	"context"
	"errors"

	"github.com/codexa/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgProfileRepository is the PostgreSQL implementation of ProfileRepository.
type PgProfileRepository struct {
	db Querier
}

// NewPgProfileRepository creates a PgProfileRepository backed by the given pool.
func NewPgProfileRepository(db Querier) *PgProfileRepository {
	return &PgProfileRepository{db: db}
}

var _ ProfileRepository = (*PgProfileRepository)(nil)

func (r *PgProfileRepository) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return r.findBy(ctx, "email", email)
}

func (r *PgProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	return r.findBy(ctx, "id", id)
}

func (r *PgProfileRepository) findBy(ctx context.Context, column, value string) (*model.Profile, error) {
	p := &model.Profile{}
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role, created_at, updated_at
		 FROM profiles WHERE `+column+` = $1`, value).
		Scan(&p.ID, &p.Email, &p.PasswordHash, &p.Role, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create stores a new profile. The email has a unique constraint; duplicate
// inserts surface the database error unchanged.
func (r *PgProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	p.ID = uuid.NewString()
	return r.db.QueryRow(ctx,
		`INSERT INTO profiles (id, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		p.ID, p.Email, p.PasswordHash, p.Role,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}
