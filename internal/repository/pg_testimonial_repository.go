package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/codexa/backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PgTestimonialRepository is the PostgreSQL implementation of TestimonialRepository.
type PgTestimonialRepository struct {
	db Querier
}

// NewPgTestimonialRepository creates a PgTestimonialRepository backed by the given pool.
func NewPgTestimonialRepository(db Querier) *PgTestimonialRepository {
	return &PgTestimonialRepository{db: db}
}

var _ TestimonialRepository = (*PgTestimonialRepository)(nil)

const testimonialColumns = `id, name, email, COALESCE(company, ''), COALESCE(position, ''),
	rating, review, is_approved, is_featured, created_at`

// Insert stores a new testimonials row with moderation flags at their
// defaults (unapproved, unfeatured).
func (r *PgTestimonialRepository) Insert(ctx context.Context, t *model.Testimonial) error {
	t.ID = uuid.NewString()
	return r.db.QueryRow(ctx,
		`INSERT INTO testimonials
		   (id, name, email, company, position, rating, review)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
		 RETURNING created_at`,
		t.ID, t.Name, t.Email, t.Company, t.Position, t.Rating, t.Review,
	).Scan(&t.CreatedAt)
}

// List returns testimonials newest-first, optionally filtered by approval state.
func (r *PgTestimonialRepository) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	q := psql.Select(
		"id", "name", "email", "COALESCE(company, '')", "COALESCE(position, '')",
		"rating", "review", "is_approved", "is_featured", "created_at",
	).
		From("testimonials").
		OrderBy("created_at DESC")

	if opts.Approved != nil {
		q = q.Where(sq.Eq{"is_approved": *opts.Approved})
	}
	if opts.Limit > 0 {
		q = q.Limit(uint64(opts.Limit)).Offset(uint64(opts.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTestimonials(rows)
}

// ListPublic returns the publicly visible feed: approved testimonials only,
// featured ones first, newest-first within each group.
func (r *PgTestimonialRepository) ListPublic(ctx context.Context) ([]*model.Testimonial, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+testimonialColumns+`
		 FROM testimonials
		 WHERE is_approved = true
		 ORDER BY is_featured DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTestimonials(rows)
}

func scanTestimonials(rows pgx.Rows) ([]*model.Testimonial, error) {
	var testimonials []*model.Testimonial
	for rows.Next() {
		var t model.Testimonial
		if err := rows.Scan(
			&t.ID, &t.Name, &t.Email, &t.Company, &t.Position,
			&t.Rating, &t.Review, &t.IsApproved, &t.IsFeatured, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, rows.Err()
}

// Approve sets is_approved = true. Approval is one-way; there is no
// corresponding unapprove. Returns ErrNotFound if no row matched.
func (r *PgTestimonialRepository) Approve(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE testimonials SET is_approved = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleFeatured flips is_featured in a single statement and returns the
// confirmed new value, so the caller never has to guess from a stale read.
func (r *PgTestimonialRepository) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	var featured bool
	err := r.db.QueryRow(ctx,
		`UPDATE testimonials SET is_featured = NOT is_featured
		 WHERE id = $1
		 RETURNING is_featured`, id).Scan(&featured)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}
	return featured, nil
}

// Delete removes the testimonial. Returns ErrNotFound if no row matched.
func (r *PgTestimonialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
