package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/codexa/backend/internal/model"
	"github.com/google/uuid"
)

// psql builds queries with PostgreSQL-style $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	db Querier
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given pool.
func NewPgSubmissionRepository(db Querier) *PgSubmissionRepository {
	return &PgSubmissionRepository{db: db}
}

var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Insert stores a new contact_submissions row. The ID is generated here;
// CreatedAt comes from the database RETURNING clause and is never written
// again afterwards.
func (r *PgSubmissionRepository) Insert(ctx context.Context, s *model.ContactSubmission) error {
	s.ID = uuid.NewString()
	return r.db.QueryRow(ctx,
		`INSERT INTO contact_submissions
		   (id, first_name, last_name, email, phone_number, service_interested, project_budget, project_details)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8)
		 RETURNING created_at`,
		s.ID, s.FirstName, s.LastName, s.Email, s.PhoneNumber,
		s.ServiceInterested, s.ProjectBudget, s.ProjectDetails,
	).Scan(&s.CreatedAt)
}

// List returns submissions newest-first, optionally filtered by read state.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	q := psql.Select(
		"id", "first_name", "last_name", "email",
		"COALESCE(phone_number, '')", "service_interested",
		"COALESCE(project_budget, '')", "project_details",
		"is_read", "COALESCE(notes, '')", "created_at",
	).
		From("contact_submissions").
		OrderBy("created_at DESC")

	if opts.Read != nil {
		q = q.Where(sq.Eq{"is_read": *opts.Read})
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

	var submissions []*model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email,
			&s.PhoneNumber, &s.ServiceInterested,
			&s.ProjectBudget, &s.ProjectDetails,
			&s.IsRead, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, &s)
	}
	return submissions, rows.Err()
}

// MarkRead sets is_read = true. Returns ErrNotFound if no row matched.
func (r *PgSubmissionRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_submissions SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateNotes overwrites the notes column. Returns ErrNotFound if no row matched.
func (r *PgSubmissionRepository) UpdateNotes(ctx context.Context, id, notes string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE contact_submissions SET notes = NULLIF($2, '') WHERE id = $1`, id, notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the submission. Returns ErrNotFound if no row matched, so a
// second delete of the same id fails rather than silently succeeding.
func (r *PgSubmissionRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM contact_submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
