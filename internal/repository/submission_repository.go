package repository

import (
	"context"

	"github.com/codexa/backend/internal/model"
)

// SubmissionRepository handles persistence for contact submissions.
type SubmissionRepository interface {
	// Insert stores a new submission and populates ID and CreatedAt.
	Insert(ctx context.Context, s *model.ContactSubmission) error

	// List returns submissions newest-first, filtered by opts.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// MarkRead sets is_read on the given submission.
	MarkRead(ctx context.Context, id string) error

	// UpdateNotes overwrites the admin notes on the given submission.
	UpdateNotes(ctx context.Context, id, notes string) error

	// Delete removes the submission permanently.
	Delete(ctx context.Context, id string) error
}
