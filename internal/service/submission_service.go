package service

import (
	"context"

	"github.com/codexa/backend/internal/model"
)

// SubmissionService defines the business logic for contact submissions.
type SubmissionService interface {
	// Submit validates and stores a new contact submission. The submission's
	// ID and CreatedAt are populated by the implementation.
	Submit(ctx context.Context, s *model.ContactSubmission) error

	// List returns submissions newest-first according to the given options.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error)

	// MarkRead flags a submission as read by an admin.
	MarkRead(ctx context.Context, id string) error

	// SaveNotes overwrites the admin notes on a submission.
	SaveNotes(ctx context.Context, id, notes string) error

	// Delete removes a submission permanently.
	Delete(ctx context.Context, id string) error
}
