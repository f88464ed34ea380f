package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/repository"
)

// submissionServiceImpl is the production implementation of SubmissionService.
type submissionServiceImpl struct {
	repo repository.SubmissionRepository
}

// NewSubmissionService creates a SubmissionService backed by the given repository.
func NewSubmissionService(repo repository.SubmissionRepository) SubmissionService {
	return &submissionServiceImpl{repo: repo}
}

// Submit validates required fields and stores the submission with moderation
// defaults (unread, no notes). Validation failures never reach the store.
func (s *submissionServiceImpl) Submit(ctx context.Context, sub *model.ContactSubmission) error {
	switch {
	case strings.TrimSpace(sub.FirstName) == "":
		return validationErr("first_name_required")
	case strings.TrimSpace(sub.LastName) == "":
		return validationErr("last_name_required")
	case strings.TrimSpace(sub.Email) == "":
		return validationErr("email_required")
	case strings.TrimSpace(sub.ServiceInterested) == "":
		return validationErr("service_required")
	case strings.TrimSpace(sub.ProjectDetails) == "":
		return validationErr("project_details_required")
	}

	sub.IsRead = false
	sub.Notes = ""
	if err := s.repo.Insert(ctx, sub); err != nil {
		return storeErr(err)
	}
	return nil
}

// List returns submissions according to the given filter/pagination options.
func (s *submissionServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.ContactSubmission, error) {
	submissions, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	return submissions, nil
}

// MarkRead flags the submission as read. The reverse transition is never
// issued by this service, though the store would permit it.
func (s *submissionServiceImpl) MarkRead(ctx context.Context, id string) error {
	return storeErr(s.repo.MarkRead(ctx, id))
}

// SaveNotes overwrites the notes field; previous notes are not preserved.
func (s *submissionServiceImpl) SaveNotes(ctx context.Context, id, notes string) error {
	return storeErr(s.repo.UpdateNotes(ctx, id, notes))
}

// Delete removes the submission. Deleting an unknown id reports not-found.
func (s *submissionServiceImpl) Delete(ctx context.Context, id string) error {
	return storeErr(s.repo.Delete(ctx, id))
}

// storeErr maps repository failures onto the service error taxonomy.
// ErrNotFound passes through untouched; anything else is a store outage.
func storeErr(err error) error {
	if err == nil || errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
