package service

import (
	"context"
	"strings"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/repository"
)

// testimonialServiceImpl is the production implementation of TestimonialService.
type testimonialServiceImpl struct {
	repo repository.TestimonialRepository
}

// NewTestimonialService creates a TestimonialService backed by the given repository.
func NewTestimonialService(repo repository.TestimonialRepository) TestimonialService {
	return &testimonialServiceImpl{repo: repo}
}

// Submit validates required fields and stores the testimonial with moderation
// defaults (unapproved, unfeatured). A zero rating means the submitter never
// picked stars and is rejected before the store is touched.
func (s *testimonialServiceImpl) Submit(ctx context.Context, t *model.Testimonial) error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return validationErr("name_required")
	case strings.TrimSpace(t.Email) == "":
		return validationErr("email_required")
	case t.Rating == 0:
		return validationErr("rating_required")
	case !model.ValidRating(t.Rating):
		return validationErr("rating_out_of_range")
	case strings.TrimSpace(t.Review) == "":
		return validationErr("review_required")
	}

	t.IsApproved = false
	t.IsFeatured = false
	if err := s.repo.Insert(ctx, t); err != nil {
		return storeErr(err)
	}
	return nil
}

// List returns testimonials according to the given filter/pagination options.
func (s *testimonialServiceImpl) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	testimonials, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, storeErr(err)
	}
	return testimonials, nil
}

// ListPublic returns the feed shown on the marketing site.
func (s *testimonialServiceImpl) ListPublic(ctx context.Context) ([]*model.Testimonial, error) {
	testimonials, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, storeErr(err)
	}
	return testimonials, nil
}

// Approve sets is_approved. The featured flag is untouched.
func (s *testimonialServiceImpl) Approve(ctx context.Context, id string) error {
	return storeErr(s.repo.Approve(ctx, id))
}

// ToggleFeatured flips is_featured regardless of approval state. A featured
// but unapproved testimonial stays hidden from the public feed until approved.
func (s *testimonialServiceImpl) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	featured, err := s.repo.ToggleFeatured(ctx, id)
	if err != nil {
		return false, storeErr(err)
	}
	return featured, nil
}

// Delete removes the testimonial. Deleting an unknown id reports not-found.
func (s *testimonialServiceImpl) Delete(ctx context.Context, id string) error {
	return storeErr(s.repo.Delete(ctx, id))
}
