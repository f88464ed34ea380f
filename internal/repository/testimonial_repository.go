package repository

import (
	"context"

	"github.com/codexa/backend/internal/model"
)

// TestimonialRepository handles persistence for testimonials.
type TestimonialRepository interface {
	// Insert stores a new testimonial and populates ID and CreatedAt.
	Insert(ctx context.Context, t *model.Testimonial) error

	// List returns testimonials newest-first, filtered by opts.
	List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)

	// ListPublic returns approved testimonials only, featured entries first,
	// then newest-first within each group.
	ListPublic(ctx context.Context) ([]*model.Testimonial, error)

	// Approve sets is_approved on the given testimonial.
	Approve(ctx context.Context, id string) error

	// ToggleFeatured flips is_featured and returns the new value.
	ToggleFeatured(ctx context.Context, id string) (bool, error)

	// Delete removes the testimonial permanently.
	Delete(ctx context.Context, id string) error
}
