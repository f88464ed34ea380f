package service

import (
	"context"

	"github.com/codexa/backend/internal/model"
)

// TestimonialService defines the business logic for testimonials.
type TestimonialService interface {
	// Submit validates and stores a new testimonial. The testimonial's ID and
	// CreatedAt are populated by the implementation.
	Submit(ctx context.Context, t *model.Testimonial) error

	// List returns testimonials newest-first according to the given options.
	List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)

	// ListPublic returns the approved testimonials in public display order:
	// featured first, then newest-first.
	ListPublic(ctx context.Context) ([]*model.Testimonial, error)

	// Approve makes a testimonial eligible for public display. One-way.
	Approve(ctx context.Context, id string) error

	// ToggleFeatured flips the featured flag and returns the new value.
	ToggleFeatured(ctx context.Context, id string) (bool, error)

	// Delete removes a testimonial permanently.
	Delete(ctx context.Context, id string) error
}
