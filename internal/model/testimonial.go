package model

import "time"

// Testimonial is a client review submitted through the public testimonial form.
// A testimonial is publicly visible only once an admin has approved it;
// featured testimonials sort ahead of the rest on the public feed.
type Testimonial struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company,omitempty"`
	Position   string    `json:"position,omitempty"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	IsApproved bool      `json:"is_approved"`
	IsFeatured bool      `json:"is_featured"`
	CreatedAt  time.Time `json:"created_at"`
}

// Star rating bounds. Zero means the submitter never picked a rating.
const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is within the accepted star range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// TestimonialListOptions carries filter and pagination parameters for the
// admin testimonial list.
type TestimonialListOptions struct {
	// Approved filters by the is_approved flag; nil returns all testimonials.
	Approved *bool
	Limit    int
	Offset   int
}
