package model

import "time"

// ContactSubmission is a project inquiry sent through the public contact form.
type ContactSubmission struct {
	ID                string    `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	PhoneNumber       string    `json:"phone_number,omitempty"`
	ServiceInterested string    `json:"service_interested"`
	ProjectBudget     string    `json:"project_budget,omitempty"`
	ProjectDetails    string    `json:"project_details"`
	IsRead            bool      `json:"is_read"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// SubmissionListOptions carries filter and pagination parameters for listing
// contact submissions.
type SubmissionListOptions struct {
	// Read filters by the is_read flag; nil returns all submissions.
	Read   *bool
	Limit  int
	Offset int
}
