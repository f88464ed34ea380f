package handler

import (
	"net/http"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/service"
)

// AdminHandler serves the dashboard overview: both record lists plus the
// badge counts, in one call.
type AdminHandler struct {
	submissions  service.SubmissionService
	testimonials service.TestimonialService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(submissions service.SubmissionService, testimonials service.TestimonialService) *AdminHandler {
	return &AdminHandler{submissions: submissions, testimonials: testimonials}
}

type overviewResponse struct {
	Submissions  []*model.ContactSubmission `json:"submissions"`
	Testimonials []*model.Testimonial       `json:"testimonials"`
	UnreadCount  int                        `json:"unread_count"`
	PendingCount int                        `json:"pending_count"`
}

// Overview handles GET /api/admin/overview.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.submissions.List(r.Context(), model.SubmissionListOptions{})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	testimonials, err := h.testimonials.List(r.Context(), model.TestimonialListOptions{})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	resp := overviewResponse{
		Submissions:  submissions,
		Testimonials: testimonials,
	}
	if resp.Submissions == nil {
		resp.Submissions = []*model.ContactSubmission{}
	}
	if resp.Testimonials == nil {
		resp.Testimonials = []*model.Testimonial{}
	}
	for _, s := range resp.Submissions {
		if !s.IsRead {
			resp.UnreadCount++
		}
	}
	for _, t := range resp.Testimonials {
		if !t.IsApproved {
			resp.PendingCount++
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
