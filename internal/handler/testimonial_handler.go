package handler

import (
	"encoding/json"
	"net/http"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/service"
)

// TestimonialHandler handles testimonial submission, the public feed, and
// admin moderation.
type TestimonialHandler struct {
	testimonials service.TestimonialService
}

// NewTestimonialHandler creates a TestimonialHandler with the given service.
func NewTestimonialHandler(testimonials service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// submitTestimonialRequest is the expected JSON body for POST /api/testimonials.
type submitTestimonialRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Position string `json:"position"`
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
}

// Submit handles POST /api/testimonials. The stored record comes back in the
// response; it always starts unapproved and unfeatured.
func (h *TestimonialHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitTestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	t := &model.Testimonial{
		Name:     req.Name,
		Email:    req.Email,
		Company:  req.Company,
		Position: req.Position,
		Rating:   req.Rating,
		Review:   req.Review,
	}

	if err := h.testimonials.Submit(r.Context(), t); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

// testimonialListResponse is the JSON response for testimonial listings.
type testimonialListResponse struct {
	Testimonials []*model.Testimonial `json:"testimonials"`
}

// PublicList handles GET /api/testimonials: approved testimonials only, in
// display order (featured first, then newest-first).
func (h *TestimonialHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonials.ListPublic(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}
	writeJSON(w, http.StatusOK, testimonialListResponse{Testimonials: testimonials})
}

// AdminList handles GET /api/admin/testimonials.
// Supports query params: approved (true/false), limit, offset.
func (h *TestimonialHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.TestimonialListOptions{
		Approved: parseBoolFilter(r.URL.Query().Get("approved")),
		Limit:    parseBounded(r.URL.Query().Get("limit"), 50, 200),
		Offset:   parseOffset(r.URL.Query().Get("offset")),
	}

	testimonials, err := h.testimonials.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if testimonials == nil {
		testimonials = []*model.Testimonial{}
	}
	writeJSON(w, http.StatusOK, testimonialListResponse{Testimonials: testimonials})
}

// Approve handles PATCH /api/admin/testimonials/{id}/approve. One-way; the
// featured flag is untouched.
func (h *TestimonialHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.testimonials.Approve(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFeatured handles PATCH /api/admin/testimonials/{id}/feature and
// reports the confirmed new state.
func (h *TestimonialHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	featured, err := h.testimonials.ToggleFeatured(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_featured": featured})
}

// Delete handles DELETE /api/admin/testimonials/{id}.
func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.testimonials.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
