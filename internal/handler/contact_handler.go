package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/service"
)

// ContactHandler handles contact form submission and admin moderation.
type ContactHandler struct {
	submissions service.SubmissionService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(submissions service.SubmissionService) *ContactHandler {
	return &ContactHandler{submissions: submissions}
}

// submitContactRequest is the expected JSON body for POST /api/contact.
type submitContactRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phone_number"`
	ServiceInterested string `json:"service_interested"`
	ProjectBudget     string `json:"project_budget"`
	ProjectDetails    string `json:"project_details"`
}

// Submit handles POST /api/contact. On success it returns the stored record
// so the client renders confirmed state, not an optimistic guess.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	sub := &model.ContactSubmission{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		ServiceInterested: req.ServiceInterested,
		ProjectBudget:     req.ProjectBudget,
		ProjectDetails:    req.ProjectDetails,
	}

	if err := h.submissions.Submit(r.Context(), sub); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sub)
}

// submissionListResponse is the JSON response for GET /api/admin/submissions.
type submissionListResponse struct {
	Submissions []*model.ContactSubmission `json:"submissions"`
}

// AdminList handles GET /api/admin/submissions.
// Supports query params: read (true/false), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	opts := model.SubmissionListOptions{
		Read:   parseBoolFilter(r.URL.Query().Get("read")),
		Limit:  parseBounded(r.URL.Query().Get("limit"), 50, 200),
		Offset: parseOffset(r.URL.Query().Get("offset")),
	}

	submissions, err := h.submissions.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// Return [] not null for empty lists
	if submissions == nil {
		submissions = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, submissionListResponse{Submissions: submissions})
}

// MarkRead handles PATCH /api/admin/submissions/{id}/read.
func (h *ContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.submissions.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// notesRequest is the expected JSON body for PUT /api/admin/submissions/{id}/notes.
type notesRequest struct {
	Notes string `json:"notes"`
}

// SaveNotes handles PUT /api/admin/submissions/{id}/notes. The new notes
// replace whatever was there before.
func (h *ContactHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	var req notesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if err := h.submissions.SaveNotes(r.Context(), r.PathValue("id"), req.Notes); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/admin/submissions/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.submissions.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseBoolFilter turns "true"/"false" into a filter value; anything else
// means no filter.
func parseBoolFilter(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	default:
		return nil
	}
}

// parseBounded parses an optional limit. An absent param means no limit at
// all; a present value is clamped to max, with def covering garbage input.
func parseBounded(s string, def, max int) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func parseOffset(s string) int {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n
	}
	return 0
}
