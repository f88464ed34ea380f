package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codexa/backend/internal/model"
	"github.com/codexa/backend/internal/repository"
	"github.com/codexa/backend/internal/service"
)

// ---------------------------------------------------------------------------
// Mock TestimonialService
// ---------------------------------------------------------------------------

type mockTestimonialService struct {
	submitFunc         func(ctx context.Context, tm *model.Testimonial) error
	listFunc           func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error)
	listPublicFunc     func(ctx context.Context) ([]*model.Testimonial, error)
	approveFunc        func(ctx context.Context, id string) error
	toggleFeaturedFunc func(ctx context.Context, id string) (bool, error)
	deleteFunc         func(ctx context.Context, id string) error
}

func (m *mockTestimonialService) Submit(ctx context.Context, tm *model.Testimonial) error {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, tm)
	}
	return nil
}

func (m *mockTestimonialService) List(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockTestimonialService) ListPublic(ctx context.Context) ([]*model.Testimonial, error) {
	if m.listPublicFunc != nil {
		return m.listPublicFunc(ctx)
	}
	return nil, nil
}

func (m *mockTestimonialService) Approve(ctx context.Context, id string) error {
	if m.approveFunc != nil {
		return m.approveFunc(ctx, id)
	}
	return nil
}

func (m *mockTestimonialService) ToggleFeatured(ctx context.Context, id string) (bool, error) {
	if m.toggleFeaturedFunc != nil {
		return m.toggleFeaturedFunc(ctx, id)
	}
	return false, nil
}

func (m *mockTestimonialService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// POST /api/testimonials tests
// ---------------------------------------------------------------------------

func TestTestimonialHandler_Submit_Success(t *testing.T) {
	var captured *model.Testimonial
	mock := &mockTestimonialService{
		submitFunc: func(ctx context.Context, tm *model.Testimonial) error {
			captured = tm
			tm.ID = "t1"
			return nil
		},
	}
	h := NewTestimonialHandler(mock)

	body := `{"name":"Grace","email":"grace@example.com","rating":5,"review":"Excellent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d, body: %s", rec.Code, rec.Body.String())
	}
	if captured == nil || captured.Rating != 5 {
		t.Fatalf("expected Submit called with rating 5, got %+v", captured)
	}
}

// TestTestimonialHandler_Submit_UnsetRating verifies that a missing star
// rating is rejected with the service's code before anything is stored.
func TestTestimonialHandler_Submit_UnsetRating(t *testing.T) {
	mock := &mockTestimonialService{
		submitFunc: func(ctx context.Context, tm *model.Testimonial) error {
			return &service.ValidationError{Code: "rating_required"}
		},
	}
	h := NewTestimonialHandler(mock)

	body := `{"name":"Grace","email":"grace@example.com","rating":0,"review":"Excellent"}`
	req := httptest.NewRequest(http.MethodPost, "/api/testimonials", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["error"] != "rating_required" {
		t.Errorf("expected rating_required, got %q", resp["error"])
	}
}

// ---------------------------------------------------------------------------
// Listing tests
// ---------------------------------------------------------------------------

// TestTestimonialHandler_PublicList_DisplayOrder verifies the feed is served
// in the order the service returns: featured first, then newest.
func TestTestimonialHandler_PublicList_DisplayOrder(t *testing.T) {
	now := time.Now()
	mock := &mockTestimonialService{
		listPublicFunc: func(ctx context.Context) ([]*model.Testimonial, error) {
			return []*model.Testimonial{
				{ID: "C", IsApproved: true, IsFeatured: true, CreatedAt: now},
				{ID: "A", IsApproved: true, IsFeatured: true, CreatedAt: now.Add(-2 * time.Hour)},
				{ID: "B", IsApproved: true, IsFeatured: false, CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Testimonials []*model.Testimonial `json:"testimonials"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var order []string
	for _, tm := range resp.Testimonials {
		order = append(order, tm.ID)
	}
	want := []string{"C", "A", "B"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestTestimonialHandler_PublicList_EmptyIsArray(t *testing.T) {
	h := NewTestimonialHandler(&mockTestimonialService{})

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	if !strings.Contains(rec.Body.String(), `"testimonials":[]`) {
		t.Errorf("expected empty array, got %s", rec.Body.String())
	}
}

func TestTestimonialHandler_AdminList_ApprovedFilter(t *testing.T) {
	var gotOpts model.TestimonialListOptions
	mock := &mockTestimonialService{
		listFunc: func(ctx context.Context, opts model.TestimonialListOptions) ([]*model.Testimonial, error) {
			gotOpts = opts
			return nil, nil
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/testimonials?approved=true", nil)
	rec := httptest.NewRecorder()
	h.AdminList(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotOpts.Approved == nil || !*gotOpts.Approved {
		t.Error("expected approved=true filter to be passed")
	}
	if gotOpts.Limit != 0 {
		t.Errorf("expected unpaginated list without a limit param, got limit %d", gotOpts.Limit)
	}
}

// ---------------------------------------------------------------------------
// Moderation tests
// ---------------------------------------------------------------------------

func TestTestimonialHandler_Approve(t *testing.T) {
	var gotID string
	mock := &mockTestimonialService{
		approveFunc: func(ctx context.Context, id string) error {
			gotID = id
			return nil
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/testimonials/t1/approve", nil)
	req.SetPathValue("id", "t1")
	rec := httptest.NewRecorder()
	h.Approve(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if gotID != "t1" {
		t.Errorf("expected approve of t1, got %q", gotID)
	}
}

func TestTestimonialHandler_ToggleFeatured_ReturnsNewState(t *testing.T) {
	mock := &mockTestimonialService{
		toggleFeaturedFunc: func(ctx context.Context, id string) (bool, error) {
			return true, nil
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodPatch, "/api/admin/testimonials/t1/feature", nil)
	req.SetPathValue("id", "t1")
	rec := httptest.NewRecorder()
	h.ToggleFeatured(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp["is_featured"] {
		t.Error("expected the confirmed featured state in the response")
	}
}

func TestTestimonialHandler_Delete_NotFound(t *testing.T) {
	mock := &mockTestimonialService{
		deleteFunc: func(ctx context.Context, id string) error {
			return repository.ErrNotFound
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/testimonials/gone", nil)
	req.SetPathValue("id", "gone")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestTestimonialHandler_PublicList_StoreUnavailable(t *testing.T) {
	mock := &mockTestimonialService{
		listPublicFunc: func(ctx context.Context) ([]*model.Testimonial, error) {
			return nil, fmt.Errorf("%w: timeout", service.ErrStoreUnavailable)
		},
	}
	h := NewTestimonialHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/testimonials", nil)
	rec := httptest.NewRecorder()
	h.PublicList(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
