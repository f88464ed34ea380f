package repository

import (
	"context"
	"testing"
	"time"

	"github.com/codexa/backend/internal/model"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/require"
)

func newTestimonialMock(t *testing.T) (*PgTestimonialRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPgTestimonialRepository(mock), mock
}

func testimonialRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "email", "company", "position",
		"rating", "review", "is_approved", "is_featured", "created_at",
	})
}

func TestPgTestimonialRepository_Insert(t *testing.T) {
	repo, mock := newTestimonialMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO testimonials`).
		WithArgs(pgxmock.AnyArg(), "Grace", "grace@example.com", "Acme", "CTO", 5, "Great team").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	tm := &model.Testimonial{
		Name:     "Grace",
		Email:    "grace@example.com",
		Company:  "Acme",
		Position: "CTO",
		Rating:   5,
		Review:   "Great team",
	}
	require.NoError(t, repo.Insert(context.Background(), tm))
	require.NotEmpty(t, tm.ID)
	require.Equal(t, now, tm.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestPgTestimonialRepository_ListPublic_Ordering verifies the public feed
// query filters to approved rows and sorts featured entries ahead of newer
// unfeatured ones.
func TestPgTestimonialRepository_ListPublic_Ordering(t *testing.T) {
	repo, mock := newTestimonialMock(t)
	t1 := time.Now().Add(-2 * time.Hour)
	t2 := time.Now().Add(-time.Hour)
	t3 := time.Now()

	// C(featured, t3), A(featured, t1), B(unfeatured, t2), the order the
	// database returns for featured-first, newest-first.
	rows := testimonialRows().
		AddRow("C", "c", "c@example.com", "", "", 5, "r", true, true, t3).
		AddRow("A", "a", "a@example.com", "", "", 4, "r", true, true, t1).
		AddRow("B", "b", "b@example.com", "", "", 3, "r", true, false, t2)

	mock.ExpectQuery(`WHERE is_approved = true\s+ORDER BY is_featured DESC, created_at DESC`).
		WillReturnRows(rows)

	got, err := repo.ListPublic(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []string{"C", "A", "B"}, []string{got[0].ID, got[1].ID, got[2].ID})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTestimonialRepository_List_ApprovedFilter(t *testing.T) {
	repo, mock := newTestimonialMock(t)

	mock.ExpectQuery(`WHERE is_approved`).
		WithArgs(true).
		WillReturnRows(testimonialRows())

	approved := true
	got, err := repo.List(context.Background(), model.TestimonialListOptions{Approved: &approved})
	require.NoError(t, err)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTestimonialRepository_Approve_NotFound(t *testing.T) {
	repo, mock := newTestimonialMock(t)

	mock.ExpectExec(`UPDATE testimonials SET is_approved = true`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.ErrorIs(t, repo.Approve(context.Background(), "missing"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// TestPgTestimonialRepository_ToggleFeatured verifies the flip happens in one
// statement and the confirmed value is returned.
func TestPgTestimonialRepository_ToggleFeatured(t *testing.T) {
	repo, mock := newTestimonialMock(t)

	mock.ExpectQuery(`SET is_featured = NOT is_featured`).
		WithArgs("t1").
		WillReturnRows(pgxmock.NewRows([]string{"is_featured"}).AddRow(true))

	featured, err := repo.ToggleFeatured(context.Background(), "t1")
	require.NoError(t, err)
	require.True(t, featured)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgTestimonialRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newTestimonialMock(t)

	mock.ExpectExec(`DELETE FROM testimonials`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	require.ErrorIs(t, repo.Delete(context.Background(), "missing"), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
