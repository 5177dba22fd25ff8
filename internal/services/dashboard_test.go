package services

import (
	"net/http/httptest"
	"testing"
	"time"

	apierrors "api/internal/errors"
	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedReviewAt(t *testing.T, db *gorm.DB, text string, createdAt time.Time) models.Review {
	t.Helper()
	review := models.Review{ReviewText: &text, CreatedAt: createdAt}
	require.NoError(t, db.Create(&review).Error)
	return review
}

func seedComplaintAt(t *testing.T, db *gorm.DB, text string, createdAt time.Time) models.Complaint {
	t.Helper()
	complaint := models.Complaint{ComplaintText: &text, CreatedAt: createdAt}
	require.NoError(t, db.Create(&complaint).Error)
	return complaint
}

func TestDashboardFetch(t *testing.T) {
	logger := zap.NewNop()
	location := time.UTC
	db := newTestDB(t)
	service := DashboardService{DB: db, Location: location}

	inside := seedReviewAt(t, db, "внутри окна", time.Date(2026, time.March, 10, 12, 0, 0, 0, location))
	seedReviewAt(t, db, "до окна", time.Date(2026, time.February, 1, 12, 0, 0, 0, location))
	seedComplaintAt(t, db, "внутри окна", time.Date(2026, time.March, 11, 9, 0, 0, 0, location))
	seedComplaintAt(t, db, "после окна", time.Date(2026, time.April, 2, 9, 0, 0, 0, location))

	t.Run("bounded window filters both lists", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/dashboard?date_after=2026-03-01&date_before=2026-03-31", nil)

		response, err := service.Fetch(logger, models.UserClaims{}, r)
		require.NoError(t, err)

		require.Len(t, response.Reviews, 1)
		assert.Equal(t, inside.ID, response.Reviews[0].ID)
		assert.Len(t, response.Complaints, 1)
	})

	t.Run("no bounds returns everything newest first", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/dashboard", nil)

		response, err := service.Fetch(logger, models.UserClaims{}, r)
		require.NoError(t, err)

		require.Len(t, response.Reviews, 2)
		assert.Equal(t, inside.ID, response.Reviews[0].ID)
		assert.Len(t, response.Complaints, 2)
	})

	t.Run("empty window yields empty non-nil lists", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/dashboard?date_after=2027-01-01&date_before=2027-01-31", nil)

		response, err := service.Fetch(logger, models.UserClaims{}, r)
		require.NoError(t, err)
		assert.NotNil(t, response.Reviews)
		assert.NotNil(t, response.Complaints)
		assert.Empty(t, response.Reviews)
		assert.Empty(t, response.Complaints)
	})

	t.Run("bad dates are rejected", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/dashboard?date_after=not-a-date", nil)

		_, err := service.Fetch(logger, models.UserClaims{}, r)
		assertAPIError(t, err, 400, apierrors.ErrInvalidDate)
	})
}
