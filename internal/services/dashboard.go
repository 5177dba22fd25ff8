package services

import (
	"net/http"
	"time"

	"api/internal/models"
	"api/internal/sql"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// DashboardService serves the raw material of the summary report: every
// review and complaint inside the requested interval. Derived figures are
// recomputed by the consumer on each fetch; the server caches nothing.
type DashboardService struct {
	DB       *gorm.DB
	Location *time.Location
}

func (s DashboardService) Fetch(
	_ *zap.Logger,
	_ models.UserClaims,
	r *http.Request,
) (models.DashboardResponse, error) {
	from, to, err := ParseDateBounds(
		r.URL.Query().Get("date_after"),
		r.URL.Query().Get("date_before"),
		s.Location,
	)
	if err != nil {
		return models.DashboardResponse{}, err
	}

	var response models.DashboardResponse

	// The two lists are independent, so load them concurrently.
	var g errgroup.Group
	g.Go(func() error {
		reviews, err := sql.GetReviewsInRange(s.DB, from, to)
		if err != nil {
			return err
		}
		response.Reviews = reviews
		return nil
	})
	g.Go(func() error {
		complaints, err := sql.GetComplaintsInRange(s.DB, from, to)
		if err != nil {
			return err
		}
		response.Complaints = complaints
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.DashboardResponse{}, err
	}

	if response.Reviews == nil {
		response.Reviews = []models.Review{}
	}
	if response.Complaints == nil {
		response.Complaints = []models.Complaint{}
	}

	return response, nil
}
