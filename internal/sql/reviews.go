package sql

import (
	"time"

	"api/internal/models"

	"gorm.io/gorm"
)

var reviewPreloads = []string{
	"SelectedDoctors",
	"SelectedServices",
	"SelectedAspects",
	"SelectedSource",
	"SelectedReward",
	"PublishedPlatforms",
}

func applyBounds(q *gorm.DB, from *time.Time, to *time.Time) *gorm.DB {
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at <= ?", *to)
	}
	return q
}

// GetReviewsInRange loads reviews created inside [from, to] with every
// reference list attached. Nil bounds mean no filter on that side.
func GetReviewsInRange(db *gorm.DB, from *time.Time, to *time.Time) ([]models.Review, error) {
	q := db
	for _, preload := range reviewPreloads {
		q = q.Preload(preload)
	}

	var reviews []models.Review
	if err := applyBounds(q, from, to).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func GetComplaintsInRange(db *gorm.DB, from *time.Time, to *time.Time) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := applyBounds(db.Preload("SelectedReasons"), from, to).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}
