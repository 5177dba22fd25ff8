package reporting

import (
	"math"
	"strings"

	"api/internal/models"
)

// Report is the full derived state of the dashboard for one date interval.
// It is always rebuilt from scratch; nothing here is cached across ranges.
type Report struct {
	Visits           int `json:"visits"`
	CreatedReviews   int `json:"created_reviews"`
	PublishedReviews int `json:"published_reviews"`
	Conversion       int `json:"conversion"`
	NegativeCount    int `json:"negative_count"`
	EscalatedCount   int `json:"escalated_count"`

	Doctors   []NameCount `json:"doctors"`
	Services  []NameCount `json:"services"`
	Platforms []NameCount `json:"platforms"`
	Rewards   []NameCount `json:"rewards"`
}

// HasText reports whether an optional free-text field is non-empty after
// trimming. Reviews and complaints enter exports and escalation counts only
// when this holds.
func HasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// ConversionPercent is round(published/visits*100), with 0 when there are
// no visits.
func ConversionPercent(published, visits int) int {
	if visits == 0 {
		return 0
	}
	return int(math.Round(float64(published) / float64(visits) * 100))
}

func BuildReport(reviews []models.Review, complaints []models.Complaint) Report {
	report := Report{Visits: len(reviews), NegativeCount: len(complaints)}

	var doctorNames, serviceNames, platformNames, rewardNames []string
	for _, review := range reviews {
		if review.SelectedSource != nil {
			report.CreatedReviews++
		}
		if len(review.PublishedPlatforms) > 0 {
			report.PublishedReviews++
		}

		for _, doctor := range review.SelectedDoctors {
			doctorNames = append(doctorNames, doctor.Name)
		}
		for _, service := range review.SelectedServices {
			serviceNames = append(serviceNames, service.Name)
		}
		for _, platform := range review.PublishedPlatforms {
			platformNames = append(platformNames, platform.Name)
		}
		if review.SelectedReward != nil {
			rewardNames = append(rewardNames, review.SelectedReward.Name)
		}
	}

	for _, complaint := range complaints {
		if HasText(complaint.ComplaintText) {
			report.EscalatedCount++
		}
	}

	report.Conversion = ConversionPercent(report.PublishedReviews, report.Visits)

	report.Doctors = RankedCounts(doctorNames)
	report.Services = RankedCounts(serviceNames)
	report.Platforms = RankedCounts(platformNames)
	report.Rewards = RankedCounts(rewardNames)

	return report
}

// ReviewsWithText filters to reviews eligible for export and tabular views.
func ReviewsWithText(reviews []models.Review) []models.Review {
	filtered := make([]models.Review, 0, len(reviews))
	for _, review := range reviews {
		if HasText(review.ReviewText) {
			filtered = append(filtered, review)
		}
	}
	return filtered
}

// ComplaintsWithText filters to complaints eligible for export.
func ComplaintsWithText(complaints []models.Complaint) []models.Complaint {
	filtered := make([]models.Complaint, 0, len(complaints))
	for _, complaint := range complaints {
		if HasText(complaint.ComplaintText) {
			filtered = append(filtered, complaint)
		}
	}
	return filtered
}
