package services

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"api/internal/models"
	"api/internal/reporting"
	"api/internal/sql"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var reviewExportHeaders = []interface{}{
	"Пациент", "Телефон", "Врачи", "Услуги", "Аспекты",
	"Источник", "Награда", "Платформы", "Отзыв",
}

var complaintExportHeaders = []interface{}{
	"Пациент", "Телефон", "Причины", "Жалоба",
}

// ExportService renders date-bounded review/complaint spreadsheets. Rows
// appear only for records with non-blank text, matching the tabular views.
type ExportService struct {
	DB       *gorm.DB
	Location *time.Location
}

func (s ExportService) bounds(r *http.Request) (*time.Time, *time.Time, error) {
	return ParseDateBounds(
		r.URL.Query().Get("date_after"),
		r.URL.Query().Get("date_before"),
		s.Location,
	)
}

func (s ExportService) Reviews(
	_ *zap.Logger,
	_ models.UserClaims,
	r *http.Request,
) (string, string, []byte, error) {
	from, to, err := s.bounds(r)
	if err != nil {
		return "", "", nil, err
	}

	reviews, err := sql.GetReviewsInRange(s.DB, from, to)
	if err != nil {
		return "", "", nil, err
	}

	rows := make([][]interface{}, 0, len(reviews))
	for _, review := range reporting.ReviewsWithText(reviews) {
		rows = append(rows, []interface{}{
			orDash(review.ContactName),
			orDash(review.ContactPhone),
			joinDoctorNames(review.SelectedDoctors),
			joinServiceNames(review.SelectedServices),
			joinAspectNames(review.SelectedAspects),
			sourceName(review.SelectedSource),
			rewardName(review.SelectedReward),
			joinPlatformNames(review.PublishedPlatforms),
			strings.TrimSpace(*review.ReviewText),
		})
	}

	content, err := buildSheet(reviewExportHeaders, rows)
	if err != nil {
		return "", "", nil, err
	}
	return "reviews.xlsx", xlsxContentType, content, nil
}

func (s ExportService) Complaints(
	_ *zap.Logger,
	_ models.UserClaims,
	r *http.Request,
) (string, string, []byte, error) {
	from, to, err := s.bounds(r)
	if err != nil {
		return "", "", nil, err
	}

	complaints, err := sql.GetComplaintsInRange(s.DB, from, to)
	if err != nil {
		return "", "", nil, err
	}

	rows := make([][]interface{}, 0, len(complaints))
	for _, complaint := range reporting.ComplaintsWithText(complaints) {
		rows = append(rows, []interface{}{
			orDash(complaint.ContactName),
			orDash(complaint.ContactPhone),
			joinReasonNames(complaint.SelectedReasons),
			strings.TrimSpace(*complaint.ComplaintText),
		})
	}

	content, err := buildSheet(complaintExportHeaders, rows)
	if err != nil {
		return "", "", nil, err
	}
	return "complaints.xlsx", xlsxContentType, content, nil
}

func buildSheet(headers []interface{}, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

func orDash(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "-"
	}
	return strings.TrimSpace(*value)
}

func sourceName(source *models.Source) string {
	if source == nil {
		return "-"
	}
	return source.Name
}

func rewardName(reward *models.Reward) string {
	if reward == nil {
		return "-"
	}
	return reward.Name
}

func joinDoctorNames(doctors []models.Doctor) string {
	names := make([]string, len(doctors))
	for i, doctor := range doctors {
		names[i] = doctor.Name
	}
	return strings.Join(names, ", ")
}

func joinServiceNames(services []models.Service) string {
	names := make([]string, len(services))
	for i, service := range services {
		names[i] = service.Name
	}
	return strings.Join(names, ", ")
}

func joinAspectNames(aspects []models.Aspect) string {
	names := make([]string, len(aspects))
	for i, aspect := range aspects {
		names[i] = aspect.Name
	}
	return strings.Join(names, ", ")
}

func joinPlatformNames(platforms []models.Platform) string {
	names := make([]string, len(platforms))
	for i, platform := range platforms {
		names[i] = platform.Name
	}
	return strings.Join(names, ", ")
}

func joinReasonNames(reasons []models.Reason) string {
	names := make([]string, len(reasons))
	for i, reason := range reasons {
		names[i] = reason.Name
	}
	return strings.Join(names, ", ")
}
