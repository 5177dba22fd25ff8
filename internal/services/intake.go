package services

import (
	"api/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IntakeService is the unauthenticated patient-facing surface: the enabled
// selection catalog plus review/complaint submission. Disabled reference
// entries never appear here even though admin views still list them.
type IntakeService struct {
	DB *gorm.DB
}

func enabledOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("is_enabled = ?", true).Order("position ASC, id ASC")
}

func (s IntakeService) Catalog(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
) (models.PublicCatalogResponse, error) {
	var response models.PublicCatalogResponse

	if err := enabledOrdered(s.DB).Preload("Services").Find(&response.Doctors).Error; err != nil {
		return response, err
	}
	if err := enabledOrdered(s.DB).Find(&response.Services).Error; err != nil {
		return response, err
	}
	if err := enabledOrdered(s.DB).Find(&response.Aspects).Error; err != nil {
		return response, err
	}
	if err := enabledOrdered(s.DB).Find(&response.Sources).Error; err != nil {
		return response, err
	}
	if err := enabledOrdered(s.DB).Find(&response.Rewards).Error; err != nil {
		return response, err
	}
	if err := enabledOrdered(s.DB).Find(&response.Platforms).Error; err != nil {
		return response, err
	}

	return response, nil
}

// dedupeIDs drops repeated identifiers while keeping first-seen order;
// reference lists inside a review carry no duplicates.
func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func (s IntakeService) CreateReview(
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.ReviewBody,
) (models.Review, error) {
	review := models.Review{
		ContactName:  body.ContactName,
		ContactPhone: body.ContactPhone,
		ReviewText:   body.ReviewText,
		SourceID:     body.SourceID,
		RewardID:     body.RewardID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if ids := dedupeIDs(body.DoctorIDs); len(ids) > 0 {
			if err := tx.Find(&review.SelectedDoctors, ids).Error; err != nil {
				return err
			}
		}
		if ids := dedupeIDs(body.ServiceIDs); len(ids) > 0 {
			if err := tx.Find(&review.SelectedServices, ids).Error; err != nil {
				return err
			}
		}
		if ids := dedupeIDs(body.AspectIDs); len(ids) > 0 {
			if err := tx.Find(&review.SelectedAspects, ids).Error; err != nil {
				return err
			}
		}
		if ids := dedupeIDs(body.PlatformIDs); len(ids) > 0 {
			if err := tx.Find(&review.PublishedPlatforms, ids).Error; err != nil {
				return err
			}
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		return models.Review{}, err
	}

	logger.Info("Review submitted", zap.Uint("review_id", review.ID))
	return review, nil
}

func (s IntakeService) CreateComplaint(
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.ComplaintBody,
) (models.Complaint, error) {
	complaint := models.Complaint{
		ContactName:   body.ContactName,
		ContactPhone:  body.ContactPhone,
		ComplaintText: body.ComplaintText,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if ids := dedupeIDs(body.ReasonIDs); len(ids) > 0 {
			if err := tx.Find(&complaint.SelectedReasons, ids).Error; err != nil {
				return err
			}
		}
		return tx.Create(&complaint).Error
	})
	if err != nil {
		return models.Complaint{}, err
	}

	logger.Info("Complaint submitted", zap.Uint("complaint_id", complaint.ID))
	return complaint, nil
}
