package services

import (
	"net/url"
	"strings"

	apierrors "api/internal/errors"
	"api/internal/models"

	"gorm.io/gorm"
)

// requireTrimmed enforces the non-blank-after-trim rule shared by every
// catalog modal's required text fields.
func requireTrimmed(values ...*string) error {
	for _, value := range values {
		trimmed := strings.TrimSpace(*value)
		if trimmed == "" {
			return apierrors.NewAPIError(400, apierrors.ErrBlankName)
		}
		*value = trimmed
	}
	return nil
}

func validHTTPURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
}

func NewDoctorCatalog(db *gorm.DB) CatalogService[models.Doctor, models.DoctorBody] {
	return CatalogService[models.Doctor, models.DoctorBody]{
		DB:       db,
		Preloads: []string{"Services"},
		Apply: func(_ *gorm.DB, doctor *models.Doctor, body models.DoctorBody) error {
			if err := requireTrimmed(&body.Name, &body.Role); err != nil {
				return err
			}
			doctor.Name = body.Name
			doctor.Role = body.Role
			doctor.AvatarURL = body.AvatarURL
			doctor.IsEnabled = body.IsEnabled
			return nil
		},
		Associate: func(tx *gorm.DB, doctor *models.Doctor, body models.DoctorBody) error {
			services := []models.Service{}
			if len(body.ServiceIDs) > 0 {
				if err := tx.Find(&services, body.ServiceIDs).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(doctor).Association("Services").Replace(services); err != nil {
				return err
			}
			doctor.Services = services
			return nil
		},
	}
}

func NewServiceCatalog(db *gorm.DB) CatalogService[models.Service, models.ServiceBody] {
	return CatalogService[models.Service, models.ServiceBody]{
		DB: db,
		Apply: func(_ *gorm.DB, service *models.Service, body models.ServiceBody) error {
			if err := requireTrimmed(&body.Name); err != nil {
				return err
			}
			service.Name = body.Name
			service.Category = strings.TrimSpace(body.Category)
			service.IsEnabled = body.IsEnabled
			return nil
		},
	}
}

func NewAspectCatalog(db *gorm.DB) CatalogService[models.Aspect, models.AspectBody] {
	return CatalogService[models.Aspect, models.AspectBody]{
		DB: db,
		Apply: func(_ *gorm.DB, aspect *models.Aspect, body models.AspectBody) error {
			if err := requireTrimmed(&body.Name); err != nil {
				return err
			}
			aspect.Name = body.Name
			aspect.IsEnabled = body.IsEnabled
			return nil
		},
	}
}

func NewSourceCatalog(db *gorm.DB) CatalogService[models.Source, models.SourceBody] {
	return CatalogService[models.Source, models.SourceBody]{
		DB: db,
		Apply: func(_ *gorm.DB, source *models.Source, body models.SourceBody) error {
			if err := requireTrimmed(&body.Name); err != nil {
				return err
			}
			source.Name = body.Name
			source.IsEnabled = body.IsEnabled
			return nil
		},
	}
}

func NewRewardCatalog(db *gorm.DB) CatalogService[models.Reward, models.RewardBody] {
	return CatalogService[models.Reward, models.RewardBody]{
		DB: db,
		Apply: func(_ *gorm.DB, reward *models.Reward, body models.RewardBody) error {
			if err := requireTrimmed(&body.Name); err != nil {
				return err
			}
			reward.Name = body.Name
			reward.ImageURL = body.ImageURL
			reward.IsEnabled = body.IsEnabled
			return nil
		},
	}
}

func NewPlatformCatalog(db *gorm.DB) CatalogService[models.Platform, models.PlatformBody] {
	return CatalogService[models.Platform, models.PlatformBody]{
		DB: db,
		Apply: func(_ *gorm.DB, platform *models.Platform, body models.PlatformBody) error {
			if err := requireTrimmed(&body.Name, &body.URL); err != nil {
				return err
			}
			if !validHTTPURL(body.URL) {
				return apierrors.NewAPIError(400, apierrors.ErrInvalidURL)
			}
			platform.Name = body.Name
			platform.URL = body.URL
			platform.ImageURL = body.ImageURL
			platform.IsEnabled = body.IsEnabled
			return nil
		},
	}
}

func NewReasonCatalog(db *gorm.DB) CatalogService[models.Reason, models.ReasonBody] {
	return CatalogService[models.Reason, models.ReasonBody]{
		DB: db,
		Apply: func(_ *gorm.DB, reason *models.Reason, body models.ReasonBody) error {
			if err := requireTrimmed(&body.Name); err != nil {
				return err
			}
			reason.Name = body.Name
			reason.IsEnabled = body.IsEnabled
			return nil
		},
	}
}

func NewNewsCatalog(db *gorm.DB) CatalogService[models.News, models.NewsBody] {
	return CatalogService[models.News, models.NewsBody]{
		DB: db,
		Apply: func(_ *gorm.DB, news *models.News, body models.NewsBody) error {
			if err := requireTrimmed(&body.Title); err != nil {
				return err
			}
			news.Title = body.Title
			news.IsEnabled = body.IsEnabled
			return nil
		},
	}
}
