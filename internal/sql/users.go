package sql

import (
	"errors"

	apierrors "api/internal/errors"
	"api/internal/models"

	"gorm.io/gorm"
)

func GetUserByID(db *gorm.DB, id uint) (models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apierrors.NewAPIError(404, apierrors.ErrNotFound)
		}
		return models.User{}, err
	}
	return user, nil
}

// UsernameTaken reports whether another user already holds the username.
func UsernameTaken(db *gorm.DB, username string, excludeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).
		Where("username = ? AND id <> ?", username, excludeID).
		Count(&count).Error
	return count > 0, err
}
