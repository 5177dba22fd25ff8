package services

import (
	"strings"

	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"
	"api/internal/sql"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccountService covers the authenticated user's own profile: the session
// probe, profile edits, and password change.
type AccountService struct {
	DB *gorm.DB
}

func (s AccountService) Current(
	_ *zap.Logger,
	claims models.UserClaims,
	_ []uint,
) (models.User, error) {
	return sql.GetUserByID(s.DB, claims.UserID)
}

func (s AccountService) Update(
	_ *zap.Logger,
	claims models.UserClaims,
	_ []uint,
	body models.ProfileBody,
) (models.User, error) {
	user, err := sql.GetUserByID(s.DB, claims.UserID)
	if err != nil {
		return models.User{}, err
	}

	name := strings.TrimSpace(body.Name)
	username := strings.TrimSpace(body.Username)
	if name == "" || username == "" {
		return models.User{}, apierrors.NewAPIError(400, apierrors.ErrBlankName)
	}

	taken, err := sql.UsernameTaken(s.DB, username, user.ID)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, apierrors.NewAPIError(400, apierrors.ErrUsernameTaken)
	}

	user.Name = name
	user.Username = username
	user.AvatarURL = body.AvatarURL

	if err := s.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s AccountService) ResetPassword(
	logger *zap.Logger,
	claims models.UserClaims,
	_ []uint,
	body models.PasswordResetBody,
) (struct{}, error) {
	user, err := sql.GetUserByID(s.DB, claims.UserID)
	if err != nil {
		return struct{}{}, err
	}

	match, err := argon2id.ComparePasswordAndHash(body.Password, user.HashedPassword)
	if err != nil || !match {
		return struct{}{}, apierrors.NewAPIError(401, apierrors.ErrInvalidCredentials)
	}

	hash, err := h.CreateHash(body.NewPassword)
	if err != nil {
		return struct{}{}, err
	}

	user.HashedPassword = hash
	if err := s.DB.Save(&user).Error; err != nil {
		return struct{}{}, err
	}

	logger.Info("Password changed", zap.Uint("user_id", user.ID))
	return struct{}{}, nil
}
