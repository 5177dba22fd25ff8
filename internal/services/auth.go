package services

import (
	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"

	"github.com/alexedwards/argon2id"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	AppConfig models.AppConfig
}

// Login exchanges username/password for a bearer token. Every failure mode
// collapses into the same generic code so the response never reveals
// whether the username exists.
func (s AuthService) Login(
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.LoginBody,
) (models.LoginResponse, error) {
	var user models.User
	result := s.DB.Where("username = ?", body.Username).First(&user)
	if result.RowsAffected != 1 {
		return models.LoginResponse{}, apierrors.NewAPIError(401, apierrors.ErrInvalidCredentials)
	}

	match, err := argon2id.ComparePasswordAndHash(body.Password, user.HashedPassword)
	if err != nil || !match {
		return models.LoginResponse{}, apierrors.NewAPIError(401, apierrors.ErrInvalidCredentials)
	}

	token, err := h.NewAccessToken(s.AppConfig.JWTSecret, &user, s.AppConfig.AccessTokenExpiry)
	if err != nil {
		return models.LoginResponse{}, err
	}

	logger.Info("User logged in", zap.Uint("user_id", user.ID))

	return models.LoginResponse{User: user, AccessToken: token}, nil
}
