package services

import (
	"strings"

	apierrors "api/internal/errors"
	"api/internal/handlers"
	h "api/internal/helpers"
	m "api/internal/middlewares"
	"api/internal/models"
	"api/internal/sql"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService is the admin-only user management surface. The seeded owner
// account is shielded: only the owner may edit it and nobody may delete it.
type UserService struct {
	DB *gorm.DB
}

func (s UserService) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", handlers.GetListHandler(s.List))
	r.With(m.Validate[models.UserBody]).Post("/", handlers.CreateHandler(s.Create))
	r.Route("/{id0}", func(r chi.Router) {
		r.With(m.Validate[models.UserBody]).Post("/", handlers.CreateHandler(s.Update))
		r.Delete("/", handlers.DeleteHandler(s.Delete))
	})
	return r
}

func (s UserService) List(
	_ *zap.Logger,
	_ models.UserClaims,
	_ []uint,
) ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s UserService) Create(
	logger *zap.Logger,
	_ models.UserClaims,
	_ []uint,
	body models.UserBody,
) (models.User, error) {
	name := strings.TrimSpace(body.Name)
	username := strings.TrimSpace(body.Username)
	if name == "" || username == "" {
		return models.User{}, apierrors.NewAPIError(400, apierrors.ErrBlankName)
	}
	if body.Password == "" {
		return models.User{}, apierrors.NewAPIError(400, apierrors.ErrValidationFailed)
	}

	taken, err := sql.UsernameTaken(s.DB, username, 0)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, apierrors.NewAPIError(400, apierrors.ErrUsernameTaken)
	}

	hash, err := h.CreateHash(body.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:           name,
		Username:       username,
		HashedPassword: hash,
		IsAdmin:        body.IsAdmin,
		AvatarURL:      body.AvatarURL,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return models.User{}, err
	}

	logger.Info("User created", zap.Uint("user_id", user.ID))
	return user, nil
}

func (s UserService) Update(
	_ *zap.Logger,
	claims models.UserClaims,
	ids []uint,
	body models.UserBody,
) (models.User, error) {
	if len(ids) != 1 {
		return models.User{}, apierrors.NewAPIError(404, apierrors.ErrNotFound)
	}

	user, err := sql.GetUserByID(s.DB, ids[0])
	if err != nil {
		return models.User{}, err
	}
	if user.IsOwner && claims.UserID != user.ID {
		return models.User{}, apierrors.NewAPIError(403, apierrors.ErrOwnerProtected)
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
	if !user.IsOwner {
		user.IsAdmin = body.IsAdmin
	}

	if body.Password != "" {
		hash, err := h.CreateHash(body.Password)
		if err != nil {
			return models.User{}, err
		}
		user.HashedPassword = hash
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s UserService) Delete(
	_ *zap.Logger,
	claims models.UserClaims,
	ids []uint,
) error {
	if len(ids) != 1 {
		return apierrors.NewAPIError(404, apierrors.ErrNotFound)
	}

	user, err := sql.GetUserByID(s.DB, ids[0])
	if err != nil {
		return err
	}
	if user.IsOwner {
		return apierrors.NewAPIError(403, apierrors.ErrOwnerProtected)
	}
	if user.ID == claims.UserID {
		return apierrors.NewAPIError(403, apierrors.ErrForbidden)
	}

	return s.DB.Delete(&user).Error
}
