package services

import (
	"testing"

	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, username, password string, isAdmin, isOwner bool) models.User {
	t.Helper()
	hash, err := h.CreateHash(password)
	require.NoError(t, err)

	user := models.User{
		Name:           username,
		Username:       username,
		HashedPassword: hash,
		IsAdmin:        isAdmin,
		IsOwner:        isOwner,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestUserServiceCreate(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	service := UserService{DB: db}
	admin := models.UserClaims{UserID: 1, IsAdmin: true}

	t.Run("creates with hashed password", func(t *testing.T) {
		user, err := service.Create(logger, admin, nil, models.UserBody{
			Name:     "Мария",
			Username: "maria",
			Password: "strong-password",
			IsAdmin:  false,
		})
		require.NoError(t, err)
		assert.NotZero(t, user.ID)
		assert.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "strong-password", user.HashedPassword)
	})

	t.Run("rejects missing password", func(t *testing.T) {
		_, err := service.Create(logger, admin, nil, models.UserBody{
			Name:     "Пётр",
			Username: "petr",
		})
		assertAPIError(t, err, 400, apierrors.ErrValidationFailed)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := service.Create(logger, admin, nil, models.UserBody{
			Name:     "Мария 2",
			Username: "maria",
			Password: "another-password",
		})
		assertAPIError(t, err, 400, apierrors.ErrUsernameTaken)
	})
}

func TestUserServiceOwnerProtection(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	service := UserService{DB: db}

	owner := seedUser(t, db, "owner", "owner-password", true, true)
	admin := seedUser(t, db, "admin", "admin-password", true, false)

	ownerClaims := models.UserClaims{UserID: owner.ID, IsAdmin: true}
	adminClaims := models.UserClaims{UserID: admin.ID, IsAdmin: true}

	t.Run("other admins cannot edit the owner", func(t *testing.T) {
		_, err := service.Update(logger, adminClaims, []uint{owner.ID}, models.UserBody{
			Name:     "Owner",
			Username: "owner",
		})
		assertAPIError(t, err, 403, apierrors.ErrOwnerProtected)
	})

	t.Run("the owner may edit itself but stays admin", func(t *testing.T) {
		updated, err := service.Update(logger, ownerClaims, []uint{owner.ID}, models.UserBody{
			Name:     "Главный врач",
			Username: "owner",
			IsAdmin:  false,
		})
		require.NoError(t, err)
		assert.Equal(t, "Главный врач", updated.Name)
		assert.True(t, updated.IsAdmin)
	})

	t.Run("nobody deletes the owner", func(t *testing.T) {
		assertAPIError(t, service.Delete(logger, ownerClaims, []uint{owner.ID}), 403, apierrors.ErrOwnerProtected)
		assertAPIError(t, service.Delete(logger, adminClaims, []uint{owner.ID}), 403, apierrors.ErrOwnerProtected)
	})

	t.Run("admins cannot delete themselves", func(t *testing.T) {
		assertAPIError(t, service.Delete(logger, adminClaims, []uint{admin.ID}), 403, apierrors.ErrForbidden)
	})

	t.Run("regular deletion works", func(t *testing.T) {
		other := seedUser(t, db, "temp", "temp-password", false, false)
		require.NoError(t, service.Delete(logger, adminClaims, []uint{other.ID}))

		var count int64
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", other.ID).Count(&count).Error)
		assert.Zero(t, count)
	})
}

func TestAccountService(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	service := AccountService{DB: db}

	user := seedUser(t, db, "nurse", "old-password", false, false)
	other := seedUser(t, db, "taken", "whatever-password", false, false)
	claims := models.UserClaims{UserID: user.ID, Username: user.Username}

	t.Run("current returns the caller", func(t *testing.T) {
		current, err := service.Current(logger, claims, nil)
		require.NoError(t, err)
		assert.Equal(t, user.ID, current.ID)
	})

	t.Run("update rejects a taken username", func(t *testing.T) {
		_, err := service.Update(logger, claims, nil, models.ProfileBody{
			Name:     "Медсестра",
			Username: other.Username,
		})
		assertAPIError(t, err, 400, apierrors.ErrUsernameTaken)
	})

	t.Run("update trims and saves", func(t *testing.T) {
		updated, err := service.Update(logger, claims, nil, models.ProfileBody{
			Name:     "  Медсестра  ",
			Username: "  nurse  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Медсестра", updated.Name)
		assert.Equal(t, "nurse", updated.Username)
	})

	t.Run("password reset verifies the old password", func(t *testing.T) {
		_, err := service.ResetPassword(logger, claims, nil, models.PasswordResetBody{
			Password:    "wrong-password",
			NewPassword: "brand-new-password",
		})
		assertAPIError(t, err, 401, apierrors.ErrInvalidCredentials)

		_, err = service.ResetPassword(logger, claims, nil, models.PasswordResetBody{
			Password:    "old-password",
			NewPassword: "brand-new-password",
		})
		require.NoError(t, err)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	logger := zap.NewNop()
	db := newTestDB(t)
	appConfig := models.AppConfig{
		JWTSecret:         "test-secret-key-for-jwt-signing-32b",
		AccessTokenExpiry: 60,
	}
	service := AuthService{DB: db, AppConfig: appConfig}

	user := seedUser(t, db, "doctor", "correct-password", true, false)

	t.Run("returns user and token on success", func(t *testing.T) {
		response, err := service.Login(logger, models.UserClaims{}, nil, models.LoginBody{
			Username: "doctor",
			Password: "correct-password",
		})
		require.NoError(t, err)
		assert.Equal(t, user.ID, response.User.ID)
		assert.NotEmpty(t, response.AccessToken)

		claims, err := h.ParseAccessToken(appConfig.JWTSecret, "Bearer "+response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("wrong password and unknown user share one error", func(t *testing.T) {
		_, err := service.Login(logger, models.UserClaims{}, nil, models.LoginBody{
			Username: "doctor",
			Password: "wrong-password",
		})
		assertAPIError(t, err, 401, apierrors.ErrInvalidCredentials)

		_, err = service.Login(logger, models.UserClaims{}, nil, models.LoginBody{
			Username: "nobody",
			Password: "correct-password",
		})
		assertAPIError(t, err, 401, apierrors.ErrInvalidCredentials)
	})
}
