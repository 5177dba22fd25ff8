package services

import (
	"api/internal/configuration"
	apierrors "api/internal/errors"
	h "api/internal/helpers"
	"api/internal/models"
	"api/internal/sql"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LinkService issues messenger deep links carrying a one-time signed token
// and clears stored bindings on unlink. The bot side submits the token back
// out of band; this service only starts and tears down the flow.
type LinkService struct {
	DB        *gorm.DB
	AppConfig models.AppConfig
	Linking   models.LinkingConfig
}

func (s LinkService) startLink(claims models.UserClaims, messenger string, baseURL string) (models.StartLinkResponse, error) {
	if baseURL == "" {
		return models.StartLinkResponse{}, apierrors.NewAPIError(400, apierrors.ErrLinkingNotConfigured)
	}

	user, err := sql.GetUserByID(s.DB, claims.UserID)
	if err != nil {
		return models.StartLinkResponse{}, err
	}

	token, err := h.NewLinkToken(s.AppConfig.JWTSecret, &user, messenger)
	if err != nil {
		return models.StartLinkResponse{}, err
	}

	return models.StartLinkResponse{StartLink: baseURL + "?start=" + token}, nil
}

func (s LinkService) TelegramLink(
	_ *zap.Logger,
	claims models.UserClaims,
	_ []uint,
) (models.StartLinkResponse, error) {
	return s.startLink(claims, configuration.MessengerTelegram, telegramBotURL(s.Linking.TelegramBot))
}

func (s LinkService) MaxLink(
	_ *zap.Logger,
	claims models.UserClaims,
	_ []uint,
) (models.StartLinkResponse, error) {
	return s.startLink(claims, configuration.MessengerMax, maxBotURL(s.Linking.MaxBot))
}

func (s LinkService) unlink(claims models.UserClaims, columns map[string]interface{}) (struct{}, error) {
	err := s.DB.Model(&models.User{}).
		Where("id = ?", claims.UserID).
		Updates(columns).Error
	return struct{}{}, err
}

func (s LinkService) TelegramUnlink(
	logger *zap.Logger,
	claims models.UserClaims,
	_ []uint,
) (struct{}, error) {
	logger.Info("Telegram unlinked", zap.Uint("user_id", claims.UserID))
	return s.unlink(claims, map[string]interface{}{"telegram_id": nil, "telegram_name": nil})
}

func (s LinkService) MaxUnlink(
	logger *zap.Logger,
	claims models.UserClaims,
	_ []uint,
) (struct{}, error) {
	logger.Info("Max unlinked", zap.Uint("user_id", claims.UserID))
	return s.unlink(claims, map[string]interface{}{"max_id": nil, "max_name": nil})
}

func telegramBotURL(bot string) string {
	if bot == "" {
		return ""
	}
	return "https://t.me/" + bot
}

func maxBotURL(bot string) string {
	if bot == "" {
		return ""
	}
	return "https://max.ru/" + bot
}
