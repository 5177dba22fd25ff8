package helpers

import (
	"context"
	"errors"
	"strings"
	"time"

	"api/internal/configuration"
	"api/internal/models"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v5"
)

// tokenConfig holds configuration for creating a specific token type.
type tokenConfig struct {
	audience      string
	expiryMinutes int
}

func createToken(jwtSecret string, user *models.User, config tokenConfig) (string, error) {
	claims := models.UserClaims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		Aud:      config.audience,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    configuration.AppName,
			IssuedAt:  &jwt.NumericDate{Time: time.Now()},
			ExpiresAt: &jwt.NumericDate{Time: time.Now().Add(time.Minute * time.Duration(config.expiryMinutes))},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func NewAccessToken(jwtSecret string, user *models.User, expiryMinutes int) (string, error) {
	return createToken(jwtSecret, user, tokenConfig{
		audience:      configuration.AudienceAccessToken,
		expiryMinutes: expiryMinutes,
	})
}

// NewLinkToken creates the short-lived token embedded in a messenger
// deep link; the bot hands it back so the binding can be attributed to the
// right account.
func NewLinkToken(jwtSecret string, user *models.User, messenger string) (string, error) {
	return createToken(jwtSecret, user, tokenConfig{
		audience:      configuration.AudienceLinkToken + ":" + messenger,
		expiryMinutes: configuration.LinkTokenExpiry,
	})
}

// ParseToken validates signature, expiry and issuer. The requireBearer
// parameter controls whether the "Bearer " prefix is required.
func ParseToken(jwtSecret string, tokenString string, requireBearer bool) (models.UserClaims, error) {
	if requireBearer {
		if !strings.HasPrefix(tokenString, "Bearer ") {
			return models.UserClaims{}, errors.New("invalid token")
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	}

	claims := &models.UserClaims{}

	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(jwtSecret), nil
		},
	)
	if err != nil {
		return models.UserClaims{}, errors.New("invalid token")
	}

	return *claims, nil
}

func ParseAccessToken(jwtSecret string, tokenString string) (models.UserClaims, error) {
	claims, err := ParseToken(jwtSecret, tokenString, true)
	if err != nil {
		return models.UserClaims{}, err
	}
	if claims.Aud != configuration.AudienceAccessToken {
		return models.UserClaims{}, errors.New("invalid token audience")
	}
	return claims, nil
}

func CreateHash(password string) (string, error) {
	argonParams := argon2id.Params{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  32,
		KeyLength:   32,
	}
	hash, err := argon2id.CreateHash(password, &argonParams)
	if err != nil {
		return "", errors.New("can not create hash password")
	}

	return hash, nil
}

func GetUserClaims(c context.Context) (models.UserClaims, error) {
	value, ok := c.Value(models.UserClaimKey{}).(models.UserClaims)
	if !ok {
		return models.UserClaims{}, errors.New("invalid user claims")
	}
	return value, nil
}
