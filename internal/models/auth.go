package models

import "github.com/golang-jwt/jwt/v5"

type UserClaimKey struct{}

type UserClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Aud      string `json:"aud_kind"`
	jwt.RegisteredClaims
}

type LoginBody struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

type PasswordResetBody struct {
	Password    string `json:"password"     validate:"required,max=72"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

type StartLinkResponse struct {
	StartLink string `json:"start_link"`
}
