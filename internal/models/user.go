package models

// User is a clinic staff account. The owner account is seeded at startup,
// is always an administrator and cannot be removed through the API.
type User struct {
	ID             uint    `json:"id"        gorm:"primarykey"`
	Name           string  `json:"name"`
	Username       string  `json:"username"  gorm:"uniqueIndex"`
	HashedPassword string  `json:"-"`
	IsAdmin        bool    `json:"is_admin"`
	IsOwner        bool    `json:"is_owner"`
	AvatarURL      *string `json:"avatar_url"`
	MaxID          *string `json:"max_id"`
	MaxName        *string `json:"max_name"`
	TelegramID     *string `json:"telegram_id"`
	TelegramName   *string `json:"telegram_name"`
}

type UserBody struct {
	Name      string  `json:"name"     validate:"required,max=128"`
	Username  string  `json:"username" validate:"required,max=64"`
	Password  string  `json:"password" validate:"omitempty,min=8,max=72"`
	IsAdmin   bool    `json:"is_admin"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=512"`
}

type ProfileBody struct {
	Name      string  `json:"name"     validate:"required,max=128"`
	Username  string  `json:"username" validate:"required,max=64"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,max=512"`
}
