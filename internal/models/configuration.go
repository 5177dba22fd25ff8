package models

type Configuration struct {
	App        AppConfig        `mapstructure:"app"        validate:"required"`
	Database   DatabaseConfig   `mapstructure:"database"   validate:"required"`
	Generation GenerationConfig `mapstructure:"generation"`
	Linking    LinkingConfig    `mapstructure:"linking"`
}

type AppConfig struct {
	Port              int      `mapstructure:"port"                validate:"required,min=1,max=65535"`
	LogLevel          string   `mapstructure:"log_level"           validate:"omitempty,oneof=debug info warn error"`
	PublicURL         string   `mapstructure:"public_url"          validate:"required,url"`
	AllowedOrigins    []string `mapstructure:"allowed_origins"`
	JWTSecret         string   `mapstructure:"jwt_secret"          validate:"required,min=32"`
	AccessTokenExpiry int      `mapstructure:"access_token_expiry" validate:"required,min=1"`
	OwnerUsername     string   `mapstructure:"owner_username"      validate:"required"`
	OwnerPassword     string   `mapstructure:"owner_password"      validate:"required,min=8"`
	UploadsDirectory  string   `mapstructure:"uploads_directory"   validate:"required"`
	MaxUploadSize     int64    `mapstructure:"max_upload_size"     validate:"required,min=1"`
	LoginRatePerMin   int      `mapstructure:"login_rate_per_min"  validate:"required,min=1"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"   validate:"required,oneof=sqlite postgres"`
	Path     string `mapstructure:"path"     validate:"required_if=Driver sqlite"`
	Host     string `mapstructure:"host"     validate:"required_if=Driver postgres"`
	Port     int32  `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// GenerationConfig points at the external text-generation HTTP API used by
// the prompt test endpoint.
type GenerationConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"omitempty,url"`
	APIKey         string `mapstructure:"api_key"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// LinkingConfig holds the messenger bot identities used to build
// account-linking deep links.
type LinkingConfig struct {
	TelegramBot string `mapstructure:"telegram_bot"`
	MaxBot      string `mapstructure:"max_bot"`
}
