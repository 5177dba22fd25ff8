package models

// Catalog entities are the admin-curated reference lists used to tag
// reviews and complaints. Every kind carries a Position column that fixes
// display order; reordering rewrites positions only, never identifiers.

type Doctor struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url"`
	IsEnabled bool      `json:"is_enabled"`
	Position  int       `gorm:"index"      json:"-"`
	Services  []Service `gorm:"many2many:doctor_services" json:"services"`
}

type Service struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	IsEnabled bool   `json:"is_enabled"`
	Position  int    `gorm:"index"      json:"-"`
}

type Aspect struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
	Position  int    `gorm:"index"      json:"-"`
}

type Source struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
	Position  int    `gorm:"index"      json:"-"`
}

type Reward struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Name      string  `json:"name"`
	ImageURL  *string `json:"image_url"`
	IsEnabled bool    `json:"is_enabled"`
	Position  int     `gorm:"index"      json:"-"`
}

type Platform struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	Name      string  `json:"name"`
	URL       string  `json:"url"`
	ImageURL  *string `json:"image_url"`
	IsEnabled bool    `json:"is_enabled"`
	Position  int     `gorm:"index"      json:"-"`
}

type Reason struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Name      string `json:"name"`
	IsEnabled bool   `json:"is_enabled"`
	Position  int    `gorm:"index"      json:"-"`
}

type News struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	Title     string `json:"title"`
	IsEnabled bool   `json:"is_enabled"`
	Position  int    `gorm:"index"      json:"-"`
}

// --- request bodies ---

type DoctorBody struct {
	Name       string  `json:"name"        validate:"required,max=200"`
	Role       string  `json:"role"        validate:"required,max=200"`
	AvatarURL  *string `json:"avatar_url"  validate:"omitempty,max=2048"`
	IsEnabled  bool    `json:"is_enabled"`
	ServiceIDs []uint  `json:"service_ids" validate:"omitempty,unique"`
}

type ServiceBody struct {
	Name      string `json:"name"     validate:"required,max=200"`
	Category  string `json:"category" validate:"max=200"`
	IsEnabled bool   `json:"is_enabled"`
}

type AspectBody struct {
	Name      string `json:"name" validate:"required,max=200"`
	IsEnabled bool   `json:"is_enabled"`
}

type SourceBody struct {
	Name      string `json:"name" validate:"required,max=200"`
	IsEnabled bool   `json:"is_enabled"`
}

type RewardBody struct {
	Name      string  `json:"name"      validate:"required,max=200"`
	ImageURL  *string `json:"image_url" validate:"omitempty,max=2048"`
	IsEnabled bool    `json:"is_enabled"`
}

type PlatformBody struct {
	Name      string  `json:"name"      validate:"required,max=200"`
	URL       string  `json:"url"       validate:"required,max=2048"`
	ImageURL  *string `json:"image_url" validate:"omitempty,max=2048"`
	IsEnabled bool    `json:"is_enabled"`
}

type ReasonBody struct {
	Name      string `json:"name" validate:"required,max=200"`
	IsEnabled bool   `json:"is_enabled"`
}

type NewsBody struct {
	Title     string `json:"title" validate:"required,max=500"`
	IsEnabled bool   `json:"is_enabled"`
}

// ReorderBody carries the complete new display order for one catalog kind.
type ReorderBody struct {
	OrderedIDs []uint `json:"ordered_ids" validate:"required,min=1,unique"`
}
