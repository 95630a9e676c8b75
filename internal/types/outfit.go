package types

import (
	"time"

	"github.com/google/uuid"
)

type Outfit struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Occasion    string    `gorm:"index;column:occasion" json:"occasion"`
	Image       AssetRef  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Outfit) TableName() string {
	return "outfit"
}
