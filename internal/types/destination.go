package types

import (
	"time"

	"github.com/google/uuid"
)

type Destination struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null;column:name" json:"name"`
	Region      string    `gorm:"index;column:region" json:"region"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Tips        string    `gorm:"column:tips" json:"tips"`
	Image       AssetRef  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Destination) TableName() string {
	return "destination"
}
