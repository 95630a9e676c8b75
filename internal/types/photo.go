package types

import (
	"time"

	"github.com/google/uuid"
)

type Photo struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string         `gorm:"not null;column:title" json:"title"`
	Description string         `gorm:"not null;column:description" json:"description"`
	Category    string         `gorm:"index;not null;column:category" json:"category"`
	Image       AssetRef       `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Votes       []PhotoVote    `gorm:"foreignKey:PhotoID;references:ID" json:"votes"`
	Comments    []PhotoComment `gorm:"foreignKey:PhotoID;references:ID" json:"comments"`
	CreatedAt   time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Photo) TableName() string {
	return "photo"
}
