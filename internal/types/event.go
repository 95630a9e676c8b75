package types

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID            uuid.UUID           `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title         string              `gorm:"not null;column:title" json:"title"`
	Description   string              `gorm:"not null;column:description" json:"description"`
	Location      string              `gorm:"not null;column:location" json:"location"`
	StartsAt      time.Time           `gorm:"index;column:starts_at" json:"starts_at"`
	Capacity      int                 `gorm:"column:capacity" json:"capacity"`
	Image         AssetRef            `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Registrations []EventRegistration `gorm:"foreignKey:EventID;references:ID" json:"registrations"`
	CreatedAt     time.Time           `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt     time.Time           `gorm:"not null;default:now()" json:"updated_at"`
}

func (Event) TableName() string {
	return "event"
}
