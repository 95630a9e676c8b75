package types

import (
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Description string    `gorm:"not null;column:description" json:"description"`
	Location    string    `gorm:"column:location" json:"location"`
	HappenedAt  time.Time `gorm:"column:happened_at" json:"happened_at"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Experience) TableName() string {
	return "experience"
}
