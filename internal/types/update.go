package types

import (
	"time"

	"github.com/google/uuid"
)

type Update struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Body      string    `gorm:"not null;column:body" json:"body"`
	Category  string    `gorm:"index;column:category" json:"category"`
	Image     AssetRef  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Update) TableName() string {
	return "update"
}
