package types

import (
	"time"

	"github.com/google/uuid"
)

// Story carries an optional narration audio asset. Audio is the one asset
// kind whose storage resource type is not recoverable from the row alone.
type Story struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null;column:title" json:"title"`
	Body      string    `gorm:"not null;column:body" json:"body"`
	Audio     AssetRef  `gorm:"embedded;embeddedPrefix:audio_" json:"audio"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Story) TableName() string {
	return "story"
}
