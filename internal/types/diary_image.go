package types

import (
	"time"

	"github.com/google/uuid"
)

type DiaryImage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DiaryID   uuid.UUID `gorm:"index;not null;column:diary_id" json:"diary_id"`
	Image     AssetRef  `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Caption   string    `gorm:"column:caption" json:"caption"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (DiaryImage) TableName() string {
	return "diary_image"
}
