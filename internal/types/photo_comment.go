package types

import (
	"time"

	"github.com/google/uuid"
)

type PhotoComment struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PhotoID    uuid.UUID `gorm:"index;not null;column:photo_id" json:"photo_id"`
	UserID     uuid.UUID `gorm:"index;not null;column:user_id" json:"user_id"`
	AuthorName string    `gorm:"column:author_name" json:"author_name"`
	Body       string    `gorm:"not null;column:body" json:"body"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (PhotoComment) TableName() string {
	return "photo_comment"
}
