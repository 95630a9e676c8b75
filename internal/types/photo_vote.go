package types

import (
	"time"

	"github.com/google/uuid"
)

type PhotoVote struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PhotoID   uuid.UUID `gorm:"index;not null;column:photo_id" json:"photo_id"`
	UserID    uuid.UUID `gorm:"index;not null;column:user_id" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (PhotoVote) TableName() string {
	return "photo_vote"
}
