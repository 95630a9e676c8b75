package types

import (
	"time"

	"github.com/google/uuid"
)

type EventRegistration struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"index;not null;column:event_id" json:"event_id"`
	Name      string    `gorm:"not null;column:name" json:"name"`
	Email     string    `gorm:"not null;column:email" json:"email"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (EventRegistration) TableName() string {
	return "event_registration"
}
