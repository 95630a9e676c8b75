package types

import (
	"time"

	"github.com/google/uuid"
)

type TravelDiary struct {
	ID        uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string       `gorm:"not null;column:title" json:"title"`
	Body      string       `gorm:"not null;column:body" json:"body"`
	Location  string       `gorm:"column:location" json:"location"`
	Images    []DiaryImage `gorm:"foreignKey:DiaryID;references:ID" json:"images"`
	CreatedAt time.Time    `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time    `gorm:"not null;default:now()" json:"updated_at"`
}

func (TravelDiary) TableName() string {
	return "travel_diary"
}
