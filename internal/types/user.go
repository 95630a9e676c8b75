package types

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password    string    `gorm:"column:password" json:"-"`
	Name        string    `gorm:"column:name" json:"name"`
	Provider    string    `gorm:"column:provider" json:"provider,omitempty"`
	ProviderSub string    `gorm:"index;column:provider_sub" json:"-"`
	Avatar      AssetRef  `gorm:"embedded;embeddedPrefix:avatar_" json:"avatar"`
	CreatedAt   time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}
