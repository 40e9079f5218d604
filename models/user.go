package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the internal counterpart of an identity-provider account.
// A row is created lazily the first time an identity is seen; Username
// stays empty until onboarding completes.
type User struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ExternalID string    `json:"externalId" db:"external_id" gorm:"type:text;not null;uniqueIndex:idx_users_external_id"`
	Username   string    `json:"username" db:"username" gorm:"type:text;not null;default:''"`
	Email      string    `json:"email" db:"email" gorm:"type:text;not null"`
	Bio        *string   `json:"bio,omitempty" db:"bio" gorm:"type:text"`
	ImageURL   *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:AuthorID;references:ID;constraint:OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
