package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow links a follower to the user they follow. Read-only here; rows
// are only ever counted to build profile aggregates.
type Follow struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FollowerID  uuid.UUID `json:"followerId" db:"follower_id" gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index:idx_follows_follower_id"`
	FollowingID uuid.UUID `json:"followingId" db:"following_id" gorm:"type:uuid;not null;uniqueIndex:idx_follows_pair;index:idx_follows_following_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	Follower  User `json:"-" gorm:"foreignKey:FollowerID;references:ID"`
	Following User `json:"-" gorm:"foreignKey:FollowingID;references:ID"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
