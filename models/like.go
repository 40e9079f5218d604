package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like records a user liking a post. The (UserID, PostID) pair is unique;
// the database constraint is the authoritative guard against double likes.
type Like struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_likes_user_post;index:idx_likes_post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Post Post `json:"-" gorm:"foreignKey:PostID;references:ID"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
