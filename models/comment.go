package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is append-only; content must be non-empty after trimming.
type Comment struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	PostID    uuid.UUID `json:"postId" db:"post_id" gorm:"type:uuid;not null;index:idx_comments_post_id"`
	UserID    uuid.UUID `json:"userId" db:"user_id" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Post Post `json:"-" gorm:"foreignKey:PostID;references:ID"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
