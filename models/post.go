package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post represents a published or draft post in the feed. The slug is
// derived from the title at creation time and is not required to be
// unique; posts are immutable once created.
type Post struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;index:idx_posts_slug"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Published bool      `json:"published" db:"published" gorm:"type:boolean;not null;default:false"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null;default:''"`
	AuthorID  uuid.UUID `json:"authorId" db:"author_id" gorm:"type:uuid;not null;index:idx_posts_author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null"`

	Author   User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags"`
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
