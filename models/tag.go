package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag is shared across posts and keyed by its slug. Creating a tag whose
// slug already exists must reuse the existing row.
type Tag struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name string    `json:"name" db:"name" gorm:"type:text;not null"`
	Slug string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_tags_slug"`

	Posts []Post `json:"-" gorm:"many2many:post_tags"`
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
