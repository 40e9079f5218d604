package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/models"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindBySlug returns the tag owning a slug, or nil if none exists. The
// slug carries the unique index, so this is the upsert lookup key.
func (r *TagRepo) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Add inserts a new tag into the database
func (r *TagRepo) Add(tag *models.Tag) error {
	return r.db.Create(tag).Error
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Find(&tags).Error
	return tags, err
}
