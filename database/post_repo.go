package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/models"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns every post, newest first, with author and tags loaded.
// Intentionally unbounded: the feed contract is the full set every time.
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Author").Preload("Tags").
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindByID returns a post by its ID with author and tags loaded, or nil
// if no row matches.
func (r *PostRepo) FindByID(id uuid.UUID) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Tags").First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindByAuthor returns the author's posts, newest first, with tags loaded.
func (r *PostRepo) FindByAuthor(authorID uuid.UUID) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Preload("Tags").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// Add inserts a new post into the database. Tags already present on the
// struct are linked through the post_tags association table; existing tag
// rows are never duplicated.
func (r *PostRepo) Add(post *models.Post) error {
	return r.db.Create(post).Error
}
