package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/models"
)

type CommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *CommentRepo {
	return &CommentRepo{db}
}

// Add inserts a new comment into the database
func (r *CommentRepo) Add(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// FindByPost returns the post's comments, newest first, with the
// commenting user loaded for display.
func (r *CommentRepo) FindByPost(postID uuid.UUID) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

// CountByPost returns the comment cardinality for a post.
func (r *CommentRepo) CountByPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
