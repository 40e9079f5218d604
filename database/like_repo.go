package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/models"
)

type LikeRepo struct {
	db *gorm.DB
}

func NewLikeRepo(db *gorm.DB) *LikeRepo {
	return &LikeRepo{db}
}

// Exists reports whether the user has already liked the post.
func (r *LikeRepo) Exists(userID, postID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

// Add inserts a new like. A duplicate (user, post) pair fails on the
// unique index; callers translate that into an already-liked conflict.
func (r *LikeRepo) Add(like *models.Like) error {
	return r.db.Create(like).Error
}

// CountByPost returns the like cardinality for a post with a fresh count
// query. Counts are never maintained as running counters, so they cannot
// drift.
func (r *LikeRepo) CountByPost(postID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}
