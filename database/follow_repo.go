package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/models"
)

// FollowRepo is read-only: follow rows are written by a separate surface
// and only counted here when assembling profiles.
type FollowRepo struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) *FollowRepo {
	return &FollowRepo{db}
}

// CountFollowers returns how many users follow the given user.
func (r *FollowRepo) CountFollowers(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountFollowing returns how many users the given user follows.
func (r *FollowRepo) CountFollowing(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}
