package database

import (
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/models"
)

// Database bundles one repository per entity, all sharing a single pooled
// GORM connection. It is initialized once in main and injected into every
// handler; nothing reconnects per request.
type Database struct {
	userRepo    *UserRepo
	postRepo    *PostRepo
	tagRepo     *TagRepo
	likeRepo    *LikeRepo
	commentRepo *CommentRepo
	followRepo  *FollowRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:    NewUserRepo(db),
		postRepo:    NewPostRepo(db),
		tagRepo:     NewTagRepo(db),
		likeRepo:    NewLikeRepo(db),
		commentRepo: NewCommentRepo(db),
		followRepo:  NewFollowRepo(db),
	}
}

// Migrate creates or updates the schema for every entity, including the
// unique indexes the services rely on as their concurrency backstop.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Tag{},
		&models.Like{},
		&models.Comment{},
		&models.Follow{},
	)
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) LikeRepo() *LikeRepo {
	return d.likeRepo
}

func (d Database) CommentRepo() *CommentRepo {
	return d.commentRepo
}

func (d Database) FollowRepo() *FollowRepo {
	return d.followRepo
}
