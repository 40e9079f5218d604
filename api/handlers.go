package api

import (
	"github.com/inkwell-app/inkwell-backend/auth"
	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, verifier auth.Verifier, uploads *services.ObjectStore) *routeHandlers {
	return &routeHandlers{
		postHandler:       newPostHandler(database.PostRepo(), database.UserRepo(), database.LikeRepo(), database.CommentRepo(), services.NewTagResolver(database.TagRepo())),
		engagementHandler: newEngagementHandler(database.PostRepo(), database.UserRepo(), database.LikeRepo(), database.CommentRepo()),
		profileHandler:    newProfileHandler(database.UserRepo(), database.PostRepo(), database.LikeRepo(), database.CommentRepo(), database.FollowRepo()),
		uploadHandler:     newUploadHandler(uploads),
	}
}
