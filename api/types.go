package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell-backend/models"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	postHandler       postHandler
	engagementHandler engagementHandler
	profileHandler    profileHandler
	uploadHandler     uploadHandler
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
	Cause   string `json:"cause,omitempty" example:"Underlying error cause"`
}

// FeedAuthor is the author summary attached to each feed entry.
type FeedAuthor struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// FeedPost is a post summary in the feed: base fields plus like/comment
// cardinalities computed fresh per request.
type FeedPost struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	ImageURL  *string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	Author    FeedAuthor `json:"author"`
	Likes     int64      `json:"likes"`
	Comments  int64      `json:"comments"`
}

// CommentUser is the commenter summary attached to each comment.
type CommentUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	ImageURL *string   `json:"imageUrl,omitempty"`
}

// CommentView is a comment as rendered in a post's comment list.
type CommentView struct {
	ID        uuid.UUID   `json:"id"`
	Content   string      `json:"content"`
	PostID    uuid.UUID   `json:"postId"`
	CreatedAt time.Time   `json:"createdAt"`
	User      CommentUser `json:"user"`
}

// ProfilePost is one of the profiled user's own posts, annotated with its
// own like/comment cardinalities rather than any global total.
type ProfilePost struct {
	models.Post
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
}

// ProfileResponse is the public profile: base fields, own posts with
// counts, and follower/following cardinalities.
type ProfileResponse struct {
	ID             uuid.UUID     `json:"id"`
	ExternalID     string        `json:"externalId"`
	Username       string        `json:"username"`
	Email          string        `json:"email"`
	Bio            *string       `json:"bio,omitempty"`
	ImageURL       *string       `json:"imageUrl,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	Posts          []ProfilePost `json:"posts"`
	FollowersCount int64         `json:"followersCount"`
	FollowingCount int64         `json:"followingCount"`
}
