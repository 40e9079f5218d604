package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/models"
	"github.com/inkwell-app/inkwell-backend/services"
)

type postHandler struct {
	responder   Responder
	logger      zerolog.Logger
	postRepo    *database.PostRepo
	userRepo    *database.UserRepo
	likeRepo    *database.LikeRepo
	commentRepo *database.CommentRepo
	tagResolver services.TagResolver
}

func newPostHandler(postRepo *database.PostRepo, userRepo *database.UserRepo, likeRepo *database.LikeRepo, commentRepo *database.CommentRepo, tagResolver services.TagResolver) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		postRepo:    postRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		tagResolver: tagResolver,
	}
}

// createPostRequest is the payload for creating a post.
type createPostRequest struct {
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	CategoryName string   `json:"categoryName"`
	TagNames     []string `json:"tagNames"`
	Published    bool     `json:"published"`
}

// listPosts returns the feed of all posts
// @Summary List posts
// @Description Returns every post, newest first, annotated with author info and like/comment counts
// @Tags Posts
// @Produce json
// @Success 200 {array} FeedPost "Post summaries"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching posts"
// @Router /posts [get]
func (h postHandler) listPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		feed := make([]FeedPost, 0, len(posts))
		for _, post := range posts {
			likes, err := h.likeRepo.CountByPost(post.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("count likes", "likes", err))
				return
			}
			comments, err := h.commentRepo.CountByPost(post.ID)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("count comments", "comments", err))
				return
			}

			feed = append(feed, FeedPost{
				ID:        post.ID,
				Title:     post.Title,
				Content:   post.Content,
				ImageURL:  post.ImageURL,
				CreatedAt: post.CreatedAt,
				Author: FeedAuthor{
					Name:     post.Author.Username,
					ImageURL: post.Author.ImageURL,
				},
				Likes:    likes,
				Comments: comments,
			})
		}

		h.responder.WriteJSON(w, feed)
	}
}

// createPost creates a new post with tag associations
// @Summary Create post
// @Description Creates a post for the authenticated user, deriving the slug from the title and upserting tags by slug
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body createPostRequest true "Post data"
// @Success 200 {object} models.Post "Created post with author and tags"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - No user row for the authenticated identity"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating post"
// @Router /posts [post]
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxGetIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode create post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}
		if req.Content == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("content"))
			return
		}

		// The identity is authenticated, but its profile row could still be
		// missing from the store. Check before writing anything.
		user, err := h.userRepo.FindByExternalID(identity.ExternalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		tags, err := h.tagResolver.Resolve(req.TagNames)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("resolve tags", "tags", err))
			return
		}

		post := models.Post{
			Title:     req.Title,
			Slug:      services.Slugify(req.Title),
			Content:   req.Content,
			ImageURL:  req.ImageURL,
			Published: req.Published,
			Category:  req.CategoryName,
			AuthorID:  user.ID,
			Tags:      tags,
		}

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		// Reload to return the post with author and tag details attached.
		created, err := h.postRepo.FindByID(post.ID)
		if err != nil || created == nil {
			h.responder.WriteError(w, wrapDatabaseError("find created post", "post", err))
			return
		}

		h.responder.WriteJSON(w, created)
	}
}
