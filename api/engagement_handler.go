package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/models"
)

type engagementHandler struct {
	responder   Responder
	logger      zerolog.Logger
	postRepo    *database.PostRepo
	userRepo    *database.UserRepo
	likeRepo    *database.LikeRepo
	commentRepo *database.CommentRepo
}

func newEngagementHandler(postRepo *database.PostRepo, userRepo *database.UserRepo, likeRepo *database.LikeRepo, commentRepo *database.CommentRepo) engagementHandler {
	logger := log.With().Str("handlerName", "engagementHandler").Logger()

	return engagementHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		postRepo:    postRepo,
		userRepo:    userRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// commentRequest is the payload for adding a comment.
type commentRequest struct {
	Content string `json:"content"`
}

// likeResponse carries the fresh like count after a successful like.
type likeResponse struct {
	Message string `json:"message"`
	Likes   int64  `json:"likes"`
}

func (h engagementHandler) postIDFromRequest(r *http.Request) (uuid.UUID, error) {
	postIDStr := chi.URLParam(r, "postID")
	if postIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing postID")
	}
	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid postID")
	}
	return postID, nil
}

// likePost records a like for the authenticated user
// @Summary Like post
// @Description Records a like, at most one per user and post, and returns the fresh like count
// @Tags Engagement
// @Produce json
// @Param postID path string true "Post ID" format(uuid)
// @Success 200 {object} likeResponse "Updated like count"
// @Failure 400 {object} ErrorResponse "Bad Request - Post already liked"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - User or post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error recording like"
// @Router /posts/{postID}/like [post]
func (h engagementHandler) likePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxGetIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, err := h.postIDFromRequest(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByExternalID(identity.ExternalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		alreadyLiked, err := h.likeRepo.Exists(user.ID, postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check like", "like", err))
			return
		}
		if alreadyLiked {
			h.responder.WriteError(w, errs.NewAlreadyLikedError())
			return
		}

		like := models.Like{UserID: user.ID, PostID: postID}
		if err := h.likeRepo.Add(&like); err != nil {
			// A concurrent like can slip between the existence check and
			// the insert; the unique index reports it as a duplicate.
			if errs.IsDuplicateKey(err) {
				h.responder.WriteError(w, errs.NewAlreadyLikedError())
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create like", "like", err))
			return
		}

		// Fresh count query, not an increment: counts must never drift.
		likes, err := h.likeRepo.CountByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count likes", "likes", err))
			return
		}

		h.responder.WriteJSON(w, likeResponse{
			Message: "Post liked successfully",
			Likes:   likes,
		})
	}
}

// addComment appends a comment to a post
// @Summary Add comment
// @Description Appends a comment for the authenticated user; content must be non-empty after trimming
// @Tags Engagement
// @Accept json
// @Produce json
// @Param postID path string true "Post ID" format(uuid)
// @Param comment body commentRequest true "Comment content"
// @Success 201 {object} map[string]string "Acknowledgement"
// @Failure 400 {object} ErrorResponse "Bad Request - Empty content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating comment"
// @Router /posts/{postID}/comment [post]
func (h engagementHandler) addComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxGetIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		postID, err := h.postIDFromRequest(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
			return
		}

		if strings.TrimSpace(req.Content) == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("content", "comment content is required"))
			return
		}

		user, err := h.userRepo.FindByExternalID(identity.ExternalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		comment := models.Comment{
			Content: req.Content,
			PostID:  postID,
			UserID:  user.ID,
		}
		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "Comment added",
		})
	}
}

// listComments returns a post's comments
// @Summary List comments
// @Description Returns the post's comments, newest first, with commenter details
// @Tags Engagement
// @Produce json
// @Param postID path string true "Post ID" format(uuid)
// @Success 200 {array} CommentView "Comments"
// @Failure 404 {object} ErrorResponse "Not Found - Post not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching comments"
// @Router /posts/{postID}/comment [get]
func (h engagementHandler) listComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := h.postIDFromRequest(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		comments, err := h.commentRepo.FindByPost(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		views := make([]CommentView, 0, len(comments))
		for _, comment := range comments {
			views = append(views, CommentView{
				ID:        comment.ID,
				Content:   comment.Content,
				PostID:    comment.PostID,
				CreatedAt: comment.CreatedAt,
				User: CommentUser{
					ID:       comment.User.ID,
					Username: comment.User.Username,
					ImageURL: comment.User.ImageURL,
				},
			})
		}

		h.responder.WriteJSON(w, views)
	}
}
