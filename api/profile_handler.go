package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/models"
)

type profileHandler struct {
	responder   Responder
	logger      zerolog.Logger
	userRepo    *database.UserRepo
	postRepo    *database.PostRepo
	likeRepo    *database.LikeRepo
	commentRepo *database.CommentRepo
	followRepo  *database.FollowRepo
}

func newProfileHandler(userRepo *database.UserRepo, postRepo *database.PostRepo, likeRepo *database.LikeRepo, commentRepo *database.CommentRepo, followRepo *database.FollowRepo) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		userRepo:    userRepo,
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		followRepo:  followRepo,
	}
}

// updateProfileRequest is the payload for a profile update. Absent
// optional fields become explicit nulls: the update overwrites every
// field, it is not a partial patch.
type updateProfileRequest struct {
	Username string  `json:"username"`
	Bio      *string `json:"bio,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// assembleProfile builds the aggregate view for a user: own posts with
// per-post like/comment cardinalities, plus follower/following counts.
func (h profileHandler) assembleProfile(user *models.User) (*ProfileResponse, error) {
	posts, err := h.postRepo.FindByAuthor(user.ID)
	if err != nil {
		return nil, wrapDatabaseError("find posts", "posts", err)
	}

	profilePosts := make([]ProfilePost, 0, len(posts))
	for _, post := range posts {
		likes, err := h.likeRepo.CountByPost(post.ID)
		if err != nil {
			return nil, wrapDatabaseError("count likes", "likes", err)
		}
		comments, err := h.commentRepo.CountByPost(post.ID)
		if err != nil {
			return nil, wrapDatabaseError("count comments", "comments", err)
		}
		profilePosts = append(profilePosts, ProfilePost{
			Post:     *post,
			Likes:    likes,
			Comments: comments,
		})
	}

	followers, err := h.followRepo.CountFollowers(user.ID)
	if err != nil {
		return nil, wrapDatabaseError("count followers", "follows", err)
	}
	following, err := h.followRepo.CountFollowing(user.ID)
	if err != nil {
		return nil, wrapDatabaseError("count following", "follows", err)
	}

	return &ProfileResponse{
		ID:             user.ID,
		ExternalID:     user.ExternalID,
		Username:       user.Username,
		Email:          user.Email,
		Bio:            user.Bio,
		ImageURL:       user.ImageURL,
		CreatedAt:      user.CreatedAt,
		Posts:          profilePosts,
		FollowersCount: followers,
		FollowingCount: following,
	}, nil
}

// getUserProfile returns a user's public profile
// @Summary Get user profile
// @Description Returns profile fields, the user's posts with per-post counts, and follower/following counts
// @Tags Profiles
// @Produce json
// @Param externalID path string true "External identity ID"
// @Success 200 {object} ProfileResponse "Profile with posts and counts"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching profile"
// @Router /users/{externalID} [get]
func (h profileHandler) getUserProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		externalID := chi.URLParam(r, "externalID")
		if externalID == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing externalID"))
			return
		}

		user, err := h.userRepo.FindByExternalID(externalID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("user not found"))
			return
		}

		profile, err := h.assembleProfile(user)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

// getOwnProfile resolves the caller's own user row, creating it on first sight
// @Summary Get own profile
// @Description Returns the authenticated user's row, creating it with an empty username on the identity's first request
// @Tags Profiles
// @Produce json
// @Success 200 {object} models.User "Own user row"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error resolving user"
// @Router /profile [get]
func (h profileHandler) getOwnProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := ctxGetIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		user, err := h.userRepo.FindOrCreateByExternalID(identity.ExternalID, identity.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("resolve user", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}

// updateProfile overwrites the caller's profile fields
// @Summary Update profile
// @Description Overwrites username, bio and image URL for the authenticated user; absent optional fields become nulls
// @Tags Profiles
// @Accept json
// @Produce json
// @Param profile body updateProfileRequest true "Profile fields"
// @Success 200 {object} models.User "Updated user row"
// @Failure 400 {object} ErrorResponse "Bad Request - Username already taken"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - User not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating profile"
// @Router /profile [post]
func (h profileHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The acting identity comes from the session, never from the
		// request body, so a client cannot update someone else's profile.
		identity, ok := ctxGetIdentity(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile update request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("JSON", err))
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

		if req.Username != "" && req.Username != user.Username {
			existing, err := h.userRepo.FindByUsername(req.Username)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
				return
			}
			if existing != nil && existing.ID != user.ID {
				h.responder.WriteError(w, errs.NewInvalidFieldError("username", "already taken"))
				return
			}
		}

		user.Username = req.Username
		user.Bio = req.Bio
		user.ImageURL = req.ImageURL

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update user", "user", err))
			return
		}

		h.responder.WriteJSON(w, user)
	}
}
