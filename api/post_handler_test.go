package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/models"
)

func seedUser(t *testing.T, d database.Database, externalID, username string) *models.User {
	t.Helper()

	user := &models.User{ExternalID: externalID, Email: externalID + "@example.com", Username: username}
	require.NoError(t, d.UserRepo().Add(user))
	return user
}

func TestCreatePostRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/posts", "", map[string]any{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/posts", "invalid", map[string]any{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreatePostUnknownUserIs404(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/posts", "ghost", map[string]any{"title": "x", "content": "y"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePostValidation(t *testing.T) {
	router, d := newTestRouter(t)
	seedUser(t, d, "ext-writer", "writer")

	rec := doRequest(t, router, http.MethodPost, "/posts", "ext-writer", map[string]any{"content": "y"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/posts", "ext-writer", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePostDerivesSlugAndUpsertsTags(t *testing.T) {
	router, d := newTestRouter(t)
	seedUser(t, d, "ext-writer", "writer")

	payload := map[string]any{
		"title":        "Hello, World!! 2024",
		"content":      "first post body",
		"categoryName": "tech",
		"tagNames":     []string{"Go", "Go", "Web Development"},
		"published":    true,
	}
	rec := doRequest(t, router, http.MethodPost, "/posts", "ext-writer", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	post := decodeBody[models.Post](t, rec)
	assert.Equal(t, "hello-world-2024", post.Slug)
	assert.Equal(t, "tech", post.Category)
	assert.Equal(t, "writer", post.Author.Username)
	assert.Len(t, post.Tags, 2)

	// Reusing an existing tag name must not create a second row.
	payload["title"] = "Another Post"
	payload["tagNames"] = []string{"Go"}
	rec = doRequest(t, router, http.MethodPost, "/posts", "ext-writer", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	tags, err := d.TagRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, tags, 2)
}

func TestListPostsFeed(t *testing.T) {
	router, d := newTestRouter(t)
	author := seedUser(t, d, "ext-author", "author")
	fan := seedUser(t, d, "ext-fan", "fan")

	older := &models.Post{Title: "Older", Slug: "older", Content: "a", AuthorID: author.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Post{Title: "Newer", Slug: "newer", Content: "b", AuthorID: author.ID, CreatedAt: time.Now()}
	require.NoError(t, d.PostRepo().Add(older))
	require.NoError(t, d.PostRepo().Add(newer))

	require.NoError(t, d.LikeRepo().Add(&models.Like{UserID: fan.ID, PostID: older.ID}))
	require.NoError(t, d.LikeRepo().Add(&models.Like{UserID: author.ID, PostID: older.ID}))
	require.NoError(t, d.CommentRepo().Add(&models.Comment{Content: "nice", PostID: older.ID, UserID: fan.ID}))

	rec := doRequest(t, router, http.MethodGet, "/posts", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	feed := decodeBody[[]FeedPost](t, rec)
	require.Len(t, feed, 2)

	assert.Equal(t, "Newer", feed[0].Title)
	assert.EqualValues(t, 0, feed[0].Likes)
	assert.EqualValues(t, 0, feed[0].Comments)

	assert.Equal(t, "Older", feed[1].Title)
	assert.Equal(t, "author", feed[1].Author.Name)
	assert.EqualValues(t, 2, feed[1].Likes)
	assert.EqualValues(t, 1, feed[1].Comments)
}
