package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-app/inkwell-backend/errs"
	"github.com/inkwell-app/inkwell-backend/models"
)

func seedUserAndPost(t *testing.T, d Database) (*models.User, *models.Post) {
	t.Helper()

	user := &models.User{ExternalID: "ext-author", Email: "author@example.com", Username: "author"}
	require.NoError(t, d.UserRepo().Add(user))

	post := &models.Post{
		Title:    "First Post",
		Slug:     "first-post",
		Content:  "body",
		AuthorID: user.ID,
	}
	require.NoError(t, d.PostRepo().Add(post))

	return user, post
}

func TestLikeUniquenessConstraint(t *testing.T) {
	d := New(newTestDB(t))
	user, post := seedUserAndPost(t, d)

	require.NoError(t, d.LikeRepo().Add(&models.Like{UserID: user.ID, PostID: post.ID}))

	err := d.LikeRepo().Add(&models.Like{UserID: user.ID, PostID: post.ID})
	require.Error(t, err)
	assert.True(t, errs.IsDuplicateKey(err))

	count, err := d.LikeRepo().CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestLikeCountsArePerPost(t *testing.T) {
	d := New(newTestDB(t))
	user, post := seedUserAndPost(t, d)

	other := &models.Post{Title: "Second", Slug: "second", Content: "body", AuthorID: user.ID}
	require.NoError(t, d.PostRepo().Add(other))

	liker := &models.User{ExternalID: "ext-liker", Email: "liker@example.com", Username: "liker"}
	require.NoError(t, d.UserRepo().Add(liker))

	require.NoError(t, d.LikeRepo().Add(&models.Like{UserID: user.ID, PostID: post.ID}))
	require.NoError(t, d.LikeRepo().Add(&models.Like{UserID: liker.ID, PostID: post.ID}))

	count, err := d.LikeRepo().CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = d.LikeRepo().CountByPost(other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestCommentsOrderedNewestFirst(t *testing.T) {
	d := New(newTestDB(t))
	user, post := seedUserAndPost(t, d)

	older := &models.Comment{Content: "older", PostID: post.ID, UserID: user.ID, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Comment{Content: "newer", PostID: post.ID, UserID: user.ID, CreatedAt: time.Now()}
	require.NoError(t, d.CommentRepo().Add(older))
	require.NoError(t, d.CommentRepo().Add(newer))

	comments, err := d.CommentRepo().FindByPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "newer", comments[0].Content)
	assert.Equal(t, "older", comments[1].Content)
	assert.Equal(t, user.ID, comments[0].User.ID)

	count, err := d.CommentRepo().CountByPost(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestFollowCounts(t *testing.T) {
	d := New(newTestDB(t))

	alice := &models.User{ExternalID: "ext-alice", Email: "alice@example.com", Username: "alice"}
	bob := &models.User{ExternalID: "ext-bob", Email: "bob@example.com", Username: "bob"}
	carol := &models.User{ExternalID: "ext-carol", Email: "carol@example.com", Username: "carol"}
	for _, u := range []*models.User{alice, bob, carol} {
		require.NoError(t, d.UserRepo().Add(u))
	}

	db := d.UserRepo().GetDB()
	require.NoError(t, db.Create(&models.Follow{FollowerID: bob.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: carol.ID, FollowingID: alice.ID}).Error)
	require.NoError(t, db.Create(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}).Error)

	followers, err := d.FollowRepo().CountFollowers(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, followers)

	following, err := d.FollowRepo().CountFollowing(alice.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, following)
}

func TestPostsOrderedNewestFirst(t *testing.T) {
	d := New(newTestDB(t))
	user, _ := seedUserAndPost(t, d)

	older := &models.Post{Title: "Older", Slug: "older", Content: "body", AuthorID: user.ID, CreatedAt: time.Now().Add(-2 * time.Hour)}
	require.NoError(t, d.PostRepo().Add(older))

	posts, err := d.PostRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "First Post", posts[0].Title)
	assert.Equal(t, "Older", posts[1].Title)
	assert.Equal(t, "author", posts[0].Author.Username)
}
