package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/inkwell-app/inkwell-backend/database"
	"github.com/inkwell-app/inkwell-backend/models"
)

func newTestTagResolver(t *testing.T) (TagResolver, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "tags_test.db")), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Tag{}))

	return NewTagResolver(database.NewTagRepo(db)), db
}

func TestResolveCreatesMissingTags(t *testing.T) {
	resolver, db := newTestTagResolver(t)

	tags, err := resolver.Resolve([]string{"Go", "Web Development"})
	require.NoError(t, err)
	require.Len(t, tags, 2)

	slugs := map[string]string{}
	for _, tag := range tags {
		slugs[tag.Name] = tag.Slug
	}
	assert.Equal(t, "go", slugs["Go"])
	assert.Equal(t, "web-development", slugs["Web Development"])

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestResolveDeduplicatesRequestedNames(t *testing.T) {
	resolver, db := newTestTagResolver(t)

	tags, err := resolver.Resolve([]string{"Go", "Go", "Go"})
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveReusesExistingTagBySlug(t *testing.T) {
	resolver, db := newTestTagResolver(t)

	first, err := resolver.Resolve([]string{"Web Development"})
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Same slug, different surface name: must reuse the existing row.
	second, err := resolver.Resolve([]string{"web development"})
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].ID, second[0].ID)
	assert.Equal(t, "Web Development", second[0].Name)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveDistinctNamesSameSlugShareOneRow(t *testing.T) {
	resolver, db := newTestTagResolver(t)

	tags, err := resolver.Resolve([]string{"Go!", "go"})
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, tags[0].ID, tags[1].ID)

	var count int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestResolveEmptyInput(t *testing.T) {
	resolver, _ := newTestTagResolver(t)

	tags, err := resolver.Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, tags)
}
