package seed

import (
	"testing"

	"devconnect/internal/database"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestRunSeedsUsersProfilesAndPosts(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db, Options{SkipBcrypt: true})

	require.NoError(t, s.Run(5, 10))

	var users, profiles, posts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Profile{}).Count(&profiles).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)

	assert.Equal(t, int64(5), users)
	assert.Equal(t, int64(5), profiles)
	assert.Equal(t, int64(10), posts)

	// Every seeded post carries the author snapshot.
	var sample models.Post
	require.NoError(t, db.First(&sample).Error)
	assert.NotEmpty(t, sample.Name)
	assert.Contains(t, sample.Avatar, "gravatar.com")
}

func TestClearAllWipesEveryTable(t *testing.T) {
	db := setupSeedTestDB(t)
	s := NewSeeder(db, Options{SkipBcrypt: true})

	require.NoError(t, s.Run(3, 5))
	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{
		&models.User{}, &models.Profile{}, &models.Post{},
		&models.Like{}, &models.Comment{},
	} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Equal(t, int64(0), count, "%T should be empty", model)
	}
}
