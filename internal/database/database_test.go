package database

import (
	"testing"

	"devconnect/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateAppliesFullSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	for _, model := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(model), "missing table for %T", model)
	}

	// The one-profile-per-user constraint must survive migration.
	u := models.User{Name: "a", Email: "a@x.com", Password: "hash"}
	require.NoError(t, db.Create(&u).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: u.ID, Status: "dev"}).Error)
	assert.Error(t, db.Create(&models.Profile{UserID: u.ID, Status: "dev"}).Error)
}

func TestSlogLoggerHonorsLogMode(t *testing.T) {
	base := &slogGormLogger{Config: logger.Config{LogLevel: logger.Warn}}

	raised := base.LogMode(logger.Info)
	got, ok := raised.(*slogGormLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, got.Config.LogLevel)
	// original instance unchanged
	assert.Equal(t, logger.Warn, base.Config.LogLevel)
}

func TestPostgresDialectorOverExistingConn(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer mockDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 mockDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.NoError(t, mock.ExpectationsWereMet())
}
