package database_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ariven/dermalens-v2/backend/internal/database"
	"github.com/ariven/dermalens-v2/backend/internal/models"
)

func TestRunMigrationsAndCRUD(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db))

	user := models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.UserProfile{
		ID:       uuid.New(),
		UserID:   user.ID,
		Username: "testuser",
		SkinType: "sensitive",
	}
	require.NoError(t, db.Create(&profile).Error)

	var found models.UserProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&found).Error)
	require.Equal(t, "sensitive", found.SkinType)
}
