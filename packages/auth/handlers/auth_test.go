package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"auth/models"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Password: hashed,
		Role:     models.RolePlayer,
		Enabled:  true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedRefreshToken(t *testing.T, db *gorm.DB, userID uint, token string) {
	t.Helper()

	require.NoError(t, db.Create(&models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(utils.RefreshTokenExpiry),
	}).Error)
}

func jsonContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/auth/change-password", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestChangePassword_RevokesAllSessions(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player1", "oldpass123")
	seedRefreshToken(t, db, user.ID, "token-a")
	seedRefreshToken(t, db, user.ID, "token-b")

	c, w := jsonContext(t, `{"currentPassword":"oldpass123","newPassword":"newpass123"}`)
	c.Set("user_id", user.ID)

	NewAuthHandler(db, nil).ChangePassword(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, utils.CheckPassword("newpass123", stored.Password))
	assert.False(t, utils.CheckPassword("oldpass123", stored.Password))

	var remaining int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&remaining).Error)
	assert.Equal(t, int64(0), remaining, "every session must be revoked")
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player1", "oldpass123")
	seedRefreshToken(t, db, user.ID, "token-a")

	c, w := jsonContext(t, `{"currentPassword":"wrongpass","newPassword":"newpass123"}`)
	c.Set("user_id", user.ID)

	NewAuthHandler(db, nil).ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var remaining int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&remaining).Error)
	assert.Equal(t, int64(1), remaining, "sessions stay open on a rejected change")
}

func TestChangePassword_RevocationFailureIsReported(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "player1", "oldpass123")

	// With the table gone the revocation cannot succeed, and the handler
	// must say so instead of reporting success.
	require.NoError(t, db.Migrator().DropTable(&models.RefreshToken{}))

	c, w := jsonContext(t, `{"currentPassword":"oldpass123","newPassword":"newpass123"}`)
	c.Set("user_id", user.ID)

	NewAuthHandler(db, nil).ChangePassword(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to revoke sessions")
}

func TestChangePassword_Unauthenticated(t *testing.T) {
	db := newTestDB(t)

	c, w := jsonContext(t, `{"currentPassword":"oldpass123","newPassword":"newpass123"}`)

	NewAuthHandler(db, nil).ChangePassword(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
