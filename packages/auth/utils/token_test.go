package utils

import (
	"testing"
	"time"

	"auth/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := models.User{
		ID:       42,
		Username: "manager",
		Role:     models.RoleManager,
	}
	playerID := uint(7)

	tokenString, err := GenerateToken(user, &playerID)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := ParseToken(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "manager", claims.Username)
	assert.Equal(t, models.RoleManager, claims.Role)
	assert.NotNil(t, claims.PlayerID)
	assert.Equal(t, uint(7), *claims.PlayerID)
}

func TestGenerateToken_NoPlayerBinding(t *testing.T) {
	user := models.User{ID: 1, Username: "player1", Role: models.RolePlayer}

	tokenString, err := GenerateToken(user, nil)
	assert.NoError(t, err)

	claims, err := ParseToken(tokenString)
	assert.NoError(t, err)
	assert.Nil(t, claims.PlayerID)
}

func TestParseToken_Invalid(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	claims := Claims{
		UserID:   1,
		Username: "player1",
		Role:     models.RolePlayer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err)
}

func TestParseToken_RejectsUnexpectedSigningMethod(t *testing.T) {
	claims := Claims{
		UserID:   1,
		Username: "player1",
		Role:     models.RolePlayer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Correctly signed with our secret, but not with HS256.
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(jwtSecret)
	assert.NoError(t, err)

	_, err = ParseToken(tokenString)
	assert.Error(t, err, "only HS256 tokens are accepted")
}

func TestParseToken_TamperedSignature(t *testing.T) {
	user := models.User{ID: 1, Username: "player1", Role: models.RolePlayer}

	tokenString, err := GenerateToken(user, nil)
	assert.NoError(t, err)

	tampered := tokenString[:len(tokenString)-2] + "xx"
	_, err = ParseToken(tampered)
	assert.Error(t, err)
}
