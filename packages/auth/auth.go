// Package auth provides JWT based authentication with refresh tokens
// and database backed role checks.
package auth

import (
	"auth/handlers"
	"auth/middleware"
	"auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlayerResolver is implemented by the domain layer to report which
// player, if any, a user account is bound to.
type PlayerResolver = handlers.PlayerResolver

type Module struct {
	AuthHandler *handlers.AuthHandler
}

func NewModule(db *gorm.DB, resolver PlayerResolver) *Module {
	return &Module{
		AuthHandler: handlers.NewAuthHandler(db, resolver),
	}
}

// SetupRoutes registers the /auth endpoints.
func (m *Module) SetupRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", m.AuthHandler.Login)
		authGroup.POST("/refresh", m.AuthHandler.RefreshToken)

		protected := authGroup.Group("")
		protected.Use(middleware.JWTMiddleware())
		{
			protected.POST("/logout", m.AuthHandler.Logout)
			protected.POST("/logout-all", m.AuthHandler.LogoutAll)
			protected.GET("/profile", m.AuthHandler.Profile)
			protected.POST("/change-password", m.AuthHandler.ChangePassword)
		}
	}
}

// JWTMiddleware re-exports the token middleware for other modules.
func JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware()
}

// OptionalJWTMiddleware re-exports the optional token middleware.
func OptionalJWTMiddleware() gin.HandlerFunc {
	return middleware.OptionalJWTMiddleware()
}

// RequireRole re-exports the database backed role check.
func RequireRole(db *gorm.DB, role string) gin.HandlerFunc {
	return middleware.RequireRole(db, role)
}

// GetUserID re-exports the context accessor for the user id.
func GetUserID(c *gin.Context) (uint, bool) {
	return middleware.GetUserID(c)
}

// GetUserRole re-exports the context accessor for the role.
func GetUserRole(c *gin.Context) (string, bool) {
	return middleware.GetUserRole(c)
}

// GetPlayerID re-exports the context accessor for the bound player.
func GetPlayerID(c *gin.Context) (uint, bool) {
	return middleware.GetPlayerID(c)
}

// Role constants re-exported for callers.
const (
	RolePlayer  = models.RolePlayer
	RoleManager = models.RoleManager
)
