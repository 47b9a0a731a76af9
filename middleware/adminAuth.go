package middleware

import (
	"net/http"

	userRepo "servease/database/repository/user"
	"servease/models"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware requires a valid bearer token whose user holds the
// admin role.
func JWTAuthAdminMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}

		userID, role, ok := verifyToken(repo, tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Set("isAdmin", true)
		c.Next()
	}
}
