package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	userRepo "servease/database/repository/user"
	"servease/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// bearerToken extracts the token from the Authorization header, or "".
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// verifyToken validates the JWT and checks its hash against the auth cache,
// falling back to the stored hash on the user document on a cache miss.
// On success it returns the user ID and role claim.
func verifyToken(repo userRepo.UserRepository, tokenString string) (string, string, bool) {
	userID, role, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil || userID == "" {
		return "", "", false
	}

	computedHash := utils.HashToken(tokenString)
	cacheKey := utils.AuthCachePrefix + userID
	ctx := context.Background()

	authCache := utils.GetAuthCacheClient()
	cachedHash, err := authCache.Get(ctx, cacheKey).Result()
	if err == nil {
		if cachedHash != computedHash {
			return "", "", false
		}
		// Refresh TTL and continue.
		_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
		return userID, role, true
	}
	if err != redis.Nil {
		zap.L().Warn("auth cache lookup failed, falling back to DB", zap.Error(err))
	}

	// Cache miss: query the database.
	proj := bson.M{"id": 1, "token_hash": 1, "role": 1}
	usr, err := repo.GetByIDWithProjection(userID, proj)
	if err != nil || usr == nil {
		return "", "", false
	}
	if usr.TokenHash == "" || usr.TokenHash != computedHash {
		return "", "", false
	}

	_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
	return userID, usr.Role, true
}

// JWTAuthUserMiddleware requires a valid bearer token and sets userID and
// userRole on the request context.
func JWTAuthUserMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, role, ok := verifyToken(repo, tokenString)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("userID", userID)
		c.Set("userRole", role)
		c.Next()
	}
}

// OptionalAuthMiddleware sets userID/userRole when a valid bearer token is
// present but never rejects the request. Used by the chatbot endpoints, which
// allow anonymous browsing.
func OptionalAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString != "" {
			if userID, role, ok := verifyToken(repo, tokenString); ok {
				c.Set("userID", userID)
				c.Set("userRole", role)
			}
		}
		c.Next()
	}
}
