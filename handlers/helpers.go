package handlers

import "github.com/gin-gonic/gin"

// currentUserID returns the authenticated user's ID from the request context,
// or "" for anonymous callers.
func currentUserID(c *gin.Context) string {
	id, ok := c.Get("userID")
	if !ok {
		return ""
	}
	idStr, _ := id.(string)
	return idStr
}

// isAdmin reports whether the authenticated caller holds the admin role.
func isAdmin(c *gin.Context) bool {
	role, ok := c.Get("userRole")
	if !ok {
		return false
	}
	roleStr, _ := role.(string)
	return roleStr == "admin"
}
