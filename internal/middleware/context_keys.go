package middleware

import "github.com/gin-gonic/gin"

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// userEmailKey is the key used to store the authenticated user's email.
	userEmailKey = contextKey("userEmail")
	// userRoleKey is the key used to store the authenticated user's role.
	userRoleKey = contextKey("userRole")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userIDKey)
}

// GetUserEmailFromContext retrieves the authenticated user's email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userEmailKey)
}

// GetUserRoleFromContext retrieves the authenticated user's role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) (string, bool) {
	return stringFromContext(c, userRoleKey)
}

func stringFromContext(c *gin.Context, key contextKey) (string, bool) {
	val, exists := c.Get(string(key))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(key)
		if ctxVal != nil {
			s, ok := ctxVal.(string)
			return s, ok
		}
		return "", false
	}

	s, ok := val.(string)
	if !ok {
		return "", false
	}
	return s, true
}
