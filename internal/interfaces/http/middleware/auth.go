// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthMiddleware creates JWT authentication middleware. The token must be
// valid and its session record must still exist, so logged-out tokens are
// rejected before they expire.
func AuthMiddleware(cfg *config.Config, users *user.Service) gin.HandlerFunc {
	jwtManager := auth.NewJWTManager(cfg)

	return func(c *gin.Context) {
		// Get Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		// Extract token from header
		tokenString := auth.ExtractTokenFromHeader(authHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		// Validate access token
		claims, err := jwtManager.ValidateAccessToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Reject tokens whose session was revoked by logout
		active, err := users.IsSessionActive(c.Request.Context(), claims.ID)
		if err != nil || !active {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Session is no longer active",
			})
			c.Abort()
			return
		}

		// Store user information in context
		c.Set("user_email", claims.Email)
		c.Set("token_claims", claims)

		c.Next()
	}
}

// GetUserEmailFromContext extracts user email from gin context
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetTokenClaimsFromContext extracts the parsed token claims from gin context
func GetTokenClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	claims, exists := c.Get("token_claims")
	if !exists {
		return nil, false
	}
	return claims.(*auth.Claims), true
}
