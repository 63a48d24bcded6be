package auth

import (
	"net/http"
	"strings"

	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	tokens *TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokens *TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth validates JWT tokens and sets the requester in the gin and request contexts
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := m.tokens.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).Debugf("rejected token: %v", err)
			unauthorized(c, apperrors.ErrInvalidCredentials.Error())
			return
		}

		// ValidateJWT guarantees a parseable id
		userID := uuid.MustParse(claims.UserID)
		c.Set("user_id", userID)
		c.Set("username", claims.Username)
		c.Set("admin", claims.IsAdmin())
		c.Set("auth_claims", claims)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": message,
		"kind":  apperrors.KindUnauthenticated,
	})
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// IsAdmin reports whether the authenticated requester is an administrator
func IsAdmin(c *gin.Context) bool {
	return c.GetBool("admin")
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
