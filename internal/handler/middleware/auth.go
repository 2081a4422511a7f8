package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-engine/internal/domain/actor"
	"booking-engine/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		SetActor(c, claims.Actor())
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole actor.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}

		if !caller.Role.AtLeast(minRole) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			return
		}

		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		SetActor(c, claims.Actor())
		c.Next()
	}
}

func SetActor(c *gin.Context, a actor.Actor) {
	c.Set(ctxUserIDKey, a.ID)
	c.Set(ctxUserRoleKey, a.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": a.ID.String(),
		"role":    a.Role.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (actor.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(actor.Role)
	return role, ok
}

// GetActor returns the authenticated caller set by RequireAuth or OptionalAuth.
func GetActor(c *gin.Context) (actor.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return actor.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return actor.Actor{}, false
	}
	return actor.Actor{ID: id, Role: role}, true
}
